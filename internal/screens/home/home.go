package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karandv/lingua/internal/content"
	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/router"
	"github.com/karandv/lingua/internal/screen"
	"github.com/karandv/lingua/internal/screens/history"
	"github.com/karandv/lingua/internal/screens/learn"
	"github.com/karandv/lingua/internal/screens/placeholder"
	wcscreen "github.com/karandv/lingua/internal/screens/wordchain"
	"github.com/karandv/lingua/internal/store"
	"github.com/karandv/lingua/internal/ui/components"
	"github.com/karandv/lingua/internal/ui/theme"
	"github.com/karandv/lingua/internal/wordchain"
)

// HomeScreen is the dashboard: XP, streak, daily missions, and the main
// menu.
type HomeScreen struct {
	tracker *progress.Tracker
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. svc may be nil when no LLM provider is
// configured; the learn flow is then unavailable but the word-chain
// game still runs on the local referee.
func New(tracker *progress.Tracker, svc *content.Service, referee wordchain.Referee, eventRepo store.EventRepo, historyRepo store.HistoryRepo, chatRepo store.ChatRepo, language, difficulty string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "LEARN", Action: func() tea.Cmd {
			if svc == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Learn",
						"AI features are unavailable.\n\nSet GEMINI_API_KEY, OPENAI_API_KEY, or\nANTHROPIC_API_KEY and restart to scan\nyour surroundings and learn.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: learn.New(tracker, svc, eventRepo, historyRepo, chatRepo, language, difficulty),
				}
			}
		}},
		{Label: "WORD CHAIN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: wcscreen.New(tracker, referee, eventRepo)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(historyRepo, chatRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		tracker: tracker,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	state := h.tracker.State()

	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw),
		renderStats(state, cw),
		renderMissions(state.DailyMissions, cw),
		renderMenu(h.menu, cw),
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 56 {
		w = 56
	}
	if w < 24 {
		w = 24
	}
	return w
}

func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("L I N G U A")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("learn the language around you")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + subtitle)
}

func renderStats(state *progress.State, cw int) string {
	stats := fmt.Sprintf("✦ %d XP    ★ %d day streak    ♥ %d saved words",
		state.XP, state.StreakDays, len(state.SavedVocabulary))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats)
}

func renderMissions(missions []progress.Mission, cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("DAILY MISSIONS"))
	b.WriteString("\n")

	for _, m := range missions {
		mark := "□"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if m.Completed {
			mark = "■"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s  (%d/%d)", mark, m.Label, m.Current, m.Target)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}

func renderMenu(menu components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Render(strings.TrimRight(menu.View(), "\n"))
}
