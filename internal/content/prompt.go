package content

import (
	"fmt"
	"strings"
)

const themeSystemPrompt = `You are a language-learning guide. You analyze a learner's surroundings or situation and propose themes worth studying.`

func buildThemeUserMessage(input ThemeInput) string {
	var b strings.Builder

	b.WriteString("Analyze the input.\n")
	b.WriteString("1. Describe the visual or situational context, in English.\n")
	b.WriteString(fmt.Sprintf("2. Suggest 3 learning themes for %s (level: %s).\n", input.Language, input.Difficulty))
	b.WriteString("3. For each theme, list 4 distinct character roles for a roleplay.\n")
	b.WriteString("\nTheme titles and roles must be English.\n")

	if input.Text != "" {
		b.WriteString(fmt.Sprintf("\nContext: %s\n", input.Text))
	}
	if input.ImageBase64 != "" {
		b.WriteString("\nAn image of the learner's surroundings accompanies this request.\n")
	}

	return b.String()
}

func buildVocabularyUserMessage(input VocabularyInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Act as a %s tutor.\n", input.Language))
	b.WriteString(fmt.Sprintf("Context: %q. Theme: %q. Level: %s.\n", input.Context, input.Theme, input.Difficulty))
	b.WriteString(fmt.Sprintf("Task: list %d vocabulary words relevant to the context.\n", VocabularyCount))

	excluded := input.ExcludedWords
	if len(excluded) > MaxExcludedWords {
		excluded = excluded[len(excluded)-MaxExcludedWords:]
	}
	if len(excluded) > 0 {
		b.WriteString(fmt.Sprintf("Exclude: %s.\n", strings.Join(excluded, ", ")))
	}

	return b.String()
}

func buildQuizUserMessage(input QuizInput) string {
	words := make([]string, 0, len(input.Vocabulary))
	for _, v := range input.Vocabulary {
		words = append(words, v.Word)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Create %d quiz questions for %s learners.\n", QuizCount, input.Language))
	b.WriteString(fmt.Sprintf("Context: %q. Theme: %q. Level: %s.\n", input.Context, input.Theme, input.Difficulty))
	b.WriteString(fmt.Sprintf("Target words: [%s].\n", strings.Join(words, ", ")))
	b.WriteString(`Test meaning and usage. Multiple-choice questions need 4 options.
Sentence-scramble questions need the source sentence and its target words in correct order.
Matching questions need 3-4 term/definition pairs.`)

	return b.String()
}

func buildRoleplaySystemPrompt(input RoleplayInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Context: %q. Theme: %s.\n", input.Context, input.Theme))
	b.WriteString(fmt.Sprintf("Role: you are %s. The user is %s.\n", input.PartnerRole, input.UserRole))
	b.WriteString(fmt.Sprintf("Language: %s. Level: %s.\n", input.Language, input.Difficulty))
	b.WriteString("Reply naturally in 1-2 sentences. Stay in character.")

	return b.String()
}

func buildGrammarUserMessage(input GrammarInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are a language coach for %s.\n", input.Language))
	b.WriteString(fmt.Sprintf("Context: %q. User role: %s. Partner role: %s. Level: %s.\n",
		input.Context, input.UserRole, input.PartnerRole, input.Difficulty))
	b.WriteString(fmt.Sprintf("Input: %q\n", input.Text))
	b.WriteString(`
1. Check for grammar or vocabulary errors.
2. Provide a more natural, native phrasing for this specific roleplay context.`)

	return b.String()
}

func buildWordChainUserMessage(history []string, candidate string) string {
	var b strings.Builder

	b.WriteString("Play Word Chain (Shiritori) in English.\n")
	b.WriteString("Rules: the next word must start with the last letter of the previous word. No duplicates. Real words only.\n")
	b.WriteString(fmt.Sprintf("\nGame history: [%s]\n", strings.Join(history, ", ")))
	b.WriteString(fmt.Sprintf("User input: %q\n", candidate))
	b.WriteString(`
1. Validate the user input: correct starting letter, a real word, not a duplicate.
2. If invalid, set is_valid to false and explain why.
3. If valid, respond with a single word starting with the last letter of the user input.
4. Provide a brief definition for your word.`)

	return b.String()
}
