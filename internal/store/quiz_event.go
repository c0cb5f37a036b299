package store

import (
	"context"
	"fmt"
	"sort"
)

func (r *eventRepo) AppendQuiz(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetTheme(data.Theme).
		SetLanguage(data.Language).
		SetMode(data.Mode).
		SetTotal(data.Total).
		SetScore(data.Score)

	if len(data.MistakeIDs) > 0 {
		builder = builder.SetMistakeIds(data.MistakeIDs)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizStats(ctx context.Context) ([]QuizStat, error) {
	rows, err := r.client.QuizEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	byMode := make(map[string]*QuizStat)
	for _, row := range rows {
		st := byMode[row.Mode]
		if st == nil {
			st = &QuizStat{Mode: row.Mode}
			byMode[row.Mode] = st
		}
		st.Passes++
		st.Score += row.Score
		st.Total += row.Total
	}

	stats := make([]QuizStat, 0, len(byMode))
	for _, st := range byMode {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Mode < stats[j].Mode })
	return stats, nil
}
