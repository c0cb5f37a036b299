package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRound(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetRoundID(data.RoundID).
		SetTurns(data.Turns).
		SetScore(data.Score).
		SetOutcome(data.Outcome).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) RoundStats(ctx context.Context) (RoundStat, error) {
	rows, err := r.client.RoundEvent.Query().All(ctx)
	if err != nil {
		return RoundStat{}, fmt.Errorf("query round events: %w", err)
	}

	var st RoundStat
	for _, row := range rows {
		st.Rounds++
		if row.Score > st.BestScore {
			st.BestScore = row.Score
		}
		st.XPAwarded += row.XpAwarded
		if row.Outcome == "concession" {
			st.Wins++
		}
	}
	return st, nil
}
