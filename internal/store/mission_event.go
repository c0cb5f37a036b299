package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMission(ctx context.Context, data MissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MissionEvent.Create().
		SetSequence(seqNum).
		SetMissionID(data.MissionID).
		SetLabel(data.Label).
		SetCategory(data.Category).
		SetTarget(data.Target).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mission event: %w", err)
	}
	return nil
}
