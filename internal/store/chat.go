package store

import (
	"context"
	"fmt"

	"github.com/karandv/lingua/ent"
	"github.com/karandv/lingua/ent/chatsession"
)

// chatRepo implements ChatRepo using the ent client.
type chatRepo struct {
	client *ent.Client
}

func (r *chatRepo) Upsert(ctx context.Context, sess *ChatSession) error {
	existing, err := r.client.ChatSession.Query().
		Where(
			chatsession.Theme(sess.Theme),
			chatsession.Language(sess.Language),
			chatsession.UserRole(sess.UserRole),
			chatsession.PartnerRole(sess.PartnerRole),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query chat session: %w", err)
	}

	if existing != nil {
		_, err = r.client.ChatSession.UpdateOneID(existing.ID).
			SetTimestamp(sess.Timestamp).
			SetContextDescription(sess.ContextDescription).
			SetMessages(sess.Messages).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update chat session: %w", err)
		}
		return nil
	}

	_, err = r.client.ChatSession.Create().
		SetSessionID(sess.ID).
		SetTimestamp(sess.Timestamp).
		SetTheme(sess.Theme).
		SetLanguage(sess.Language).
		SetUserRole(sess.UserRole).
		SetPartnerRole(sess.PartnerRole).
		SetContextDescription(sess.ContextDescription).
		SetMessages(sess.Messages).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create chat session: %w", err)
	}
	return nil
}

func (r *chatRepo) All(ctx context.Context) ([]*ChatSession, error) {
	rows, err := r.client.ChatSession.Query().
		Order(ent.Desc(chatsession.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat sessions: %w", err)
	}

	sessions := make([]*ChatSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, &ChatSession{
			ID:                 row.SessionID,
			Timestamp:          row.Timestamp,
			Theme:              row.Theme,
			Language:           row.Language,
			UserRole:           row.UserRole,
			PartnerRole:        row.PartnerRole,
			ContextDescription: row.ContextDescription,
			Messages:           row.Messages,
		})
	}
	return sessions, nil
}
