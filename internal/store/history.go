package store

import (
	"context"
	"fmt"

	"github.com/karandv/lingua/ent"
	"github.com/karandv/lingua/ent/historyitem"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Upsert(ctx context.Context, item *HistoryItem) error {
	head, err := r.client.HistoryItem.Query().
		Order(ent.Desc(historyitem.FieldTimestamp)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query history head: %w", err)
	}

	// A save for the same context as the most recent entry updates that
	// entry in place rather than growing the log.
	if head != nil && head.Theme == item.Theme && head.Language == item.Language {
		err = r.update(ctx, head.ID, item)
	} else {
		err = r.create(ctx, item)
	}
	if err == nil {
		return nil
	}

	// Large base64 thumbnails are the usual culprit when a write fails.
	// Retry once without the image before giving up.
	if item.Thumbnail != "" {
		stripped := *item
		stripped.Thumbnail = ""
		if head != nil && head.Theme == item.Theme && head.Language == item.Language {
			if retryErr := r.update(ctx, head.ID, &stripped); retryErr == nil {
				return nil
			}
		} else if retryErr := r.create(ctx, &stripped); retryErr == nil {
			return nil
		}
	}
	return fmt.Errorf("save history item: %w", err)
}

func (r *historyRepo) create(ctx context.Context, item *HistoryItem) error {
	builder := r.client.HistoryItem.Create().
		SetItemID(item.ID).
		SetTimestamp(item.Timestamp).
		SetTheme(item.Theme).
		SetLanguage(item.Language).
		SetDifficulty(item.Difficulty).
		SetContextDescription(item.ContextDescription).
		SetContent(item.Content)
	if item.Thumbnail != "" {
		builder = builder.SetThumbnail(item.Thumbnail)
	}
	if item.Chat != nil {
		builder = builder.SetChat(item.Chat)
	}
	_, err := builder.Save(ctx)
	return err
}

func (r *historyRepo) update(ctx context.Context, id int, item *HistoryItem) error {
	builder := r.client.HistoryItem.UpdateOneID(id).
		SetTimestamp(item.Timestamp).
		SetDifficulty(item.Difficulty).
		SetContextDescription(item.ContextDescription).
		SetContent(item.Content)
	if item.Thumbnail != "" {
		builder = builder.SetThumbnail(item.Thumbnail)
	}
	if item.Chat != nil {
		builder = builder.SetChat(item.Chat)
	}
	_, err := builder.Save(ctx)
	return err
}

func (r *historyRepo) Recent(ctx context.Context, limit int) ([]*HistoryItem, error) {
	q := r.client.HistoryItem.Query().
		Order(ent.Desc(historyitem.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	items := make([]*HistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &HistoryItem{
			ID:                 row.ItemID,
			Timestamp:          row.Timestamp,
			Theme:              row.Theme,
			Language:           row.Language,
			Difficulty:         row.Difficulty,
			ContextDescription: row.ContextDescription,
			Thumbnail:          row.Thumbnail,
			Content:            row.Content,
			Chat:               row.Chat,
		})
	}
	return items, nil
}

func (r *historyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.HistoryItem.Delete().
		Where(historyitem.ItemID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete history item: %w", err)
	}
	return nil
}
