package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"careerassign/internal/common"
	"careerassign/internal/domain/notification"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (*notification.Notification, error) {
	n.ID = common.NewUUID()
	n.CreatedAt = time.Now().UTC()
	metadata, err := json.Marshal(n.Metadata)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode notification metadata", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO notifications (id, user_id, type, message, metadata, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID, n.UserID, n.Type, n.Message, metadata, n.Read, n.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create notification", err)
	}
	return &n, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID common.UUID) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, type, message, metadata, read, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list notifications", err)
	}
	defer rows.Close()
	var items []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var metadata []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &metadata, &n.Read, &n.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan notification", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &n.Metadata); err != nil {
				return nil, common.NewError(common.CodeInternal, "failed to decode notification metadata", err)
			}
		}
		items = append(items, n)
	}
	return items, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update notification", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "notification not found", sql.ErrNoRows)
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, userID, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete notification", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "notification not found", sql.ErrNoRows)
	}
	return nil
}
