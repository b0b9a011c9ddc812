package postgres

import (
	"context"
	"database/sql"
	"strings"

	"star-dog-walker/internal/domain/notifications"
)

type NotificationsRepo struct {
	db *sql.DB
}

func NewNotificationsRepo(db *sql.DB) *NotificationsRepo {
	return &NotificationsRepo{db: db}
}

func (r *NotificationsRepo) Create(ctx context.Context, n notifications.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (
			id, user_id, type, title, message, timestamp, read
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		n.ID,
		n.UserID,
		string(n.Type),
		n.Title,
		n.Message,
		n.Timestamp,
		n.Read,
	)
	return err
}

// Update solo toca el flag read: el contenido es inmutable.
func (r *NotificationsRepo) Update(ctx context.Context, n notifications.Notification) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET read = $2
		WHERE id = $1
	`, n.ID, n.Read)
	if err != nil {
		return err
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotificationsRepo) GetByID(ctx context.Context, id string) (notifications.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return notifications.Notification{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, type, title, message, timestamp, read
		FROM notifications
		WHERE id = $1
	`, id)

	var n notifications.Notification
	var typ string
	if err := row.Scan(&n.ID, &n.UserID, &typ, &n.Title, &n.Message, &n.Timestamp, &n.Read); err != nil {
		if err == sql.ErrNoRows {
			return notifications.Notification{}, ErrNotFound
		}
		return notifications.Notification{}, err
	}
	n.Type = notifications.Type(typ)
	return n, nil
}

func (r *NotificationsRepo) ListByUser(ctx context.Context, userID string) ([]notifications.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, type, title, message, timestamp, read
		FROM notifications
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0)
	for rows.Next() {
		var n notifications.Notification
		var typ string
		if err := rows.Scan(&n.ID, &n.UserID, &typ, &n.Title, &n.Message, &n.Timestamp, &n.Read); err != nil {
			return nil, err
		}
		n.Type = notifications.Type(typ)
		out = append(out, n)
	}
	return out, rows.Err()
}

// DeleteByUser vacía el inbox; borrar cero filas no es error.
func (r *NotificationsRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM notifications WHERE user_id = $1
	`, strings.TrimSpace(userID))
	return err
}
