package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"star-dog-walker/internal/domain/walks"
)

type WalksRepo struct {
	db *sql.DB
}

func NewWalksRepo(db *sql.DB) *WalksRepo {
	return &WalksRepo{db: db}
}

const walkColumns = `
	id, dog_id, walker_id, owner_id,
	date, start_time, end_time, duration,
	status,
	route, weather, notes, behavior_notes, photos,
	pickup_address, special_notes,
	created_at, updated_at`

func (r *WalksRepo) Create(ctx context.Context, w walks.Walk) error {
	photos, err := photosJSON(w.Photos)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO walks (`+walkColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		w.ID,
		w.DogID,
		w.WalkerID,
		w.OwnerID,
		w.Date,
		w.StartTime,
		w.EndTime,
		w.Duration,
		string(w.Status),
		w.Route,
		w.Weather,
		w.Notes,
		w.BehaviorNotes,
		photos,
		w.PickupAddress,
		w.SpecialNotes,
		w.CreatedAt,
		w.UpdatedAt,
	)
	return err
}

// Update no toca dog_id, owner_id ni created_at.
func (r *WalksRepo) Update(ctx context.Context, w walks.Walk) error {
	photos, err := photosJSON(w.Photos)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE walks
		SET
			walker_id = $2,
			date = $3,
			start_time = $4,
			end_time = $5,
			duration = $6,
			status = $7,
			route = $8,
			weather = $9,
			notes = $10,
			behavior_notes = $11,
			photos = $12,
			pickup_address = $13,
			special_notes = $14,
			updated_at = $15
		WHERE id = $1
	`,
		w.ID,
		w.WalkerID,
		w.Date,
		w.StartTime,
		w.EndTime,
		w.Duration,
		string(w.Status),
		w.Route,
		w.Weather,
		w.Notes,
		w.BehaviorNotes,
		photos,
		w.PickupAddress,
		w.SpecialNotes,
		w.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *WalksRepo) GetByID(ctx context.Context, id string) (walks.Walk, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return walks.Walk{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+walkColumns+`
		FROM walks
		WHERE id = $1
	`, id)

	w, err := scanWalk(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return walks.Walk{}, ErrNotFound
		}
		return walks.Walk{}, err
	}
	return w, nil
}

func (r *WalksRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM walks WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *WalksRepo) ListByOwner(ctx context.Context, ownerID string) ([]walks.Walk, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}
	return r.list(ctx, `
		SELECT `+walkColumns+`
		FROM walks
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`, ownerID)
}

func (r *WalksRepo) ListAll(ctx context.Context) ([]walks.Walk, error) {
	return r.list(ctx, `
		SELECT `+walkColumns+`
		FROM walks
		ORDER BY created_at ASC
	`)
}

func (r *WalksRepo) list(ctx context.Context, query string, args ...any) ([]walks.Walk, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]walks.Walk, 0)
	for rows.Next() {
		w, err := scanWalk(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func scanWalk(row rowScanner) (walks.Walk, error) {
	var w walks.Walk
	var status string
	var photos []byte
	if err := row.Scan(
		&w.ID,
		&w.DogID,
		&w.WalkerID,
		&w.OwnerID,
		&w.Date,
		&w.StartTime,
		&w.EndTime,
		&w.Duration,
		&status,
		&w.Route,
		&w.Weather,
		&w.Notes,
		&w.BehaviorNotes,
		&photos,
		&w.PickupAddress,
		&w.SpecialNotes,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return walks.Walk{}, err
	}
	w.Status = walks.Status(status)

	w.Photos = []string{}
	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &w.Photos); err != nil {
			return walks.Walk{}, err
		}
	}
	return w, nil
}

// photos es JSONB: las URLs se guardan como array serializado, nunca null.
func photosJSON(photos []string) ([]byte, error) {
	if photos == nil {
		photos = []string{}
	}
	return json.Marshal(photos)
}
