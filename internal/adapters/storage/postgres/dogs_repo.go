package postgres

import (
	"context"
	"database/sql"
	"strings"

	"star-dog-walker/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

const dogColumns = `
	id, owner_id,
	name, breed, age, weight, color,
	microchip_number, vet_name, vet_phone,
	medications, allergies, behavior_notes,
	emergency_contact, feeding_instructions, photo,
	created_at, updated_at`

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (`+dogColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		d.ID,
		d.OwnerID,
		d.Name,
		d.Breed,
		toNullInt(d.Age),
		toNullFloat(d.Weight),
		d.Color,
		d.MicrochipNumber,
		d.VetName,
		d.VetPhone,
		d.Medications,
		d.Allergies,
		d.BehaviorNotes,
		d.EmergencyContact,
		d.FeedingInstructions,
		d.Photo,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

// Update no toca owner_id ni created_at: el service ya garantiza que
// llegan intactos, la query los excluye como segundo candado.
func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET
			name = $2,
			breed = $3,
			age = $4,
			weight = $5,
			color = $6,
			microchip_number = $7,
			vet_name = $8,
			vet_phone = $9,
			medications = $10,
			allergies = $11,
			behavior_notes = $12,
			emergency_contact = $13,
			feeding_instructions = $14,
			photo = $15,
			updated_at = $16
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		d.Breed,
		toNullInt(d.Age),
		toNullFloat(d.Weight),
		d.Color,
		d.MicrochipNumber,
		d.VetName,
		d.VetPhone,
		d.Medications,
		d.Allergies,
		d.BehaviorNotes,
		d.EmergencyContact,
		d.FeedingInstructions,
		d.Photo,
		d.UpdatedAt,
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

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE id = $1
	`, id)

	d, err := scanDog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return dogs.Dog{}, ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}

func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerID string) ([]dogs.Dog, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}
	return r.list(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`, ownerID)
}

func (r *DogsRepo) ListAll(ctx context.Context) ([]dogs.Dog, error) {
	return r.list(ctx, `
		SELECT `+dogColumns+`
		FROM dogs
		ORDER BY created_at ASC
	`)
}

func (r *DogsRepo) list(ctx context.Context, query string, args ...any) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var d dogs.Dog
	var age sql.NullInt32
	var weight sql.NullFloat64
	if err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Name,
		&d.Breed,
		&age,
		&weight,
		&d.Color,
		&d.MicrochipNumber,
		&d.VetName,
		&d.VetPhone,
		&d.Medications,
		&d.Allergies,
		&d.BehaviorNotes,
		&d.EmergencyContact,
		&d.FeedingInstructions,
		&d.Photo,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return dogs.Dog{}, err
	}
	if age.Valid {
		a := int(age.Int32)
		d.Age = &a
	}
	if weight.Valid {
		w := weight.Float64
		d.Weight = &w
	}
	return d, nil
}

func toNullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
