package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name  string
	Breed string

	Age    *int
	Weight *float64
	Color  string

	MicrochipNumber string
	VetName         string
	VetPhone        string
	Medications     string
	Allergies       string
	BehaviorNotes   string

	EmergencyContact    string
	FeedingInstructions string

	Photo string
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Dog, error) {
	ownerID = strings.TrimSpace(ownerID)
	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)

	if ownerID == "" || name == "" || breed == "" {
		return Dog{}, ErrInvalidInput
	}

	now := s.now()
	d := Dog{
		ID:      uuid.NewString(),
		OwnerID: ownerID,

		Name:  name,
		Breed: breed,

		Age:    in.Age,
		Weight: in.Weight,
		Color:  strings.TrimSpace(in.Color),

		MicrochipNumber: strings.TrimSpace(in.MicrochipNumber),
		VetName:         strings.TrimSpace(in.VetName),
		VetPhone:        strings.TrimSpace(in.VetPhone),
		Medications:     strings.TrimSpace(in.Medications),
		Allergies:       strings.TrimSpace(in.Allergies),
		BehaviorNotes:   strings.TrimSpace(in.BehaviorNotes),

		EmergencyContact:    strings.TrimSpace(in.EmergencyContact),
		FeedingInstructions: strings.TrimSpace(in.FeedingInstructions),

		Photo: strings.TrimSpace(in.Photo),

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	d, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

// ListVisible devuelve los perros visibles por rol: los walkers ven
// todos, los owners solo los propios.
func (s *Service) ListVisible(ctx context.Context, viewerID string, viewerIsWalker bool) ([]Dog, error) {
	if viewerIsWalker {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, viewerID)
}

// UpdateInput usa punteros: nil = no tocar el campo.
// No existe OwnerID acá: un payload que intente cambiar el dueño
// se ignora silenciosamente (id, ownerId y createdAt se preservan).
type UpdateInput struct {
	Name  *string
	Breed *string

	Age    *int
	Weight *float64
	Color  *string

	MicrochipNumber *string
	VetName         *string
	VetPhone        *string
	Medications     *string
	Allergies       *string
	BehaviorNotes   *string

	EmergencyContact    *string
	FeedingInstructions *string

	Photo *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Dog, error) {
	d, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Dog{}, ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Name = name
	}
	if in.Breed != nil {
		breed := strings.TrimSpace(*in.Breed)
		if breed == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Breed = breed
	}
	if in.Age != nil {
		d.Age = in.Age
	}
	if in.Weight != nil {
		d.Weight = in.Weight
	}
	if in.Color != nil {
		d.Color = strings.TrimSpace(*in.Color)
	}
	if in.MicrochipNumber != nil {
		d.MicrochipNumber = strings.TrimSpace(*in.MicrochipNumber)
	}
	if in.VetName != nil {
		d.VetName = strings.TrimSpace(*in.VetName)
	}
	if in.VetPhone != nil {
		d.VetPhone = strings.TrimSpace(*in.VetPhone)
	}
	if in.Medications != nil {
		d.Medications = strings.TrimSpace(*in.Medications)
	}
	if in.Allergies != nil {
		d.Allergies = strings.TrimSpace(*in.Allergies)
	}
	if in.BehaviorNotes != nil {
		d.BehaviorNotes = strings.TrimSpace(*in.BehaviorNotes)
	}
	if in.EmergencyContact != nil {
		d.EmergencyContact = strings.TrimSpace(*in.EmergencyContact)
	}
	if in.FeedingInstructions != nil {
		d.FeedingInstructions = strings.TrimSpace(*in.FeedingInstructions)
	}
	if in.Photo != nil {
		d.Photo = strings.TrimSpace(*in.Photo)
	}

	d.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}
