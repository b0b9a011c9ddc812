package walks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"star-dog-walker/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid status")
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
	DogID     string
	Date      string
	StartTime string
	EndTime   string
	Duration  int

	PickupAddress string
	SpecialNotes  string
}

// Create reserva un walk. dogOwnerID viene del perro ya resuelto por el
// handler (el invariante walk.ownerId == dog.ownerId se fija acá y no
// se toca nunca más). Si reserva un owner, el walker asignado es el
// fallback configurado y el walk nace pending; si reserva un walker,
// se asigna a sí mismo y nace confirmed.
func (s *Service) Create(ctx context.Context, booker auth.Identity, dogOwnerID, defaultWalkerID string, in CreateInput) (Walk, error) {
	dogID := strings.TrimSpace(in.DogID)
	date := strings.TrimSpace(in.Date)
	startTime := strings.TrimSpace(in.StartTime)

	if dogID == "" || date == "" || startTime == "" || in.Duration <= 0 {
		return Walk{}, ErrInvalidInput
	}
	if strings.TrimSpace(dogOwnerID) == "" {
		return Walk{}, ErrInvalidInput
	}

	walkerID := defaultWalkerID
	status := StatusPending
	if booker.IsWalker() {
		walkerID = booker.ID
		status = StatusConfirmed
	}

	now := s.now()
	w := Walk{
		ID:       uuid.NewString(),
		DogID:    dogID,
		WalkerID: walkerID,
		OwnerID:  dogOwnerID,

		Date:      date,
		StartTime: startTime,
		EndTime:   strings.TrimSpace(in.EndTime),
		Duration:  in.Duration,

		Status: status,
		Photos: []string{},

		PickupAddress: strings.TrimSpace(in.PickupAddress),
		SpecialNotes:  strings.TrimSpace(in.SpecialNotes),

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return Walk{}, err
	}
	return w, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Walk, error) {
	w, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Walk{}, ErrNotFound
	}
	return w, nil
}

// GetPublic es la vista compartible sin autenticación: solo walks
// completados; cualquier otro estado (o id inexistente) es NotFound,
// sin distinguir los casos.
func (s *Service) GetPublic(ctx context.Context, id string) (Walk, error) {
	w, err := s.GetByID(ctx, id)
	if err != nil {
		return Walk{}, err
	}
	if w.Status != StatusCompleted {
		return Walk{}, ErrNotFound
	}
	return w, nil
}

// ListVisible: walkers ven todos los walks, owners solo los suyos.
func (s *Service) ListVisible(ctx context.Context, viewerID string, viewerIsWalker bool) ([]Walk, error) {
	if viewerIsWalker {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, viewerID)
}

// UpdateInput usa punteros: nil = no tocar. id/dogId/ownerId/createdAt
// se preservan siempre; status no existe acá, solo cambia por SetStatus.
type UpdateInput struct {
	WalkerID  *string
	Date      *string
	StartTime *string
	EndTime   *string
	Duration  *int

	Route         *string
	Weather       *string
	Notes         *string
	BehaviorNotes *string
	Photos        *[]string

	PickupAddress *string
	SpecialNotes  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Walk, error) {
	w, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Walk{}, ErrNotFound
	}

	if in.WalkerID != nil {
		w.WalkerID = strings.TrimSpace(*in.WalkerID)
	}
	if in.Date != nil {
		date := strings.TrimSpace(*in.Date)
		if date == "" {
			return Walk{}, ErrInvalidInput
		}
		w.Date = date
	}
	if in.StartTime != nil {
		st := strings.TrimSpace(*in.StartTime)
		if st == "" {
			return Walk{}, ErrInvalidInput
		}
		w.StartTime = st
	}
	if in.EndTime != nil {
		w.EndTime = strings.TrimSpace(*in.EndTime)
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return Walk{}, ErrInvalidInput
		}
		w.Duration = *in.Duration
	}
	if in.Route != nil {
		w.Route = strings.TrimSpace(*in.Route)
	}
	if in.Weather != nil {
		w.Weather = strings.TrimSpace(*in.Weather)
	}
	if in.Notes != nil {
		w.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.BehaviorNotes != nil {
		w.BehaviorNotes = strings.TrimSpace(*in.BehaviorNotes)
	}
	if in.Photos != nil {
		photos := make([]string, 0, len(*in.Photos))
		for _, p := range *in.Photos {
			if u := strings.TrimSpace(p); u != "" {
				photos = append(photos, u)
			}
		}
		w.Photos = photos
	}
	if in.PickupAddress != nil {
		w.PickupAddress = strings.TrimSpace(*in.PickupAddress)
	}
	if in.SpecialNotes != nil {
		w.SpecialNotes = strings.TrimSpace(*in.SpecialNotes)
	}

	w.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, w); err != nil {
		return Walk{}, err
	}
	return w, nil
}

// SetStatus aplica la transición permisiva del walker: cualquier valor
// conocido, desde cualquier estado. Valores desconocidos fallan con
// ErrBadState en lugar de guardarse tal cual.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Walk, error) {
	if !ValidStatus(status) {
		return Walk{}, ErrBadState
	}

	w, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Walk{}, ErrNotFound
	}

	w.Status = status
	w.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, w); err != nil {
		return Walk{}, err
	}
	return w, nil
}

// Delete cancela un walk desde cualquier estado.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}
