package notifications

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
	UserID  string
	Type    Type
	Title   string
	Message string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Notification, error) {
	userID := strings.TrimSpace(in.UserID)
	title := strings.TrimSpace(in.Title)
	message := strings.TrimSpace(in.Message)

	if userID == "" || title == "" || message == "" {
		return Notification{}, ErrInvalidInput
	}
	// Un type fuera del enum rompería el render del cliente,
	// así que se rechaza acá (mismo criterio que walk status).
	if !ValidType(in.Type) {
		return Notification{}, ErrInvalidInput
	}

	n := Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      in.Type,
		Title:     title,
		Message:   message,
		Timestamp: s.now(),
		Read:      false,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

// MarkRead marca como leída una notificación propia. Si el id no existe
// o pertenece a otro usuario, devuelve ErrNotFound (no revela ajenos).
// Es idempotente: marcar dos veces no es error.
func (s *Service) MarkRead(ctx context.Context, id, userID string) (Notification, error) {
	n, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Notification{}, ErrNotFound
	}
	if n.UserID != strings.TrimSpace(userID) {
		return Notification{}, ErrNotFound
	}

	if n.Read {
		return n, nil
	}

	n.Read = true
	if err := s.repo.Update(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// ClearAll borra el inbox del usuario sin tocar los de otros.
func (s *Service) ClearAll(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidInput
	}
	return s.repo.DeleteByUser(ctx, userID)
}

// Notify es el helper de fan-out para acciones del sistema (booking,
// cambios de status). Best-effort: el caller ignora el error para no
// fallar la operación principal.
func (s *Service) Notify(ctx context.Context, userID string, typ Type, title, message string) error {
	_, err := s.Create(ctx, CreateInput{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
	})
	return err
}
