package users

import (
	"context"

	"star-dog-walker/internal/ports/auth"
)

// Resolve implementa auth.IdentityResolver: re-resuelve la identidad
// completa desde el store en cada request, así un perfil editado o un
// usuario borrado se reflejan de inmediato en la autorización.
func (s *Service) Resolve(ctx context.Context, userID string) (auth.Identity, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    string(u.Role),
		Phone:   u.Phone,
		Address: u.Address,
	}, nil
}
