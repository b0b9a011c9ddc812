package walks

import "context"

type Repository interface {
	Create(ctx context.Context, w Walk) error
	Update(ctx context.Context, w Walk) error
	GetByID(ctx context.Context, id string) (Walk, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]Walk, error)
	ListAll(ctx context.Context) ([]Walk, error)
}
