package product

import (
	"context"

	"github.com/fekuna/omnipos-stand-service/internal/model"
)

// Repository persists the catalog as one snapshot; Save replaces everything.
type Repository interface {
	LoadProducts(ctx context.Context) ([]model.Product, error)
	SaveProducts(ctx context.Context, products []model.Product) error
}
