package db

import (
	"context"
	"errors"

	"github.com/nanokm/pola-backend/internal/product"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*product.Product, error)
	Create(ctx context.Context, data product.Product) (*product.Product, error)
	Update(ctx context.Context, data product.Product) (*product.Product, error)
	GetReplacements(ctx context.Context, productID int) ([]product.Product, error)
}
