package db

import (
	"context"
	"errors"

	"github.com/nanokm/pola-backend/internal/company"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
)

type Repository interface {
	GetByBusinessID(ctx context.Context, businessID string) (*company.Company, error)
	Create(ctx context.Context, data company.Company) (*company.Company, error)
	GetBrands(ctx context.Context, companyID int) ([]company.Brand, error)
}
