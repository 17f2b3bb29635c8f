package product

import (
	"github.com/nanokm/pola-backend/internal/company"
)

// Product is identified by its barcode. Name, company and brand stay nil
// until an external lookup fills them in.
type Product struct {
	ID       int              `json:"id"`
	Code     string           `json:"code"`
	Name     *string          `json:"name"`
	Company  *company.Company `json:"company"`
	Brand    *company.Brand   `json:"brand"`
	Verified bool             `json:"-"`
}

// DisplayName returns the product name, falling back to the barcode.
func (p *Product) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}

	return p.Code
}
