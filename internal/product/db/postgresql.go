package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nanokm/pola-backend/internal/company"
	"github.com/nanokm/pola-backend/internal/logging"
	"github.com/nanokm/pola-backend/internal/product"
	pgtx "github.com/nanokm/pola-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

type repository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func NewRepository(client *pgxpool.Pool, logger *zap.Logger) Repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

const productColumns = `
	p.id,
	p.code,
	p.name,
	p.verified,
	c.id,
	c.name,
	c.official_name,
	c.common_name,
	c.business_id,
	c.description,
	c.official_url,
	c.logotype_key,
	c.is_friend,
	c.display_brands_in_description,
	c.pl_capital,
	c.pl_capital_notes,
	c.pl_not_glob_ent,
	c.pl_not_glob_ent_notes,
	c.pl_registered,
	c.pl_registered_notes,
	c.pl_rnd,
	c.pl_rnd_notes,
	c.pl_workers,
	c.pl_workers_notes,
	c.pl_score,
	b.id,
	b.company_id,
	b.name,
	b.common_name,
	b.website_url,
	bc.id,
	bc.is_friend
`

const productJoins = `
	LEFT JOIN companies c ON p.company_id = c.id
	LEFT JOIN brands b ON p.brand_id = b.id
	LEFT JOIN companies bc ON b.company_id = bc.id
`

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		p product.Product

		compID                       *int
		compName                     *string
		compOfficialName             *string
		compCommonName               *string
		compBusinessID               *string
		compDescription              *string
		compOfficialURL              *string
		compLogotypeKey              *string
		compIsFriend                 *bool
		compDisplayBrands            *bool
		plCapital                    *int
		plCapitalNotes               *string
		plNotGlobEnt                 *int
		plNotGlobEntNotes            *string
		plRegistered                 *int
		plRegisteredNotes            *string
		plRnD                        *int
		plRnDNotes                   *string
		plWorkers                    *int
		plWorkersNotes               *string
		plScore                      *int
		brandID                      *int
		brandCompanyID               *int
		brandName                    *string
		brandCommonName              *string
		brandWebsiteURL              *string
		brandCompanyRowID            *int
		brandCompanyIsFriend         *bool
	)

	if err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Verified,
		&compID,
		&compName,
		&compOfficialName,
		&compCommonName,
		&compBusinessID,
		&compDescription,
		&compOfficialURL,
		&compLogotypeKey,
		&compIsFriend,
		&compDisplayBrands,
		&plCapital,
		&plCapitalNotes,
		&plNotGlobEnt,
		&plNotGlobEntNotes,
		&plRegistered,
		&plRegisteredNotes,
		&plRnD,
		&plRnDNotes,
		&plWorkers,
		&plWorkersNotes,
		&plScore,
		&brandID,
		&brandCompanyID,
		&brandName,
		&brandCommonName,
		&brandWebsiteURL,
		&brandCompanyRowID,
		&brandCompanyIsFriend,
	); err != nil {
		return nil, err
	}

	if compID != nil {
		p.Company = &company.Company{
			ID:                         *compID,
			Name:                       compName,
			OfficialName:               compOfficialName,
			CommonName:                 compCommonName,
			BusinessID:                 compBusinessID,
			Description:                compDescription,
			OfficialURL:                compOfficialURL,
			LogotypeKey:                compLogotypeKey,
			IsFriend:                   compIsFriend != nil && *compIsFriend,
			DisplayBrandsInDescription: compDisplayBrands != nil && *compDisplayBrands,
			PlCapital:                  plCapital,
			PlCapitalNotes:             plCapitalNotes,
			PlNotGlobEnt:               plNotGlobEnt,
			PlNotGlobEntNotes:          plNotGlobEntNotes,
			PlRegistered:               plRegistered,
			PlRegisteredNotes:          plRegisteredNotes,
			PlRnD:                      plRnD,
			PlRnDNotes:                 plRnDNotes,
			PlWorkers:                  plWorkers,
			PlWorkersNotes:             plWorkersNotes,
			PlScore:                    plScore,
		}
	}

	if brandID != nil {
		p.Brand = &company.Brand{
			ID:         *brandID,
			CompanyID:  derefInt(brandCompanyID),
			Name:       brandName,
			CommonName: brandCommonName,
			WebsiteURL: brandWebsiteURL,
		}

		if brandCompanyRowID != nil {
			p.Brand.Company = &company.Company{
				ID:       *brandCompanyRowID,
				IsFriend: brandCompanyIsFriend != nil && *brandCompanyIsFriend,
			}
		}
	}

	return &p, nil
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}

	return *p
}

func (r *repository) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		` + productJoins + `
		WHERE p.code = $1
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	p, err := scanProduct(executor.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return p, nil
}

func (r *repository) getByID(ctx context.Context, id int) (*product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		` + productJoins + `
		WHERE p.id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	p, err := scanProduct(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, data product.Product) (*product.Product, error) {
	query := `
		INSERT INTO products (code, name, company_id, brand_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	var id int
	if err := executor.QueryRow(
		ctx,
		query,
		data.Code,
		data.Name,
		companyID(data.Company),
		brandID(data.Brand),
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.getByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data product.Product) (*product.Product, error) {
	query := `
		UPDATE products
		SET name = $2, company_id = $3, brand_id = $4, verified = $5
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	if _, err := executor.Exec(
		ctx,
		query,
		data.ID,
		data.Name,
		companyID(data.Company),
		brandID(data.Brand),
		data.Verified,
	); err != nil {
		return nil, err
	}

	return r.getByID(ctx, data.ID)
}

// GetReplacements returns replacement products in attachment order.
func (r *repository) GetReplacements(ctx context.Context, productID int) ([]product.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM product_replacements pr
		JOIN products p ON p.id = pr.replacement_id
		` + productJoins + `
		WHERE pr.product_id = $1
		ORDER BY pr.position
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	rows, err := executor.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replacements := make([]product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		replacements = append(replacements, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return replacements, nil
}

func companyID(c *company.Company) *int {
	if c == nil {
		return nil
	}

	return &c.ID
}

func brandID(b *company.Brand) *int {
	if b == nil {
		return nil
	}

	return &b.ID
}
