package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nanokm/pola-backend/internal/company"
	"github.com/nanokm/pola-backend/internal/logging"
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

const companyColumns = `
	id,
	name,
	official_name,
	common_name,
	business_id,
	description,
	official_url,
	logotype_key,
	is_friend,
	display_brands_in_description,
	pl_capital,
	pl_capital_notes,
	pl_not_glob_ent,
	pl_not_glob_ent_notes,
	pl_registered,
	pl_registered_notes,
	pl_rnd,
	pl_rnd_notes,
	pl_workers,
	pl_workers_notes,
	pl_score
`

func scanCompany(row pgx.Row) (*company.Company, error) {
	var c company.Company

	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.OfficialName,
		&c.CommonName,
		&c.BusinessID,
		&c.Description,
		&c.OfficialURL,
		&c.LogotypeKey,
		&c.IsFriend,
		&c.DisplayBrandsInDescription,
		&c.PlCapital,
		&c.PlCapitalNotes,
		&c.PlNotGlobEnt,
		&c.PlNotGlobEntNotes,
		&c.PlRegistered,
		&c.PlRegisteredNotes,
		&c.PlRnD,
		&c.PlRnDNotes,
		&c.PlWorkers,
		&c.PlWorkersNotes,
		&c.PlScore,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) GetByBusinessID(ctx context.Context, businessID string) (*company.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE business_id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	c, err := scanCompany(executor.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}

		return nil, err
	}

	return c, nil
}

func (r *repository) Create(ctx context.Context, data company.Company) (*company.Company, error) {
	query := `
		INSERT INTO companies (name, official_name, common_name, business_id, description, official_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + companyColumns + `
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	return scanCompany(executor.QueryRow(
		ctx,
		query,
		data.Name,
		data.OfficialName,
		data.CommonName,
		data.BusinessID,
		data.Description,
		data.OfficialURL,
	))
}

// GetBrands returns a company's brands in attachment order.
func (r *repository) GetBrands(ctx context.Context, companyID int) ([]company.Brand, error) {
	query := `
		SELECT id, company_id, name, common_name, website_url
		FROM brands
		WHERE company_id = $1
		ORDER BY id
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	rows, err := executor.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]company.Brand, 0)

	for rows.Next() {
		var b company.Brand
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.CommonName, &b.WebsiteURL); err != nil {
			return nil, err
		}

		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return brands, nil
}
