package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nanokm/pola-backend/internal/company"
	companydb "github.com/nanokm/pola-backend/internal/company/db"
	"github.com/nanokm/pola-backend/internal/product"
	productdb "github.com/nanokm/pola-backend/internal/product/db"
	"github.com/nanokm/pola-backend/internal/provider/krs"
	"github.com/nanokm/pola-backend/internal/provider/produkty"
	"github.com/nanokm/pola-backend/internal/scanner"
	"github.com/nanokm/pola-backend/pkg/transactor"
	"go.uber.org/zap"
)

// Number of replacement names listed in the report text prefix.
const replacementsInPrefix = 3

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockscannerservice

type ProductRepository interface {
	GetByCode(ctx context.Context, code string) (*product.Product, error)
	Create(ctx context.Context, data product.Product) (*product.Product, error)
	Update(ctx context.Context, data product.Product) (*product.Product, error)
	GetReplacements(ctx context.Context, productID int) ([]product.Product, error)
}

type CompanyRepository interface {
	GetByBusinessID(ctx context.Context, businessID string) (*company.Company, error)
	Create(ctx context.Context, data company.Company) (*company.Company, error)
	GetBrands(ctx context.Context, companyID int) ([]company.Brand, error)
}

type ProductProvider interface {
	FetchProduct(ctx context.Context, code string) (*produkty.ProductData, error)
}

type CompanyRegistry interface {
	FetchCompany(ctx context.Context, businessID string) (*krs.CompanyData, error)
}

type AssetStorage interface {
	PublicURL(key string) string
}

// Service resolves a scanned barcode into a result card, analytics flags and
// the product on file (possibly nil).
type Service interface {
	ResolveCode(ctx context.Context, code string) (scanner.ResultCard, scanner.AnalyticsFlags, *product.Product, error)
}

type service struct {
	products  ProductRepository
	companies CompanyRepository
	provider  ProductProvider
	registry  CompanyRegistry
	assets    AssetStorage
	txManager transactor.Manager
	logger    *zap.Logger
}

func New(
	products ProductRepository,
	companies CompanyRepository,
	provider ProductProvider,
	registry CompanyRegistry,
	assets AssetStorage,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		products:  products,
		companies: companies,
		provider:  provider,
		registry:  registry,
		assets:    assets,
		txManager: txManager,
		logger:    logger,
	}
}

func (s *service) ResolveCode(ctx context.Context, code string) (scanner.ResultCard, scanner.AnalyticsFlags, *product.Product, error) {
	classification := scanner.Classify(code)

	result := newBaseCard(code)
	rep := &report{
		ButtonText: reportButtonText,
		ButtonType: typeWhite,
		Text:       defaultReportText,
	}

	var prod *product.Product

	// Invalid codes never reach the store; every other kind may still have a
	// product on file.
	if classification.Kind != scanner.KindInvalid {
		resolved, err := s.getByCode(ctx, code)
		if err != nil {
			return nil, scanner.AnalyticsFlags{}, nil, err
		}

		prod = resolved
	}

	var comp *company.Company
	if prod != nil {
		comp = prod.Company
	}

	switch classification.Kind {
	case scanner.KindInvalid, scanner.KindBook, scanner.KindInternal:
		applyTemplate(result, rep, cardTemplates[classification.Kind])
	case scanner.KindSanctionedCountry, scanner.KindFlaggedCountry:
		tpl := cardTemplates[classification.Kind].render(classification.Country)

		if comp == nil {
			applyTemplate(result, rep, tpl)
			break
		}

		// A known producer wins over the static country card; the warning is
		// carried over into the description instead.
		if err := s.buildCompanyCard(ctx, result, comp); err != nil {
			return nil, scanner.AnalyticsFlags{}, nil, err
		}

		appendToDescription(result, tpl.AltText)
	case scanner.KindProduct:
		switch {
		case comp != nil:
			if err := s.buildCompanyCard(ctx, result, comp); err != nil {
				return nil, scanner.AnalyticsFlags{}, nil, err
			}
		case scanner.IsPolish(code):
			applyTemplate(result, rep, notInDatabaseTemplate)
		default:
			applyTemplate(result, rep, unknownProducerTemplate)
		}
	}

	if prod != nil {
		result["product_id"] = prod.ID

		if err := s.handleProductReplacements(ctx, prod, result, rep); err != nil {
			return nil, scanner.AnalyticsFlags{}, nil, err
		}
	}

	mergeReport(result, rep)

	flags := scanner.AnalyticsFlags{
		Was590:      scanner.IsPolish(code),
		WasPlScore:  comp != nil && comp.PlScore != nil,
		WasVerified: prod != nil && prod.Verified,
	}

	return result, flags, prod, nil
}

// getByCode returns the product on file for a code, refreshing it from the
// external product-data provider when the company is still unknown. Provider
// failures are recovered locally; only storage failures propagate.
func (s *service) getByCode(ctx context.Context, code string) (*product.Product, error) {
	existing, err := s.products.GetByCode(ctx, code)
	if err != nil && !errors.Is(err, productdb.ErrProductNotFound) {
		s.logger.Error("unexpected error when fetching product by code", zap.Error(err))

		return nil, err
	}

	// A complete product never re-triggers external calls.
	if existing != nil && existing.Company != nil {
		return existing, nil
	}

	data, err := s.provider.FetchProduct(ctx, code)
	if err != nil {
		if !errors.Is(err, produkty.ErrProductNotFound) {
			s.logger.Warn(
				"product data provider lookup failed",
				zap.String("code", code),
				zap.Error(err),
			)

			return existing, nil
		}

		if existing != nil {
			return existing, nil
		}

		// The provider has never heard of this code; keep a bare product on
		// file so future reports can reference it.
		created, err := s.products.Create(ctx, product.Product{Code: code})
		if err != nil {
			s.logger.Error("unexpected error when creating product", zap.Error(err))

			return nil, err
		}

		return created, nil
	}

	comp, registryData, err := s.lookupCompany(ctx, data.BusinessID)
	if err != nil {
		return nil, err
	}

	var resolved *product.Product

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if comp == nil && registryData != nil {
			created, err := s.companies.Create(ctx, company.Company{
				Name:         registryData.Name,
				OfficialName: registryData.OfficialName,
				BusinessID:   &registryData.BusinessID,
			})
			if err != nil {
				return err
			}

			comp = created
		}

		if existing == nil {
			created, err := s.products.Create(ctx, product.Product{
				Code:    code,
				Name:    data.Name,
				Company: comp,
			})
			if err != nil {
				return err
			}

			resolved = created

			return nil
		}

		updated := *existing
		if updated.Name == nil || *updated.Name == "" {
			updated.Name = data.Name
		}
		updated.Company = comp

		saved, err := s.products.Update(ctx, updated)
		if err != nil {
			return err
		}

		resolved = saved

		return nil
	})
	if err != nil {
		s.logger.Error("unexpected error when saving product", zap.Error(err))

		return nil, err
	}

	return resolved, nil
}

// lookupCompany finds the company for a business id in the store, falling
// back to the company registry. Registry failures degrade to an unknown
// company.
func (s *service) lookupCompany(ctx context.Context, businessID *string) (*company.Company, *krs.CompanyData, error) {
	if businessID == nil {
		return nil, nil, nil
	}

	existing, err := s.companies.GetByBusinessID(ctx, *businessID)
	if err == nil {
		return existing, nil, nil
	}

	if !errors.Is(err, companydb.ErrCompanyNotFound) {
		s.logger.Error("unexpected error when fetching company by business id", zap.Error(err))

		return nil, nil, err
	}

	data, err := s.registry.FetchCompany(ctx, *businessID)
	if err != nil {
		if !errors.Is(err, krs.ErrCompanyNotFound) {
			s.logger.Warn(
				"company registry lookup failed",
				zap.String("business_id", *businessID),
				zap.Error(err),
			)
		}

		return nil, nil, nil
	}

	return nil, data, nil
}

func (s *service) buildCompanyCard(ctx context.Context, result scanner.ResultCard, comp *company.Company) error {
	result["card_type"] = typeGrey
	result["name"] = comp.DisplayName()
	result["is_friend"] = comp.IsFriend
	result["sources"] = map[string]string{}

	result["plCapital"] = intValue(comp.PlCapital)
	result["plCapital_notes"] = strValue(comp.PlCapitalNotes)
	result["plNotGlobEnt"] = intValue(comp.PlNotGlobEnt)
	result["plNotGlobEnt_notes"] = strValue(comp.PlNotGlobEntNotes)
	result["plRegistered"] = intValue(comp.PlRegistered)
	result["plRegistered_notes"] = strValue(comp.PlRegisteredNotes)
	result["plRnD"] = intValue(comp.PlRnD)
	result["plRnD_notes"] = strValue(comp.PlRnDNotes)
	result["plWorkers"] = intValue(comp.PlWorkers)
	result["plWorkers_notes"] = strValue(comp.PlWorkersNotes)
	result["plScore"] = intValue(comp.PlScore)

	result["official_url"] = strValue(comp.OfficialURL)
	if comp.LogotypeKey != nil && *comp.LogotypeKey != "" {
		result["logotype_url"] = s.assets.PublicURL(*comp.LogotypeKey)
	}

	description := ""
	if comp.Description != nil {
		description = *comp.Description
	}

	if comp.DisplayBrandsInDescription {
		brands, err := s.companies.GetBrands(ctx, comp.ID)
		if err != nil {
			s.logger.Error("unexpected error when fetching company brands", zap.Error(err))

			return err
		}

		names := make([]string, 0, len(brands))
		for i := range brands {
			if name := brands[i].DisplayName(); name != "" {
				names = append(names, name)
			}
		}

		if len(names) > 0 {
			suffix := "Ten producent posiada marki: " + strings.Join(names, ", ") + "."
			if description != "" {
				description += "\n" + suffix
			} else {
				description = suffix
			}
		}
	}

	result["description"] = description

	return nil
}

// handleProductReplacements attaches replacement summaries to the result and
// prepends the alternatives line to a non-empty report text. An empty report
// text is deliberately left empty.
func (s *service) handleProductReplacements(ctx context.Context, prod *product.Product, result scanner.ResultCard, rep *report) error {
	replacements, err := s.products.GetReplacements(ctx, prod.ID)
	if err != nil {
		s.logger.Error("unexpected error when fetching product replacements", zap.Error(err))

		return err
	}

	if len(replacements) == 0 {
		return nil
	}

	items := findReplacements(replacements)
	result["replacements"] = items

	if rep.Text == "" {
		return nil
	}

	top := items
	if len(top) > replacementsInPrefix {
		top = top[:replacementsInPrefix]
	}

	names := make([]string, len(top))
	for i, item := range top {
		names[i] = item.DisplayName
	}

	rep.Text = "Polskie alternatywy: " + strings.Join(names, ", ") + "\n" + rep.Text

	return nil
}

// findReplacements builds display-ready summaries preserving the attachment
// order of the replacement set.
func findReplacements(replacements []product.Product) []scanner.Replacement {
	items := make([]scanner.Replacement, 0, len(replacements))

	for i := range replacements {
		repl := &replacements[i]

		name := repl.DisplayName()
		label := replacementLabel(repl)

		displayName := name
		if label != "" {
			displayName = fmt.Sprintf("%s (%s)", name, label)
		}

		items = append(items, scanner.Replacement{
			Code:        repl.Code,
			Name:        name,
			Company:     label,
			DisplayName: displayName,
			IsFriend:    replacementIsFriend(repl),
		})
	}

	return items
}

func replacementLabel(repl *product.Product) string {
	if repl.Brand != nil {
		if name := repl.Brand.DisplayName(); name != "" {
			return name
		}
	}

	if repl.Company != nil {
		return repl.Company.DisplayName()
	}

	return ""
}

func replacementIsFriend(repl *product.Product) bool {
	if repl.Company != nil {
		return repl.Company.IsFriend
	}

	if repl.Brand != nil && repl.Brand.Company != nil {
		return repl.Brand.Company.IsFriend
	}

	return false
}

func appendToDescription(result scanner.ResultCard, text string) {
	if existing, ok := result["description"].(string); ok && existing != "" {
		result["description"] = existing + "\n" + text

		return
	}

	result["description"] = text
}

func intValue(p *int) any {
	if p == nil {
		return nil
	}

	return *p
}

func strValue(p *string) any {
	if p == nil {
		return nil
	}

	return *p
}
