package service

import (
	"context"
	"testing"

	"github.com/nanokm/pola-backend/internal/company"
	"github.com/nanokm/pola-backend/internal/product"
	"github.com/nanokm/pola-backend/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFindReplacements(t *testing.T) {
	tests := []struct {
		name         string
		replacements []product.Product
		expected     []scanner.Replacement
	}{
		{
			name: "brand name preferred over company",
			replacements: []product.Product{
				{
					Code:    "5900000000011",
					Name:    strPtr("Woda"),
					Company: &company.Company{Name: strPtr("Spółka")},
					Brand:   &company.Brand{Name: strPtr("Marka")},
				},
			},
			expected: []scanner.Replacement{
				{Code: "5900000000011", Name: "Woda", Company: "Marka", DisplayName: "Woda (Marka)"},
			},
		},
		{
			name: "company fallback when brand has no name",
			replacements: []product.Product{
				{
					Code:    "5900000000011",
					Name:    strPtr("Woda"),
					Company: &company.Company{Name: strPtr("Spółka")},
					Brand:   &company.Brand{},
				},
			},
			expected: []scanner.Replacement{
				{Code: "5900000000011", Name: "Woda", Company: "Spółka", DisplayName: "Woda (Spółka)"},
			},
		},
		{
			name: "code fallback when name missing",
			replacements: []product.Product{
				{Code: "5900000000011", Company: &company.Company{Name: strPtr("Spółka")}},
			},
			expected: []scanner.Replacement{
				{Code: "5900000000011", Name: "5900000000011", Company: "Spółka", DisplayName: "5900000000011 (Spółka)"},
			},
		},
		{
			name: "no brand and no company",
			replacements: []product.Product{
				{Code: "5900000000011", Name: strPtr("Woda")},
			},
			expected: []scanner.Replacement{
				{Code: "5900000000011", Name: "Woda", Company: "", DisplayName: "Woda"},
			},
		},
		{
			name: "is_friend from company",
			replacements: []product.Product{
				{
					Code:    "5900000000011",
					Name:    strPtr("Woda"),
					Company: &company.Company{Name: strPtr("Spółka"), IsFriend: true},
				},
			},
			expected: []scanner.Replacement{
				{Code: "5900000000011", Name: "Woda", Company: "Spółka", DisplayName: "Woda (Spółka)", IsFriend: true},
			},
		},
		{
			name: "is_friend from brand company when product has none",
			replacements: []product.Product{
				{
					Code: "5900000000011",
					Name: strPtr("Woda"),
					Brand: &company.Brand{
						Name:    strPtr("Marka"),
						Company: &company.Company{IsFriend: true},
					},
				},
			},
			expected: []scanner.Replacement{
				{Code: "5900000000011", Name: "Woda", Company: "Marka", DisplayName: "Woda (Marka)", IsFriend: true},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, findReplacements(tc.replacements))
		})
	}
}

func TestHandleProductReplacementsNoReplacements(t *testing.T) {
	svc, mocks := newTestService(t)

	prod := &product.Product{ID: 1, Code: testEAN13}
	mocks.products.EXPECT().GetReplacements(gomock.Any(), prod.ID).Return(nil, nil)

	result := scanner.ResultCard{}
	rep := &report{ButtonText: reportButtonText, ButtonType: typeWhite, Text: defaultReportText}

	err := svc.handleProductReplacements(context.Background(), prod, result, rep)

	require.NoError(t, err)
	assert.NotContains(t, result, "replacements")
	assert.Equal(t, defaultReportText, rep.Text)
}

func TestHandleProductReplacementsKeepsEmptyReportText(t *testing.T) {
	svc, mocks := newTestService(t)

	prod := &product.Product{ID: 2, Code: testEAN13}
	mocks.products.EXPECT().GetReplacements(gomock.Any(), prod.ID).Return([]product.Product{
		{Code: "5900000000011", Name: strPtr("Woda")},
	}, nil)

	result := scanner.ResultCard{}
	rep := &report{ButtonText: reportButtonText, ButtonType: typeWhite, Text: ""}

	err := svc.handleProductReplacements(context.Background(), prod, result, rep)

	require.NoError(t, err)
	assert.Contains(t, result, "replacements")
	assert.Equal(t, "", rep.Text)
}

func TestHandleProductReplacementsPrefixesTopThree(t *testing.T) {
	svc, mocks := newTestService(t)

	prod := &product.Product{ID: 3, Code: testEAN13}
	mocks.products.EXPECT().GetReplacements(gomock.Any(), prod.ID).Return([]product.Product{
		{Code: "5900000000011", Name: strPtr("Alt1")},
		{Code: "5900000000028", Name: strPtr("Alt2")},
		{Code: "5900000000035", Name: strPtr("Alt3")},
		{Code: "5900000000042", Name: strPtr("Alt4")},
	}, nil)

	result := scanner.ResultCard{}
	rep := &report{ButtonText: reportButtonText, ButtonType: typeWhite, Text: defaultReportText}

	err := svc.handleProductReplacements(context.Background(), prod, result, rep)

	require.NoError(t, err)

	items, ok := result["replacements"].([]scanner.Replacement)
	require.True(t, ok)
	assert.Len(t, items, 4)

	assert.Equal(t, "Polskie alternatywy: Alt1, Alt2, Alt3\n"+defaultReportText, rep.Text)
}
