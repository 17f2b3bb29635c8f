package tests

import (
	"fmt"
	"net/http"
)

const testCode = "5901234123457"

func (s *APITestSuite) getByCode(code string) (*map[string]any, int) {
	response, err := http.Get(fmt.Sprintf("%s/get_by_code?code=%s", s.baseUrl, code))
	s.Require().NoError(err)

	card, err := decodeResponseBody[map[string]any](response)
	s.Require().NoError(err)

	return card, response.StatusCode
}

func (s *APITestSuite) TestScanInvalidCode() {
	card, status := s.getByCode("ABC")

	s.Equal(http.StatusOK, status)
	s.Equal("Nieprawidłowy kod", (*card)["name"])
	s.Equal("type_white", (*card)["card_type"])
	s.Nil((*card)["product_id"])
}

func (s *APITestSuite) TestScanMissingCode() {
	response, err := http.Get(fmt.Sprintf("%s/get_by_code", s.baseUrl))
	s.Require().NoError(err)

	body, err := decodeResponseBody[map[string]any](response)
	s.Require().NoError(err)

	s.Equal(http.StatusBadRequest, response.StatusCode)
	s.Equal("field Code is a required field", (*body)["message"])
}

func (s *APITestSuite) TestScanKnownProduct() {
	companyID := s.createCompany("Testowa Spółka S.A.", "Polski producent.")
	productID := s.createProduct(testCode, "Woda mineralna", &companyID)

	card, status := s.getByCode(testCode)

	s.Equal(http.StatusOK, status)
	s.Equal("Testowa Spółka S.A.", (*card)["name"])
	s.Equal("type_grey", (*card)["card_type"])
	s.Equal("Polski producent.", (*card)["description"])
	s.Equal(false, (*card)["is_friend"])
	s.EqualValues(productID, (*card)["product_id"])
}

func (s *APITestSuite) TestScanReplacements() {
	companyID := s.createCompany("Zagraniczna Sp. z o.o.", "Zagraniczny producent.")
	foreignCode := "4001234567890"
	productID := s.createProduct(foreignCode, "Import", &companyID)

	altCompanyID := s.createCompany("Polska Alternatywa", "Polski producent.")
	altID := s.createProduct(testCode, "Krajowy produkt", &altCompanyID)

	s.addReplacement(productID, altID, 1)

	card, status := s.getByCode(foreignCode)

	s.Equal(http.StatusOK, status)

	replacements, ok := (*card)["replacements"].([]any)
	s.Require().True(ok)
	s.Require().Len(replacements, 1)

	replacement, ok := replacements[0].(map[string]any)
	s.Require().True(ok)
	s.Equal(testCode, replacement["code"])
	s.Equal("Krajowy produkt", replacement["name"])
	s.Equal("Polska Alternatywa", replacement["company"])
	s.Equal("Krajowy produkt (Polska Alternatywa)", replacement["display_name"])

	s.Equal(
		"Polskie alternatywy: Krajowy produkt (Polska Alternatywa)\n"+
			"Zgłoś jeśli posiadasz bardziej aktualne dane na temat tego produktu",
		(*card)["report_text"],
	)
}
