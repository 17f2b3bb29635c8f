package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

func decodeResponseBody[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return &result, nil
}

func (s *APITestSuite) createCompany(name string, description string) int {
	var id int

	err := s.dbClient.QueryRow(
		context.Background(),
		`INSERT INTO companies (official_name, business_id, description)
		VALUES ($1, $2, $3)
		RETURNING id`,
		name,
		uuid.NewString(),
		description,
	).Scan(&id)
	s.Require().NoError(err)

	return id
}

func (s *APITestSuite) createProduct(code string, name string, companyID *int) int {
	var id int

	err := s.dbClient.QueryRow(
		context.Background(),
		`INSERT INTO products (code, name, company_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		code,
		name,
		companyID,
	).Scan(&id)
	s.Require().NoError(err)

	return id
}

func (s *APITestSuite) addReplacement(productID, replacementID, position int) {
	_, err := s.dbClient.Exec(
		context.Background(),
		`INSERT INTO product_replacements (product_id, replacement_id, position)
		VALUES ($1, $2, $3)`,
		productID,
		replacementID,
		position,
	)
	s.Require().NoError(err)
}
