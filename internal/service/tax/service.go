package tax

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/karobarhq/payroll-backend-go/internal/fixtures"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/validator"
)

type BracketServiceImpl struct {
	bracketRepo tax.BracketRepository
}

func NewBracketService(bracketRepo tax.BracketRepository) tax.BracketService {
	return &BracketServiceImpl{bracketRepo: bracketRepo}
}

func (s *BracketServiceImpl) CreateBracket(ctx context.Context, req tax.CreateBracketRequest) (tax.BracketResponse, error) {
	if err := req.Validate(); err != nil {
		return tax.BracketResponse{}, err
	}

	bracket := tax.Bracket{
		ID:            uuid.NewString(),
		FiscalYear:    req.FiscalYear,
		MaritalStatus: employee.MaritalStatus(req.MaritalStatus),
		MinAmount:     req.MinAmount,
		MaxAmount:     req.MaxAmount,
		Rate:          req.Rate,
	}

	created, err := s.bracketRepo.Create(ctx, bracket)
	if err != nil {
		return tax.BracketResponse{}, err
	}

	return mapToBracketResponse(created), nil
}

func (s *BracketServiceImpl) ListBrackets(ctx context.Context, fiscalYear string) ([]tax.BracketResponse, error) {
	if !validator.IsValidFiscalYearLabel(fiscalYear) {
		return nil, validator.ValidationErrors{{Field: "fiscal_year", Message: "must look like 2082/83"}}
	}

	brackets, err := s.bracketRepo.ListByFiscalYear(ctx, fiscalYear)
	if err != nil {
		return nil, err
	}

	return mapToBracketResponses(brackets), nil
}

func (s *BracketServiceImpl) DeleteBracket(ctx context.Context, id string) error {
	return s.bracketRepo.Delete(ctx, id)
}

// SeedFiscalYear loads the Finance Act default tables. Idempotent: a year
// that already has any bracket is left untouched.
func (s *BracketServiceImpl) SeedFiscalYear(ctx context.Context, fiscalYear string) ([]tax.BracketResponse, error) {
	if !validator.IsValidFiscalYearLabel(fiscalYear) {
		return nil, validator.ValidationErrors{{Field: "fiscal_year", Message: "must look like 2082/83"}}
	}

	existing, err := s.bracketRepo.ListByFiscalYear(ctx, fiscalYear)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return mapToBracketResponses(existing), nil
	}

	defaults := fixtures.DefaultTaxBrackets(fiscalYear)
	created := make([]tax.Bracket, 0, len(defaults))
	for _, b := range defaults {
		b.ID = uuid.NewString()
		bracket, err := s.bracketRepo.Create(ctx, b)
		if err != nil {
			return nil, err
		}
		created = append(created, bracket)
	}

	slog.Debug("seeded tax brackets", "fiscal_year", fiscalYear, "count", len(created))

	return mapToBracketResponses(created), nil
}

func mapToBracketResponse(b tax.Bracket) tax.BracketResponse {
	return tax.BracketResponse{
		ID:            b.ID,
		FiscalYear:    b.FiscalYear,
		MaritalStatus: string(b.MaritalStatus),
		MinAmount:     b.MinAmount,
		MaxAmount:     b.MaxAmount,
		Rate:          b.Rate,
	}
}

func mapToBracketResponses(brackets []tax.Bracket) []tax.BracketResponse {
	responses := make([]tax.BracketResponse, 0, len(brackets))
	for _, b := range brackets {
		responses = append(responses, mapToBracketResponse(b))
	}
	return responses
}
