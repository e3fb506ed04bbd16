package tax

import "context"

// BracketService administers the progressive tax tables. Brackets are
// jurisdiction-wide reference data, not company-scoped.
type BracketService interface {
	CreateBracket(ctx context.Context, req CreateBracketRequest) (BracketResponse, error)
	ListBrackets(ctx context.Context, fiscalYear string) ([]BracketResponse, error)
	DeleteBracket(ctx context.Context, id string) error
	// SeedFiscalYear loads the statutory default tables for a fiscal year.
	// No-op when the year already has brackets.
	SeedFiscalYear(ctx context.Context, fiscalYear string) ([]BracketResponse, error)
}
