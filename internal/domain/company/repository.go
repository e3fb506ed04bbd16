package company

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type CompanyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, company Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, company Company) error
}
