package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/company"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, tx pgx.Tx, c company.Company) (company.Company, error) {
	query := `
		INSERT INTO companies (id, name, pan_number, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, pan_number, address, created_at, updated_at
	`

	var created company.Company
	err := tx.QueryRow(ctx, query, c.ID, c.Name, c.PANNumber, c.Address).Scan(
		&created.ID, &created.Name, &created.PANNumber, &created.Address,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_company_name") {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return created, nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	query := `
		SELECT id, name, pan_number, address, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.PANNumber, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

func (r *companyRepository) Update(ctx context.Context, c company.Company) error {
	query := `
		UPDATE companies
		SET name = $2, pan_number = $3, address = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, c.ID, c.Name, c.PANNumber, c.Address)
	if err != nil {
		if strings.Contains(err.Error(), "uk_company_name") {
			return company.ErrCompanyNameExists
		}
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}
