package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

type taxBracketRepository struct {
	db *database.DB
}

func NewTaxBracketRepository(db *database.DB) tax.BracketRepository {
	return &taxBracketRepository{db: db}
}

func (r *taxBracketRepository) Create(ctx context.Context, bracket tax.Bracket) (tax.Bracket, error) {
	query := `
		INSERT INTO tax_brackets (id, fiscal_year, marital_status, min_amount, max_amount, rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fiscal_year, marital_status, min_amount, max_amount, rate, created_at, updated_at
	`

	var b tax.Bracket
	err := r.db.QueryRow(ctx, query,
		bracket.ID, bracket.FiscalYear, bracket.MaritalStatus, bracket.MinAmount, bracket.MaxAmount, bracket.Rate,
	).Scan(
		&b.ID, &b.FiscalYear, &b.MaritalStatus, &b.MinAmount, &b.MaxAmount, &b.Rate, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "excl_tax_bracket_range") {
			return tax.Bracket{}, tax.ErrOverlappingBracket
		}
		return tax.Bracket{}, fmt.Errorf("failed to create tax bracket: %w", err)
	}

	return b, nil
}

func (r *taxBracketRepository) GetByFiscalYear(ctx context.Context, fiscalYear string, status employee.MaritalStatus) ([]tax.Bracket, error) {
	query := `
		SELECT id, fiscal_year, marital_status, min_amount, max_amount, rate, created_at, updated_at
		FROM tax_brackets
		WHERE fiscal_year = $1 AND marital_status = $2
		ORDER BY min_amount ASC
	`

	rows, err := r.db.Query(ctx, query, fiscalYear, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get tax brackets: %w", err)
	}
	defer rows.Close()

	return scanBrackets(rows)
}

func (r *taxBracketRepository) ListByFiscalYear(ctx context.Context, fiscalYear string) ([]tax.Bracket, error) {
	query := `
		SELECT id, fiscal_year, marital_status, min_amount, max_amount, rate, created_at, updated_at
		FROM tax_brackets
		WHERE fiscal_year = $1
		ORDER BY marital_status, min_amount ASC
	`

	rows, err := r.db.Query(ctx, query, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax brackets: %w", err)
	}
	defer rows.Close()

	return scanBrackets(rows)
}

func (r *taxBracketRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tax_brackets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tax bracket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tax.ErrBracketNotFound
	}

	return nil
}

func scanBrackets(rows pgx.Rows) ([]tax.Bracket, error) {
	var brackets []tax.Bracket
	for rows.Next() {
		var b tax.Bracket
		if err := rows.Scan(
			&b.ID, &b.FiscalYear, &b.MaritalStatus, &b.MinAmount, &b.MaxAmount, &b.Rate, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tax bracket: %w", err)
		}
		brackets = append(brackets, b)
	}

	return brackets, rows.Err()
}
