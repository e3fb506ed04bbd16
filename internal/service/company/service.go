package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/company"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
	"github.com/karobarhq/payroll-backend-go/internal/fixtures"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
	"github.com/karobarhq/payroll-backend-go/internal/repository/postgresql"
)

type CompanyServiceImpl struct {
	db            *database.DB
	companyRepo   company.CompanyRepository
	leaveTypeRepo leave.LeaveTypeRepository
}

func NewCompanyService(db *database.DB, companyRepo company.CompanyRepository, leaveTypeRepo leave.LeaveTypeRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:            db,
		companyRepo:   companyRepo,
		leaveTypeRepo: leaveTypeRepo,
	}
}

func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// CreateCompany registers the tenant and seeds its statutory leave types in
// one transaction, so a half-seeded company can never exist.
func (s *CompanyServiceImpl) CreateCompany(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	newCompany := company.Company{
		ID:        uuid.NewString(),
		Name:      req.Name,
		PANNumber: req.PANNumber,
		Address:   req.Address,
	}

	var created company.Company
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		var txErr error
		created, txErr = s.companyRepo.Create(ctx, tx, newCompany)
		if txErr != nil {
			return txErr
		}

		for _, lt := range fixtures.DefaultLeaveTypes(created.ID) {
			lt.ID = uuid.NewString()
			if _, txErr = s.leaveTypeRepo.CreateTx(ctx, tx, lt); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	slog.Debug("company registered", "company_id", created.ID, "name", created.Name)

	return mapToCompanyResponse(created), nil
}

func (s *CompanyServiceImpl) GetCompany(ctx context.Context) (company.CompanyResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToCompanyResponse(c), nil
}

func (s *CompanyServiceImpl) UpdateCompany(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.PANNumber != nil {
		c.PANNumber = req.PANNumber
	}
	if req.Address != nil {
		c.Address = req.Address
	}

	if err := s.companyRepo.Update(ctx, c); err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToCompanyResponse(c), nil
}

func mapToCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		PANNumber: c.PANNumber,
		Address:   c.Address,
	}
}
