package company

import "context"

// CompanyService registers tenants. Creating a company also seeds its
// statutory defaults (leave types) so payroll can run immediately.
type CompanyService interface {
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetCompany(ctx context.Context) (CompanyResponse, error)
	UpdateCompany(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)
}
