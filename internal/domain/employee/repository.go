package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	SetActive(ctx context.Context, id string, companyID string, active bool) error
	Delete(ctx context.Context, id string, companyID string) error
}
