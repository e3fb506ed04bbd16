package company

import "github.com/karobarhq/payroll-backend-go/internal/pkg/validator"

type CreateCompanyRequest struct {
	Name      string  `json:"name"`
	PANNumber *string `json:"pan_number,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	PANNumber *string `json:"pan_number,omitempty"`
	Address   *string `json:"address,omitempty"`
}

type CompanyResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	PANNumber *string `json:"pan_number,omitempty"`
	Address   *string `json:"address,omitempty"`
}
