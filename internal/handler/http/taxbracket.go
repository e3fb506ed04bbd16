package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/karobarhq/payroll-backend-go/internal/handler/http/response"
)

type TaxBracketHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Seed(w http.ResponseWriter, r *http.Request)
}

type taxBracketHandlerImpl struct {
	bracketService tax.BracketService
}

func NewTaxBracketHandler(bracketService tax.BracketService) TaxBracketHandler {
	return &taxBracketHandlerImpl{bracketService: bracketService}
}

func (h *taxBracketHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req tax.CreateBracketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.bracketService.CreateBracket(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tax bracket created", result)
}

func (h *taxBracketHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	fiscalYear := r.URL.Query().Get("fiscal_year")
	if fiscalYear == "" {
		response.BadRequest(w, "fiscal_year is required", nil)
		return
	}

	result, err := h.bracketService.ListBrackets(r.Context(), fiscalYear)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxBracketHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bracket ID is required", nil)
		return
	}

	if err := h.bracketService.DeleteBracket(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax bracket deleted successfully", nil)
}

func (h *taxBracketHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FiscalYear string `json:"fiscal_year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.bracketService.SeedFiscalYear(r.Context(), req.FiscalYear)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default tax brackets seeded", result)
}
