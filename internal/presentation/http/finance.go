package httppresentation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	appfinance "github.com/bexiiiii/euroline-sub001/internal/application/finance"
	domfinance "github.com/bexiiiii/euroline-sub001/internal/domain/finance"
)

type updateCreditLimitRequest struct {
	CreditLimit *decimal.Decimal `json:"creditLimit" validate:"required"`
}

type updateCreditLimitResponse struct {
	domfinance.Snapshot
	Remaining decimal.Decimal `json:"remaining"`
}

func (h *Handler) handleUpdateCreditLimit(w http.ResponseWriter, r *http.Request) {
	var req updateCreditLimitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	res, err := h.creditLimit.Execute(r.Context(), appfinance.UpdateCreditLimitInput{
		CustomerID:  chi.URLParam(r, "id"),
		CreditLimit: *req.CreditLimit,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updateCreditLimitResponse{
		Snapshot:  res.Snapshot,
		Remaining: res.Snapshot.Remaining(),
	})
}
