package httppresentation

import (
	"net/http"
	"strconv"

	appsearch "github.com/bexiiiii/euroline-sub001/internal/application/search"
	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
)

type searchQuery struct {
	Query       string `json:"q" validate:"required,max=200"`
	Page        int    `json:"page" validate:"gte=0"`
	PageSize    int    `json:"pageSize" validate:"gte=0,lte=200"`
	AnalogBrand string `json:"analogBrand" validate:"max=100"`
	Layout      string `json:"layout" validate:"omitempty,oneof=desktop mobile"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := searchQuery{
		Query:       q.Get("q"),
		AnalogBrand: q.Get("analogBrand"),
		Layout:      q.Get("layout"),
	}
	var err error
	if req.Page, err = intParam(q.Get("page")); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.PageSize, err = intParam(q.Get("pageSize")); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateStruct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	res, err := h.search.Execute(r.Context(), appsearch.Input{
		Query:       req.Query,
		Page:        req.Page,
		PageSize:    req.PageSize,
		AnalogBrand: req.AnalogBrand,
		Layout:      catalog.ParseLayout(req.Layout),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
