package httppresentation

import (
	"net/http"

	"github.com/bexiiiii/euroline-sub001/internal/domain/selector"
)

type selectorTransitionRequest struct {
	Max      int    `json:"max" validate:"gte=0"`
	Quantity int    `json:"quantity"`
	Action   string `json:"action" validate:"required,oneof=increment decrement enter set rebase"`
	Input    string `json:"input" validate:"max=32"`
	Value    int    `json:"value"`
	NewMax   int    `json:"newMax" validate:"gte=0"`
}

type selectorTransitionResponse struct {
	selector.State
	Disabled bool `json:"disabled"`
}

// handleSelectorTransition applies one selector action to a client-held state.
func (h *Handler) handleSelectorTransition(w http.ResponseWriter, r *http.Request) {
	var req selectorTransitionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	state := selector.New(req.Max).Set(req.Quantity)
	switch req.Action {
	case "increment":
		state = state.Increment()
	case "decrement":
		state = state.Decrement()
	case "enter":
		state = state.Enter(req.Input)
	case "set":
		state = state.Set(req.Value)
	case "rebase":
		state = state.Rebase(req.NewMax)
	}

	writeJSON(w, http.StatusOK, selectorTransitionResponse{State: state, Disabled: state.Disabled()})
}
