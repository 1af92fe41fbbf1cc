package httppresentation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bexiiiii/euroline-sub001/internal/application"
	appcart "github.com/bexiiiii/euroline-sub001/internal/application/cart"
	appfinance "github.com/bexiiiii/euroline-sub001/internal/application/finance"
	appsearch "github.com/bexiiiii/euroline-sub001/internal/application/search"
	"github.com/bexiiiii/euroline-sub001/internal/observability"
)

const (
	componentHTTPHandler = "http_server"
	headerRequestID      = "X-Request-ID"
	headerTenantID       = "X-Tenant-ID"
)

type (
	SearchUseCase      = application.UseCase[appsearch.Input, *appsearch.Result]
	AddToCartUseCase   = application.UseCase[appcart.AddToCartInput, *appcart.AddToCartResult]
	CreditLimitUseCase = application.UseCase[appfinance.UpdateCreditLimitInput, *appfinance.UpdateCreditLimitResult]
)

// Handler serves the storefront gateway API.
type Handler struct {
	search      SearchUseCase
	cart        AddToCartUseCase
	creditLimit CreditLimitUseCase

	log          observability.Logger
	tel          observability.Observability
	reqCounter   observability.Counter   // http_requests_total{method,route,status}
	durHistogram observability.Histogram // http_request_duration_seconds{method,route,status}
}

func NewHandler(
	search SearchUseCase,
	cart AddToCartUseCase,
	creditLimit CreditLimitUseCase,
	tel observability.Observability,
) *Handler {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Handler{
		search:       search,
		cart:         cart,
		creditLimit:  creditLimit,
		log:          tel.Logger().With(observability.F("component", componentHTTPHandler)),
		tel:          tel,
		reqCounter:   tel.Metrics().Counter(observability.MHTTPRequests),
		durHistogram: tel.Metrics().Histogram(observability.MHTTPRequestDuration),
	}
}

// Router wires every route as Trace → request logger → HTTP metrics → access log → handler.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	h.handle(r, http.MethodGet, "/search", h.handleSearch)
	h.handle(r, http.MethodPost, "/selector/transition", h.handleSelectorTransition)
	h.handle(r, http.MethodPost, "/cart/items", h.handleAddToCart)
	h.handle(r, http.MethodPut, "/finance/customers/{id}/credit-limit", h.handleUpdateCreditLimit)
	h.handle(r, http.MethodGet, "/health", h.handleHealth)

	return r
}

func (h *Handler) handle(r chi.Router, method, pattern string, handler http.HandlerFunc) {
	route := method + " " + pattern
	chain := h.withTrace(
		ObservabilityMiddleware(
			h.log,
			func(r *http.Request) string { return r.Header.Get(headerRequestID) },
			func(r *http.Request) string { return r.Header.Get(headerTenantID) },
		)(
			h.withHTTPMetrics(
				h.withAccessLog(handler),
			),
		),
	)

	r.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		chain.ServeHTTP(w, req.WithContext(contextWithRoute(req.Context(), route)))
	}))
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
