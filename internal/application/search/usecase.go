package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
	"github.com/bexiiiii/euroline-sub001/internal/observability"
	"github.com/bexiiiii/euroline-sub001/internal/observability/logctx"
)

const (
	searchService = "search-service"
	useCaseSearch = "catalog.search"
	spanPrefix    = "UC."
)

var (
	ErrQueryRequired = errors.New("search: query is required")
	ErrUpstream      = errors.New("search: catalog unavailable")
)

type Input struct {
	Query       string
	Page        int
	PageSize    int
	AnalogBrand string
	Layout      catalog.Layout
}

type Result struct {
	Primary  []Row `json:"primary"`
	Analogs  []Row `json:"analogs"`
	Total    int   `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// SearchUseCase queries the catalog and shapes the hits into display rows.
type SearchUseCase struct {
	port        SearchPort
	imageOrigin string
	tel         observability.Observability

	log          observability.Logger
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

func NewSearchUseCase(port SearchPort, imageOrigin string, tel observability.Observability) *SearchUseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	return &SearchUseCase{
		port:         port,
		imageOrigin:  strings.TrimRight(imageOrigin, "/"),
		tel:          tel,
		log:          tel.Logger().With(observability.F("service", searchService)),
		reqCounter:   tel.Metrics().Counter(observability.MUsecaseRequests),
		durHistogram: tel.Metrics().Histogram(observability.MUsecaseDuration),
	}
}

func (uc *SearchUseCase) Execute(ctx context.Context, in Input) (_ *Result, err error) {
	query := strings.TrimSpace(in.Query)
	logger := logctx.FromOr(ctx, uc.log).With(
		observability.F("use_case", useCaseSearch),
		observability.F("query", query),
	)

	ctx, span := uc.tel.Tracer().Start(ctx, spanPrefix+"Search",
		attribute.String("use_case", useCaseSearch),
		attribute.String("search.query", query),
		attribute.String("search.layout", string(in.Layout)),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"
	var res *Result

	defer func() {
		lat := time.Since(start).Seconds()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		uc.reqCounter.Add(1,
			observability.L("use_case", useCaseSearch),
			observability.L("outcome", outcome),
		)
		uc.durHistogram.Observe(lat, observability.L("use_case", useCaseSearch))

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
		}
		if res != nil {
			fields = append(fields,
				observability.F("primary", len(res.Primary)),
				observability.F("analogs", len(res.Analogs)),
			)
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	if query == "" {
		outcome, statusText = "error", "QUERY_REQUIRED"
		return nil, ErrQueryRequired
	}

	set, serr := uc.port.Search(ctx, query, in.Page, in.PageSize)
	if serr != nil {
		outcome, statusText = "error", "UPSTREAM_FAILED"
		if errors.Is(serr, context.Canceled) {
			statusText = "CONTEXT_CANCELED"
			return nil, serr
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, serr)
	}

	primary, analogs := catalog.Split(set.Items)
	analogs = catalog.FilterAnalogsByBrand(analogs, in.AnalogBrand)

	res = &Result{
		Primary:  uc.rows(primary, in.Layout),
		Analogs:  uc.rows(analogs, in.Layout),
		Total:    set.Page.Total,
		Page:     set.Page.Page,
		PageSize: set.Page.PageSize,
	}
	span.SetAttributes(
		attribute.Int("search.primary", len(res.Primary)),
		attribute.Int("search.analogs", len(res.Analogs)),
	)
	return res, nil
}

func (uc *SearchUseCase) rows(items []catalog.Item, layout catalog.Layout) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, newRow(it, layout, uc.imageOrigin))
	}
	return rows
}
