package finance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domfinance "github.com/bexiiiii/euroline-sub001/internal/domain/finance"
	"github.com/bexiiiii/euroline-sub001/internal/observability"
	"github.com/bexiiiii/euroline-sub001/internal/observability/logctx"
)

const (
	financeService         = "finance-service"
	useCaseUpdateCreditLim = "finance.update_credit_limit"
	spanPrefix             = "UC."
)

var ErrUpstream = errors.New("finance: upstream failure")

type UpdateCreditLimitInput struct {
	CustomerID  string
	CreditLimit decimal.Decimal
}

type UpdateCreditLimitResult struct {
	Snapshot domfinance.Snapshot
}

// UpdateCreditLimitUseCase validates a new limit against used credit before
// handing it to the finance collaborator.
type UpdateCreditLimitUseCase struct {
	port FinancePort
	tel  observability.Observability

	log          observability.Logger
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

func NewUpdateCreditLimitUseCase(port FinancePort, tel observability.Observability) *UpdateCreditLimitUseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	return &UpdateCreditLimitUseCase{
		port:         port,
		tel:          tel,
		log:          tel.Logger().With(observability.F("service", financeService)),
		reqCounter:   tel.Metrics().Counter(observability.MUsecaseRequests),
		durHistogram: tel.Metrics().Histogram(observability.MUsecaseDuration),
	}
}

func (uc *UpdateCreditLimitUseCase) Execute(ctx context.Context, in UpdateCreditLimitInput) (_ *UpdateCreditLimitResult, err error) {
	customerID := strings.TrimSpace(in.CustomerID)
	logger := logctx.FromOr(ctx, uc.log).With(
		observability.F("use_case", useCaseUpdateCreditLim),
		observability.F("customer_id", customerID),
	)

	ctx, span := uc.tel.Tracer().Start(ctx, spanPrefix+"UpdateCreditLimit",
		attribute.String("use_case", useCaseUpdateCreditLim),
		attribute.String("finance.customer_id", customerID),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"

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
			observability.L("use_case", useCaseUpdateCreditLim),
			observability.L("outcome", outcome),
		)
		uc.durHistogram.Observe(lat, observability.L("use_case", useCaseUpdateCreditLim))

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
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

	if verr := domfinance.ValidateCustomerID(customerID); verr != nil {
		outcome, statusText = "error", "CUSTOMER_ID_REQUIRED"
		return nil, verr
	}
	if in.CreditLimit.IsNegative() {
		outcome, statusText = "error", "LIMIT_NEGATIVE"
		return nil, domfinance.ErrNegativeLimit
	}

	snap, gerr := uc.port.Finance(ctx, customerID)
	if gerr != nil {
		outcome, statusText = "error", "SNAPSHOT_LOAD_FAILED"
		return nil, fmt.Errorf("%w: load: %w", ErrUpstream, gerr)
	}

	if verr := domfinance.ValidateCreditLimit(in.CreditLimit, snap.UsedCredit); verr != nil {
		outcome, statusText = "error", "LIMIT_BELOW_USED"
		return nil, verr
	}

	if uerr := uc.port.UpdateCreditLimit(ctx, customerID, in.CreditLimit); uerr != nil {
		outcome, statusText = "error", "UPDATE_FAILED"
		return nil, fmt.Errorf("%w: update: %w", ErrUpstream, uerr)
	}

	snap.CreditLimit = in.CreditLimit
	span.AddEvent("finance.credit_limit_updated",
		trace.WithAttributes(attribute.String("finance.credit_limit", in.CreditLimit.String())),
	)
	return &UpdateCreditLimitResult{Snapshot: snap}, nil
}
