package cart

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

	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
	domoutbox "github.com/bexiiiii/euroline-sub001/internal/domain/outbox"
	"github.com/bexiiiii/euroline-sub001/internal/domain/selector"
	"github.com/bexiiiii/euroline-sub001/internal/observability"
	"github.com/bexiiiii/euroline-sub001/internal/observability/logctx"
)

const (
	cartService     = "cart-service"
	useCaseCartAdd  = "cart.add"
	spanPrefix      = "UC."
	publishPeer     = "outbox"
	publishTimeout  = 300 * time.Millisecond
	releaseTimeout  = 2 * time.Second
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// AddToCartUseCase admits one add-to-cart click: stock gate, quantity clamp,
// one-in-flight guard, collaborator call, notice.
type AddToCartUseCase struct {
	cart        CartPort
	guard       domcart.Guard
	publisher   domoutbox.Publisher
	idGenerator IDGenerator
	tel         observability.Observability

	log          observability.Logger
	reqCounter   observability.Counter   // usecase_requests_total{use_case,outcome}
	durHistogram observability.Histogram // usecase_duration_seconds{use_case}
	extCounter   observability.Counter   // external_requests_total{peer,endpoint,outcome}
	extHistogram observability.Histogram // external_request_duration_seconds{peer,endpoint}
}

func NewAddToCartUseCase(
	cartPort CartPort,
	guard domcart.Guard,
	publisher domoutbox.Publisher,
	idGen IDGenerator,
	tel observability.Observability,
) *AddToCartUseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	metrics := tel.Metrics()

	return &AddToCartUseCase{
		cart:         cartPort,
		guard:        guard,
		publisher:    publisher,
		idGenerator:  idGen,
		tel:          tel,
		log:          tel.Logger().With(observability.F("service", cartService)),
		reqCounter:   metrics.Counter(observability.MUsecaseRequests),
		durHistogram: metrics.Histogram(observability.MUsecaseDuration),
		extCounter:   metrics.Counter(observability.MExternalRequests),
		extHistogram: metrics.Histogram(observability.MExternalRequestDuration),
	}
}

type AddToCartInput struct {
	Item     catalog.Item
	Brand    string
	Quantity int
	// Price overrides the item's own price when set.
	Price    *decimal.Decimal
	ImageURL string
	// Subject identifies the shopper for the in-flight guard.
	Subject string
}

type AddToCartResult struct {
	Outcome  domcart.Outcome
	Notice   domcart.Notice
	Quantity int
}

// Execute runs the admission flow. Refusals and collaborator failures are
// reported through the result; only malformed input returns an error.
func (uc *AddToCartUseCase) Execute(ctx context.Context, in AddToCartInput) (_ *AddToCartResult, err error) {
	brandLabel := in.Item.BrandOr(catalog.UnknownBrand)
	logger := logctx.FromOr(ctx, uc.log).With(
		observability.F("use_case", useCaseCartAdd),
		observability.F("oem", in.Item.OEM),
		observability.F("brand", brandLabel),
		observability.F("catalog", in.Item.CatalogLabel()),
	)

	ctx, span := uc.tel.Tracer().Start(ctx, spanPrefix+"AddToCart",
		attribute.String("use_case", useCaseCartAdd),
		attribute.String("cart.oem", in.Item.OEM),
		attribute.String("cart.brand", brandLabel),
		attribute.String("cart.catalog", in.Item.CatalogLabel()),
		attribute.Int("cart.requested_quantity", in.Quantity),
	)
	start := time.Now()
	outcome, statusText := outcomeSuccess, "OK"
	var res *AddToCartResult
	var callErr, publishErr error

	defer func() {
		lat := time.Since(start).Seconds()

		if res != nil {
			span.SetAttributes(
				attribute.String("cart.outcome", string(res.Outcome)),
				attribute.Int("cart.quantity", res.Quantity),
			)
		}
		if err != nil || callErr != nil {
			span.RecordError(errors.Join(err, callErr))
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		uc.reqCounter.Add(1,
			observability.L("use_case", useCaseCartAdd),
			observability.L("outcome", outcome),
		)
		uc.durHistogram.Observe(lat, observability.L("use_case", useCaseCartAdd))

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
		}
		if res != nil {
			fields = append(fields,
				observability.F("cart_outcome", string(res.Outcome)),
				observability.F("quantity", res.Quantity),
			)
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if callErr != nil {
			fields = append(fields, observability.F("error", callErr.Error()))
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		if publishErr != nil {
			fields = append(fields, observability.F("event_publish_error", publishErr.Error()))
		}

		if callErr != nil {
			logger.Error("use_case_done", fields...)
			return
		}
		logger.Info("use_case_done", fields...)
	}()

	available := catalog.AvailableQuantity(in.Item)
	if available == 0 {
		outcome, statusText = outcomeRejected, "OUT_OF_STOCK"
		res = &AddToCartResult{
			Outcome: domcart.OutcomeOutOfStock,
			Notice:  domcart.Notice{Kind: domcart.NoticeWarning, Message: domcart.MessageOutOfStock},
		}
		publishErr = uc.publish(ctx, domcart.AdmissionRefusedEvent{
			Attempt: uc.attempt(ctx, domcart.AddRequest{OEM: in.Item.OEM, Brand: brandLabel}, in.Item),
			Outcome: domcart.OutcomeOutOfStock,
		})
		return res, nil
	}

	quantity := selector.New(available).Set(in.Quantity).Quantity

	price, _ := in.Item.Price.Decimal()
	if in.Price != nil {
		price = *in.Price
	}
	imageURL := in.ImageURL
	if imageURL == "" && in.Item.ImageURL != nil {
		imageURL = *in.Item.ImageURL
	}

	req, derr := domcart.NewAddRequest(in.Item, in.Brand, quantity, price, imageURL)
	if derr != nil {
		outcome, statusText = outcomeError, "REQUEST_INVALID"
		return nil, fmt.Errorf("cart: add: %w", derr)
	}
	span.SetAttributes(attribute.String("cart.brand_sent", req.Brand))

	release, gerr := uc.guard.Acquire(ctx, domcart.SubmissionKey(in.Subject, req.OEM, req.Brand))
	switch {
	case errors.Is(gerr, domcart.ErrSubmissionInFlight):
		outcome, statusText = outcomeRejected, "SUBMISSION_IN_FLIGHT"
		res = &AddToCartResult{
			Outcome:  domcart.OutcomeInFlight,
			Notice:   domcart.Notice{Kind: domcart.NoticeWarning, Message: domcart.MessageInFlight},
			Quantity: quantity,
		}
		publishErr = uc.publish(ctx, domcart.AdmissionRefusedEvent{
			Attempt: uc.attempt(ctx, req, in.Item),
			Outcome: domcart.OutcomeInFlight,
		})
		return res, nil
	case gerr != nil:
		outcome, statusText = outcomeError, "GUARD_FAILED"
		callErr = gerr
		res = failed(quantity, "")
		publishErr = uc.publish(ctx, domcart.AddFailedEvent{
			Attempt: uc.attempt(ctx, req, in.Item),
			Reason:  "guard",
		})
		return res, nil
	}

	// The add must settle even if the caller goes away mid-request.
	callCtx := context.WithoutCancel(ctx)
	defer func() {
		relCtx, cancel := context.WithTimeout(callCtx, releaseTimeout)
		defer cancel()
		if rerr := release(relCtx); rerr != nil {
			logger.Warn("submission_release_failed", observability.F("error", rerr))
		}
	}()

	callErr = uc.cart.AddItem(callCtx, req)
	if callErr != nil {
		outcome, statusText = outcomeError, "CART_ADD_FAILED"
		res = failed(quantity, collaboratorMessage(callErr))
		publishErr = uc.publish(callCtx, domcart.AddFailedEvent{
			Attempt: uc.attempt(ctx, req, in.Item),
			Reason:  "collaborator",
		})
		return res, nil
	}

	res = &AddToCartResult{
		Outcome:  domcart.OutcomeAdded,
		Notice:   domcart.Notice{Kind: domcart.NoticeSuccess, Message: domcart.MessageAdded},
		Quantity: quantity,
	}
	span.AddEvent("cart.item_added", trace.WithAttributes(attribute.Int("cart.quantity", quantity)))
	publishErr = uc.publish(callCtx, domcart.ItemAddedEvent{Attempt: uc.attempt(ctx, req, in.Item)})

	return res, nil
}

func (uc *AddToCartUseCase) attempt(ctx context.Context, req domcart.AddRequest, item catalog.Item) domcart.Attempt {
	id := ""
	if uc.idGenerator != nil {
		id = uc.idGenerator.NewID()
	}
	a := domcart.NewAttempt(id, req, item.CatalogLabel())
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		a.TraceID = sc.TraceID().String()
		a.SpanID = sc.SpanID().String()
	}
	return a
}

// publish hands the event to the bus under a short deadline and records the
// hop as an external request.
func (uc *AddToCartUseCase) publish(ctx context.Context, e domoutbox.Event) error {
	if uc.publisher == nil {
		return nil
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	pubStart := time.Now()
	pubOutcome := outcomeSuccess
	err := uc.publisher.Publish(pubCtx, e)
	if err != nil {
		pubOutcome = outcomeError
		if errors.Is(err, context.DeadlineExceeded) {
			pubOutcome = "canceled"
		}
	}

	uc.extCounter.Add(1,
		observability.L("peer", publishPeer),
		observability.L("endpoint", e.EventName()),
		observability.L("outcome", pubOutcome),
	)
	uc.extHistogram.Observe(time.Since(pubStart).Seconds(),
		observability.L("peer", publishPeer),
		observability.L("endpoint", e.EventName()),
	)
	return err
}

func failed(quantity int, message string) *AddToCartResult {
	if strings.TrimSpace(message) == "" {
		message = domcart.MessageGenericError
	}
	return &AddToCartResult{
		Outcome:  domcart.OutcomeFailed,
		Notice:   domcart.Notice{Kind: domcart.NoticeError, Message: message},
		Quantity: quantity,
	}
}

func collaboratorMessage(err error) string {
	var um userMessage
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return ""
}
