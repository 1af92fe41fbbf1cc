package workerpresentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bexiiiii/euroline-sub001/internal/application"
	appcart "github.com/bexiiiii/euroline-sub001/internal/application/cart"
	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
	domoutbox "github.com/bexiiiii/euroline-sub001/internal/domain/outbox"
	"github.com/bexiiiii/euroline-sub001/internal/observability"
	"github.com/bexiiiii/euroline-sub001/internal/observability/logctx"
)

const (
	workerService    = "cart-admission-worker"
	useCaseAdmission = "cart.worker.admission"
	spanPrefix       = "Worker."
)

// AdmissionWorker turns cart admission events into metrics.
type AdmissionWorker struct {
	subscriber domoutbox.Subscriber
	useCase    application.UseCase[appcart.AdmissionRecord, struct{}]
	tel        observability.Observability

	log          observability.Logger
	reqCounter   observability.Counter   // usecase_requests_total{use_case,outcome}
	durHistogram observability.Histogram // usecase_duration_seconds{use_case}
}

func NewAdmissionWorker(
	subscriber domoutbox.Subscriber,
	useCase application.UseCase[appcart.AdmissionRecord, struct{}],
	tel observability.Observability,
) *AdmissionWorker {
	if tel == nil {
		tel = observability.Nop()
	}
	return &AdmissionWorker{
		subscriber:   subscriber,
		useCase:      useCase,
		tel:          tel,
		log:          tel.Logger().With(observability.F("service", workerService)),
		reqCounter:   tel.Metrics().Counter(observability.MUsecaseRequests),
		durHistogram: tel.Metrics().Histogram(observability.MUsecaseDuration),
	}
}

func (w *AdmissionWorker) Start() {
	if w.subscriber == nil || w.useCase == nil {
		return
	}
	w.subscriber.Subscribe(domcart.ItemAddedEvent{}.EventName(), w.handle)
	w.subscriber.Subscribe(domcart.AdmissionRefusedEvent{}.EventName(), w.handle)
	w.subscriber.Subscribe(domcart.AddFailedEvent{}.EventName(), w.handle)
}

func (w *AdmissionWorker) handle(ctx context.Context, e domoutbox.Event) (err error) {
	rec, ok := appcart.RecordFromEvent(e)
	if !ok {
		w.count("ignored")
		return nil
	}
	attempt := attemptOf(e)

	traceID, _ := trace.TraceIDFromHex(attempt.TraceID)
	spanID, _ := trace.SpanIDFromHex(attempt.SpanID)
	ctx = WithEventContext(ctx, logctx.FromOr(ctx, w.log), traceID, spanID, map[string]string{
		"event_id": attempt.EventID,
		"event":    e.EventName(),
		"use_case": useCaseAdmission,
	})
	logger := logctx.FromOr(ctx, w.log)

	// Link back to the request that produced the event.
	var opts []attribute.KeyValue
	opts = append(opts,
		attribute.String("use_case", useCaseAdmission),
		attribute.String("event", e.EventName()),
		attribute.String("cart.outcome", string(rec.Outcome)),
	)
	if traceID.IsValid() {
		opts = append(opts, attribute.String("origin.trace_id", traceID.String()))
	}
	ctx, span := w.tel.Tracer().Start(ctx, spanPrefix+"CartAdmission", opts...)
	start := time.Now()
	outcome, status := "success", "OK"

	defer func() {
		lat := time.Since(start).Seconds()
		w.count(outcome)
		w.durHistogram.Observe(lat, observability.L("use_case", useCaseAdmission))

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", status),
			observability.F("latency_seconds", lat),
			observability.F("cart_outcome", string(rec.Outcome)),
			observability.F("oem", rec.OEM),
			observability.F("brand", rec.Brand),
			observability.F("catalog", rec.Catalog),
		}
		if rec.Reason != "" {
			fields = append(fields, observability.F("failure_reason", rec.Reason))
		}
		logger.Info("use_case_done", fields...)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, status)
		} else {
			span.SetStatus(codes.Ok, status)
		}
		span.End()
	}()

	if _, uerr := w.useCase.Execute(ctx, rec); uerr != nil {
		outcome, status = "error", "RECORD_FAILED"
		return fmt.Errorf("worker: cart admission: %w", uerr)
	}
	return nil
}

func (w *AdmissionWorker) count(outcome string) {
	w.reqCounter.Add(1,
		observability.L("use_case", useCaseAdmission),
		observability.L("outcome", outcome),
	)
}

func attemptOf(e domoutbox.Event) domcart.Attempt {
	switch evt := e.(type) {
	case domcart.ItemAddedEvent:
		return evt.Attempt
	case domcart.AdmissionRefusedEvent:
		return evt.Attempt
	case domcart.AddFailedEvent:
		return evt.Attempt
	}
	return domcart.Attempt{}
}
