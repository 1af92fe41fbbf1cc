package cart

import (
	"context"
	"errors"

	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
	"github.com/bexiiiii/euroline-sub001/internal/observability"
	"github.com/bexiiiii/euroline-sub001/internal/observability/logctx"
)

var ErrUnknownOutcome = errors.New("cart: unknown admission outcome")

// AdmissionRecord is one settled add-to-cart attempt as seen by the event bus.
type AdmissionRecord struct {
	Outcome  domcart.Outcome
	Catalog  string
	OEM      string
	Brand    string
	Quantity int
	Reason   string
}

// RecordAdmissionUseCase folds admission events into cart_admissions_total.
type RecordAdmissionUseCase struct {
	log        observability.Logger
	admissions observability.Counter // cart_admissions_total{outcome,catalog}
}

func NewRecordAdmissionUseCase(tel observability.Observability) *RecordAdmissionUseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	return &RecordAdmissionUseCase{
		log:        tel.Logger().With(observability.F("service", cartService)),
		admissions: tel.Metrics().Counter(observability.MCartAdmissions),
	}
}

func (uc *RecordAdmissionUseCase) Execute(ctx context.Context, rec AdmissionRecord) (struct{}, error) {
	switch rec.Outcome {
	case domcart.OutcomeAdded, domcart.OutcomeOutOfStock, domcart.OutcomeInFlight, domcart.OutcomeFailed:
	default:
		return struct{}{}, ErrUnknownOutcome
	}

	catalogLabel := rec.Catalog
	if catalogLabel == "" {
		catalogLabel = "primary"
	}
	uc.admissions.Add(1,
		observability.L("outcome", string(rec.Outcome)),
		observability.L("catalog", catalogLabel),
	)

	logctx.FromOr(ctx, uc.log).Debug("cart_admission_recorded",
		observability.F("cart_outcome", string(rec.Outcome)),
		observability.F("catalog", catalogLabel),
		observability.F("oem", rec.OEM),
		observability.F("brand", rec.Brand),
		observability.F("quantity", rec.Quantity),
	)
	return struct{}{}, nil
}

// RecordFromEvent maps a cart event onto an AdmissionRecord.
func RecordFromEvent(e any) (AdmissionRecord, bool) {
	switch evt := e.(type) {
	case domcart.ItemAddedEvent:
		return recordOf(evt.Attempt, domcart.OutcomeAdded, ""), true
	case domcart.AdmissionRefusedEvent:
		return recordOf(evt.Attempt, evt.Outcome, ""), true
	case domcart.AddFailedEvent:
		return recordOf(evt.Attempt, domcart.OutcomeFailed, evt.Reason), true
	default:
		return AdmissionRecord{}, false
	}
}

func recordOf(a domcart.Attempt, outcome domcart.Outcome, reason string) AdmissionRecord {
	return AdmissionRecord{
		Outcome:  outcome,
		Catalog:  a.Catalog,
		OEM:      a.OEM,
		Brand:    a.Brand,
		Quantity: a.Quantity,
		Reason:   reason,
	}
}
