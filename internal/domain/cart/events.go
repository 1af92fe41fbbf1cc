package cart

import "time"

// Attempt carries the identity shared by every admission event.
type Attempt struct {
	EventID    string
	OEM        string
	Brand      string
	Catalog    string
	Quantity   int
	OccurredAt time.Time
	// Trace identifiers of the request that produced the event, hex encoded.
	TraceID string
	SpanID  string
}

// ItemAddedEvent is emitted after the cart collaborator accepted an add.
type ItemAddedEvent struct {
	Attempt
}

func (ItemAddedEvent) EventName() string { return "cart.item_added" }

// AdmissionRefusedEvent is emitted when the local gate refused the click.
type AdmissionRefusedEvent struct {
	Attempt
	Outcome Outcome
}

func (AdmissionRefusedEvent) EventName() string { return "cart.admission_refused" }

// AddFailedEvent is emitted when the cart collaborator rejected the add.
type AddFailedEvent struct {
	Attempt
	Reason string
}

func (AddFailedEvent) EventName() string { return "cart.add_failed" }

// NewAttempt describes one click for req. Trace ids are filled in by the caller.
func NewAttempt(eventID string, req AddRequest, catalogLabel string) Attempt {
	return Attempt{
		EventID:    eventID,
		OEM:        req.OEM,
		Brand:      req.Brand,
		Catalog:    catalogLabel,
		Quantity:   req.Quantity,
		OccurredAt: time.Now().UTC(),
	}
}
