package cart

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
	infraobs "github.com/bexiiiii/euroline-sub001/internal/infrastructure/observability"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/observability/prometrics"
)

func TestRecordFromEvent(t *testing.T) {
	t.Parallel()

	a := domcart.Attempt{OEM: "1", Brand: "B", Catalog: "analog", Quantity: 2}

	rec, ok := RecordFromEvent(domcart.ItemAddedEvent{Attempt: a})
	require.True(t, ok)
	assert.Equal(t, domcart.OutcomeAdded, rec.Outcome)
	assert.Equal(t, "analog", rec.Catalog)

	rec, ok = RecordFromEvent(domcart.AdmissionRefusedEvent{Attempt: a, Outcome: domcart.OutcomeInFlight})
	require.True(t, ok)
	assert.Equal(t, domcart.OutcomeInFlight, rec.Outcome)

	rec, ok = RecordFromEvent(domcart.AddFailedEvent{Attempt: a, Reason: "collaborator"})
	require.True(t, ok)
	assert.Equal(t, domcart.OutcomeFailed, rec.Outcome)
	assert.Equal(t, "collaborator", rec.Reason)

	_, ok = RecordFromEvent("not an event")
	assert.False(t, ok)
}

func TestRecordAdmissionUseCaseCounts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	tel := infraobs.New(nil, nil, prometrics.New("euroline", reg))
	uc := NewRecordAdmissionUseCase(tel)

	ctx := context.Background()
	_, err := uc.Execute(ctx, AdmissionRecord{Outcome: domcart.OutcomeAdded, Catalog: "primary"})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, AdmissionRecord{Outcome: domcart.OutcomeAdded})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, AdmissionRecord{Outcome: domcart.OutcomeOutOfStock, Catalog: "analog"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, AdmissionRecord{Outcome: "weird"})
	require.ErrorIs(t, err, ErrUnknownOutcome)

	expected := `
# HELP euroline_cart_admissions_total Add-to-cart attempts by outcome and catalog.
# TYPE euroline_cart_admissions_total counter
euroline_cart_admissions_total{catalog="analog",outcome="out_of_stock"} 1
euroline_cart_admissions_total{catalog="primary",outcome="added"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "euroline_cart_admissions_total"))
}
