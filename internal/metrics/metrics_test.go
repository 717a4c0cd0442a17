package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTicketEvents(t *testing.T) {
	before := testutil.ToFloat64(TicketEvents.WithLabelValues(EventPaid))
	TicketEvents.WithLabelValues(EventPaid).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(TicketEvents.WithLabelValues(EventPaid)))
}

func TestOperationFailures(t *testing.T) {
	OperationFailures.WithLabelValues("book").Inc()
	assert.GreaterOrEqual(t, testutil.CollectAndCount(OperationFailures), 1)
}
