package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(GenerationsTotal.WithLabelValues("generated"))

	RecordGeneration("generated", 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(GenerationsTotal.WithLabelValues("generated")))
}

func TestRecordPersisted(t *testing.T) {
	okBefore := testutil.ToFloat64(PersistedRowsTotal.WithLabelValues("ok"))
	failedBefore := testutil.ToFloat64(PersistedRowsTotal.WithLabelValues("failed"))

	RecordPersisted(7, 1)

	assert.Equal(t, okBefore+7, testutil.ToFloat64(PersistedRowsTotal.WithLabelValues("ok")))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(PersistedRowsTotal.WithLabelValues("failed")))
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/foods", "200"))

	RecordAPIRequest("GET", "/api/v1/foods", 200, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/foods", "200")))
}

func TestCountersByLabel(t *testing.T) {
	staleBefore := testutil.ToFloat64(StaleResponsesTotal.WithLabelValues("load"))
	storeBefore := testutil.ToFloat64(StoreErrorsTotal.WithLabelValues("list_foods"))
	ratingBefore := testutil.ToFloat64(RatingsTotal.WithLabelValues("invalid"))
	missBefore := testutil.ToFloat64(JoinMissesTotal)

	RecordStale("load")
	RecordStoreError("list_foods")
	RecordRating("invalid")
	RecordJoinMiss()

	assert.Equal(t, staleBefore+1, testutil.ToFloat64(StaleResponsesTotal.WithLabelValues("load")))
	assert.Equal(t, storeBefore+1, testutil.ToFloat64(StoreErrorsTotal.WithLabelValues("list_foods")))
	assert.Equal(t, ratingBefore+1, testutil.ToFloat64(RatingsTotal.WithLabelValues("invalid")))
	assert.Equal(t, missBefore+1, testutil.ToFloat64(JoinMissesTotal))
}
