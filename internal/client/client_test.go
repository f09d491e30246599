package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/canchapp/booking_client/internal/config"
	"github.com/canchapp/booking_client/internal/model"
)

func newTestClient(baseURL, token string) *Client {
	cfg := &config.Config{
		APIBaseURL:  baseURL,
		APIToken:    token,
		HTTPTimeout: 2 * time.Second,
	}
	return New(cfg, zap.NewNop())
}

func TestDetailSendsBearerAndDate(t *testing.T) {
	var gotAuth, gotDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDate = r.URL.Query().Get("date")
		assert.Equal(t, "/courts/venue-1/court-1", r.URL.Path)
		json.NewEncoder(w).Encode(model.CourtDetail{AvailableSlots: []string{"10:00"}})
	}))
	defer srv.Close()

	gw := NewCourtsGateway(newTestClient(srv.URL, "secret"))
	detail, err := gw.Detail(context.Background(), "venue-1", "court-1", "2025-10-16")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "2025-10-16", gotDate)
	assert.Equal(t, []string{"10:00"}, detail.AvailableSlots)
}

func TestCreateReservationSendsIdempotencyKey(t *testing.T) {
	keys := make([]string, 0, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewEncoder(w).Encode(model.Reservation{ID: "res-1"})
	}))
	defer srv.Close()

	gw := NewReservationsGateway(newTestClient(srv.URL, ""))
	ctx := context.Background()

	created, err := gw.Create(ctx, model.Reservation{CourtID: "court-1"})
	require.NoError(t, err)
	assert.Equal(t, "res-1", created.ID)

	_, err = gw.Create(ctx, model.Reservation{CourtID: "court-1"})
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEmpty(t, keys[0])
	assert.NotEqual(t, keys[0], keys[1], "each submission carries a fresh key")
}

func TestConflictMapsToErrSlotTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "slot already reserved"})
	}))
	defer srv.Close()

	gw := NewReservationsGateway(newTestClient(srv.URL, ""))
	_, err := gw.Create(context.Background(), model.Reservation{})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.False(t, IsRetryable(err), "conflicts resolve by choosing another slot, not retrying")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "slot already reserved", apiErr.Message)
}

func TestRejectedTokenMapsToErrUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	gw := NewAdminGateway(newTestClient(srv.URL, "stale"))
	_, err := gw.Courts(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, IsRetryable(err))
}

func TestServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := NewCourtsGateway(newTestClient(srv.URL, ""))
	_, err := gw.Venues(context.Background())

	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestTransportFailureIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	gw := NewCourtsGateway(newTestClient(srv.URL, ""))
	_, err := gw.Venues(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.True(t, IsRetryable(err))
}

func TestAdminCallsRequireTokenBeforeNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	gw := NewAdminGateway(newTestClient(srv.URL, ""))
	ctx := context.Background()

	_, err := gw.Occupancy(ctx, "court-1", "2025-10-16")
	assert.ErrorIs(t, err, ErrNoToken)

	err = gw.Block(ctx, model.Block{CourtID: "court-1", Date: "2025-10-16", Hour: "19:00"})
	assert.ErrorIs(t, err, ErrNoToken)

	assert.Equal(t, 0, hits)
}

func TestBreakerOpensAfterConsecutiveServerErrors(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := NewCourtsGateway(newTestClient(srv.URL, ""))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := gw.Venues(ctx)
		require.Error(t, err)
	}
	assert.Equal(t, 5, hits)

	_, err := gw.Venues(ctx)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, 5, hits, "open breaker short-circuits without a request")
}
