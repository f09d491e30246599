package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canchapp/booking_client/internal/model"
)

func TestDuration(t *testing.T) {
	assert.Equal(t, "1 h", Duration(1))
	assert.Equal(t, "1 h 30 min", Duration(1.5))
	assert.Equal(t, "2 h", Duration(2))
	assert.Equal(t, "30 min", Duration(0.5))
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "Thu, 16 Oct 2025", DateLabel("2025-10-16"))
	assert.Equal(t, "not-a-date", DateLabel("not-a-date"))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "$1200.00 / hr", Price(1200))
	assert.Equal(t, "$1200", PriceShort(1200))
	assert.Equal(t, "$1200.50", PriceShort(1200.5))
}

func TestTimeRange(t *testing.T) {
	assert.Equal(t, "20:00-21:30", TimeRange("20:00", "21:30"))
}

func TestReservationStatus(t *testing.T) {
	assert.Equal(t, "confirmed", ReservationStatus(model.ReservationStatusConfirmed).Text)
	assert.Equal(t, "unknown", ReservationStatus(model.ReservationStatus("weird")).Text)
}
