package xlautomaten

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupBody_InvertsFlags(t *testing.T) {
	t.Parallel()

	input := NewPickup{
		Code:           "abc123",
		ValidFrom:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		MastermoduleID: 5,
	}

	body := pickupBody(input)
	assert.Equal(t, 1, body["cart_editable"])
	assert.Equal(t, 1, body["reserve"])
	assert.Equal(t, 1, body["auto_delete"])

	input.PreventCartEdits = true
	input.DontReserveArticles = true
	input.PreventAutoDeletion = true
	body = pickupBody(input)
	assert.Equal(t, 0, body["cart_editable"])
	assert.Equal(t, 0, body["reserve"])
	assert.Equal(t, 0, body["auto_delete"])
}

func TestPickupBody_OptionalFields(t *testing.T) {
	t.Parallel()

	input := NewPickup{
		Code:           "abc123",
		ValidFrom:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		MastermoduleID: 5,
	}

	body := pickupBody(input)
	assert.NotContains(t, body, "card_number")
	assert.NotContains(t, body, "reserve_from")
	assert.NotContains(t, body, "callback")
	assert.NotContains(t, body, "external_id")

	input.CardNumber = ptr("0041")
	input.ReserveFrom = ptr(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	input.ExternalID = ptr("order-77")
	body = pickupBody(input)
	assert.Equal(t, "0041", body["card_number"])
	assert.Equal(t, "2024-01-01 12:00:00", body["reserve_from"])
	assert.Equal(t, "order-77", body["external_id"])
}

const pickupJSON = `{
	"id": 9,
	"code": "abc123",
	"valid_from": "2024-01-01 00:00:00",
	"valid_until": "2024-01-02 00:00:00",
	"mastermodule_id": 5,
	"cart_editable": 0,
	"reserve": 1,
	"auto_delete": 1,
	"user_id": "14",
	"created_at": "2023-01-02 03:04:05",
	"updated_at": "2023-01-02 03:04:05"
}`

func TestPickupToDomain_FlagsAndReserveFallback(t *testing.T) {
	t.Parallel()

	var dto apiPickupResponse
	require.NoError(t, json.Unmarshal([]byte(pickupJSON), &dto))

	pickup, err := dto.toDomain()
	require.NoError(t, err)

	assert.True(t, pickup.PreventCartEdits)
	assert.False(t, pickup.DontReserveArticles)
	assert.False(t, pickup.PreventAutoDeletion)
	assert.Equal(t, 14, pickup.UserID)
	// reserve_from was absent, so it falls back to the window start.
	assert.True(t, pickup.ReserveFrom.Equal(pickup.ValidFrom))
}

func TestGetPickup_EscapesCode(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		body := `{
			"id": 9,
			"code": "abc/123",
			"valid_from": "2024-01-01 00:00:00",
			"valid_until": "2024-01-02 00:00:00",
			"mastermodule_id": 5,
			"user_id": 14,
			"items": [],
			"created_at": "2023-01-02 03:04:05",
			"updated_at": "2023-01-02 03:04:05"
		}`
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	pickup, err := client.GetPickup(context.Background(), "abc/123")
	require.NoError(t, err)
	assert.Equal(t, "/pickupcode/abc%2F123", gotPath)
	assert.Empty(t, pickup.Items)
}
