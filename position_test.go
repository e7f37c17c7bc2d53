package xlautomaten

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePositionDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		traySlot       int
		positionNumber int
		want           string
	}{
		{traySlot: 1, positionNumber: 1, want: "11"},
		{traySlot: 1, positionNumber: 2, want: "12"},
		{traySlot: 1, positionNumber: 12, want: "22"},
		{traySlot: 8, positionNumber: 1, want: "81"},
		{traySlot: 9, positionNumber: 1, want: "122"},
		{traySlot: 9, positionNumber: 12, want: "133"},
		{traySlot: 10, positionNumber: 1, want: "232"},
		{traySlot: 18, positionNumber: 1, want: "1112"},
	}

	for _, tt := range tests {
		got := CalculatePositionDisplayName(tt.traySlot, tt.positionNumber)
		assert.Equal(t, tt.want, got, "slot %d position %d", tt.traySlot, tt.positionNumber)
	}
}

const positionJSON = `{
	"id": 31,
	"tray_id": 4,
	"width": 2,
	"number": 3,
	"created_at": "2023-01-02 03:04:05",
	"updated_at": "2023-01-02 03:04:05"
}`

func TestUpdatePosition_FetchesBeforeWriting(t *testing.T) {
	t.Parallel()

	var methods []string
	var putBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodPut {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
		}
		_, _ = w.Write([]byte(positionJSON))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	_, err := client.UpdatePosition(context.Background(), 31, PositionPatch{Width: ptr(3)})
	require.NoError(t, err)

	// The tray and number are immutable, so the write carries the
	// fetched values with only the width replaced.
	assert.Equal(t, []string{http.MethodGet, http.MethodPut}, methods)
	assert.Equal(t, float64(4), putBody["tray_id"])
	assert.Equal(t, float64(3), putBody["width"])
	assert.Equal(t, float64(3), putBody["number"])
}

func TestDeletePosition_ToleratesEmbeddedMapping(t *testing.T) {
	t.Parallel()

	body := `{
		"id": 31,
		"tray_id": 4,
		"width": 2,
		"number": 3,
		"created_at": "2023-01-02 03:04:05",
		"updated_at": "2023-01-02 03:04:05",
		"mapping": null
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	deleted, err := client.DeletePosition(context.Background(), 31)
	require.NoError(t, err)
	assert.Equal(t, 31, deleted.ID)
	assert.Equal(t, 4, deleted.TrayID)
}
