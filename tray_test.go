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

const trayJSON = `{
	"id": 4,
	"machine_id": 2,
	"type": 1,
	"mounting_position": 120,
	"slot": 3,
	"created_at": "2023-01-02 03:04:05",
	"updated_at": "2023-01-02 03:04:05"
}`

func newTrayServer(t *testing.T) (*Client, *[]string) {
	t.Helper()

	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		_, _ = w.Write([]byte(trayJSON))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))
	return client, &methods
}

func TestUpdateTray_FullPatchSkipsFetch(t *testing.T) {
	t.Parallel()

	client, methods := newTrayServer(t)

	_, err := client.UpdateTray(context.Background(), 4, TrayPatch{
		MachineID:        ptr(2),
		Type:             ptr(1),
		MountingPosition: ptr(130),
		Slot:             ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{http.MethodPut}, *methods)
}

func TestUpdateTray_PartialPatchFetchesFirst(t *testing.T) {
	t.Parallel()

	client, methods := newTrayServer(t)

	_, err := client.UpdateTray(context.Background(), 4, TrayPatch{MountingPosition: ptr(130)})
	require.NoError(t, err)
	assert.Equal(t, []string{http.MethodGet, http.MethodPut}, *methods)
}

func TestTrayBody(t *testing.T) {
	t.Parallel()

	body := trayBody(NewTray{MachineID: 2, Type: 1, MountingPosition: 120, Slot: 3})
	assert.Equal(t, map[string]any{
		"machine_id":        2,
		"type":              1,
		"mounting_position": 120,
		"slot":              3,
	}, body)
}

func TestGetTrays_IncludesPositions(t *testing.T) {
	t.Parallel()

	body := `[{
		"id": 4,
		"machine_id": 2,
		"type": 1,
		"mounting_position": 120,
		"slot": 3,
		"positions": [{
			"id": 31,
			"tray_id": 4,
			"width": 2,
			"number": 1,
			"created_at": "2023-01-02 03:04:05",
			"updated_at": "2023-01-02 03:04:05"
		}],
		"created_at": "2023-01-02 03:04:05",
		"updated_at": "2023-01-02 03:04:05"
	}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	trays, err := client.GetTrays(context.Background())
	require.NoError(t, err)
	require.Len(t, trays, 1)
	require.Len(t, trays[0].Positions, 1)
	assert.Equal(t, 31, trays[0].Positions[0].ID)
}

func TestTrayToDomain_RejectsOutOfRangeSlot(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 4,
		"machine_id": 2,
		"type": 1,
		"mounting_position": 120,
		"slot": 19,
		"created_at": "2023-01-02 03:04:05",
		"updated_at": "2023-01-02 03:04:05"
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(raw))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	_, err := client.GetTray(context.Background(), 4)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestTrayJSONFixture(t *testing.T) {
	t.Parallel()

	var dto apiTrayResponse
	require.NoError(t, json.Unmarshal([]byte(trayJSON), &dto))
	tray, err := dto.toDomain()
	require.NoError(t, err)
	assert.Equal(t, 120, tray.MountingPosition)
}
