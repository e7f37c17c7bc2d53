package xlautomaten

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParameter(validate, value string) apiMastermoduleParameter {
	return apiMastermoduleParameter{
		Name:                ptr("strict_stock"),
		Value:               ptr(value),
		Level:               ptr(""),
		Validate:            ptr(validate),
		ParameterizableID:   ptr(5),
		ParameterizableType: ptr(`App\Mastermodule`),
		apiDatabaseObject: apiDatabaseObject{
			ID:        ptr(1),
			CreatedAt: ptr("2023-01-02 03:04:05"),
			UpdatedAt: ptr("2023-01-02 03:04:05"),
		},
	}
}

func TestMastermoduleParameter_Numeric(t *testing.T) {
	t.Parallel()

	param, err := testParameter("numeric", "2.5").toDomain()
	require.NoError(t, err)
	assert.Equal(t, MastermoduleParameterNumeric, param.Type)
	assert.Equal(t, 2.5, param.Numeric)

	// Empty values count as zero.
	param, err = testParameter("numeric", "").toDomain()
	require.NoError(t, err)
	assert.Equal(t, 0.0, param.Numeric)
}

func TestMastermoduleParameter_NumericRejectsNonNumbers(t *testing.T) {
	t.Parallel()

	_, err := testParameter("numeric", "often").toDomain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `could not parse number from "often"`)
}

func TestMastermoduleParameter_Boolean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{value: "1", want: true},
		{value: "true", want: true},
		{value: "anything", want: true},
		{value: "0", want: false},
		{value: "false", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		param, err := testParameter("boolean", tt.value).toDomain()
		require.NoError(t, err)
		assert.Equal(t, tt.want, param.Bool, "value %q", tt.value)
	}
}

func TestMastermoduleParameter_String(t *testing.T) {
	t.Parallel()

	param, err := testParameter("string", "de").toDomain()
	require.NoError(t, err)
	assert.Equal(t, "de", param.String)
}

func TestGetMastermodules(t *testing.T) {
	t.Parallel()

	body := `[{
		"id": 3,
		"name": "MM-3",
		"machine_id": 7,
		"last_connected": "2023-11-25 22:11:18",
		"update_interval": 0,
		"requires_update": 0,
		"pin": 1234,
		"parameters": [{
			"id": 1,
			"name": "language",
			"value": "de",
			"level": "",
			"validate": "string",
			"parameterizable_id": 3,
			"parameterizable_type": "App\\Mastermodule",
			"created_at": "2023-01-02 03:04:05",
			"updated_at": "2023-01-02 03:04:05"
		}]
	}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	modules, err := client.GetMastermodules(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 1)

	module := modules[0]
	assert.Equal(t, 3, module.ID)
	assert.Equal(t, "MM-3", module.Name)
	assert.Equal(t, 7, module.MachineID)
	require.NotNil(t, module.LastConnected)

	// Zero means unset for the interval and the flags.
	assert.Nil(t, module.UpdateInterval)
	assert.Nil(t, module.RequiresUpdate)
	require.NotNil(t, module.Pin)
	assert.Equal(t, 1234, *module.Pin)
	assert.Nil(t, module.CreatedAt)

	require.Len(t, module.Parameters, 1)
	assert.Equal(t, "language", module.Parameters[0].Name)
	assert.Equal(t, "de", module.Parameters[0].String)
}

func TestGetMastermoduleStock(t *testing.T) {
	t.Parallel()

	body := `[
		{"id": 11, "name": "Cola", "article_number": "A-11", "img": null, "stock": 0},
		{"id": 12, "name": "Wasser", "article_number": "A-12", "img": "https://example.com/w.png", "stock": 7}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mastermodulestock/3", r.URL.Path)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	stock, err := client.GetMastermoduleStock(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, stock, 2)

	assert.Equal(t, 11, stock[0].ArticleID)
	assert.Nil(t, stock[0].Image)
	assert.Equal(t, 0, stock[0].Stock)

	require.NotNil(t, stock[1].Image)
	assert.Equal(t, "https://example.com/w.png", *stock[1].Image)
	assert.Equal(t, 7, stock[1].Stock)
}
