package xlautomaten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiftMeasurements(t *testing.T) {
	t.Parallel()

	raw := `[{"level":1,"mm":"123.5","status":"finished"},{"level":2,"mm":"0","status":"running"}]`
	got, err := ParseLiftMeasurements(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, LiftMeasurement{Level: 1, Millimeters: 123.5, Status: "finished"}, got[0])
	assert.Equal(t, LiftMeasurement{Level: 2, Millimeters: 0, Status: "running"}, got[1])
}

func TestParseLiftMeasurements_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "definitely not json"},
		{name: "missing field", raw: `[{"level":1,"status":"finished"}]`},
		{name: "unknown status", raw: `[{"level":1,"mm":"10","status":"paused"}]`},
		{name: "unparseable height", raw: `[{"level":1,"mm":"tall","status":"finished"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseLiftMeasurements(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestStringifyLiftMeasurements_RoundTrip(t *testing.T) {
	t.Parallel()

	original := []LiftMeasurement{
		{Level: 1, Millimeters: 123.5, Status: "finished"},
		{Level: 2, Millimeters: 0, Status: "error"},
	}
	raw, err := StringifyLiftMeasurements(original)
	require.NoError(t, err)

	parsed, err := ParseLiftMeasurements(raw)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)

	// Encoding again reproduces the exact string.
	again, err := StringifyLiftMeasurements(parsed)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestMachineBody_RequiredKeysAlwaysPresent(t *testing.T) {
	t.Parallel()

	body, err := machineBody(NewMachine{
		Name:            "Automat 1",
		DisplayName:     "Foyer",
		SerialNumber:    "SN-1",
		Place:           "Foyer links",
		TestMode:        false,
		TempStopTemp:    12,
		TempWarningTemp: 9,
		TempStopTime:    30,
		TempWarningTime: 15,
	})
	require.NoError(t, err)

	for _, key := range []string{
		"name", "display_name", "serial_number", "place", "test_mode",
		"temp_stop_temp", "temp_warning_temp", "temp_stop_time", "temp_warning_time",
	} {
		assert.Contains(t, body, key)
	}
	assert.Equal(t, 0, body["test_mode"])
	assert.NotContains(t, body, "lift")
	assert.NotContains(t, body, "lift_measurements")
}

func TestMachineBody_EncodesLiftMeasurements(t *testing.T) {
	t.Parallel()

	body, err := machineBody(NewMachine{
		Name:            "Automat 1",
		DisplayName:     "Foyer",
		SerialNumber:    "SN-1",
		Place:           "Foyer links",
		TempStopTemp:    12,
		TempWarningTemp: 9,
		TempStopTime:    30,
		TempWarningTime: 15,
		LiftMeasurements: []LiftMeasurement{
			{Level: 1, Millimeters: 55, Status: "finished"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `[{"level":1,"mm":"55","status":"finished"}]`, body["lift_measurements"])
}
