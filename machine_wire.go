package xlautomaten

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// apiMachine is the machine wire shape. The guaranteed allowlist is
// name, display_name, serial_number, place, test_mode, and the four
// temperature thresholds; everything else may be missing on minimal
// responses.
type apiMachine struct {
	Name                    *string    `json:"name" validate:"required"`
	DisplayName             *string    `json:"display_name" validate:"required"`
	SerialNumber            *string    `json:"serial_number" validate:"required"`
	Place                   *string    `json:"place" validate:"required"`
	TestMode                *looseBool `json:"test_mode" validate:"required,oneof=0 1"`
	TempStopTemp            *float64   `json:"temp_stop_temp" validate:"required"`
	TempStopTime            *int       `json:"temp_stop_time" validate:"required"`
	TempWarningTemp         *float64   `json:"temp_warning_temp" validate:"required"`
	TempWarningTime         *int       `json:"temp_warning_time" validate:"required"`
	LastConnected           *int64     `json:"last_connected"`
	MastermoduleID          *int       `json:"mastermodule_id"`
	Active                  *looseBool `json:"active" validate:"omitempty,oneof=0 1"`
	Lift                    *looseBool `json:"lift" validate:"omitempty,oneof=0 1"`
	LiftMax                 *int       `json:"lift_max"`
	LiftA                   *string    `json:"lift_a"`
	LiftB                   *string    `json:"lift_b"`
	LiftC                   *string    `json:"lift_c"`
	LiftMeasurements        *string    `json:"lift_measurements"`
	LiftRoll                *int       `json:"lift_roll"`
	LiftDifferenceBackFront *int       `json:"lift_difference_back_front"`
	LastFilled              *string    `json:"last_filled"`
	PushDoor                *looseBool `json:"push_door" validate:"omitempty,oneof=0 1"`
	Door                    *looseBool `json:"door" validate:"omitempty,oneof=0 1"`
	LiftDown                *looseBool `json:"lift_down" validate:"omitempty,oneof=0 1"`
	LiftUp                  *looseBool `json:"lift_up" validate:"omitempty,oneof=0 1"`
	Photocell               *looseBool `json:"photocell" validate:"omitempty,oneof=0 1"`
	LastStatusUpdate        *string    `json:"last_status_update"`
	SoftwareVersion         *float64   `json:"software_version"`
	FilledItems             *int       `json:"filled_items"`
}

type apiMachineResponse struct {
	apiMachine
	apiDatabaseObject
}

// apiMachineTemperature is the latest temperature reading attached to
// list responses.
type apiMachineTemperature struct {
	Temperature *float64 `json:"temperature" validate:"required"`
	MachineID   *int     `json:"machine_id" validate:"required"`
	apiDatabaseObject
}

// apiMachineCoinChanger is the coin changer state attached to list
// responses. The cash amounts are decimal strings like "0.00".
type apiMachineCoinChanger struct {
	C5        *int    `json:"c5" validate:"required"`
	C10       *int    `json:"c10" validate:"required"`
	C20       *int    `json:"c20" validate:"required"`
	C50       *int    `json:"c50" validate:"required"`
	C100      *int    `json:"c100" validate:"required"`
	C200      *int    `json:"c200" validate:"required"`
	MachineID *int    `json:"machine_id" validate:"required"`
	CashBox   *string `json:"cash_box" validate:"required"`
	Bills     *string `json:"bills" validate:"required"`
	apiDatabaseObject
}

// apiMachineWithTrays is the delete-machine response.
type apiMachineWithTrays struct {
	apiMachineResponse
	Trays []apiTrayWithPositions `json:"trays"`
}

// apiMachineWithExtras is the list-machines element shape.
type apiMachineWithExtras struct {
	apiMachineWithTrays
	LatestTemperature *apiMachineTemperature `json:"latest_temperature"`
	CoinChanger       *apiMachineCoinChanger `json:"coin_changer"`
}

// apiLiftMeasurement is one entry of the lift_measurements JSON string.
// The millimeter value arrives as a numeric string.
type apiLiftMeasurement struct {
	Level  *int    `json:"level" validate:"required"`
	MM     *string `json:"mm" validate:"required"`
	Status *string `json:"status" validate:"required,oneof=finished error running"`
}

// ParseLiftMeasurements decodes the lift_measurements field, which the
// API transports as a JSON array encoded into a string.
func ParseLiftMeasurements(raw string) ([]LiftMeasurement, error) {
	var dtos []apiLiftMeasurement
	if err := json.Unmarshal([]byte(raw), &dtos); err != nil {
		return nil, fmt.Errorf("lift measurements are not valid JSON: %w", err)
	}
	out := make([]LiftMeasurement, len(dtos))
	for i, dto := range dtos {
		if dto.Level == nil || dto.MM == nil || dto.Status == nil {
			return nil, fmt.Errorf("lift measurement %d is missing a field", i)
		}
		switch *dto.Status {
		case "finished", "error", "running":
		default:
			return nil, fmt.Errorf("lift measurement %d has unknown status %q", i, *dto.Status)
		}
		mm, err := strconv.ParseFloat(*dto.MM, 64)
		if err != nil {
			return nil, fmt.Errorf("lift measurement %d has invalid height %q", i, *dto.MM)
		}
		out[i] = LiftMeasurement{
			Level:       *dto.Level,
			Millimeters: mm,
			Status:      *dto.Status,
		}
	}
	return out, nil
}

// StringifyLiftMeasurements is the inverse of ParseLiftMeasurements,
// producing the string the API expects in write requests.
func StringifyLiftMeasurements(measurements []LiftMeasurement) (string, error) {
	dtos := make([]apiLiftMeasurement, len(measurements))
	for i, m := range measurements {
		dtos[i] = apiLiftMeasurement{
			Level:  ptr(m.Level),
			MM:     ptr(strconv.FormatFloat(m.Millimeters, 'f', -1, 64)),
			Status: ptr(m.Status),
		}
	}
	raw, err := json.Marshal(dtos)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (w apiMachineResponse) toDomain() (Machine, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Machine{}, err
	}
	lastFilled, err := parseOptionalAPIDate(w.LastFilled)
	if err != nil {
		return Machine{}, fmt.Errorf("last_filled: %w", err)
	}
	lastStatusUpdate, err := parseOptionalAPIDate(w.LastStatusUpdate)
	if err != nil {
		return Machine{}, fmt.Errorf("last_status_update: %w", err)
	}
	var measurements []LiftMeasurement
	if w.LiftMeasurements != nil {
		measurements, err = ParseLiftMeasurements(*w.LiftMeasurements)
		if err != nil {
			return Machine{}, fmt.Errorf("lift_measurements: %w", err)
		}
	}
	return Machine{
		DatabaseObject:          base,
		Name:                    deref(w.Name),
		DisplayName:             deref(w.DisplayName),
		SerialNumber:            deref(w.SerialNumber),
		Place:                   deref(w.Place),
		TestMode:                boolFromWire(w.TestMode, false),
		TempStopTemp:            deref(w.TempStopTemp),
		TempStopTime:            deref(w.TempStopTime),
		TempWarningTemp:         deref(w.TempWarningTemp),
		TempWarningTime:         deref(w.TempWarningTime),
		LastConnected:           clonePtr(w.LastConnected),
		MastermoduleID:          clonePtr(w.MastermoduleID),
		Active:                  boolFromWire(w.Active, false),
		Lift:                    boolFromWire(w.Lift, false),
		LiftMax:                 clonePtr(w.LiftMax),
		LiftA:                   clonePtr(w.LiftA),
		LiftB:                   clonePtr(w.LiftB),
		LiftC:                   clonePtr(w.LiftC),
		LiftMeasurements:        measurements,
		LiftRoll:                valueOr(w.LiftRoll, 0),
		LiftDifferenceBackFront: clonePtr(w.LiftDifferenceBackFront),
		LastFilled:              lastFilled,
		PushDoor:                optionalBool(w.PushDoor),
		Door:                    optionalBool(w.Door),
		LiftDown:                optionalBool(w.LiftDown),
		LiftUp:                  optionalBool(w.LiftUp),
		Photocell:               optionalBool(w.Photocell),
		LastStatusUpdate:        lastStatusUpdate,
		SoftwareVersion:         clonePtr(w.SoftwareVersion),
		FilledItems:             valueOr(w.FilledItems, 0),
	}, nil
}

func (w apiMachineTemperature) toDomain() (MachineTemperature, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return MachineTemperature{}, err
	}
	return MachineTemperature{
		DatabaseObject: base,
		Temperature:    deref(w.Temperature),
		MachineID:      deref(w.MachineID),
	}, nil
}

func (w apiMachineCoinChanger) toDomain() (MachineCoinChanger, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return MachineCoinChanger{}, err
	}
	return MachineCoinChanger{
		DatabaseObject: base,
		Coins5:         deref(w.C5),
		Coins10:        deref(w.C10),
		Coins20:        deref(w.C20),
		Coins50:        deref(w.C50),
		Coins100:       deref(w.C100),
		Coins200:       deref(w.C200),
		MachineID:      deref(w.MachineID),
		CashBox:        deref(w.CashBox),
		Bills:          deref(w.Bills),
	}, nil
}

func (w apiMachineWithTrays) toDomain() (MachineWithTrays, error) {
	machine, err := w.apiMachineResponse.toDomain()
	if err != nil {
		return MachineWithTrays{}, err
	}
	trays := make([]TrayWithPositions, len(w.Trays))
	for i, dto := range w.Trays {
		tray, err := dto.toDomain()
		if err != nil {
			return MachineWithTrays{}, err
		}
		trays[i] = tray
	}
	return MachineWithTrays{Machine: machine, Trays: trays}, nil
}

func (w apiMachineWithExtras) toDomain() (MachineWithExtras, error) {
	machine, err := w.apiMachineWithTrays.toDomain()
	if err != nil {
		return MachineWithExtras{}, err
	}
	result := MachineWithExtras{MachineWithTrays: machine}
	if w.LatestTemperature != nil {
		temperature, err := w.LatestTemperature.toDomain()
		if err != nil {
			return MachineWithExtras{}, err
		}
		result.LatestTemperature = &temperature
	}
	if w.CoinChanger != nil {
		coinChanger, err := w.CoinChanger.toDomain()
		if err != nil {
			return MachineWithExtras{}, err
		}
		result.CoinChanger = &coinChanger
	}
	return result, nil
}

// machineBody serializes a machine write. Required-on-write fields are
// always present; optional fields appear only when the input carries
// them. Lift measurements are re-encoded into the API's JSON string.
func machineBody(m NewMachine) (map[string]any, error) {
	body := map[string]any{
		"name":              m.Name,
		"display_name":      m.DisplayName,
		"serial_number":     m.SerialNumber,
		"place":             m.Place,
		"test_mode":         boolToWire(m.TestMode),
		"temp_stop_temp":    m.TempStopTemp,
		"temp_stop_time":    m.TempStopTime,
		"temp_warning_temp": m.TempWarningTemp,
		"temp_warning_time": m.TempWarningTime,
	}
	if m.MastermoduleID != nil {
		body["mastermodule_id"] = *m.MastermoduleID
	}
	if m.Active != nil {
		body["active"] = boolToWire(*m.Active)
	}
	if m.Lift != nil {
		body["lift"] = boolToWire(*m.Lift)
	}
	if m.LiftMax != nil {
		body["lift_max"] = *m.LiftMax
	}
	if m.LiftA != nil {
		body["lift_a"] = strOrNull(*m.LiftA)
	}
	if m.LiftB != nil {
		body["lift_b"] = strOrNull(*m.LiftB)
	}
	if m.LiftC != nil {
		body["lift_c"] = strOrNull(*m.LiftC)
	}
	if m.LiftMeasurements != nil {
		raw, err := StringifyLiftMeasurements(m.LiftMeasurements)
		if err != nil {
			return nil, err
		}
		body["lift_measurements"] = raw
	}
	if m.LiftRoll != nil {
		body["lift_roll"] = *m.LiftRoll
	}
	if m.LiftDifferenceBackFront != nil {
		body["lift_difference_back_front"] = *m.LiftDifferenceBackFront
	}
	if m.Photocell != nil {
		body["photocell"] = boolToWire(*m.Photocell)
	}
	if m.SoftwareVersion != nil {
		body["software_version"] = *m.SoftwareVersion
	}
	if m.FilledItems != nil {
		body["filled_items"] = *m.FilledItems
	}
	return body, nil
}

// mergeMachine overlays a patch on the current server state, producing
// a full write input so the update does not clear untouched fields.
func mergeMachine(current *Machine, patch MachinePatch) NewMachine {
	merged := NewMachine{
		Name:                    current.Name,
		DisplayName:             current.DisplayName,
		SerialNumber:            current.SerialNumber,
		Place:                   current.Place,
		TestMode:                current.TestMode,
		TempStopTemp:            current.TempStopTemp,
		TempStopTime:            current.TempStopTime,
		TempWarningTemp:         current.TempWarningTemp,
		TempWarningTime:         current.TempWarningTime,
		MastermoduleID:          clonePtr(current.MastermoduleID),
		Active:                  ptr(current.Active),
		Lift:                    ptr(current.Lift),
		LiftMax:                 clonePtr(current.LiftMax),
		LiftA:                   clonePtr(current.LiftA),
		LiftB:                   clonePtr(current.LiftB),
		LiftC:                   clonePtr(current.LiftC),
		LiftMeasurements:        current.LiftMeasurements,
		LiftRoll:                ptr(current.LiftRoll),
		LiftDifferenceBackFront: clonePtr(current.LiftDifferenceBackFront),
		Photocell:               clonePtr(current.Photocell),
		SoftwareVersion:         clonePtr(current.SoftwareVersion),
		FilledItems:             ptr(current.FilledItems),
	}

	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.DisplayName != nil {
		merged.DisplayName = *patch.DisplayName
	}
	if patch.SerialNumber != nil {
		merged.SerialNumber = *patch.SerialNumber
	}
	if patch.Place != nil {
		merged.Place = *patch.Place
	}
	if patch.TestMode != nil {
		merged.TestMode = *patch.TestMode
	}
	if patch.TempStopTemp != nil {
		merged.TempStopTemp = *patch.TempStopTemp
	}
	if patch.TempStopTime != nil {
		merged.TempStopTime = *patch.TempStopTime
	}
	if patch.TempWarningTemp != nil {
		merged.TempWarningTemp = *patch.TempWarningTemp
	}
	if patch.TempWarningTime != nil {
		merged.TempWarningTime = *patch.TempWarningTime
	}
	if patch.MastermoduleID != nil {
		merged.MastermoduleID = patch.MastermoduleID
	}
	if patch.Active != nil {
		merged.Active = patch.Active
	}
	if patch.Lift != nil {
		merged.Lift = patch.Lift
	}
	if patch.LiftMax != nil {
		merged.LiftMax = patch.LiftMax
	}
	if patch.LiftA != nil {
		merged.LiftA = patch.LiftA
	}
	if patch.LiftB != nil {
		merged.LiftB = patch.LiftB
	}
	if patch.LiftC != nil {
		merged.LiftC = patch.LiftC
	}
	if patch.LiftMeasurements != nil {
		merged.LiftMeasurements = patch.LiftMeasurements
	}
	if patch.LiftRoll != nil {
		merged.LiftRoll = patch.LiftRoll
	}
	if patch.LiftDifferenceBackFront != nil {
		merged.LiftDifferenceBackFront = patch.LiftDifferenceBackFront
	}
	if patch.Photocell != nil {
		merged.Photocell = patch.Photocell
	}
	if patch.SoftwareVersion != nil {
		merged.SoftwareVersion = patch.SoftwareVersion
	}
	if patch.FilledItems != nil {
		merged.FilledItems = patch.FilledItems
	}
	return merged
}
