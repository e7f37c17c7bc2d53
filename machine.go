package xlautomaten

import (
	"context"
	"strconv"
	"time"
)

// Machine is a physical vending machine. The serial number must be
// unique. Status fields such as LastConnected, the door switches, and
// LastStatusUpdate are reported by the machine and cannot be written.
type Machine struct {
	DatabaseObject
	Name            string
	DisplayName     string
	SerialNumber    string
	Place           string
	TestMode        bool
	TempStopTemp    float64
	TempStopTime    int
	TempWarningTemp float64
	TempWarningTime int
	// LastConnected is a unix timestamp reported by the machine.
	LastConnected  *int64
	MastermoduleID *int
	Active         bool
	Lift           bool
	LiftMax        *int
	// LiftA, LiftB, and LiftC are lift calibration values, each a
	// floating point number in a string.
	LiftA                   *string
	LiftB                   *string
	LiftC                   *string
	LiftMeasurements        []LiftMeasurement
	LiftRoll                int
	LiftDifferenceBackFront *int
	LastFilled              *time.Time
	PushDoor                *bool
	Door                    *bool
	LiftDown                *bool
	LiftUp                  *bool
	Photocell               *bool
	LastStatusUpdate        *time.Time
	SoftwareVersion         *float64
	FilledItems             int
}

// LiftMeasurement is one lift calibration measurement. Status is
// "finished", "error", or "running".
type LiftMeasurement struct {
	Level       int
	Millimeters float64
	Status      string
}

// MachineTemperature is a temperature reading of a machine in degrees
// Celsius.
type MachineTemperature struct {
	DatabaseObject
	Temperature float64
	MachineID   int
}

// MachineCoinChanger is the coin changer state of a machine. The coin
// counters are keyed by denomination in cents; the cash amounts are
// decimal strings like "0.00".
type MachineCoinChanger struct {
	DatabaseObject
	Coins5    int
	Coins10   int
	Coins20   int
	Coins50   int
	Coins100  int
	Coins200  int
	MachineID int
	CashBox   string
	Bills     string
}

// MachineWithTrays is a machine together with its trays, as returned by
// DeleteMachine.
type MachineWithTrays struct {
	Machine
	Trays []TrayWithPositions
}

// MachineWithExtras is the list-machines element: a machine with its
// trays, the latest temperature reading, and the coin changer state.
type MachineWithExtras struct {
	MachineWithTrays
	LatestTemperature *MachineTemperature
	CoinChanger       *MachineCoinChanger
}

// NewMachine is the input for CreateMachine. The name, display name,
// serial number, place, test mode, and the four temperature thresholds
// have no server-side default and must be set; nil optional fields are
// omitted from the request.
type NewMachine struct {
	Name            string
	DisplayName     string
	SerialNumber    string
	Place           string
	TestMode        bool
	TempStopTemp    float64
	TempStopTime    int
	TempWarningTemp float64
	TempWarningTime int

	MastermoduleID          *int
	Active                  *bool
	Lift                    *bool
	LiftMax                 *int
	LiftA                   *string
	LiftB                   *string
	LiftC                   *string
	LiftMeasurements        []LiftMeasurement
	LiftRoll                *int
	LiftDifferenceBackFront *int
	Photocell               *bool
	SoftwareVersion         *float64
	FilledItems             *int
}

// MachinePatch describes changes for UpdateMachine. nil fields are left
// unchanged.
type MachinePatch struct {
	Name            *string
	DisplayName     *string
	SerialNumber    *string
	Place           *string
	TestMode        *bool
	TempStopTemp    *float64
	TempStopTime    *int
	TempWarningTemp *float64
	TempWarningTime *int

	MastermoduleID          *int
	Active                  *bool
	Lift                    *bool
	LiftMax                 *int
	LiftA                   *string
	LiftB                   *string
	LiftC                   *string
	LiftMeasurements        []LiftMeasurement
	LiftRoll                *int
	LiftDifferenceBackFront *int
	Photocell               *bool
	SoftwareVersion         *float64
	FilledItems             *int
}

// hasRequiredWriteFields reports whether the patch carries everything
// the API requires on every machine write.
func (p MachinePatch) hasRequiredWriteFields() bool {
	return p.Name != nil && p.DisplayName != nil && p.SerialNumber != nil &&
		p.Place != nil && p.TestMode != nil &&
		p.TempStopTemp != nil && p.TempStopTime != nil &&
		p.TempWarningTemp != nil && p.TempWarningTime != nil
}

// toNewMachine converts a patch that carries all required write fields
// into a write input.
func (p MachinePatch) toNewMachine() NewMachine {
	return NewMachine{
		Name:                    *p.Name,
		DisplayName:             *p.DisplayName,
		SerialNumber:            *p.SerialNumber,
		Place:                   *p.Place,
		TestMode:                *p.TestMode,
		TempStopTemp:            *p.TempStopTemp,
		TempStopTime:            *p.TempStopTime,
		TempWarningTemp:         *p.TempWarningTemp,
		TempWarningTime:         *p.TempWarningTime,
		MastermoduleID:          p.MastermoduleID,
		Active:                  p.Active,
		Lift:                    p.Lift,
		LiftMax:                 p.LiftMax,
		LiftA:                   p.LiftA,
		LiftB:                   p.LiftB,
		LiftC:                   p.LiftC,
		LiftMeasurements:        p.LiftMeasurements,
		LiftRoll:                p.LiftRoll,
		LiftDifferenceBackFront: p.LiftDifferenceBackFront,
		Photocell:               p.Photocell,
		SoftwareVersion:         p.SoftwareVersion,
		FilledItems:             p.FilledItems,
	}
}

// CreateMachine creates a new machine and returns it.
func (c *Client) CreateMachine(ctx context.Context, machine NewMachine) (*Machine, error) {
	body, err := machineBody(machine)
	if err != nil {
		return nil, err
	}
	var dto apiMachineResponse
	if err := c.post(ctx, "machine", body, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "machine", Err: err}
	}
	return &result, nil
}

// GetMachine returns a single machine by id.
func (c *Client) GetMachine(ctx context.Context, id int) (*Machine, error) {
	endpoint := "machine/" + strconv.Itoa(id)
	var dto apiMachineResponse
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// GetMachines returns all machines with their trays, latest temperature
// readings, and coin changer states.
func (c *Client) GetMachines(ctx context.Context) ([]MachineWithExtras, error) {
	var dtos []apiMachineWithExtras
	if err := c.get(ctx, "machines", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("machines", dtos, apiMachineWithExtras.toDomain)
}

// UpdateMachine applies the patch to an existing machine. The API
// requires the full set of create fields on every write; when the patch
// misses any of them the current machine is fetched first and the patch
// is merged on top.
func (c *Client) UpdateMachine(ctx context.Context, id int, patch MachinePatch) (*Machine, error) {
	var update NewMachine
	if patch.hasRequiredWriteFields() {
		update = patch.toNewMachine()
	} else {
		current, err := c.GetMachine(ctx, id)
		if err != nil {
			return nil, err
		}
		update = mergeMachine(current, patch)
	}

	body, err := machineBody(update)
	if err != nil {
		return nil, err
	}
	endpoint := "machine/" + strconv.Itoa(id)
	var dto apiMachineResponse
	if err := c.put(ctx, endpoint, body, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeleteMachine deletes a machine and returns its last state together
// with the trays that belonged to it.
func (c *Client) DeleteMachine(ctx context.Context, id int) (*MachineWithTrays, error) {
	endpoint := "machine/" + strconv.Itoa(id)
	var dto apiMachineWithTrays
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
