package xlautomaten

import (
	"context"
	"time"
)

// Types a mastermodule parameter value can have.
const (
	MastermoduleParameterString  = "string"
	MastermoduleParameterBoolean = "boolean"
	MastermoduleParameterNumeric = "numeric"
)

// MastermoduleParameter is one configuration parameter of a
// mastermodule's frontend, for example the UI language or whether card
// payment is shown. Type selects which of the value fields is set.
type MastermoduleParameter struct {
	DatabaseObject
	Name                string
	ParameterizableID   int
	ParameterizableType string
	// Type is one of the MastermoduleParameter constants.
	Type    string
	Numeric float64
	Bool    bool
	String  string
}

// Mastermodule is the controller built into a machine. The API
// guarantees very little here; everything beyond the name and the
// machine id can be missing, including the audit timestamps.
type Mastermodule struct {
	ID        int
	Name      string
	MachineID int
	// LastConnected is when the module last phoned home, nil for
	// modules that never connected.
	LastConnected  *time.Time
	RemoteName     *string
	UpdateInterval *int
	// RequiresUpdate, Reboot, SaveReboot, and OfflineReported are only
	// present when set.
	RequiresUpdate  *bool
	Reboot          *bool
	SaveReboot      *bool
	OfflineReported *bool
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
	Pin             *int
	Parameters      []MastermoduleParameter
}

// GetMastermodules returns all mastermodules.
func (c *Client) GetMastermodules(ctx context.Context) ([]Mastermodule, error) {
	var dtos []apiMastermodule
	if err := c.get(ctx, "mastermodules", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("mastermodules", dtos, apiMastermodule.toDomain)
}
