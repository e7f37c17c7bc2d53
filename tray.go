package xlautomaten

import (
	"context"
	"strconv"
)

// Tray is a shelf inside a machine. The combination of machine and slot
// must be unique.
type Tray struct {
	DatabaseObject
	MachineID int
	// Type of the tray, 1 through 3.
	Type int
	// MountingPosition is an integer of up to five digits.
	MountingPosition int
	// Slot is the shelf level inside the machine, 1 through 18.
	Slot int
}

// TrayWithPositions is a tray together with its positions, as returned
// by GetTrays and DeleteTray.
type TrayWithPositions struct {
	Tray
	Positions []Position
}

// NewTray is the input for CreateTray. All fields are required.
type NewTray struct {
	MachineID        int
	Type             int
	MountingPosition int
	Slot             int
}

// TrayPatch describes changes for UpdateTray. nil fields are left
// unchanged.
type TrayPatch struct {
	MachineID        *int
	Type             *int
	MountingPosition *int
	Slot             *int
}

// hasRequiredWriteFields reports whether the patch carries everything
// the API requires on every tray write.
func (p TrayPatch) hasRequiredWriteFields() bool {
	return p.MachineID != nil && p.Type != nil && p.MountingPosition != nil && p.Slot != nil
}

// CreateTray creates a new tray and returns it.
func (c *Client) CreateTray(ctx context.Context, tray NewTray) (*Tray, error) {
	var dto apiTrayResponse
	if err := c.post(ctx, "tray", trayBody(tray), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "tray", Err: err}
	}
	return &result, nil
}

// GetTray returns a single tray by id.
func (c *Client) GetTray(ctx context.Context, id int) (*Tray, error) {
	endpoint := "tray/" + strconv.Itoa(id)
	var dto apiTrayResponse
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// GetTrays returns all trays with their positions.
func (c *Client) GetTrays(ctx context.Context) ([]TrayWithPositions, error) {
	var dtos []apiTrayWithPositions
	if err := c.get(ctx, "trays", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("trays", dtos, apiTrayWithPositions.toDomain)
}

// UpdateTray applies the patch to an existing tray. The tray endpoint
// expects a full write; when the patch misses any field the current
// tray is fetched first and the patch is merged on top.
func (c *Client) UpdateTray(ctx context.Context, id int, patch TrayPatch) (*Tray, error) {
	var update NewTray
	if patch.hasRequiredWriteFields() {
		update = NewTray{
			MachineID:        *patch.MachineID,
			Type:             *patch.Type,
			MountingPosition: *patch.MountingPosition,
			Slot:             *patch.Slot,
		}
	} else {
		current, err := c.GetTray(ctx, id)
		if err != nil {
			return nil, err
		}
		update = NewTray{
			MachineID:        valueOr(patch.MachineID, current.MachineID),
			Type:             valueOr(patch.Type, current.Type),
			MountingPosition: valueOr(patch.MountingPosition, current.MountingPosition),
			Slot:             valueOr(patch.Slot, current.Slot),
		}
	}

	endpoint := "tray/" + strconv.Itoa(id)
	var dto apiTrayResponse
	if err := c.put(ctx, endpoint, trayBody(update), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeleteTray deletes a tray and returns its last state together with
// the positions that belonged to it.
func (c *Client) DeleteTray(ctx context.Context, id int) (*TrayWithPositions, error) {
	endpoint := "tray/" + strconv.Itoa(id)
	var dto apiTrayWithPositions
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
