package xlautomaten

import (
	"context"
	"strconv"
)

// Position is a single dispensing slot on a tray. Number must be unique
// among the positions of a tray and is fixed after creation, as is the
// tray assignment.
type Position struct {
	DatabaseObject
	TrayID int
	Width  int
	// Number is the ordinal of the position on its tray, 1 through 12.
	Number int
}

// NewPosition is the input for CreatePosition. All fields are required.
type NewPosition struct {
	TrayID int
	Width  int
	Number int
}

// PositionPatch describes changes for UpdatePosition. Only the width of
// a position can be edited.
type PositionPatch struct {
	Width *int
}

// CalculatePositionDisplayName computes the numeric label shown to
// customers for a position, from the slot of its tray and its own
// number. Trays in the lower bank (slot 1 to 8) and the upper bank
// (slot 9 to 18) use different base offsets.
func CalculatePositionDisplayName(traySlot, positionNumber int) string {
	var base int
	if traySlot <= 8 {
		base = 10*traySlot + 1
	} else {
		base = 100*(traySlot-8) + 10*(traySlot-7) + 2
	}
	return strconv.Itoa(base + positionNumber - 1)
}

// CreatePosition creates a new position and returns it. The combination
// of tray and number must be unique.
func (c *Client) CreatePosition(ctx context.Context, position NewPosition) (*Position, error) {
	var dto apiPositionResponse
	if err := c.post(ctx, "position", positionBody(position), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "position", Err: err}
	}
	return &result, nil
}

// GetPosition returns a single position by id.
func (c *Client) GetPosition(ctx context.Context, id int) (*Position, error) {
	endpoint := "position/" + strconv.Itoa(id)
	var dto apiPositionResponse
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// GetPositions returns all positions.
func (c *Client) GetPositions(ctx context.Context) ([]Position, error) {
	var dtos []apiPositionResponse
	if err := c.get(ctx, "positions", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("positions", dtos, apiPositionResponse.toDomain)
}

// UpdatePosition applies the patch to an existing position. The
// position endpoint expects a full write including the immutable tray
// and number, so the current position is always fetched first.
func (c *Client) UpdatePosition(ctx context.Context, id int, patch PositionPatch) (*Position, error) {
	current, err := c.GetPosition(ctx, id)
	if err != nil {
		return nil, err
	}
	update := NewPosition{
		TrayID: current.TrayID,
		Width:  valueOr(patch.Width, current.Width),
		Number: current.Number,
	}

	endpoint := "position/" + strconv.Itoa(id)
	var dto apiPositionResponse
	if err := c.put(ctx, endpoint, positionBody(update), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeletePosition deletes a position and returns its last state.
func (c *Client) DeletePosition(ctx context.Context, id int) (*Position, error) {
	endpoint := "position/" + strconv.Itoa(id)
	var dto apiPositionWithMapping
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
