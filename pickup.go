package xlautomaten

import (
	"context"
	"net/url"
	"time"
)

// Pickup is a code entitling a customer to retrieve articles from a
// machine during a time window. Pickups are addressed by their code,
// not their numeric id; the id only matters when adding items. UserID
// records who created the pickup and cannot be written.
type Pickup struct {
	DatabaseObject
	// Code is the human-chosen pickup code. Needs to be unique.
	Code           string
	ValidFrom      time.Time
	ValidUntil     time.Time
	MastermoduleID int
	// CardNumber enables pickup via RFID card or QR code carrying this
	// value.
	CardNumber *string
	// PreventCartEdits stops the customer from editing the articles of
	// the pickup after creation. Useful for prepaid orders.
	PreventCartEdits bool
	// DontReserveArticles disables reserving available articles in the
	// machine for this pickup.
	DontReserveArticles bool
	// ReserveFrom is when article reservation starts. The server
	// defaults it to the start of the pickup window.
	ReserveFrom         time.Time
	Callback            *string
	PreventAutoDeletion bool
	ExternalID          *string
	UserID              int
}

// PickupWithItems is a pickup together with the items loaded into it,
// as returned by GetPickup and GetPickups.
type PickupWithItems struct {
	Pickup
	Items []PickupItem
}

// NewPickup is the input for CreatePickup. Code, the pickup window, and
// the mastermodule are required; everything else is optional.
type NewPickup struct {
	Code           string
	ValidFrom      time.Time
	ValidUntil     time.Time
	MastermoduleID int

	CardNumber          *string
	PreventCartEdits    bool
	DontReserveArticles bool
	ReserveFrom         *time.Time
	Callback            *string
	PreventAutoDeletion bool
	ExternalID          *string
}

// PickupPatch describes changes for UpdatePickup. nil fields are left
// unchanged.
type PickupPatch struct {
	Code           *string
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	MastermoduleID *int

	CardNumber          *string
	PreventCartEdits    *bool
	DontReserveArticles *bool
	ReserveFrom         *time.Time
	Callback            *string
	PreventAutoDeletion *bool
	ExternalID          *string
}

// hasRequiredWriteFields reports whether the patch carries everything
// the API requires on every pickup write.
func (p PickupPatch) hasRequiredWriteFields() bool {
	return p.Code != nil && p.ValidFrom != nil && p.ValidUntil != nil && p.MastermoduleID != nil
}

// CreatePickup creates a new pickup code and returns it.
func (c *Client) CreatePickup(ctx context.Context, pickup NewPickup) (*Pickup, error) {
	var dto apiPickupResponse
	if err := c.post(ctx, "pickupcode", pickupBody(pickup), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "pickupcode", Err: err}
	}
	return &result, nil
}

// GetPickup returns a single pickup by its code, together with its
// items.
func (c *Client) GetPickup(ctx context.Context, code string) (*PickupWithItems, error) {
	endpoint := "pickupcode/" + url.PathEscape(code)
	var dto apiPickupWithItems
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// GetPickups returns all pickups with their items.
func (c *Client) GetPickups(ctx context.Context) ([]PickupWithItems, error) {
	var dtos []apiPickupWithItems
	if err := c.get(ctx, "pickupcodes", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("pickupcodes", dtos, apiPickupWithItems.toDomain)
}

// UpdatePickup applies the patch to the pickup with the given code. The
// pickup endpoint expects a full write; when the patch misses a
// required field the current pickup is fetched first and the patch is
// merged on top.
func (c *Client) UpdatePickup(ctx context.Context, code string, patch PickupPatch) (*Pickup, error) {
	var update NewPickup
	if patch.hasRequiredWriteFields() {
		update = NewPickup{
			Code:                *patch.Code,
			ValidFrom:           *patch.ValidFrom,
			ValidUntil:          *patch.ValidUntil,
			MastermoduleID:      *patch.MastermoduleID,
			CardNumber:          patch.CardNumber,
			PreventCartEdits:    deref(patch.PreventCartEdits),
			DontReserveArticles: deref(patch.DontReserveArticles),
			ReserveFrom:         patch.ReserveFrom,
			Callback:            patch.Callback,
			PreventAutoDeletion: deref(patch.PreventAutoDeletion),
			ExternalID:          patch.ExternalID,
		}
	} else {
		current, err := c.GetPickup(ctx, code)
		if err != nil {
			return nil, err
		}
		update = mergePickup(&current.Pickup, patch)
	}

	endpoint := "pickupcode/" + url.PathEscape(code)
	var dto apiPickupResponse
	if err := c.put(ctx, endpoint, pickupBody(update), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeletePickup deletes a pickup by its code and returns its last state.
func (c *Client) DeletePickup(ctx context.Context, code string) (*Pickup, error) {
	endpoint := "pickupcode/" + url.PathEscape(code)
	var dto apiPickupResponse
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
