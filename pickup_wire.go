package xlautomaten

import "fmt"

// apiPickup is the pickup wire shape. The guaranteed allowlist is code,
// valid_from, valid_until, mastermodule_id, reserve_from, and user_id.
// The cart_editable, reserve, and auto_delete flags are inverted
// relative to their domain names.
type apiPickup struct {
	CardNumber     *string    `json:"card_number"`
	CartEditable   *looseBool `json:"cart_editable" validate:"omitempty,oneof=0 1"`
	Reserve        *looseBool `json:"reserve" validate:"omitempty,oneof=0 1"`
	ValidFrom      *string    `json:"valid_from" validate:"required"`
	ValidUntil     *string    `json:"valid_until" validate:"required"`
	Code           *string    `json:"code" validate:"required"`
	MastermoduleID *int       `json:"mastermodule_id" validate:"required"`
	ReserveFrom    *string    `json:"reserve_from"`
	Callback       *string    `json:"callback"`
	AutoDelete     *looseBool `json:"auto_delete" validate:"omitempty,oneof=0 1"`
	ExternalID     *string    `json:"external_id"`
	UserID         *wireInt   `json:"user_id" validate:"required"`
}

type apiPickupResponse struct {
	apiPickup
	apiDatabaseObject
}

// apiPickupWithItems is the get-pickup shape, which carries the items
// loaded into the pickup.
type apiPickupWithItems struct {
	apiPickupResponse
	Items []apiPickupItemResponse `json:"items"`
}

func (w apiPickupResponse) toDomain() (Pickup, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Pickup{}, err
	}
	validFrom, err := parseAPIDatePtr(w.ValidFrom)
	if err != nil {
		return Pickup{}, fmt.Errorf("valid_from: %w", err)
	}
	validUntil, err := parseAPIDatePtr(w.ValidUntil)
	if err != nil {
		return Pickup{}, fmt.Errorf("valid_until: %w", err)
	}
	// Older responses omit reserve_from; the server defaults it to the
	// start of the pickup window.
	reserveFrom := validFrom
	if w.ReserveFrom != nil && *w.ReserveFrom != "" {
		reserveFrom, err = ParseAPIDate(*w.ReserveFrom)
		if err != nil {
			return Pickup{}, fmt.Errorf("reserve_from: %w", err)
		}
	}
	return Pickup{
		DatabaseObject:      base,
		Code:                deref(w.Code),
		ValidFrom:           validFrom,
		ValidUntil:          validUntil,
		MastermoduleID:      deref(w.MastermoduleID),
		CardNumber:          optionalStr(w.CardNumber),
		PreventCartEdits:    w.CartEditable != nil && !w.CartEditable.Bool(),
		DontReserveArticles: w.Reserve != nil && !w.Reserve.Bool(),
		ReserveFrom:         reserveFrom,
		Callback:            optionalStr(w.Callback),
		PreventAutoDeletion: w.AutoDelete != nil && !w.AutoDelete.Bool(),
		ExternalID:          optionalStr(w.ExternalID),
		UserID:              int(deref(w.UserID)),
	}, nil
}

func (w apiPickupWithItems) toDomain() (PickupWithItems, error) {
	pickup, err := w.apiPickupResponse.toDomain()
	if err != nil {
		return PickupWithItems{}, err
	}
	items := make([]PickupItem, len(w.Items))
	for i, dto := range w.Items {
		item, err := dto.toDomain()
		if err != nil {
			return PickupWithItems{}, err
		}
		items[i] = item
	}
	return PickupWithItems{Pickup: pickup, Items: items}, nil
}

// pickupBody serializes a pickup write. The inverted flags are always
// sent; string fields and the reservation start appear only when the
// input carries a value.
func pickupBody(p NewPickup) map[string]any {
	body := map[string]any{
		"code":            p.Code,
		"valid_from":      FormatAPIDate(p.ValidFrom),
		"valid_until":     FormatAPIDate(p.ValidUntil),
		"mastermodule_id": p.MastermoduleID,
		"cart_editable":   boolToWire(!p.PreventCartEdits),
		"reserve":         boolToWire(!p.DontReserveArticles),
		"auto_delete":     boolToWire(!p.PreventAutoDeletion),
	}
	if p.CardNumber != nil && *p.CardNumber != "" {
		body["card_number"] = *p.CardNumber
	}
	if p.ReserveFrom != nil {
		body["reserve_from"] = FormatAPIDate(*p.ReserveFrom)
	}
	if p.Callback != nil && *p.Callback != "" {
		body["callback"] = *p.Callback
	}
	if p.ExternalID != nil && *p.ExternalID != "" {
		body["external_id"] = *p.ExternalID
	}
	return body
}

// mergePickup overlays a patch on the current server state, producing
// the full write input the pickup endpoint expects.
func mergePickup(current *Pickup, patch PickupPatch) NewPickup {
	merged := NewPickup{
		Code:                current.Code,
		ValidFrom:           current.ValidFrom,
		ValidUntil:          current.ValidUntil,
		MastermoduleID:      current.MastermoduleID,
		CardNumber:          clonePtr(current.CardNumber),
		PreventCartEdits:    current.PreventCartEdits,
		DontReserveArticles: current.DontReserveArticles,
		ReserveFrom:         ptr(current.ReserveFrom),
		Callback:            clonePtr(current.Callback),
		PreventAutoDeletion: current.PreventAutoDeletion,
		ExternalID:          clonePtr(current.ExternalID),
	}
	if patch.Code != nil {
		merged.Code = *patch.Code
	}
	if patch.ValidFrom != nil {
		merged.ValidFrom = *patch.ValidFrom
	}
	if patch.ValidUntil != nil {
		merged.ValidUntil = *patch.ValidUntil
	}
	if patch.MastermoduleID != nil {
		merged.MastermoduleID = *patch.MastermoduleID
	}
	if patch.CardNumber != nil {
		merged.CardNumber = patch.CardNumber
	}
	if patch.PreventCartEdits != nil {
		merged.PreventCartEdits = *patch.PreventCartEdits
	}
	if patch.DontReserveArticles != nil {
		merged.DontReserveArticles = *patch.DontReserveArticles
	}
	if patch.ReserveFrom != nil {
		merged.ReserveFrom = patch.ReserveFrom
	}
	if patch.Callback != nil {
		merged.Callback = patch.Callback
	}
	if patch.PreventAutoDeletion != nil {
		merged.PreventAutoDeletion = *patch.PreventAutoDeletion
	}
	if patch.ExternalID != nil {
		merged.ExternalID = patch.ExternalID
	}
	return merged
}
