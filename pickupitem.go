package xlautomaten

import (
	"context"
	"strconv"
	"time"
)

// PickupItem is one article inside a pickup. The pickup assignment is
// fixed at creation; SaleID and Dispensed are reported by the machine
// and cannot be written.
type PickupItem struct {
	DatabaseObject
	PickupID  int
	ArticleID int
	// OverrideArticlePrice replaces the article's own price when set.
	// Zero means the item is already paid; nil means the article's
	// price applies.
	OverrideArticlePrice *float64
	SaleID               *int
	Dispensed            *time.Time
}

// NewPickupItem is the input for CreatePickupItem.
type NewPickupItem struct {
	PickupID             int
	ArticleID            int
	OverrideArticlePrice *float64
}

// PickupItemUpdate is the input for UpdatePickupItem. The pickup
// assignment cannot be changed, so every editable field is required.
type PickupItemUpdate struct {
	ArticleID            int
	OverrideArticlePrice *float64
}

// CreatePickupItem adds an article to a pickup and returns the new
// item.
func (c *Client) CreatePickupItem(ctx context.Context, item NewPickupItem) (*PickupItem, error) {
	body := pickupItemBody(item.PickupID, item.ArticleID, item.OverrideArticlePrice)
	var dto apiPickupItemResponse
	if err := c.post(ctx, "pickupcodeitem", body, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "pickupcodeitem", Err: err}
	}
	return &result, nil
}

// UpdatePickupItem replaces the editable fields of an existing pickup
// item. The server ignores the pickup assignment on updates, so a
// placeholder is sent in its place.
func (c *Client) UpdatePickupItem(ctx context.Context, id int, update PickupItemUpdate) (*PickupItem, error) {
	body := pickupItemBody(0, update.ArticleID, update.OverrideArticlePrice)
	endpoint := "pickupcodeitem/" + strconv.Itoa(id)
	var dto apiPickupItemResponse
	if err := c.put(ctx, endpoint, body, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeletePickupItem deletes a pickup item and returns its last state.
func (c *Client) DeletePickupItem(ctx context.Context, id int) (*PickupItem, error) {
	endpoint := "pickupcodeitem/" + strconv.Itoa(id)
	var dto apiPickupItemResponse
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
