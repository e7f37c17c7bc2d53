package xlautomaten

import "fmt"

// apiPickupItem is the pickup item wire shape. The guaranteed allowlist
// is pickup_code_id, article_id, and price. An override price travels
// as two fields: fixed_price says whether the price field applies.
type apiPickupItem struct {
	PickupCodeID *int       `json:"pickup_code_id" validate:"required"`
	ArticleID    *int       `json:"article_id" validate:"required"`
	Dispensed    *string    `json:"dispensed"`
	FixedPrice   *looseBool `json:"fixed_price" validate:"omitempty,oneof=0 1"`
	Price        *float64   `json:"price" validate:"required"`
	SaleID       *int       `json:"sale_id"`
}

type apiPickupItemResponse struct {
	apiPickupItem
	apiDatabaseObject
}

func (w apiPickupItemResponse) toDomain() (PickupItem, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return PickupItem{}, err
	}
	dispensed, err := parseOptionalAPIDate(w.Dispensed)
	if err != nil {
		return PickupItem{}, fmt.Errorf("dispensed: %w", err)
	}
	var override *float64
	if w.FixedPrice != nil && w.FixedPrice.Bool() {
		override = clonePtr(w.Price)
	}
	return PickupItem{
		DatabaseObject:       base,
		PickupID:             deref(w.PickupCodeID),
		ArticleID:            deref(w.ArticleID),
		OverrideArticlePrice: override,
		SaleID:               clonePtr(w.SaleID),
		Dispensed:            dispensed,
	}, nil
}

// pickupItemBody serializes a pickup item write. An absent override
// price is encoded as fixed_price 0 with a zero price.
func pickupItemBody(pickupID, articleID int, overridePrice *float64) map[string]any {
	fixedPrice := 0
	price := 0.0
	if overridePrice != nil {
		fixedPrice = 1
		price = *overridePrice
	}
	return map[string]any{
		"pickup_code_id": pickupID,
		"article_id":     articleID,
		"fixed_price":    fixedPrice,
		"price":          price,
	}
}
