package xlautomaten

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupItemBody(t *testing.T) {
	t.Parallel()

	// Without an override the price pair is still sent, zeroed out.
	body := pickupItemBody(9, 11, nil)
	assert.Equal(t, 9, body["pickup_code_id"])
	assert.Equal(t, 11, body["article_id"])
	assert.Equal(t, 0, body["fixed_price"])
	assert.Equal(t, 0.0, body["price"])

	body = pickupItemBody(9, 11, ptr(2.5))
	assert.Equal(t, 1, body["fixed_price"])
	assert.Equal(t, 2.5, body["price"])
}

func TestPickupItemToDomain_OverridePrice(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 4,
		"pickup_code_id": 9,
		"article_id": 11,
		"fixed_price": 1,
		"price": 2.5,
		"created_at": "2023-01-02 03:04:05",
		"updated_at": "2023-01-02 03:04:05"
	}`
	var dto apiPickupItemResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &dto))

	item, err := dto.toDomain()
	require.NoError(t, err)
	require.NotNil(t, item.OverrideArticlePrice)
	assert.Equal(t, 2.5, *item.OverrideArticlePrice)
	assert.Nil(t, item.Dispensed)
	assert.Nil(t, item.SaleID)
}

func TestPickupItemToDomain_IgnoresPriceWithoutFixedPrice(t *testing.T) {
	t.Parallel()

	// The price field always carries the effective article price; it
	// only becomes an override when fixed_price is set.
	raw := `{
		"id": 4,
		"pickup_code_id": 9,
		"article_id": 11,
		"fixed_price": 0,
		"price": 1.2,
		"dispensed": "2024-03-01 10:00:00",
		"sale_id": 88,
		"created_at": "2023-01-02 03:04:05",
		"updated_at": "2023-01-02 03:04:05"
	}`
	var dto apiPickupItemResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &dto))

	item, err := dto.toDomain()
	require.NoError(t, err)
	assert.Nil(t, item.OverrideArticlePrice)
	require.NotNil(t, item.Dispensed)
	require.NotNil(t, item.SaleID)
	assert.Equal(t, 88, *item.SaleID)
}
