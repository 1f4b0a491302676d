package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addressmodel "storefront-backend/internal/domains/address/model"
	cartmodel "storefront-backend/internal/domains/cart/model"
	cartservice "storefront-backend/internal/domains/cart/service"
)

func testAddress() *addressmodel.Address {
	return &addressmodel.Address{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		RecipientName: "Nguyen Van A",
		Phone:         "0901234567",
		Street:        "123 Le Loi",
		Ward:          "Ben Nghe",
		District:      "District 1",
		Province:      "Ho Chi Minh",
	}
}

func TestSnapshotAddressCopiesByValue(t *testing.T) {
	addr := testAddress()

	snap, err := snapshotAddress(addr)
	require.NoError(t, err)

	assert.Equal(t, addr.RecipientName, snap.RecipientName)
	assert.Equal(t, addr.Street, snap.Street)

	// Mutating the source after the snapshot must not leak through.
	addr.RecipientName = "Someone Else"
	addr.Street = "999 Changed St"
	assert.Equal(t, "Nguyen Van A", snap.RecipientName)
	assert.Equal(t, "123 Le Loi", snap.Street)
}

func TestSnapshotAddressRejectsIncomplete(t *testing.T) {
	addr := testAddress()
	addr.Phone = ""

	_, err := snapshotAddress(addr)
	assert.Error(t, err)
}

func TestSnapshotItemsFreezesVariantData(t *testing.T) {
	line := cartmodel.CartLine{
		ItemID:      uuid.New(),
		VariantID:   uuid.New(),
		SKU:         "TSHIRT-RED-M",
		Color:       "Red",
		Size:        "M",
		ProductID:   uuid.New(),
		ProductName: "Classic Tee",
		BasePrice:   decimal.NewFromInt(150_000),
		Quantity:    2,
		Stock:       10,
		IsActive:    true,
	}

	engine := cartservice.NewPricingEngine()
	priced, err := engine.PriceCart([]cartmodel.CartLine{line}, nil, nil, time.Now())
	require.NoError(t, err)

	items := snapshotItems(priced, []cartmodel.CartLine{line})
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, line.VariantID, item.VariantID)
	assert.Equal(t, "TSHIRT-RED-M", item.SKU)
	assert.Equal(t, "Classic Tee", item.ProductName)
	assert.Equal(t, "Red", item.Color)
	assert.Equal(t, "M", item.Size)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, decimal.NewFromInt(150_000).Equal(item.BasePrice))
	assert.True(t, decimal.NewFromInt(300_000).Equal(item.PricePaid))
}

func TestOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	n, err := newOrderNumber(now)
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-20260828-\d{6}$`, n)
}
