package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"

	addressmodel "storefront-backend/internal/domains/address/model"
	cartmodel "storefront-backend/internal/domains/cart/model"
	"storefront-backend/internal/domains/order/model"
)

// snapshotAddress copies the address into the order by value. The order keeps
// this copy forever; the source row can be edited or deleted freely.
func snapshotAddress(addr *addressmodel.Address) (model.AddressSnapshot, error) {
	var snap model.AddressSnapshot
	if err := deepcopy.Copy(&snap, addr); err != nil {
		return model.AddressSnapshot{}, model.NewRepositoryError("snapshot address", err)
	}

	if err := snap.Validate(); err != nil {
		return model.AddressSnapshot{}, model.NewIncompleteAddress(err)
	}
	return snap, nil
}

// snapshotItems freezes the priced lines into order items, pairing each
// priced line with its cart line for the variant identity fields.
func snapshotItems(priced *cartmodel.PricedCart, lines []cartmodel.CartLine) []model.OrderItem {
	byItemID := make(map[uuid.UUID]cartmodel.CartLine, len(lines))
	for _, l := range lines {
		byItemID[l.ItemID] = l
	}

	items := make([]model.OrderItem, 0, len(priced.Lines))
	for _, pl := range priced.Lines {
		line := byItemID[pl.ItemID]
		items = append(items, model.OrderItem{
			VariantID:       pl.VariantID,
			SKU:             pl.SKU,
			ProductName:     pl.ProductName,
			Color:           line.Color,
			Size:            line.Size,
			Quantity:        pl.Quantity,
			BasePrice:       pl.BasePrice,
			AutoPromotionID: pl.AutoPromotionID,
			AutoDiscount:    pl.AutoDiscount,
			CouponDiscount:  pl.CouponDiscount,
			PricePaid:       pl.PricePaid,
		})
	}
	return items
}

// newOrderNumber builds a human-readable unique order reference, e.g.
// ORD-20260828-483921.
func newOrderNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%06d", now.Format("20060102"), n.Int64()), nil
}
