package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	addressmodel "storefront-backend/internal/domains/address/model"
	addressrepo "storefront-backend/internal/domains/address/repository"
	cartmodel "storefront-backend/internal/domains/cart/model"
	cartrepo "storefront-backend/internal/domains/cart/repository"
	cartservice "storefront-backend/internal/domains/cart/service"
	catalogrepo "storefront-backend/internal/domains/catalog/repository"
	"storefront-backend/internal/domains/order/model"
	"storefront-backend/internal/domains/order/repository"
	promomodel "storefront-backend/internal/domains/promotion/model"
	promorepo "storefront-backend/internal/domains/promotion/repository"
	promoservice "storefront-backend/internal/domains/promotion/service"
	"storefront-backend/internal/shared"
	"storefront-backend/pkg/database"
)

type orderService struct {
	pool       *pgxpool.Pool
	repo       repository.RepositoryInterface
	carts      cartrepo.RepositoryInterface
	catalog    catalogrepo.RepositoryInterface
	addresses  addressrepo.RepositoryInterface
	promotions promoservice.ServiceInterface
	promoRepo  promorepo.RepositoryInterface
	engine     *cartservice.PricingEngine
	tasks      *asynq.Client
}

func NewOrderService(
	pool *pgxpool.Pool,
	repo repository.RepositoryInterface,
	carts cartrepo.RepositoryInterface,
	catalog catalogrepo.RepositoryInterface,
	addresses addressrepo.RepositoryInterface,
	promotions promoservice.ServiceInterface,
	promoRepo promorepo.RepositoryInterface,
	tasks *asynq.Client,
) ServiceInterface {
	return &orderService{
		pool:       pool,
		repo:       repo,
		carts:      carts,
		catalog:    catalog,
		addresses:  addresses,
		promotions: promotions,
		promoRepo:  promoRepo,
		engine:     cartservice.NewPricingEngine(),
		tasks:      tasks,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *model.CreateOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, model.NewRepositoryError("load cart", err)
	}

	lines, err := s.carts.ListLines(ctx, cart.ID)
	if err != nil {
		return nil, model.NewRepositoryError("load cart lines", err)
	}
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	for _, line := range lines {
		if !line.IsActive {
			return nil, model.NewUnavailableItem(line.SKU)
		}
		if line.Stock < line.Quantity {
			return nil, model.NewUnavailableItem(line.SKU)
		}
	}

	addr, err := s.addresses.GetByID(ctx, userID, req.AddressID)
	if err != nil {
		return nil, model.NewRepositoryError("load address", err)
	}
	if addr == nil {
		return nil, addressmodel.NewAddressNotFound(req.AddressID.String())
	}

	snapshot, err := snapshotAddress(addr)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	priced, coupon, err := s.priceCart(ctx, cart, lines, now)
	if err != nil {
		return nil, err
	}

	orderNumber, err := newOrderNumber(now)
	if err != nil {
		return nil, model.NewRepositoryError("generate order number", err)
	}

	order := &model.Order{
		UserID:          userID,
		OrderNumber:     orderNumber,
		Status:          model.StatusPending,
		ShippingAddress: snapshot,
		Note:            req.Note,
		CouponCode:      priced.CouponCode,
		TotalGross:      priced.TotalGross,
		AutoDiscount:    priced.AutoDiscount,
		CouponDiscount:  priced.CouponDiscount,
		TotalDiscount:   priced.TotalDiscount,
		TotalFinal:      priced.TotalFinal,
		Items:           snapshotItems(priced, lines),
	}

	created, err := database.WithTransactionResult(ctx, s.pool, func(tx pgx.Tx) (*model.Order, error) {
		created, err := s.repo.CreateTx(ctx, tx, order)
		if err != nil {
			return nil, err
		}

		for _, line := range lines {
			if err := s.catalog.DecrementStockTx(ctx, tx, line.VariantID, line.Quantity); err != nil {
				return nil, err
			}
		}

		if err := s.recordPromotionUsage(ctx, tx, created, coupon); err != nil {
			return nil, err
		}

		if err := s.carts.ClearTx(ctx, tx, cart.ID); err != nil {
			return nil, err
		}

		return created, nil
	})
	if err != nil {
		return nil, err
	}

	s.enqueueConfirmation(created)

	log.Info().
		Str("order_id", created.ID.String()).
		Str("order_number", created.OrderNumber).
		Str("total_final", created.TotalFinal.String()).
		Msg("Order created")

	return created, nil
}

// priceCart runs the same engine the cart endpoints use, so the checkout
// total always matches what the user last saw.
func (s *orderService) priceCart(ctx context.Context, cart *cartmodel.Cart, lines []cartmodel.CartLine, now time.Time) (*cartmodel.PricedCart, *promomodel.Promotion, error) {
	candidates, err := s.promotions.ActiveAutomaticPromotions(ctx)
	if err != nil {
		return nil, nil, err
	}

	var coupon *promomodel.Promotion
	if cart.CouponCode != nil {
		coupon, err = s.promotions.ResolveCoupon(ctx, *cart.CouponCode)
		if err != nil {
			return nil, nil, err
		}
	}

	priced, err := s.engine.PriceCart(lines, candidates, coupon, now)
	if err != nil {
		return nil, nil, err
	}
	return priced, coupon, nil
}

// recordPromotionUsage writes one usage row per distinct promotion applied
// to the order, coupon included.
func (s *orderService) recordPromotionUsage(ctx context.Context, tx pgx.Tx, order *model.Order, coupon *promomodel.Promotion) error {
	amounts := make(map[uuid.UUID]*promomodel.PromotionUsage)

	for _, item := range order.Items {
		if item.AutoPromotionID == nil || item.AutoDiscount.IsZero() {
			continue
		}
		usage, ok := amounts[*item.AutoPromotionID]
		if !ok {
			usage = &promomodel.PromotionUsage{
				PromotionID: *item.AutoPromotionID,
				UserID:      order.UserID,
				OrderID:     order.ID,
			}
			amounts[*item.AutoPromotionID] = usage
		}
		usage.DiscountAmount = usage.DiscountAmount.Add(item.AutoDiscount)
	}

	if coupon != nil && !order.CouponDiscount.IsZero() {
		amounts[coupon.ID] = &promomodel.PromotionUsage{
			PromotionID:    coupon.ID,
			UserID:         order.UserID,
			OrderID:        order.ID,
			DiscountAmount: order.CouponDiscount,
		}
	}

	for _, usage := range amounts {
		if err := s.promoRepo.CreateUsageTx(ctx, tx, usage); err != nil {
			return model.NewRepositoryError("record promotion usage", err)
		}
	}
	return nil
}

// enqueueConfirmation schedules the confirmation SMS. The order is already
// committed; delivery failures must not fail the request.
func (s *orderService) enqueueConfirmation(order *model.Order) {
	payload, err := json.Marshal(shared.OrderConfirmationPayload{
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		RecipientName: order.ShippingAddress.RecipientName,
		Phone:         order.ShippingAddress.Phone,
		TotalFinal:    order.TotalFinal.String(),
	})
	if err != nil {
		log.Error().Err(err).Str("order_id", order.ID.String()).Msg("Failed to marshal confirmation payload")
		return
	}

	task := asynq.NewTask(shared.TypeSendOrderConfirmation, payload)
	if _, err := s.tasks.Enqueue(task, asynq.Queue(shared.QueueOrders), asynq.MaxRetry(5)); err != nil {
		log.Error().Err(err).Str("order_id", order.ID.String()).Msg("Failed to enqueue confirmation")
	}
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.NewOrderNotFound(orderID.String())
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]*model.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByUser(ctx, userID, (page-1)*limit, limit)
}

func (s *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(model.StatusCancelled) {
		return nil, model.NewInvalidTransition(order.Status, model.StatusCancelled)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, model.StatusCancelled); err != nil {
		return nil, err
	}
	order.Status = model.StatusCancelled

	log.Info().Str("order_id", orderID.String()).Msg("Order cancelled")
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.UpdateStatusRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	next := model.OrderStatus(req.Status)

	order, err := s.repo.GetByID(ctx, uuid.Nil, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.NewOrderNotFound(orderID.String())
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, model.NewInvalidTransition(order.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	log.Info().
		Str("order_id", orderID.String()).
		Str("from", string(order.Status)).
		Str("to", string(next)).
		Msg("Order status updated")

	order.Status = next
	return order, nil
}
