package main

import (
	"github.com/hibiken/asynq"

	"storefront-backend/internal/config"
	cartjob "storefront-backend/internal/domains/cart/job"
	cartservice "storefront-backend/internal/domains/cart/service"
	orderjob "storefront-backend/internal/domains/order/job"
	promotionjob "storefront-backend/internal/domains/promotion/job"
	promotionservice "storefront-backend/internal/domains/promotion/service"
	"storefront-backend/internal/infrastructure/sms"
	"storefront-backend/internal/shared"
)

func newServer(
	cfg *config.Config,
	promotions promotionservice.ServiceInterface,
	carts cartservice.ServiceInterface,
	smsSender sms.Sender,
) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				shared.QueueOrders:    5,
				shared.QueuePromotion: 2,
				shared.QueueCart:      1,
				shared.QueueDefault:   2,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(shared.TypeSendOrderConfirmation, orderjob.NewSendConfirmationHandler(smsSender))
	mux.Handle(shared.TypeDeactivateExpiredPromos, promotionjob.NewDeactivateExpiredHandler(promotions))
	mux.Handle(shared.TypePurgeStaleCarts, cartjob.NewPurgeStaleHandler(carts))

	return srv, mux
}
