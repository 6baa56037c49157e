package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/memory"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/infra/pubsub"
	"bazaar/internal/infra/receipt"
	"bazaar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		seedOption(cfg),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Provide(
		func() *config.Config { return cfg },
		logs.New,
		context.Background,
	)
}

// injectRepo selects the persistence backend. The in-memory store is the
// default; PostgreSQL is opted into through storage.backend.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Backend == config.StorageBackendPostgres {
		return fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewResourceRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewComplaintRepository,
			postgres.NewTransactionManager,
		)
	}

	return fx.Provide(
		memory.NewStore,
		memory.NewUserRepository,
		memory.NewResourceRepository,
		memory.NewOrderRepository,
		memory.NewPaymentRepository,
		memory.NewComplaintRepository,
		memory.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewJWTService,
		newReceiptService,
		pubsub.NewEventPublisher,
	)
}

// newReceiptService creates the QR receipt service with configured size and
// error correction level, falling back to sane defaults.
func newReceiptService(cfg *config.Config) service.ReceiptService {
	if cfg.QRCode == nil {
		return receipt.NewReceiptService(256, "M")
	}

	return receipt.NewReceiptService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAccountService,
		impl.NewCatalogService,
		impl.NewOrderService,
		impl.NewPaymentService,
		impl.NewComplaintService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewRequestIDMiddleware,
		middleware.NewLoggerMiddleware,
		middleware.NewAuthMiddleware,
		middleware.NewErrorMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAccountHandler,
		handler.NewCatalogHandler,
		handler.NewOrderHandler,
		handler.NewPaymentHandler,
		handler.NewComplaintHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// seedOption loads the demo accounts and starter catalog into the in-memory
// store when seeding is enabled.
func seedOption(cfg *config.Config) fx.Option {
	if cfg.Storage.Backend == config.StorageBackendPostgres || cfg.Seed == nil || !cfg.Seed.Enabled {
		return fx.Options()
	}

	return fx.Invoke(func(ctx context.Context, store *memory.Store, logger *slog.Logger) error {
		return memory.Seed(ctx, store, logger)
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
