package main

import (
	"context"
	"log/slog"
	"os"

	"spinrate/config"
	"spinrate/internal/delivery"
	"spinrate/internal/delivery/api"
	apimiddleware "spinrate/internal/delivery/api/middleware"
	"spinrate/internal/delivery/api/router/handler"
	deliverymiddleware "spinrate/internal/delivery/middleware"
	"spinrate/internal/domain/service"
	"spinrate/internal/infra/auth"
	"spinrate/internal/infra/guest"
	logs "spinrate/internal/infra/log"
	"spinrate/internal/infra/persistence/postgres"
	"spinrate/internal/infra/pubsub"
	"spinrate/internal/infra/qrcode"
	"spinrate/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAlbumRepository,
			postgres.NewReviewRepository,
			postgres.NewProfileRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityTokenVerifier,
			auth.NewWebhookVerifier,
			guest.NewGenerator,
			fx.Annotate(
				guest.NewCookieStoreFactory,
				fx.As(new(service.GuestStoreProvider)),
			),
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService("", 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAlbumService,
			impl.NewIdentityService,
			impl.NewReviewService,
			impl.NewUserSyncService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewIdentityMiddleware,
			deliverymiddleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlbumHandler,
			handler.NewReviewHandler,
			handler.NewWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := postgres.Migrate(ctx, db); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}
	logger.Info("Database schema is up to date")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
