package main

import (
	"context"
	"log/slog"
	"os"

	"mutualaid/config"
	"mutualaid/internal/delivery"
	"mutualaid/internal/delivery/http"
	"mutualaid/internal/delivery/http/middleware"
	"mutualaid/internal/delivery/http/router/handler"
	"mutualaid/internal/delivery/sweeper"
	logs "mutualaid/internal/infra/log"
	"mutualaid/internal/infra/persistence/postgres"
	"mutualaid/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRequestRepository,
			postgres.NewHelpHistoryRepository,
			postgres.NewNotificationRepository,
			postgres.NewReviewRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRequestService,
			impl.NewReviewService,
			impl.NewNotificationService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRequestHandler,
			handler.NewReviewHandler,
			handler.NewNotificationHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				sweeper.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
