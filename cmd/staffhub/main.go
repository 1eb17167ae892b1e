package main

import (
	"context"
	"log/slog"
	"os"

	"staffhub/config"
	"staffhub/internal/delivery"
	"staffhub/internal/delivery/http"
	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/delivery/http/router/handler"
	"staffhub/internal/domain/repository"
	"staffhub/internal/infra/auth"
	logs "staffhub/internal/infra/log"
	"staffhub/internal/infra/notification"
	"staffhub/internal/infra/persistence/firestore"
	"staffhub/internal/infra/persistence/postgres"
	"staffhub/internal/infra/persistence/redis"
	"staffhub/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewEmployeeRepository,
			newChallengeRepository,
		),
	)
}

// newChallengeRepository selects the challenge store backend from config.
func newChallengeRepository(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (repository.ChallengeRepository, error) {
	if cfg.Challenge.Store == config.ChallengeStoreFirestore {
		return firestore.NewChallengeRepository(firestore.Params{
			Lifecycle: lc,
			Ctx:       ctx,
			Config:    cfg,
		})
	}

	return redis.NewChallengeRepository(redis.Params{
		Lifecycle: lc,
		Config:    cfg,
	})
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			notification.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewEmployeeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewEmployeeHandler,
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
