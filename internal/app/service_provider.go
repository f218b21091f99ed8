package app

import (
	"context"
	authAPI "mining_backend/internal/api/auth"
	cascadeAPI "mining_backend/internal/api/cascade"
	miningAPI "mining_backend/internal/api/mining"
	statsAPI "mining_backend/internal/api/stats"
	"mining_backend/internal/config"
	"mining_backend/internal/config/env"
	"mining_backend/internal/metrics"
	"mining_backend/internal/middleware"
	"mining_backend/internal/repository"
	"mining_backend/internal/repository/auth_repo"
	"mining_backend/internal/repository/bonus_repo"
	"mining_backend/internal/repository/round_repo"
	"mining_backend/internal/repository/stats_repo"
	"mining_backend/internal/repository/user_repo"
	"mining_backend/internal/service"
	"mining_backend/internal/service/auth"
	"mining_backend/internal/service/cascade"
	"mining_backend/internal/service/mining"
	"mining_backend/internal/service/stats"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logger
	loggerCfg config.LoggerConfig

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Stats bits
	statsRepo repository.StatsRepository
	statsServ service.StatsService
	statsHand *statsAPI.Handler

	// Cascade bits
	cascadeCfg  config.CascadeConfig
	bonusRepo   repository.BonusRepository
	cascadeServ service.CascadeService
	cascadeHand *cascadeAPI.Handler

	// Mining bits
	miningCfg  config.MiningConfig
	roundRepo  repository.RoundRepository
	miningServ service.MiningService
	miningHand *miningAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		sp.loggerCfg = env.NewLoggerConfig()
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:            sp.AuthService(ctx),
			RefreshTokenTTL: sp.JWTCfg().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) StatsService() service.StatsService {
	if sp.statsServ == nil {
		sp.statsServ = stats.NewStatsService(sp.StatsRepository())
	}
	return sp.statsServ
}

func (sp *ServiceProvider) StatsHandler() *statsAPI.Handler {
	if sp.statsHand == nil {
		sp.statsHand = statsAPI.NewHandler(statsAPI.HandlerDeps{Serv: sp.StatsService()})
	}
	return sp.statsHand
}

func (sp *ServiceProvider) CascadeCfg() config.CascadeConfig {
	if sp.cascadeCfg == nil {
		cfg, err := env.NewCascadeConfigFromYAML(env.GameConfigPath())
		if err != nil {
			panic("failed to get cascade config: " + err.Error())
		}
		sp.cascadeCfg = cfg
	}
	return sp.cascadeCfg
}

func (sp *ServiceProvider) BonusRepository(ctx context.Context) repository.BonusRepository {
	if sp.bonusRepo == nil {
		sp.bonusRepo = bonus_repo.NewBonusRepository(sp.DBClient(ctx))
	}
	return sp.bonusRepo
}

func (sp *ServiceProvider) CascadeService(ctx context.Context) service.CascadeService {
	if sp.cascadeServ == nil {
		sp.cascadeServ = cascade.NewCascadeService(
			sp.CascadeCfg(),
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.BonusRepository(ctx),
			sp.StatsRepository(),
		)
	}
	return sp.cascadeServ
}

func (sp *ServiceProvider) CascadeHandler(ctx context.Context) *cascadeAPI.Handler {
	if sp.cascadeHand == nil {
		sp.cascadeHand = cascadeAPI.NewHandler(cascadeAPI.HandlerDeps{Serv: sp.CascadeService(ctx)})
	}
	return sp.cascadeHand
}

func (sp *ServiceProvider) MiningCfg() config.MiningConfig {
	if sp.miningCfg == nil {
		cfg, err := env.NewMiningConfigFromYAML(env.GameConfigPath())
		if err != nil {
			panic("failed to get mining config: " + err.Error())
		}
		sp.miningCfg = cfg
	}
	return sp.miningCfg
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) MiningService(ctx context.Context) service.MiningService {
	if sp.miningServ == nil {
		sp.miningServ = mining.NewMiningService(
			sp.MiningCfg(),
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.BonusRepository(ctx),
			sp.RoundRepository(ctx),
			sp.StatsRepository(),
		)
	}
	return sp.miningServ
}

func (sp *ServiceProvider) MiningHandler(ctx context.Context) *miningAPI.Handler {
	if sp.miningHand == nil {
		sp.miningHand = miningAPI.NewHandler(miningAPI.HandlerDeps{Serv: sp.MiningService(ctx)})
	}
	return sp.miningHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestLogger)
		r.Use(metrics.Middleware)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
			ExposedHeaders:   []string{"Link", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Handle("/metrics", promhttp.Handler())
		r.Get("/stats", sp.StatsHandler().All)

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Игровые ручки требуют access токен
		cascadeHandler := sp.CascadeHandler(ctx)
		miningHandler := sp.MiningHandler(ctx)
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.Get("/balance", cascadeHandler.Balance)
			rr.Post("/deposit", cascadeHandler.Deposit)
			rr.Post("/cascade/spin", cascadeHandler.Spin)

			rr.Route("/mining", func(mr chi.Router) {
				mr.Post("/start", miningHandler.Start)
				mr.Post("/spin", miningHandler.Spin)
				mr.Get("/state", miningHandler.State)
				mr.Post("/reset", miningHandler.Reset)
				mr.Get("/history", miningHandler.History)
			})
		})

		sp.router = r
	}

	return sp.router
}
