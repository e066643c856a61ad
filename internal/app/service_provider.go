package app

import (
	"context"

	authAPI "farm_backend/internal/api/auth"
	farmAPI "farm_backend/internal/api/farm"
	wheelAPI "farm_backend/internal/api/wheel"
	withdrawAPI "farm_backend/internal/api/withdraw"
	"farm_backend/internal/config"
	"farm_backend/internal/config/env"
	mw "farm_backend/internal/middleware"
	"farm_backend/internal/payout"
	"farm_backend/internal/repository"
	"farm_backend/internal/repository/account_repo"
	"farm_backend/internal/repository/auth_repo"
	"farm_backend/internal/repository/user_repo"
	"farm_backend/internal/service"
	"farm_backend/internal/service/auth"
	"farm_backend/internal/service/farm"
	"farm_backend/internal/service/wheel"
	"farm_backend/internal/service/withdraw"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Game config
	farmCfg config.FarmConfig

	// Auth bits
	jwtCfg   config.JWTConfig
	userRepo repository.UserRepository
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Farm bits
	accountRepo repository.AccountRepository
	farmServ    service.FarmService
	farmHand    *farmAPI.Handler

	// Wheel bits
	wheelServ service.WheelService
	wheelHand *wheelAPI.Handler

	// Withdraw bits
	payoutCfg    config.PayoutConfig
	payoutClient *payout.Client
	withdrawServ service.WithdrawService
	withdrawHand *withdrawAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
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

func (sp *ServiceProvider) FarmCfg() config.FarmConfig {
	if sp.farmCfg == nil {
		cfg, err := env.NewFarmConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get farm config: " + err.Error())
		}

		sp.farmCfg = cfg
	}
	return sp.farmCfg
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

func (sp *ServiceProvider) PayoutCfg() config.PayoutConfig {
	if sp.payoutCfg == nil {
		cfg, err := env.NewPayoutConfig()
		if err != nil {
			panic("failed to get payout config: " + err.Error())
		}
		sp.payoutCfg = cfg
	}
	return sp.payoutCfg
}

func (sp *ServiceProvider) AccountRepository(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx))
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) PayoutClient() *payout.Client {
	if sp.payoutClient == nil {
		sp.payoutClient = payout.NewClient(sp.PayoutCfg())
	}
	return sp.payoutClient
}

func (sp *ServiceProvider) FarmService(ctx context.Context) service.FarmService {
	if sp.farmServ == nil {
		sp.farmServ = farm.NewFarmService(sp.FarmCfg(), sp.AccountRepository(ctx), sp.TXManager(ctx))
	}
	return sp.farmServ
}

func (sp *ServiceProvider) FarmHandler(ctx context.Context) *farmAPI.Handler {
	if sp.farmHand == nil {
		sp.farmHand = farmAPI.NewHandler(farmAPI.HandlerDeps{
			Serv: sp.FarmService(ctx),
		})
	}
	return sp.farmHand
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(sp.FarmCfg(), sp.AccountRepository(ctx), sp.TXManager(ctx))
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{Serv: sp.WheelService(ctx)})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) WithdrawService(ctx context.Context) service.WithdrawService {
	if sp.withdrawServ == nil {
		sp.withdrawServ = withdraw.NewWithdrawService(
			sp.FarmCfg(),
			sp.AccountRepository(ctx),
			sp.PayoutClient(),
			sp.TXManager(ctx),
		)
	}
	return sp.withdrawServ
}

func (sp *ServiceProvider) WithdrawHandler(ctx context.Context) *withdrawAPI.Handler {
	if sp.withdrawHand == nil {
		sp.withdrawHand = withdrawAPI.NewHandler(withdrawAPI.HandlerDeps{Serv: sp.WithdrawService(ctx)})
	}
	return sp.withdrawHand
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
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

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		authMW := mw.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Farm endpoints
		farmHandler := sp.FarmHandler(ctx)
		r.Route("/farm", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/claim", farmHandler.Claim)
			rr.Get("/balance", farmHandler.Balance)
			rr.Get("/zones", farmHandler.Zones)
			rr.Post("/zone", farmHandler.SelectZone)
			rr.Get("/rates", farmHandler.Rates)
		})

		// Wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Route("/wheel", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/spin", wheelHandler.Spin)
		})

		// Withdraw endpoints
		withdrawHandler := sp.WithdrawHandler(ctx)
		r.Route("/withdraw", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/", withdrawHandler.Withdraw)
		})

		sp.router = r
	}

	return sp.router
}
