package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Ajay2840/talentflow-hiring-platform/internal/audit"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/cache"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/chaos"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/config"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/database"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/handler"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/livequery"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/logger"
	"github.com/Ajay2840/talentflow-hiring-platform/internal/repository"
)

type application struct {
	DB         *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
	Chaos      *chaos.Injector
	Auditor    *audit.Auditor
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxOpenConns, cfg.DB.MaxConnLife)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		sugar.Fatal(err)
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		sugar.Fatal(err)
	}
	defer rdb.Close()

	notifier := livequery.NewNotifier(rdb, log)
	repo := repository.NewRepository(pool, notifier)

	app := &application{
		DB:         pool,
		Redis:      rdb,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler: &handler.Handler{
			Logger: log,
			Repo:   repo,
			Cache:  cache.New(rdb, cfg.Redis.CacheTTL),
			Rdb:    rdb,
			Notify: notifier,
			Config: cfg,
		},
		Chaos:   chaos.New(cfg.Chaos.MinDelay, cfg.Chaos.MaxDelay, cfg.Chaos.ErrorRate),
		Auditor: audit.New(pool, log, cfg.Audit.Interval.String()),
	}

	if cfg.Audit.Enabled {
		if err := app.Auditor.Start(ctx); err != nil {
			sugar.Fatal(err)
		}
		defer app.Auditor.Stop()
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
