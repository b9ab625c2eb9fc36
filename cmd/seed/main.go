package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/config"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/repository"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var randomPharmacists int

	flag.IntVar(&randomPharmacists, "random-pharmacists", -1, "额外插入的随机药师数量 (-1 表示沿用配置)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("無法讀取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if randomPharmacists < 0 {
		randomPharmacists = cfg.Seed.RandomPharmacists
	}

	// 连接存储后端
	kv, cleanup, err := connectStorage(cfg)
	if err != nil {
		logger.Error("無法連接存儲後端", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	repo := repository.NewRepository(cfg, kv)

	if err := seed.SeedDefaults(repo, randomPharmacists); err != nil {
		logger.Error("寫入種子數據失敗", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func connectStorage(cfg *config.Config) (repository.KV, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}

		return repository.NewRedisKV(rdb), func() { _ = rdb.Close() }, nil

	case "postgres":
		dbpool, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}

		dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		defer cancel()

		if err := dbpool.PingContext(ctx); err != nil {
			dbpool.Close()
			return nil, nil, err
		}

		pg := repository.NewPostgresKV(dbpool)
		if err := pg.EnsureSchema(ctx); err != nil {
			dbpool.Close()
			return nil, nil, err
		}

		return pg, func() { _ = dbpool.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("未知的存儲後端: %s", cfg.Storage.Backend)
	}
}
