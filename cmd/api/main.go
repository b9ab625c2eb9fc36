package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/config"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/handler"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/repository"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/roster"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("無法加載配置", "error", err)
		return
	}

	/**********************************************
	 * 连接键值存储
	 **********************************************/
	kv, cleanup, err := connectStorage(cfg)
	if err != nil {
		logger.Error("無法連接存儲後端", "backend", cfg.Storage.Backend, "error", err)
		return
	}
	defer cleanup()

	/**********************************************
	 * 创建 repository 并加载状态
	 **********************************************/
	repo := repository.NewRepository(cfg, kv)
	snapshot := repo.Load(seed.Defaults())
	engine := roster.NewEngine(cfg, repo, snapshot)

	/**********************************************
	 * 创建 handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, engine)
	if err != nil {
		logger.Error("無法創建 handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在啟動服務器...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("無法啟動服務器", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("正在關閉服務器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("關閉服務器失敗", slog.String("error", err.Error()))
	}
	logger.Info("服務器已成功關閉")
}

// connectStorage 按配置挑选存储后端，redis 和 postgres 实现同一份键值布局。
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

		// sql.Open 只是创建连接池对象，需要显式 ping 一下确认连通
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

	case "memory":
		// 进程内存储，仅供开发环境使用，进程结束即丢失
		return repository.NewMemoryKV(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("未知的存儲後端: %s", cfg.Storage.Backend)
	}
}
