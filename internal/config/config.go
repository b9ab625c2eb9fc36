package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Storage struct {
		// Backend 可选 redis、postgres 或 memory，均实现同一份键值布局
		Backend   string `env:"BACKEND" envDefault:"redis"`
		KeyPrefix string `env:"KEY_PREFIX" envDefault:"roster:"`
		Timeout   int    `env:"TIMEOUT" envDefault:"10"`
	} `envPrefix:"STORAGE_"`
	Redis struct {
		Host           string `env:"HOST" envDefault:"localhost"`
		Port           int    `env:"PORT" envDefault:"6379"`
		Password       string `env:"PASSWORD"`
		DB             int    `env:"DB" envDefault:"0"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
	} `envPrefix:"REDIS_"`
	Database struct {
		DSN            string `env:"DSN"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	Roster struct {
		// 周六休假上限策略，默认关闭（最终行为只做冲突提示，不做硬限制）
		SaturdayLeaveLimitEnabled bool `env:"SATURDAY_LEAVE_LIMIT_ENABLED" envDefault:"false"`
		SaturdayLeaveLimit        int  `env:"SATURDAY_LEAVE_LIMIT" envDefault:"1"`
	} `envPrefix:"ROSTER_"`
	Seed struct {
		RandomPharmacists int `env:"RANDOM_PHARMACISTS" envDefault:"0"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
