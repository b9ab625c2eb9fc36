package repository

import (
	"context"
	"errors"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/config"
)

// 持久化布局：字符串键 + JSON 序列化的值，每个集合一个键，可独立读写。
const (
	keyStaff          = "staff"
	keyShiftTemplates = "shiftTemplates"
	keyMonthlyRoster  = "monthlyRoster"
	keyLeaveRecords   = "leaveRecords"
	keySupportNeeds   = "supportNeeds"
	keyCalendarEvents = "calendarEvents"

	// 旧版的全局周六上限设置，迁移后在首次加载时删除
	legacyKeySaturdaySetting = "saturdayLeaveSetting"
)

var ErrKeyNotFound = errors.New("鍵不存在")

// KV 是底层键值存储的抽象，redis 和 postgres 两个后端实现同一份契约。
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Repository struct {
	cfg *config.Config
	kv  KV
}

func NewRepository(cfg *config.Config, kv KV) *Repository {
	return &Repository{
		cfg: cfg,
		kv:  kv,
	}
}

func (r *Repository) key(name string) string {
	return r.cfg.Storage.KeyPrefix + name
}
