package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

// Snapshot 是实体仓库的全量内容，整体加载一次、每次变更后整体写回。
type Snapshot struct {
	Pharmacists  []*domain.Pharmacist
	Shifts       []*domain.Shift
	Schedule     domain.MonthlySchedule
	Leaves       []*domain.Leave
	SupportNeeds []*domain.SupportNeed
	Events       []*domain.ScheduleEvent
}

func (r *Repository) storageContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Storage.Timeout)*time.Second)
}

// Load 从键值存储中加载全部集合。任何一个集合缺失或解析失败时退回到对应的
// 默认数据，错误只记日志、不向上抛出。加载时顺便完成一次性的模式迁移。
func (r *Repository) Load(defaults *Snapshot) *Snapshot {
	snapshot := &Snapshot{}

	loadCollection(r, keyStaff, &snapshot.Pharmacists, defaults.Pharmacists, nil)
	loadCollection(r, keyShiftTemplates, &snapshot.Shifts, defaults.Shifts, migrateShifts)
	loadCollection(r, keyMonthlyRoster, &snapshot.Schedule, defaults.Schedule, migrateSchedule)
	loadCollection(r, keyLeaveRecords, &snapshot.Leaves, defaults.Leaves, nil)
	loadCollection(r, keySupportNeeds, &snapshot.SupportNeeds, defaults.SupportNeeds, nil)
	loadCollection(r, keyCalendarEvents, &snapshot.Events, defaults.Events, nil)

	if snapshot.Schedule == nil {
		snapshot.Schedule = domain.MonthlySchedule{}
	}

	// 旧版全局周六上限设置已废弃，首次加载后删除
	ctx, cancel := r.storageContext()
	defer cancel()
	if err := r.kv.Delete(ctx, r.key(legacyKeySaturdaySetting)); err != nil {
		slog.Warn("刪除舊版設定鍵失敗", "key", legacyKeySaturdaySetting, "error", err)
	}

	return snapshot
}

// loadCollection 读取单个集合：缺失时用默认值，迁移函数改写过的数据立即写回。
func loadCollection[T any](r *Repository, name string, dst *T, fallback T, migrate func([]byte) ([]byte, bool)) {
	ctx, cancel := r.storageContext()
	defer cancel()

	raw, err := r.kv.Get(ctx, r.key(name))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			slog.Warn("讀取集合失敗，改用預設資料", "key", name, "error", err)
		}
		*dst = fallback
		return
	}

	migrated := false
	if migrate != nil {
		raw, migrated = migrate(raw)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("解析集合失敗，改用預設資料", "key", name, "error", err)
		*dst = fallback
		return
	}

	if migrated {
		// 写回用新的超时预算，不沿用读取剩下的
		setCtx, setCancel := r.storageContext()
		defer setCancel()
		if err := r.kv.Set(setCtx, r.key(name), raw); err != nil {
			slog.Warn("寫回遷移後的集合失敗", "key", name, "error", err)
		}
	}
}

// Save 把全部集合序列化后写回存储。写入是粗粒度的：任何一次变更都会重写
// 所有键。返回第一个遇到的错误，调用方记录日志后继续以内存状态为准。
func (r *Repository) Save(snapshot *Snapshot) error {
	ctx, cancel := r.storageContext()
	defer cancel()

	collections := []struct {
		key   string
		value any
	}{
		{keyStaff, snapshot.Pharmacists},
		{keyShiftTemplates, snapshot.Shifts},
		{keyMonthlyRoster, snapshot.Schedule},
		{keyLeaveRecords, snapshot.Leaves},
		{keySupportNeeds, snapshot.SupportNeeds},
		{keyCalendarEvents, snapshot.Events},
	}

	var firstErr error
	for _, c := range collections {
		raw, err := json.Marshal(c.value)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := r.kv.Set(ctx, r.key(c.key), raw); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
