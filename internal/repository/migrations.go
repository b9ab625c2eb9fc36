package repository

import "encoding/json"

// 历史上同一批实体出现过多个模式版本，这里在加载时一次性迁移到最终模式。
// 迁移只删除或改写字段，幂等且不依赖执行顺序。

// migrateShifts 去掉班型模板上已废弃的 saturdayLeaveLimit 字段。
func migrateShifts(raw []byte) ([]byte, bool) {
	var shifts []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shifts); err != nil {
		return raw, false
	}

	changed := false
	for _, shift := range shifts {
		if _, ok := shift["saturdayLeaveLimit"]; ok {
			delete(shift, "saturdayLeaveLimit")
			changed = true
		}
	}

	if !changed {
		return raw, false
	}

	migrated, err := json.Marshal(shifts)
	if err != nil {
		return raw, false
	}
	return migrated, true
}

// migrateSchedule 把旧版的扁平日排班（shiftID 直接映射到 pharmacistID）迁移为
// {shifts, support, notes} 记录。新旧形状靠键名区分：新记录必有 shifts/support/notes
// 之一，旧记录的键全部是班型 id。
func migrateSchedule(raw []byte) ([]byte, bool) {
	var schedule map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return raw, false
	}

	changed := false
	for date, day := range schedule {
		if isLegacyDay(day) {
			shifts := make(map[string]json.RawMessage, len(day))
			for shiftID, pharmacistID := range day {
				shifts[shiftID] = pharmacistID
			}
			rawShifts, err := json.Marshal(shifts)
			if err != nil {
				continue
			}
			schedule[date] = map[string]json.RawMessage{"shifts": rawShifts}
			changed = true
		}
	}

	if !changed {
		return raw, false
	}

	migrated, err := json.Marshal(schedule)
	if err != nil {
		return raw, false
	}
	return migrated, true
}

func isLegacyDay(day map[string]json.RawMessage) bool {
	for key, value := range day {
		switch key {
		case "shifts", "support", "notes":
			return false
		}
		// 旧形状的值只会是 pharmacistID 字符串
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return false
		}
	}
	// 新形状序列化时必带 shifts 键，空对象只可能是旧版残留
	return true
}
