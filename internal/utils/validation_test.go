package utils

import (
	"testing"
	"time"
)

func TestValidateShiftTimes(t *testing.T) {
	if err := ValidateShiftTimes("08:30", "12:00"); err != nil {
		t.Errorf("合法时间应通过: %v", err)
	}
	// 跨午夜班次：开始晚于结束也是合法的
	if err := ValidateShiftTimes("22:00", "06:00"); err != nil {
		t.Errorf("跨午夜班次应通过: %v", err)
	}
	if err := ValidateShiftTimes("8:3", "12:00"); err == nil {
		t.Error("非法格式应被拒绝")
	}
	if err := ValidateShiftTimes("08:30", "25:00"); err == nil {
		t.Error("越界时间应被拒绝")
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2026-03-02"); err != nil {
		t.Errorf("合法日期应通过: %v", err)
	}
	if err := ValidateDate("2026-3-2"); err == nil {
		t.Error("未补零的日期应被拒绝")
	}
	if err := ValidateDate("2026-02-30"); err == nil {
		t.Error("不存在的日期应被拒绝")
	}
}

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2026-03")
	if err != nil {
		t.Fatalf("合法月份应通过: %v", err)
	}
	if year != 2026 || month != time.March {
		t.Errorf("期望 2026 年 3 月，实际=%d 年 %d 月", year, month)
	}

	if _, _, err := ParseMonth("2026-3"); err == nil {
		t.Error("未补零的月份应被拒绝")
	}
}
