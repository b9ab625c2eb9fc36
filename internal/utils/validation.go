package utils

import (
	"fmt"
	"time"
)

// ValidateShiftTimes 检查班型时间是 HH:mm 格式。开始时间允许大于结束时间，
// 表示跨午夜的班次，因此这里不比较先后。
func ValidateShiftTimes(startTime, endTime string) error {
	if _, err := time.Parse("15:04", startTime); err != nil {
		return fmt.Errorf("開始時間格式錯誤，應為 HH:mm")
	}
	if _, err := time.Parse("15:04", endTime); err != nil {
		return fmt.Errorf("結束時間格式錯誤，應為 HH:mm")
	}
	return nil
}

// ValidateDate 检查 YYYY-MM-DD 日期。
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("日期格式錯誤，應為 YYYY-MM-DD")
	}
	return nil
}

// ParseMonth 解析 YYYY-MM，返回年和月。
func ParseMonth(month string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, fmt.Errorf("月份格式錯誤，應為 YYYY-MM")
	}
	return t.Year(), t.Month(), nil
}
