package domain

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
)

// SupportSlots 中的每个位置是一个固定的支援席位，nil 元素表示空席。
// 席位的下标是稳定的身份，移除人员时不会重排。
type SupportSlots struct {
	Morning   []*string `json:"morning,omitempty"`
	Afternoon []*string `json:"afternoon,omitempty"`
}

// Slots 返回某个时段的席位数组。
func (s *SupportSlots) Slots(slot TimeSlot) []*string {
	if slot == TimeSlotMorning {
		return s.Morning
	}
	return s.Afternoon
}

// SetSlots 覆盖某个时段的席位数组。
func (s *SupportSlots) SetSlots(slot TimeSlot, slots []*string) {
	if slot == TimeSlotMorning {
		s.Morning = slots
	} else {
		s.Afternoon = slots
	}
}

// DailySchedule 是某一天的排班记录。
type DailySchedule struct {
	Shifts  map[string]string `json:"shifts"` // shiftID -> pharmacistID，每个班型每天至多一人
	Support *SupportSlots     `json:"support,omitempty"`
	Notes   string            `json:"notes,omitempty"`
}

// IsEmpty 用于维护稀疏表示：一天完全没有内容时应从月表中删除。
func (d *DailySchedule) IsEmpty() bool {
	return len(d.Shifts) == 0 && d.Support == nil && d.Notes == ""
}

// MonthlySchedule 按日期（YYYY-MM-DD）稀疏存储，没有条目表示该日未排班。
type MonthlySchedule map[string]*DailySchedule

type SupportNeed struct {
	DayOfWeek int      `json:"dayOfWeek"` // 1-5 对应周一至周五
	TimeSlot  TimeSlot `json:"timeSlot"`
	Count     int      `json:"count"`
}
