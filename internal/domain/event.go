package domain

// ScheduleEvent 是钉在某个日期上的自由标注，不参与排班逻辑。
type ScheduleEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Date  string `json:"date"` // YYYY-MM-DD
	Color string `json:"color"`
}
