package domain

// Shift 是全局的班型模板，时间为 HH:mm 格式的墙钟时间（分钟粒度，无时区）。
// startTime 大于 endTime 仅用于表示跨午夜的班次。
type Shift struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
