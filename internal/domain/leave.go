package domain

// Leave 表示某位药师某一天的休假，(pharmacistId, date) 至多一条记录。
type Leave struct {
	ID           string `json:"id"`
	PharmacistID string `json:"pharmacistId"`
	Date         string `json:"date"` // YYYY-MM-DD
}
