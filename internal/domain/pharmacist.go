package domain

type Position string

const (
	PositionFullTime   Position = "正職"
	PositionPartTime   Position = "兼職"
	PositionOPDSupport Position = "OPD支援"
)

type Pharmacist struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
}
