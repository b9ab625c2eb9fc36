package handler

type ContextKey string

var (
	PharmacistCtx ContextKey = "pharmacist"
	ShiftCtx      ContextKey = "shift"
	EventCtx      ContextKey = "event"
)
