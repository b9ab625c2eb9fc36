package handler

import (
	"errors"
	"net/http"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/utils"
)

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month != "" {
		if _, _, err := utils.ParseMonth(month); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "獲取事件成功", h.engine.EventsByMonth(month))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name" validate:"required"`
		Date  string `json:"date" validate:"required"`
		Color string `json:"color" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateDate(req.Date); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := h.engine.AddEvent(req.Name, req.Date, req.Color)

	h.successResponse(w, r, "新增事件成功", event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  *string `json:"name"`
		Date  *string `json:"date"`
		Color *string `json:"color"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := r.Context().Value(EventCtx).(domain.ScheduleEvent)

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Date != nil {
		if err := utils.ValidateDate(*req.Date); err != nil {
			h.badRequest(w, r, err)
			return
		}
		event.Date = *req.Date
	}
	if req.Color != nil {
		event.Color = *req.Color
	}

	if err := h.engine.UpdateEvent(event); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "事件不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新事件成功", event)
}

// MoveEvent 对应日历上把事件拖放到另一天。
func (h *Handler) MoveEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateDate(req.Date); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := r.Context().Value(EventCtx).(domain.ScheduleEvent)

	if err := h.engine.MoveEvent(event.ID, req.Date); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "事件不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "移動事件成功", nil)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(domain.ScheduleEvent)

	if err := h.engine.DeleteEvent(event.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "事件不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "刪除事件成功", nil)
}
