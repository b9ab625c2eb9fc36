package handler

import (
	"errors"
	"net/http"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/utils"
)

func (h *Handler) GetLeaves(w http.ResponseWriter, r *http.Request) {
	pharmacistID := r.URL.Query().Get("pharmacistID")
	h.successResponse(w, r, "獲取休假記錄成功", h.engine.Leaves(pharmacistID))
}

func (h *Handler) AddLeave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PharmacistID string `json:"pharmacistID" validate:"required"`
		Date         string `json:"date" validate:"required"`
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

	leave, err := h.engine.AddLeave(req.PharmacistID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSaturdayLeaveLimit):
			h.errorResponse(w, r, "本月週六休假已達上限")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "新增休假成功", leave)
}

func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PharmacistID string `json:"pharmacistID" validate:"required"`
		Date         string `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.engine.DeleteLeave(req.PharmacistID, req.Date)

	h.successResponse(w, r, "刪除休假成功", nil)
}
