package handler

import (
	"errors"
	"net/http"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/utils"
)

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "獲取班型列表成功", h.engine.Shifts())
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateShiftTimes(req.StartTime, req.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := h.engine.AddShift(req.Name, req.StartTime, req.EndTime)

	h.successResponse(w, r, "新增班型成功", shift)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(domain.Shift)
	h.successResponse(w, r, "獲取班型成功", shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      *string `json:"name"`
		StartTime *string `json:"startTime"`
		EndTime   *string `json:"endTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := r.Context().Value(ShiftCtx).(domain.Shift)

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}

	if err := utils.ValidateShiftTimes(shift.StartTime, shift.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.engine.UpdateShift(shift); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "班型不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新班型成功", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(domain.Shift)

	if err := h.engine.DeleteShift(shift.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "班型不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "刪除班型成功", nil)
}
