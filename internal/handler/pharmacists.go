package handler

import (
	"errors"
	"net/http"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

func (h *Handler) GetAllPharmacists(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "獲取藥師名冊成功", h.engine.Pharmacists())
}

func (h *Handler) CreatePharmacist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name" validate:"required"`
		Position string `json:"position" validate:"required,oneof=正職 兼職 OPD支援"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pharmacist := h.engine.AddPharmacist(req.Name, domain.Position(req.Position))

	h.successResponse(w, r, "新增藥師成功", pharmacist)
}

func (h *Handler) GetPharmacist(w http.ResponseWriter, r *http.Request) {
	pharmacist := r.Context().Value(PharmacistCtx).(domain.Pharmacist)
	h.successResponse(w, r, "獲取藥師成功", pharmacist)
}

func (h *Handler) UpdatePharmacist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name"`
		Position *string `json:"position" validate:"omitempty,oneof=正職 兼職 OPD支援"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pharmacist := r.Context().Value(PharmacistCtx).(domain.Pharmacist)

	if req.Name != nil {
		pharmacist.Name = *req.Name
	}
	if req.Position != nil {
		pharmacist.Position = domain.Position(*req.Position)
	}

	if err := h.engine.UpdatePharmacist(pharmacist); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "藥師不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新藥師成功", pharmacist)
}

func (h *Handler) DeletePharmacist(w http.ResponseWriter, r *http.Request) {
	pharmacist := r.Context().Value(PharmacistCtx).(domain.Pharmacist)

	if err := h.engine.DeletePharmacist(pharmacist.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "藥師不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "刪除藥師成功", nil)
}
