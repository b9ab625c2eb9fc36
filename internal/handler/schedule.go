package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/utils"
)

func (h *Handler) GetMonthSchedule(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	if _, _, err := utils.ParseMonth(month); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.successResponse(w, r, "獲取月班表成功", h.engine.MonthSchedule(month))
}

// AssignShift 空的 pharmacistID 表示取消指派。这里不检查药师当天是否休假：
// 先指派、后由仪表板标记冲突。
func (h *Handler) AssignShift(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := utils.ValidateDate(date); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var req struct {
		ShiftID      string `json:"shiftID" validate:"required"`
		PharmacistID string `json:"pharmacistID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.engine.AssignShift(date, req.ShiftID, req.PharmacistID)

	h.successResponse(w, r, "指派班次成功", nil)
}

func (h *Handler) AssignSupport(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := utils.ValidateDate(date); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var req struct {
		TimeSlot     string `json:"timeSlot" validate:"required,oneof=morning afternoon"`
		SlotIndex    *int   `json:"slotIndex" validate:"required,gte=0"`
		PharmacistID string `json:"pharmacistID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.engine.AssignSupport(date, domain.TimeSlot(req.TimeSlot), *req.SlotIndex, req.PharmacistID)

	h.successResponse(w, r, "指派支援成功", nil)
}

func (h *Handler) AssignSaturdaySupport(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := utils.ValidateDate(date); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var req struct {
		PharmacistID string `json:"pharmacistID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.engine.AssignSaturdaySupport(date, req.PharmacistID)

	h.successResponse(w, r, "指派週六支援成功", nil)
}

func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := utils.ValidateDate(date); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.engine.UpdateNotes(date, req.Notes)

	h.successResponse(w, r, "更新備註成功", nil)
}

// BatchAssignMonth 为整个月批次指派同一班型，跳过该药师的休假日。
func (h *Handler) BatchAssignMonth(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	year, m, err := utils.ParseMonth(month)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	var req struct {
		ShiftID      string `json:"shiftID" validate:"required"`
		PharmacistID string `json:"pharmacistID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	count := h.engine.AssignShiftForMonth(year, m, req.ShiftID, req.PharmacistID)

	h.successResponse(w, r, "批次排班成功", map[string]int{"assignedDays": count})
}
