package handler

import (
	"net/http"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

func (h *Handler) GetSupportNeeds(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "獲取支援需求成功", h.engine.SupportNeeds())
}

// UpdateSupportNeed 支援需求只存在于周一至周五；人数在核心里会把负数钳制为零。
func (h *Handler) UpdateSupportNeed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DayOfWeek *int   `json:"dayOfWeek" validate:"required,gte=1,lte=5"`
		TimeSlot  string `json:"timeSlot" validate:"required,oneof=morning afternoon"`
		Count     *int   `json:"count" validate:"required,gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.engine.UpdateSupportNeed(*req.DayOfWeek, domain.TimeSlot(req.TimeSlot), *req.Count)

	h.successResponse(w, r, "更新支援需求成功", nil)
}
