package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/utils"
)

// ExportMonth 回传整月的表格行，报表输出（CSV/HTML）由前端自行排版。
func (h *Handler) ExportMonth(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	year, m, err := utils.ParseMonth(month)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.successResponse(w, r, "匯出月班表成功", h.engine.ExportMonth(year, m))
}
