package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/utils"
)

// GetScheduleIssues 回传整月的问题清单以及按严重度的计数，仪表板直接用
// 计数渲染顶部卡片。
func (h *Handler) GetScheduleIssues(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	year, m, err := utils.ParseMonth(month)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	issues := h.engine.ScheduleIssues(year, m)

	counts := map[domain.Severity]int{}
	for _, issue := range issues {
		counts[issue.Severity]++
	}

	h.successResponse(w, r, "獲取排班問題成功", map[string]any{
		"issues": issues,
		"summary": map[string]int{
			"total":  len(issues),
			"high":   counts[domain.SeverityHigh],
			"medium": counts[domain.SeverityMedium],
			"low":    counts[domain.SeverityLow],
		},
	})
}
