package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/config"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/roster"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	engine     *roster.Engine
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, engine *roster.Engine) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		engine:     engine,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 药师名册
	h.Mux.Route("/pharmacists", func(r chi.Router) {
		r.Get("/", h.GetAllPharmacists)
		r.Post("/", h.CreatePharmacist)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.pharmacistInfo)
			r.Get("/", h.GetPharmacist)
			r.Patch("/", h.UpdatePharmacist)
			r.Delete("/", h.DeletePharmacist)
		})
	})

	// 班型模板
	h.Mux.Route("/shifts", func(r chi.Router) {
		r.Get("/", h.GetAllShifts)
		r.Post("/", h.CreateShift)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.shiftInfo)
			r.Get("/", h.GetShift)
			r.Patch("/", h.UpdateShift)
			r.Delete("/", h.DeleteShift)
		})
	})

	// 月表
	h.Mux.Route("/schedule/{month}", func(r chi.Router) {
		r.Get("/", h.GetMonthSchedule)
		r.Post("/batch", h.BatchAssignMonth)
	})

	// 单日指派操作
	h.Mux.Route("/days/{date}", func(r chi.Router) {
		r.Post("/shifts", h.AssignShift)
		r.Post("/support", h.AssignSupport)
		r.Post("/saturday-support", h.AssignSaturdaySupport)
		r.Put("/notes", h.UpdateNotes)
	})

	// 休假
	h.Mux.Route("/leaves", func(r chi.Router) {
		r.Get("/", h.GetLeaves)
		r.Post("/", h.AddLeave)
		r.Delete("/", h.DeleteLeave)
	})

	// 支援人力需求
	h.Mux.Route("/support-needs", func(r chi.Router) {
		r.Get("/", h.GetSupportNeeds)
		r.Put("/", h.UpdateSupportNeed)
	})

	// 日历事件
	h.Mux.Route("/events", func(r chi.Router) {
		r.Get("/", h.GetEvents)
		r.Post("/", h.CreateEvent)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.eventInfo)
			r.Patch("/", h.UpdateEvent)
			r.Patch("/date", h.MoveEvent)
			r.Delete("/", h.DeleteEvent)
		})
	})

	// 仪表板与导出
	h.Mux.Get("/issues/{month}", h.GetScheduleIssues)
	h.Mux.Get("/export/{month}", h.ExportMonth)
}
