package seed

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/repository"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/utils"
)

// Defaults 是存储缺失或损坏时使用的预设数据集：几位示例药师、四个班型、
// 空的月表/休假/事件。
func Defaults() *repository.Snapshot {
	return &repository.Snapshot{
		Pharmacists: []*domain.Pharmacist{
			{ID: uuid.NewString(), Name: "王藥師", Position: domain.PositionFullTime},
			{ID: uuid.NewString(), Name: "李藥師", Position: domain.PositionFullTime},
			{ID: uuid.NewString(), Name: "陳藥師", Position: domain.PositionPartTime},
		},
		Shifts: []*domain.Shift{
			{ID: uuid.NewString(), Name: "早班", StartTime: "08:30", EndTime: "12:00"},
			{ID: uuid.NewString(), Name: "午班", StartTime: "13:00", EndTime: "17:30"},
			{ID: uuid.NewString(), Name: "晚班", StartTime: "18:00", EndTime: "22:00"},
			{ID: uuid.NewString(), Name: "全日班", StartTime: "08:30", EndTime: "17:30"},
		},
		Schedule:     domain.MonthlySchedule{},
		Leaves:       []*domain.Leave{},
		SupportNeeds: []*domain.SupportNeed{},
		Events:       []*domain.ScheduleEvent{},
	}
}

// SeedDefaults 把预设数据集写入存储，可额外附加 randomPharmacists 位随机
// 命名的药师用于测试环境。
func SeedDefaults(r *repository.Repository, randomPharmacists int) error {
	snapshot := Defaults()

	for i := 0; i < randomPharmacists; i++ {
		snapshot.Pharmacists = append(snapshot.Pharmacists, &domain.Pharmacist{
			ID:       uuid.NewString(),
			Name:     utils.GenerateRandomChineseName(),
			Position: utils.GenerateRandomPosition(),
		})
	}

	if err := r.Save(snapshot); err != nil {
		return err
	}

	slog.Info("寫入預設資料完成", "pharmacists", len(snapshot.Pharmacists), "shifts", len(snapshot.Shifts))
	return nil
}
