package utils

import (
	"math/rand"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "張", "劉", "陳", "楊", "趙", "黃", "周", "吳",
	"徐", "孫", "胡", "朱", "高", "林", "何", "郭", "馬", "羅",
}
var commonNameCharacters = []string{
	"偉", "強", "芳", "敏", "靜", "麗", "剛", "傑", "娟", "勇",
	"豔", "濤", "明", "軍", "磊", "洋", "霞", "飛", "玲", "超",
	"華", "平", "輝", "梅", "鑫", "龍", "鵬", "玉", "斌", "慶",
	"建", "丹", "彬", "鳳", "旭", "寧", "樂", "成", "欣", "怡",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var positions = []domain.Position{
	domain.PositionFullTime,
	domain.PositionPartTime,
	domain.PositionOPDSupport,
}

func GenerateRandomPosition() domain.Position {
	return positions[rand.Intn(len(positions))]
}
