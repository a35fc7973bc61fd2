package constants

// --- СТАДИИ ЗАЯВОК (совпадают со значениями в БД и на проводе) ---
const (
	StageNew        = "New"
	StageInProgress = "In Progress"
	StageRepaired   = "Repaired"
	StageScrap      = "Scrap"
)

// Все стадии в порядке колонок канбан-доски.
var AllStages = []string{
	StageNew,
	StageInProgress,
	StageRepaired,
	StageScrap,
}

// Терминальные стадии: заявка больше не считается активной.
var TerminalStages = []string{
	StageRepaired,
	StageScrap,
}

// Функция-проверка
func IsTerminalStage(stage string) bool {
	for _, s := range TerminalStages {
		if s == stage {
			return true
		}
	}
	return false
}

// --- ТИПЫ ЗАЯВОК ---
const (
	TypeCorrective = "Corrective"
	TypePreventive = "Preventive"
)

// --- ПРИОРИТЕТЫ ---
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// DefaultTeamColor - цвет команды по умолчанию при создании без цвета.
const DefaultTeamColor = "#3b82f6"
