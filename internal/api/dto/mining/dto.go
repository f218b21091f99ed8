package mining

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Block struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	MaxHealth int    `json:"max_health"`
	Health    int    `json:"health"`
	Value     string `json:"value"`
	Destroyed bool   `json:"destroyed"`
}

type Round struct {
	RoundID        string    `json:"round_id"`
	State          string    `json:"state"`
	Bet            string    `json:"bet"`
	SpinsTotal     int       `json:"spins_total"`
	SpinsRemaining int       `json:"spins_remaining"`
	AccumulatedWin string    `json:"accumulated_win"`
	TotalWin       string    `json:"total_win"` // Заполнен после завершения
	Grid           [][]Block `json:"grid"`
	Multipliers    []int     `json:"multipliers"` // 0 у колонок, которые ещё не очищены
	ClearedColumns []int     `json:"cleared_columns"`
	Busy           bool      `json:"busy"` // Идёт анимация спина
}

type Tool struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Uses   int    `json:"uses"`
	Damage int    `json:"damage"`
}

type ToolSlot struct {
	Tool         *Tool `json:"tool"` // null - пустая ячейка
	PlannedPath  []int `json:"planned_path"`
	StartDelayMs int64 `json:"start_delay_ms"`
}

type DestroyedBlock struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Event struct {
	Seq       int              `json:"seq"`
	AtMs      int64            `json:"at_ms"`
	Kind      string           `json:"kind"`
	ToolRow   int              `json:"tool_row"`
	Col       int              `json:"col"`
	ToolType  string           `json:"tool_type"`
	Cells     []Position       `json:"cells"`
	Damage    int              `json:"damage"`
	Destroyed []DestroyedBlock `json:"destroyed"`
	Money     string           `json:"money"`
}

type Plan struct {
	Slots            [][]ToolSlot `json:"slots"`
	Events           []Event      `json:"events"`
	NormalPhaseEndMs int64        `json:"normal_phase_end_ms"`
	DurationMs       int64        `json:"duration_ms"`
	MoneyEarned      string       `json:"money_earned"`
}

type SpinResponse struct {
	Accepted bool  `json:"accepted"`
	Plan     *Plan `json:"plan,omitempty"`
	Round    Round `json:"round"`
}

type HistoryItem struct {
	RoundID        string `json:"round_id"`
	Bet            string `json:"bet"`
	SpinsTotal     int    `json:"spins_total"`
	SpinsUsed      int    `json:"spins_used"`
	AccumulatedWin string `json:"accumulated_win"`
	MultiplierSum  int    `json:"multiplier_sum"`
	TotalWin       string `json:"total_win"`
	ClearedColumns []int  `json:"cleared_columns"`
	Reason         string `json:"reason"`
	FinishedAt     string `json:"finished_at"`
}
