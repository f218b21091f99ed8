package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BlockType Тип блока стены
type BlockType string

const (
	BlockDirt       BlockType = "dirt"
	BlockStone      BlockType = "stone"
	BlockIronOre    BlockType = "iron_ore"
	BlockGoldOre    BlockType = "gold_ore"
	BlockDiamondOre BlockType = "diamond_ore"
	BlockObsidian   BlockType = "obsidian"
)

// BlockTypes Все типы блоков
var BlockTypes = []BlockType{BlockDirt, BlockStone, BlockIronOre, BlockGoldOre, BlockDiamondOre, BlockObsidian}

// ToolType Тип инструмента
type ToolType string

const (
	ToolWood    ToolType = "wood"
	ToolStone   ToolType = "stone"
	ToolGold    ToolType = "gold"
	ToolDiamond ToolType = "diamond"
	ToolTNT     ToolType = "tnt"
	ToolEye     ToolType = "eye"
)

// ToolTypes Все типы инструментов
var ToolTypes = []ToolType{ToolWood, ToolStone, ToolGold, ToolDiamond, ToolTNT, ToolEye}

// IsExplosive TNT бьёт один раз и задевает соседние колонки
func (t ToolType) IsExplosive() bool {
	return t == ToolTNT
}

// GameState Состояние бонусного раунда
type GameState string

const (
	StateBetting  GameState = "BETTING"
	StatePlaying  GameState = "PLAYING"
	StateFinished GameState = "FINISHED"
)

// Block Одна ячейка стены
type Block struct {
	ID            string
	Type          BlockType
	MaxHealth     int
	CurrentHealth int
	Value         decimal.Decimal // Выплата при разрушении, уже умножена на ставку
	IsDestroyed   bool
}

// Grid Стена блоков, Grid[row][col]. Строка 0 - верх.
type Grid [][]Block

// Rows Количество строк
func (g Grid) Rows() int {
	return len(g)
}

// Cols Количество колонок
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone Глубокая копия сетки
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]Block, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// InBounds Проверка что ячейка существует
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// TopRow Индекс верхнего неразрушенного блока в колонке, -1 если колонка пуста
func (g Grid) TopRow(col int) int {
	if col < 0 || col >= g.Cols() {
		return -1
	}
	for r := 0; r < g.Rows(); r++ {
		if !g[r][col].IsDestroyed {
			return r
		}
	}
	return -1
}

// ColumnCleared Все блоки колонки разрушены
func (g Grid) ColumnCleared(col int) bool {
	return g.Rows() > 0 && g.TopRow(col) == -1
}

// AllDestroyed Вся стена разрушена
func (g Grid) AllDestroyed() bool {
	for c := 0; c < g.Cols(); c++ {
		if !g.ColumnCleared(c) {
			return false
		}
	}
	return g.Rows() > 0
}

// ClearedColumns Индексы полностью очищенных колонок
func (g Grid) ClearedColumns() []int {
	cleared := []int{}
	for c := 0; c < g.Cols(); c++ {
		if g.ColumnCleared(c) {
			cleared = append(cleared, c)
		}
	}
	return cleared
}

// Tool Инструмент. Неизменяем после создания.
type Tool struct {
	ID           string
	Type         ToolType
	Uses         int
	DamagePerHit int
}

// ToolSlot Ячейка сетки инструментов (2 x N)
type ToolSlot struct {
	Tool        *Tool
	PlannedPath []int
	StartDelay  time.Duration
}

// DestroyedBlock Запись о разрушенном блоке
type DestroyedBlock struct {
	Row   int
	Col   int
	Type  BlockType
	Value decimal.Decimal
}

// SpinEventKind Тип события таймлайна
type SpinEventKind string

const (
	EventHit       SpinEventKind = "hit"       // Один удар кирки
	EventExplosion SpinEventKind = "explosion" // Взрыв TNT
	EventFizzle    SpinEventKind = "fizzle"    // Инструмент без цели
)

// SpinEvent Одна мутация стены, привязанная ко времени от начала спина
type SpinEvent struct {
	Seq       int
	At        time.Duration
	Kind      SpinEventKind
	ToolRow   int
	Col       int
	ToolType  ToolType
	Cells     []Position // Ячейки, получившие урон
	Damage    int
	Destroyed []DestroyedBlock
	Money     decimal.Decimal
}

// SpinPlan Результат планирования одного спина
type SpinPlan struct {
	Slots          [][]ToolSlot
	Events         []SpinEvent
	NormalPhaseEnd time.Duration
	Duration       time.Duration
	Grid           Grid
	MoneyEarned    decimal.Decimal
}

// RoundSnapshot Состояние раунда для клиента
type RoundSnapshot struct {
	RoundID        string
	State          GameState
	BetAmount      decimal.Decimal
	SpinsTotal     int
	SpinsRemaining int
	AccumulatedWin decimal.Decimal
	TotalWin       decimal.Decimal
	Grid           Grid
	Multipliers    []int // 0 для скрытых колонок
	ClearedColumns []int
	Busy           bool
}

// RoundFinish Итог завершённого раунда
type RoundFinish struct {
	RoundID        string
	UserID         int
	BetAmount      decimal.Decimal
	SpinsTotal     int
	SpinsUsed      int
	AccumulatedWin decimal.Decimal
	MultiplierSum  int
	TotalWin       decimal.Decimal
	ClearedColumns []int
	Reason         string
	FinishedAt     time.Time
}

// BonusAward Выигранный в основной игре бонус, ещё не сыгранный
type BonusAward struct {
	UserID    int
	Bet       decimal.Decimal
	Spins     int
	CreatedAt time.Time
}

// MiningSpinResult Ответ на запрос спина
type MiningSpinResult struct {
	Accepted bool
	Plan     *SpinPlan
	Round    RoundSnapshot
}
