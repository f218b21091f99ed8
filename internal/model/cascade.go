package model

import "github.com/shopspring/decimal"

// CascadeSpin Запрос спина основной игры
type CascadeSpin struct {
	Bet decimal.Decimal
}

// Position Координата на поле
type Position struct {
	Row int
	Col int
}

// SymbolWin Выигрыш символа (8 и более в любом месте поля)
type SymbolWin struct {
	Symbol string
	Count  int
	Cells  []Position
	Payout decimal.Decimal
}

// NewSymbol Символ, упавший на освободившееся место
type NewSymbol struct {
	Position
	Symbol string
}

// CascadeStep Один шаг каскада
type CascadeStep struct {
	CascadeIndex int
	Wins         []SymbolWin
	NewSymbols   []NewSymbol
	StepPayout   decimal.Decimal
}

// CascadeSpinResult Результат спина основной игры
type CascadeSpinResult struct {
	InitialBoard [][]string
	Board        [][]string
	Cascades     []CascadeStep
	TotalPayout  decimal.Decimal
	Balance      decimal.Decimal
	ScatterCount int
	BonusAwarded bool
	BonusSpins   int
}
