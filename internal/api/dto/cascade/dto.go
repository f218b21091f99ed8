package cascade

import "github.com/shopspring/decimal"

type SpinRequest struct {
	Bet decimal.Decimal `json:"bet"` // Ставка, > 0, не больше 2 знаков после запятой
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type SymbolWin struct {
	Symbol string     `json:"symbol"`
	Count  int        `json:"count"`
	Cells  []Position `json:"cells"`
	Payout string     `json:"payout"`
}

type NewSymbol struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Symbol string `json:"symbol"`
}

type CascadeStep struct {
	Index      int         `json:"index"`
	Wins       []SymbolWin `json:"wins"`
	NewSymbols []NewSymbol `json:"new_symbols"`
	Payout     string      `json:"payout"`
}

type SpinResponse struct {
	InitialBoard [][]string    `json:"initial_board"`
	Board        [][]string    `json:"board"` // Поле после всех каскадов
	Cascades     []CascadeStep `json:"cascades"`
	TotalPayout  string        `json:"total_payout"`
	Balance      string        `json:"balance"` // Баланс после спина
	ScatterCount int           `json:"scatter_count"`
	BonusAwarded bool          `json:"bonus_awarded"` // Выпал бонус (добыча)
	BonusSpins   int           `json:"bonus_spins"`
}

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"` // Сумма депозита
}

type BalanceResponse struct {
	Balance string `json:"balance"`
}
