package config

import (
	"mining_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// BlockSpec Прочность, стоимость и вес выпадения блока
type BlockSpec struct {
	Health int
	Value  decimal.Decimal
	Weight float64
}

// ToolSpec Количество ударов, урон и вес выпадения инструмента
type ToolSpec struct {
	Uses   int
	Damage int
	Weight float64
}

// MiningTiming Длительности для расписания спина
type MiningTiming struct {
	Hit              time.Duration
	InterToolGap     time.Duration
	Explosion        time.Duration
	PostExplosionGap time.Duration
	EmptyPath        time.Duration
	MinSpin          time.Duration
	Settle           time.Duration
	Watchdog         time.Duration
}

// CascadeSymbol Вес выпадения и выплата символа основной игры
type CascadeSymbol struct {
	Weight float64
	Pay    decimal.Decimal
}

type MiningConfig interface {
	GridRows() int
	GridCols() int
	ToolRows() int
	BaseBetUnit() decimal.Decimal
	EmptySlotChance() float64
	MaxSpins() int
	Realtime() bool
	RoundCacheSize() int
	RoundCacheTTL() time.Duration
	Timing() MiningTiming
	Blocks() map[model.BlockType]BlockSpec
	Tools() map[model.ToolType]ToolSpec
	MultiplierWeights() map[int]float64
}

type CascadeConfig interface {
	Rows() int
	Cols() int
	BaseBetUnit() decimal.Decimal
	MinMatch() int
	MaxPerSymbol() int
	MaxScatters() int
	ScatterSymbol() string
	ScatterTrigger() int
	BonusSpins() int
	MaxCascades() int
	MaxWinXBet() int64
	BetLevels() []decimal.Decimal
	Symbols() map[string]CascadeSymbol
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type LoggerConfig interface {
	Level() string
	Format() string
}
