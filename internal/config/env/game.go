package env

import (
	"errors"
	"fmt"
	"mining_backend/internal/config"
	"mining_backend/internal/model"
	"os"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	gameConfigPathEnvName = "GAME_CONFIG_PATH"
	defaultGameConfigPath = "config.yaml"

	minMultiplier = 1
	maxMultiplier = 10
)

// GameConfigPath Путь к YAML с таблицами игр
func GameConfigPath() string {
	path := os.Getenv(gameConfigPathEnvName)
	if len(path) == 0 {
		return defaultGameConfigPath
	}
	return path
}

type gameFile struct {
	Mining  *miningYAML  `yaml:"mining" validate:"required"`
	Cascade *cascadeYAML `yaml:"cascade" validate:"required"`
}

type timingYAML struct {
	Hit              time.Duration `yaml:"hit" validate:"gt=0"`
	InterToolGap     time.Duration `yaml:"inter_tool_gap" validate:"gte=0"`
	Explosion        time.Duration `yaml:"explosion" validate:"gt=0"`
	PostExplosionGap time.Duration `yaml:"post_explosion_gap" validate:"gte=0"`
	EmptyPath        time.Duration `yaml:"empty_path" validate:"gt=0"`
	MinSpin          time.Duration `yaml:"min_spin" validate:"gte=0"`
	Settle           time.Duration `yaml:"settle" validate:"gte=0"`
	Watchdog         time.Duration `yaml:"watchdog" validate:"gt=0"`
}

type blockYAML struct {
	Health int     `yaml:"health" validate:"gte=1"`
	Value  float64 `yaml:"value" validate:"gte=0"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

type toolYAML struct {
	Uses   int     `yaml:"uses" validate:"gte=0"`
	Damage int     `yaml:"damage" validate:"gte=0"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

type miningYAML struct {
	GridRows        int                  `yaml:"grid_rows" validate:"gte=1"`
	GridCols        int                  `yaml:"grid_cols" validate:"gte=1"`
	ToolRows        int                  `yaml:"tool_rows" validate:"gte=1"`
	BaseBetUnit     float64              `yaml:"base_bet_unit" validate:"gt=0"`
	EmptySlotChance float64              `yaml:"empty_slot_chance" validate:"gte=0,lt=1"`
	MaxSpins        int                  `yaml:"max_spins" validate:"gte=1"`
	Realtime        bool                 `yaml:"realtime"`
	RoundCacheSize  int                  `yaml:"round_cache_size" validate:"gte=1"`
	RoundCacheTTL   time.Duration        `yaml:"round_cache_ttl" validate:"gt=0"`
	Timing          timingYAML           `yaml:"timing"`
	Blocks          map[string]blockYAML `yaml:"blocks" validate:"required,dive"`
	Tools           map[string]toolYAML  `yaml:"tools" validate:"required,dive"`
	Multipliers     map[int]float64      `yaml:"multipliers" validate:"required,dive,gte=0"`
}

type symbolYAML struct {
	Weight float64 `yaml:"weight" validate:"gte=0"`
	Pay    float64 `yaml:"pay" validate:"gte=0"`
}

type cascadeYAML struct {
	Rows           int                   `yaml:"rows" validate:"gte=1"`
	Cols           int                   `yaml:"cols" validate:"gte=1"`
	BaseBetUnit    float64               `yaml:"base_bet_unit" validate:"gt=0"`
	MinMatch       int                   `yaml:"min_match" validate:"gte=1"`
	MaxPerSymbol   int                   `yaml:"max_per_symbol" validate:"gte=1"`
	MaxScatters    int                   `yaml:"max_scatters" validate:"gte=0"`
	ScatterSymbol  string                `yaml:"scatter_symbol" validate:"required"`
	ScatterTrigger int                   `yaml:"scatter_trigger" validate:"gte=1"`
	BonusSpins     int                   `yaml:"bonus_spins" validate:"gte=1"`
	MaxCascades    int                   `yaml:"max_cascades" validate:"gte=1"`
	MaxWinXBet     int64                 `yaml:"max_win_x_bet" validate:"gte=1"`
	BetLevels      []float64             `yaml:"bet_levels" validate:"dive,gt=0"`
	Symbols        map[string]symbolYAML `yaml:"symbols" validate:"required,dive"`
}

func readGameFile(path string) (*gameFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var f gameFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	// Бонус основной игры должен быть допустимым раундом добычи
	if f.Cascade.BonusSpins > f.Mining.MaxSpins {
		return nil, fmt.Errorf("cascade bonus_spins %d exceeds mining max_spins %d", f.Cascade.BonusSpins, f.Mining.MaxSpins)
	}

	return &f, nil
}

// ---------- MINING ----------

type miningConfig struct {
	raw         *miningYAML
	baseBetUnit decimal.Decimal
	blocks      map[model.BlockType]config.BlockSpec
	tools       map[model.ToolType]config.ToolSpec
}

// NewMiningConfigFromYAML Читает секцию mining и проверяет таблицы весов
func NewMiningConfigFromYAML(path string) (config.MiningConfig, error) {
	f, err := readGameFile(path)
	if err != nil {
		return nil, err
	}
	return newMiningConfig(f.Mining)
}

func newMiningConfig(m *miningYAML) (*miningConfig, error) {
	cfg := &miningConfig{
		raw:         m,
		baseBetUnit: decimal.NewFromFloat(m.BaseBetUnit),
		blocks:      make(map[model.BlockType]config.BlockSpec, len(model.BlockTypes)),
		tools:       make(map[model.ToolType]config.ToolSpec, len(model.ToolTypes)),
	}

	// Каждый тип блока обязан быть в конфиге
	var blockWeight float64
	for _, bt := range model.BlockTypes {
		b, ok := m.Blocks[string(bt)]
		if !ok {
			return nil, fmt.Errorf("block type %q not configured", bt)
		}
		cfg.blocks[bt] = config.BlockSpec{
			Health: b.Health,
			Value:  decimal.NewFromFloat(b.Value).Round(2),
			Weight: b.Weight,
		}
		blockWeight += b.Weight
	}
	if len(m.Blocks) != len(model.BlockTypes) {
		return nil, errors.New("unknown block type in config")
	}
	if blockWeight <= 0 {
		return nil, errors.New("block weights must sum to a positive value")
	}

	var toolWeight float64
	for _, tt := range model.ToolTypes {
		t, ok := m.Tools[string(tt)]
		if !ok {
			return nil, fmt.Errorf("tool type %q not configured", tt)
		}
		cfg.tools[tt] = config.ToolSpec{
			Uses:   t.Uses,
			Damage: t.Damage,
			Weight: t.Weight,
		}
		toolWeight += t.Weight
	}
	if len(m.Tools) != len(model.ToolTypes) {
		return nil, errors.New("unknown tool type in config")
	}
	if toolWeight <= 0 {
		return nil, errors.New("tool weights must sum to a positive value")
	}

	var multWeight float64
	for mult, w := range m.Multipliers {
		if mult < minMultiplier || mult > maxMultiplier {
			return nil, fmt.Errorf("multiplier %d out of range %d..%d", mult, minMultiplier, maxMultiplier)
		}
		multWeight += w
	}
	if multWeight <= 0 {
		return nil, errors.New("multiplier weights must sum to a positive value")
	}

	return cfg, nil
}

func (c *miningConfig) GridRows() int { return c.raw.GridRows }
func (c *miningConfig) GridCols() int { return c.raw.GridCols }
func (c *miningConfig) ToolRows() int { return c.raw.ToolRows }
func (c *miningConfig) BaseBetUnit() decimal.Decimal { return c.baseBetUnit }
func (c *miningConfig) EmptySlotChance() float64 { return c.raw.EmptySlotChance }
func (c *miningConfig) MaxSpins() int { return c.raw.MaxSpins }
func (c *miningConfig) Realtime() bool { return c.raw.Realtime }
func (c *miningConfig) RoundCacheSize() int { return c.raw.RoundCacheSize }
func (c *miningConfig) RoundCacheTTL() time.Duration { return c.raw.RoundCacheTTL }
func (c *miningConfig) MultiplierWeights() map[int]float64 { return c.raw.Multipliers }

func (c *miningConfig) Timing() config.MiningTiming {
	t := c.raw.Timing
	return config.MiningTiming{
		Hit:              t.Hit,
		InterToolGap:     t.InterToolGap,
		Explosion:        t.Explosion,
		PostExplosionGap: t.PostExplosionGap,
		EmptyPath:        t.EmptyPath,
		MinSpin:          t.MinSpin,
		Settle:           t.Settle,
		Watchdog:         t.Watchdog,
	}
}

func (c *miningConfig) Blocks() map[model.BlockType]config.BlockSpec {
	return c.blocks
}

func (c *miningConfig) Tools() map[model.ToolType]config.ToolSpec {
	return c.tools
}

// ---------- CASCADE ----------

type cascadeConfig struct {
	raw         *cascadeYAML
	baseBetUnit decimal.Decimal
	symbols     map[string]config.CascadeSymbol
	betLevels   []decimal.Decimal
}

// NewCascadeConfigFromYAML Читает секцию cascade
func NewCascadeConfigFromYAML(path string) (config.CascadeConfig, error) {
	f, err := readGameFile(path)
	if err != nil {
		return nil, err
	}
	return newCascadeConfig(f.Cascade)
}

func newCascadeConfig(c *cascadeYAML) (*cascadeConfig, error) {
	if _, ok := c.Symbols[c.ScatterSymbol]; !ok {
		return nil, fmt.Errorf("scatter symbol %q not in symbol table", c.ScatterSymbol)
	}

	cfg := &cascadeConfig{
		raw:         c,
		baseBetUnit: decimal.NewFromFloat(c.BaseBetUnit),
		symbols:     make(map[string]config.CascadeSymbol, len(c.Symbols)),
	}

	var regularWeight float64
	for name, s := range c.Symbols {
		cfg.symbols[name] = config.CascadeSymbol{
			Weight: s.Weight,
			Pay:    decimal.NewFromFloat(s.Pay),
		}
		if name != c.ScatterSymbol {
			regularWeight += s.Weight
		}
	}
	if regularWeight <= 0 {
		return nil, errors.New("regular symbol weights must sum to a positive value")
	}

	for _, lvl := range c.BetLevels {
		bet := decimal.NewFromFloat(lvl)
		if !bet.Equal(bet.Round(2)) {
			return nil, fmt.Errorf("bet level %v has more than 2 decimal places", lvl)
		}
		cfg.betLevels = append(cfg.betLevels, bet)
	}
	slices.SortFunc(cfg.betLevels, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	return cfg, nil
}

func (c *cascadeConfig) Rows() int { return c.raw.Rows }
func (c *cascadeConfig) Cols() int { return c.raw.Cols }
func (c *cascadeConfig) BaseBetUnit() decimal.Decimal { return c.baseBetUnit }
func (c *cascadeConfig) MinMatch() int { return c.raw.MinMatch }
func (c *cascadeConfig) MaxPerSymbol() int { return c.raw.MaxPerSymbol }
func (c *cascadeConfig) MaxScatters() int { return c.raw.MaxScatters }
func (c *cascadeConfig) ScatterSymbol() string { return c.raw.ScatterSymbol }
func (c *cascadeConfig) ScatterTrigger() int { return c.raw.ScatterTrigger }
func (c *cascadeConfig) BonusSpins() int { return c.raw.BonusSpins }
func (c *cascadeConfig) MaxCascades() int { return c.raw.MaxCascades }
func (c *cascadeConfig) MaxWinXBet() int64 { return c.raw.MaxWinXBet }

// BetLevels Разрешённые ставки по возрастанию, пусто - любая
func (c *cascadeConfig) BetLevels() []decimal.Decimal { return c.betLevels }

func (c *cascadeConfig) Symbols() map[string]config.CascadeSymbol {
	return c.symbols
}
