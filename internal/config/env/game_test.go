package env

import (
	"mining_backend/internal/model"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validGameYAML = `
mining:
  grid_rows: 5
  grid_cols: 5
  tool_rows: 2
  base_bet_unit: 0.20
  empty_slot_chance: 0.3
  max_spins: 10
  realtime: false
  round_cache_size: 100
  round_cache_ttl: 1h
  timing:
    hit: 800ms
    inter_tool_gap: 200ms
    explosion: 800ms
    post_explosion_gap: 200ms
    empty_path: 300ms
    min_spin: 1s
    settle: 500ms
    watchdog: 20s
  blocks:
    dirt:        { health: 1, value: 0.02, weight: 0.35 }
    stone:       { health: 3, value: 0.05, weight: 0.25 }
    iron_ore:    { health: 5, value: 0.10, weight: 0.18 }
    gold_ore:    { health: 8, value: 0.25, weight: 0.12 }
    diamond_ore: { health: 12, value: 0.50, weight: 0.07 }
    obsidian:    { health: 24, value: 1.00, weight: 0.03 }
  tools:
    wood:    { uses: 2, damage: 1, weight: 0.35 }
    stone:   { uses: 3, damage: 2, weight: 0.25 }
    gold:    { uses: 5, damage: 1, weight: 0.15 }
    diamond: { uses: 8, damage: 4, weight: 0.05 }
    tnt:     { uses: 1, damage: 10, weight: 0.10 }
    eye:     { uses: 0, damage: 0, weight: 0.10 }
  multipliers:
    1: 10
    5: 3
    10: 1
cascade:
  rows: 5
  cols: 6
  base_bet_unit: 0.20
  min_match: 8
  max_per_symbol: 8
  max_scatters: 3
  scatter_symbol: scatter
  scatter_trigger: 3
  bonus_spins: 5
  max_cascades: 50
  max_win_x_bet: 5000
  bet_levels: [1.00, 0.20, 0.40]
  symbols:
    dirt:    { weight: 30, pay: 0.20 }
    gold:    { weight: 10, pay: 1.50 }
    scatter: { weight: 2, pay: 0 }
`

func writeGameFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewMiningConfigFromYAML(t *testing.T) {
	cfg, err := NewMiningConfigFromYAML(writeGameFile(t, validGameYAML))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.GridRows())
	assert.Equal(t, 5, cfg.GridCols())
	assert.Equal(t, 2, cfg.ToolRows())
	assert.Equal(t, 10, cfg.MaxSpins())
	assert.True(t, cfg.BaseBetUnit().Equal(decimal.RequireFromString("0.2")))
	assert.Equal(t, 800*time.Millisecond, cfg.Timing().Hit)
	assert.Equal(t, 20*time.Second, cfg.Timing().Watchdog)
	assert.Equal(t, time.Hour, cfg.RoundCacheTTL())

	obsidian := cfg.Blocks()[model.BlockObsidian]
	assert.Equal(t, 24, obsidian.Health)
	assert.True(t, obsidian.Value.Equal(decimal.NewFromInt(1)))

	tnt := cfg.Tools()[model.ToolTNT]
	assert.Equal(t, 1, tnt.Uses)
	assert.Equal(t, 10, tnt.Damage)

	assert.Len(t, cfg.MultiplierWeights(), 3)
}

func TestNewMiningConfigFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{"missing block type", [2]string{"    obsidian:    { health: 24, value: 1.00, weight: 0.03 }\n", ""}},
		{"unknown tool type", [2]string{"    eye:     { uses: 0, damage: 0, weight: 0.10 }", "    pickaxe: { uses: 0, damage: 0, weight: 0.10 }"}},
		{"multiplier out of range", [2]string{"    10: 1", "    11: 1"}},
		{"zero health", [2]string{"dirt:        { health: 1", "dirt:        { health: 0"}},
		{"empty slot chance of one", [2]string{"empty_slot_chance: 0.3", "empty_slot_chance: 1"}},
		{"zero watchdog", [2]string{"watchdog: 20s", "watchdog: 0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := replaceOnce(t, validGameYAML, tt.replace[0], tt.replace[1])
			_, err := NewMiningConfigFromYAML(writeGameFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestNewMiningConfigFromYAML_ZeroWeights(t *testing.T) {
	content := validGameYAML
	for _, w := range []string{"0.35", "0.25", "0.18", "0.12", "0.07", "0.03"} {
		content = replaceOnce(t, content, "weight: "+w+" }", "weight: 0 }")
	}
	_, err := NewMiningConfigFromYAML(writeGameFile(t, content))
	assert.ErrorContains(t, err, "block weights")
}

func TestNewMiningConfigFromYAML_MissingFile(t *testing.T) {
	_, err := NewMiningConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read game config")
}

func TestNewCascadeConfigFromYAML(t *testing.T) {
	cfg, err := NewCascadeConfigFromYAML(writeGameFile(t, validGameYAML))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Rows())
	assert.Equal(t, 6, cfg.Cols())
	assert.Equal(t, 8, cfg.MinMatch())
	assert.Equal(t, "scatter", cfg.ScatterSymbol())
	assert.Equal(t, int64(5000), cfg.MaxWinXBet())
	assert.True(t, cfg.Symbols()["gold"].Pay.Equal(decimal.RequireFromString("1.5")))
}

func TestNewCascadeConfigFromYAML_BetLevels(t *testing.T) {
	cfg, err := NewCascadeConfigFromYAML(writeGameFile(t, validGameYAML))
	require.NoError(t, err)

	levels := cfg.BetLevels()
	require.Len(t, levels, 3)
	assert.Equal(t, "0.2", levels[0].String())
	assert.Equal(t, "1", levels[2].String())

	content := replaceOnce(t, validGameYAML, "bet_levels: [1.00, 0.20, 0.40]", "bet_levels: [0.205]")
	_, err = NewCascadeConfigFromYAML(writeGameFile(t, content))
	assert.ErrorContains(t, err, "bet level")

	content = replaceOnce(t, validGameYAML, "  bet_levels: [1.00, 0.20, 0.40]\n", "")
	cfg, err = NewCascadeConfigFromYAML(writeGameFile(t, content))
	require.NoError(t, err)
	assert.Empty(t, cfg.BetLevels())
}

func TestReadGameFile_BonusSpinsWithinMiningLimit(t *testing.T) {
	content := replaceOnce(t, validGameYAML, "bonus_spins: 5", "bonus_spins: 11")
	_, err := NewCascadeConfigFromYAML(writeGameFile(t, content))
	assert.ErrorContains(t, err, "exceeds mining max_spins")
}

func TestShippedGameConfig(t *testing.T) {
	path := filepath.Join("..", "..", "..", "config.yaml")

	mining, err := NewMiningConfigFromYAML(path)
	require.NoError(t, err)
	cascade, err := NewCascadeConfigFromYAML(path)
	require.NoError(t, err)

	// Три scatter дают 10 спинов добычи
	assert.Equal(t, 3, cascade.ScatterTrigger())
	assert.Equal(t, 10, cascade.BonusSpins())
	assert.LessOrEqual(t, cascade.BonusSpins(), mining.MaxSpins())
	assert.NotEmpty(t, cascade.BetLevels())
}

func TestNewCascadeConfigFromYAML_UnknownScatter(t *testing.T) {
	content := replaceOnce(t, validGameYAML, "scatter_symbol: scatter", "scatter_symbol: wild")
	_, err := NewCascadeConfigFromYAML(writeGameFile(t, content))
	assert.ErrorContains(t, err, "scatter symbol")
}

func replaceOnce(t *testing.T, s, old, new string) string {
	t.Helper()
	idx := strings.Index(s, old)
	require.GreaterOrEqual(t, idx, 0, "fixture does not contain %q", old)
	return s[:idx] + new + s[idx+len(old):]
}
