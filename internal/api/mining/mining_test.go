package mining

import (
	"context"
	"encoding/json"
	"mining_backend/internal/middleware"
	"mining_backend/internal/model"
	"mining_backend/internal/service/mining"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type miningServiceMock struct {
	mock.Mock
}

func (m *miningServiceMock) StartRound(ctx context.Context, userID int) (*model.RoundSnapshot, error) {
	args := m.Called(ctx, userID)
	if s := args.Get(0); s != nil {
		return s.(*model.RoundSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *miningServiceMock) Spin(ctx context.Context, userID int) (*model.MiningSpinResult, error) {
	args := m.Called(ctx, userID)
	if s := args.Get(0); s != nil {
		return s.(*model.MiningSpinResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *miningServiceMock) State(ctx context.Context, userID int) (*model.RoundSnapshot, error) {
	args := m.Called(ctx, userID)
	if s := args.Get(0); s != nil {
		return s.(*model.RoundSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *miningServiceMock) Reset(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *miningServiceMock) History(ctx context.Context, userID int, limit uint64) ([]model.RoundFinish, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.RoundFinish), args.Error(1)
}

// withUser Подставляет пользователя вместо проверки токена
func withUser(userID int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
		})
	}
}

func newRouter(serv *miningServiceMock) chi.Router {
	h := NewHandler(HandlerDeps{Serv: serv})
	r := chi.NewRouter()
	r.Use(withUser(4))
	r.Post("/mining/start", h.Start)
	r.Post("/mining/spin", h.Spin)
	r.Get("/mining/state", h.State)
	r.Post("/mining/reset", h.Reset)
	r.Get("/mining/history", h.History)
	return r
}

func do(r http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func snapshot() *model.RoundSnapshot {
	return &model.RoundSnapshot{
		RoundID:        "r1",
		State:          model.StatePlaying,
		BetAmount:      decimal.NewFromInt(1),
		SpinsTotal:     5,
		SpinsRemaining: 5,
		AccumulatedWin: decimal.Zero,
		TotalWin:       decimal.Zero,
		Grid: model.Grid{{
			{ID: "b1", Type: model.BlockDirt, MaxHealth: 1, CurrentHealth: 1, Value: decimal.RequireFromString("0.1")},
		}},
		Multipliers:    []int{0},
		ClearedColumns: []int{},
	}
}

func TestStart(t *testing.T) {
	serv := &miningServiceMock{}
	serv.On("StartRound", mock.Anything, 4).Return(snapshot(), nil)

	rec := do(newRouter(serv), http.MethodPost, "/mining/start")
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "PLAYING", body["state"])
	assert.Equal(t, "1.00", body["bet"])
	grid := body["grid"].([]any)
	assert.Equal(t, "0.10", grid[0].([]any)[0].(map[string]any)["value"])
}

func TestStart_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{mining.ErrNoBonusAvailable, http.StatusNotFound},
		{mining.ErrRoundInProgress, http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		serv := &miningServiceMock{}
		serv.On("StartRound", mock.Anything, 4).Return(nil, tt.err)

		rec := do(newRouter(serv), http.MethodPost, "/mining/start")
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}

func TestSpin(t *testing.T) {
	plan := &model.SpinPlan{
		Slots: [][]model.ToolSlot{{
			{Tool: &model.Tool{ID: "t1", Type: model.ToolWood, Uses: 2, DamagePerHit: 1}, PlannedPath: []int{0}, StartDelay: 0},
		}},
		Events: []model.SpinEvent{{
			Seq: 1, At: 800 * time.Millisecond, Kind: model.EventHit, Col: 0, ToolType: model.ToolWood,
			Cells: []model.Position{{Row: 0, Col: 0}}, Damage: 1, Money: decimal.RequireFromString("0.1"),
		}},
		NormalPhaseEnd: 800 * time.Millisecond,
		Duration:       1300 * time.Millisecond,
		MoneyEarned:    decimal.RequireFromString("0.1"),
	}
	serv := &miningServiceMock{}
	serv.On("Spin", mock.Anything, 4).Return(&model.MiningSpinResult{Accepted: true, Plan: plan, Round: *snapshot()}, nil).Once()
	serv.On("Spin", mock.Anything, 4).Return(&model.MiningSpinResult{Accepted: false, Round: *snapshot()}, nil).Once()

	router := newRouter(serv)

	rec := do(router, http.MethodPost, "/mining/spin")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Accepted bool `json:"accepted"`
		Plan     struct {
			DurationMs int64 `json:"duration_ms"`
			Events     []struct {
				AtMs int64  `json:"at_ms"`
				Kind string `json:"kind"`
			} `json:"events"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Accepted)
	assert.Equal(t, int64(1300), body.Plan.DurationMs)
	require.Len(t, body.Plan.Events, 1)
	assert.Equal(t, int64(800), body.Plan.Events[0].AtMs)
	assert.Equal(t, "hit", body.Plan.Events[0].Kind)

	rec = do(router, http.MethodPost, "/mining/spin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accepted":false`)
	assert.NotContains(t, rec.Body.String(), `"plan"`)
}

func TestReset(t *testing.T) {
	serv := &miningServiceMock{}
	serv.On("Reset", mock.Anything, 4).Return(mining.ErrNoActiveRound).Once()
	serv.On("Reset", mock.Anything, 4).Return(nil).Once()

	router := newRouter(serv)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/mining/reset").Code)
	assert.Equal(t, http.StatusNoContent, do(router, http.MethodPost, "/mining/reset").Code)
}

func TestHistory_Limit(t *testing.T) {
	serv := &miningServiceMock{}
	serv.On("History", mock.Anything, 4, uint64(20)).Return([]model.RoundFinish{}, nil)
	serv.On("History", mock.Anything, 4, uint64(100)).Return([]model.RoundFinish{{
		RoundID: "r1", BetAmount: decimal.NewFromInt(1), TotalWin: decimal.RequireFromString("12.5"),
		FinishedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}, nil)

	router := newRouter(serv)

	rec := do(router, http.MethodGet, "/mining/history")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(router, http.MethodGet, "/mining/history?limit=500")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_win":"12.50"`)
	assert.Contains(t, rec.Body.String(), `"finished_at":"2026-01-01T00:00:00Z"`)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/mining/history?limit=abc").Code)
}

func TestState_Unauthorized(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &miningServiceMock{}})
	rec := httptest.NewRecorder()
	h.State(rec, httptest.NewRequest(http.MethodGet, "/mining/state", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
