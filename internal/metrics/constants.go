package metrics

// Имена метрик
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameCascadeSpins      = "cascade_spins_total"
	MetricNameCascadeBonuses    = "cascade_bonus_awards_total"
	MetricNameCascadeCascades   = "cascade_steps"
	MetricNameMiningRounds      = "mining_rounds_total"
	MetricNameMiningSpins       = "mining_spins_total"
	MetricNameMiningBlocks      = "mining_blocks_destroyed_total"
	MetricNameMiningSpinSeconds = "mining_spin_duration_seconds"
	MetricNameMoneyWagered      = "money_wagered_total"
	MetricNameMoneyPaid         = "money_paid_total"
	MetricNameLiveRounds        = "mining_live_rounds"
)

// Описания
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextCascadeSpins      = "Total number of base game spins"
	HelpTextCascadeBonuses    = "Total number of mining bonuses awarded by scatters"
	HelpTextCascadeCascades   = "Cascade steps per base game spin"
	HelpTextMiningRounds      = "Mining rounds by lifecycle event"
	HelpTextMiningSpins       = "Mining spin requests by outcome"
	HelpTextMiningBlocks      = "Blocks destroyed in mining rounds by block type"
	HelpTextMiningSpinSeconds = "Planned duration of a mining spin timeline"
	HelpTextMoneyWagered      = "Total money wagered by game"
	HelpTextMoneyPaid         = "Total money paid out by game"
	HelpTextLiveRounds        = "Mining rounds currently held in memory"
)

// Метки
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelGame   = "game"
	LabelEvent  = "event"
	LabelResult = "result"
	LabelBlock  = "block"
)

// Значения меток
const (
	RoundStarted  = "started"
	RoundFinished = "finished"
	RoundReset    = "reset"
	RoundEvicted  = "dropped"

	SpinAccepted = "accepted"
	SpinIgnored  = "ignored"
)

var (
	HTTPLatencyBuckets  = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	SpinDurationBuckets = []float64{.5, 1, 2, 4, 6, 8, 10, 15, 20}
	CascadeStepBuckets  = []float64{0, 1, 2, 3, 5, 8, 13, 21}
)
