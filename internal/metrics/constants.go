package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameMovementsStarted    = "movements_started_total"
	MetricNameMovementsCompleted  = "movements_completed_total"
	MetricNameMovementsCancelled  = "movements_cancelled_total"
	MetricNameDistanceValidated   = "distance_validated_meters_total"
	MetricNameSCEarned            = "sc_earned_total"
	MetricNameRouletteSpins       = "roulette_spins_total"
	MetricNameCosmeticsMinted     = "cosmetics_minted_total"
	MetricNameEnhanceAttempts     = "cosmetic_enhance_attempts_total"
	MetricNameStorePurchases      = "store_purchases_total"
	MetricNameAchievementsClaimed = "achievements_claimed_total"
	MetricNameBoostersRedeemed    = "boosters_redeemed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextMovementsStarted    = "Total number of movement sessions started"
	HelpTextMovementsCompleted  = "Total number of movement sessions completed"
	HelpTextMovementsCancelled  = "Total number of movement sessions cancelled"
	HelpTextDistanceValidated   = "Total validated distance in meters"
	HelpTextSCEarned            = "Total SC credited from completed movements"
	HelpTextRouletteSpins       = "Total number of roulette spins"
	HelpTextCosmeticsMinted     = "Total number of cosmetics minted"
	HelpTextEnhanceAttempts     = "Total number of cosmetic enhancement attempts"
	HelpTextStorePurchases      = "Total number of store purchases"
	HelpTextAchievementsClaimed = "Total number of achievement claims"
	HelpTextBoostersRedeemed    = "Total number of booster code redemptions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelTransport = "transport_mode"
	LabelSlot      = "slot"
	LabelItem      = "item"
	LabelTemplate  = "template"
	LabelResult    = "result"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
