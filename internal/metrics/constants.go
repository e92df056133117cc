package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "raidledger_http_requests_total"
	MetricNameHTTPRequestDuration  = "raidledger_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "raidledger_http_requests_in_flight"

	MetricNameRecommendations       = "raidledger_recommendations_total"
	MetricNameLootRecorded          = "raidledger_loot_records_total"
	MetricNameRosterInconsistencies = "raidledger_roster_inconsistencies_total"
	MetricNameGearNeedsCacheHits    = "raidledger_gear_needs_cache_hits_total"
	MetricNameGearNeedsCacheMisses  = "raidledger_gear_needs_cache_misses_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latencies in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextRecommendations       = "Loot recipient resolutions by policy and outcome"
	HelpTextLootRecorded          = "Loot records appended to the ledger by policy"
	HelpTextRosterInconsistencies = "Ledger or priority rows referencing players absent from the roster"
	HelpTextGearNeedsCacheHits    = "Gear needs cache hits"
	HelpTextGearNeedsCacheMisses  = "Gear needs cache misses"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelPolicy  = "policy"
	LabelOutcome = "outcome"
	LabelSource  = "source"
)

// Outcome label values for recommendations
const (
	OutcomeRecommended = "recommended"
	OutcomeNoEligible  = "no_eligible_recipient"
)

// HTTPLatencyBuckets covers fast local handlers through slow ledger scans
var HTTPLatencyBuckets = prometheus.ExponentialBuckets(0.001, 2, 14)
