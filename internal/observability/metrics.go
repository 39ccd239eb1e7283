package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the token ledger.
type Metrics struct {
	// --- Core Processing ---
	CoreCommandsApplied  *prometheus.CounterVec
	CoreCommandsRejected *prometheus.CounterVec
	CoreCommandDuration  *prometheus.HistogramVec
	CoreEntries          *prometheus.CounterVec
	CoreStateHashDur     prometheus.Histogram
	CoreSequence         prometheus.Gauge

	// --- Latency ---
	IngestToApply   *prometheus.HistogramVec
	ApplyToPersist  prometheus.Histogram
	NATSPullLatency *prometheus.HistogramVec
	PersistBatchDur prometheus.Histogram

	// --- Channel & Backpressure ---
	ChannelSize         *prometheus.GaugeVec
	ChannelCapacity     *prometheus.GaugeVec
	ChannelUtilization  *prometheus.GaugeVec
	ProjectionDrops     *prometheus.CounterVec
	PublishDrops        prometheus.Counter
	PersistBackpressure prometheus.Counter

	// --- Idempotency & Ordering ---
	IdempotencyDuplicates *prometheus.CounterVec
	DedupLRUSize          prometheus.Gauge
	DedupLRUEvictions     prometheus.Counter
	CommandSequenceGap    *prometheus.CounterVec
	CommandOutOfOrder     *prometheus.CounterVec

	// --- Transfers & Burns ---
	TransfersApplied *prometheus.CounterVec
	TransfersDenied  *prometheus.CounterVec
	BurnsApplied     *prometheus.CounterVec
	SupplyUnits      *prometheus.GaugeVec

	// --- Swap Settlement ---
	SwapsSettled       *prometheus.CounterVec
	SwapsRejected      *prometheus.CounterVec
	SwapTokensRetired  *prometheus.CounterVec
	SwapReservePaidOut *prometheus.CounterVec
	ReserveAvailable   prometheus.Gauge

	// --- Blacklist ---
	BlacklistSize    prometheus.Gauge
	BlacklistDenials *prometheus.CounterVec

	// --- Persistence ---
	PersistCommandsWritten prometheus.Counter
	PersistEntriesWritten  prometheus.Counter
	PersistBatchSize       prometheus.Histogram
	PersistErrors          *prometheus.CounterVec
	PersistRetry           prometheus.Counter
	PersistLastSequence    prometheus.Gauge

	// --- Snapshot ---
	SnapshotTaken     prometheus.Counter
	SnapshotDuration  prometheus.Histogram
	SnapshotSizeBytes prometheus.Gauge
	SnapshotLastSeq   prometheus.Gauge
	ReplayTotal       prometheus.Counter
	ReplayDuration    prometheus.Gauge

	// --- Query API ---
	QueryRequests *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	latencyBuckets := []float64{
		0.000001, 0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	ingestBuckets := []float64{
		0.00001, 0.000025, 0.00005, 0.0001, 0.00025,
		0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	return &Metrics{
		// Core Processing
		CoreCommandsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_core_commands_applied_total",
			Help: "Commands successfully applied by core",
		}, []string{"command_type"}),

		CoreCommandsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_core_commands_rejected_total",
			Help: "Commands rejected (dedup, gap, validation)",
		}, []string{"command_type", "reason"}),

		CoreCommandDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "token_core_command_apply_duration_seconds",
			Help:    "Time to apply a single command in core",
			Buckets: latencyBuckets,
		}, []string{"command_type"}),

		CoreEntries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_core_entries_generated_total",
			Help: "Ledger entries generated",
		}, []string{"entry_kind"}),

		CoreStateHashDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "token_core_state_hash_duration_seconds",
			Help:    "Time to compute state hash",
			Buckets: latencyBuckets,
		}),

		CoreSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "token_core_sequence",
			Help: "Current global sequence number",
		}),

		// Latency
		IngestToApply: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "token_ingest_to_apply_seconds",
			Help:    "NATS receive to core apply complete",
			Buckets: ingestBuckets,
		}, []string{"command_type"}),

		ApplyToPersist: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "token_apply_to_persist_seconds",
			Help:    "Core emit to Postgres commit",
			Buckets: latencyBuckets,
		}),

		NATSPullLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "token_nats_pull_latency_seconds",
			Help:    "NATS pull request latency",
			Buckets: ingestBuckets,
		}, []string{"subject"}),

		PersistBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "token_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		// Channel & Backpressure
		ChannelSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "token_channel_size",
			Help: "Current items in channel",
		}, []string{"name"}),

		ChannelCapacity: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "token_channel_capacity",
			Help: "Channel capacity (constant)",
		}, []string{"name"}),

		ChannelUtilization: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "token_channel_utilization",
			Help: "Channel size / capacity (0.0-1.0)",
		}, []string{"name"}),

		ProjectionDrops: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_projection_drops_total",
			Help: "Outputs dropped due to full projection channel",
		}, []string{"projection"}),

		PublishDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "token_publish_drops_total",
			Help: "Notifications dropped due to full publish channel",
		}),

		PersistBackpressure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "token_persist_backpressure_total",
			Help: "Times core blocked on persist channel",
		}),

		// Idempotency & Ordering
		IdempotencyDuplicates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_idempotency_duplicates_total",
			Help: "Duplicates caught (lru/postgres)",
		}, []string{"command_type", "tier"}),

		DedupLRUSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "token_dedup_lru_size",
			Help: "Current LRU occupancy",
		}),

		DedupLRUEvictions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "token_dedup_lru_evictions_total",
			Help: "LRU evictions",
		}),

		CommandSequenceGap: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_command_sequence_gap_total",
			Help: "Source sequence gaps",
		}, []string{"partition"}),

		CommandOutOfOrder: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_command_out_of_order_total",
			Help: "Out-of-order rejections",
		}, []string{"partition"}),

		// Transfers & Burns
		TransfersApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_transfers_applied_total",
			Help: "Transfers applied",
		}, []string{"asset"}),

		TransfersDenied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_transfers_denied_total",
			Help: "Transfers refused (blacklist, disabled destination, validation)",
		}, []string{"asset", "reason"}),

		BurnsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_burns_applied_total",
			Help: "Burns applied",
		}, []string{"asset"}),

		SupplyUnits: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "token_supply_units",
			Help: "Current supply in minimal units",
		}, []string{"asset"}),

		// Swap Settlement
		SwapsSettled: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_swaps_settled_total",
			Help: "Swaps settled",
		}, []string{"asset"}),

		SwapsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_swaps_rejected_total",
			Help: "Swaps rejected (reserve depleted, validation)",
		}, []string{"asset", "reason"}),

		SwapTokensRetired: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_swap_tokens_retired_units",
			Help: "Token units retired through swaps",
		}, []string{"asset"}),

		SwapReservePaidOut: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_swap_reserve_paid_out_units",
			Help: "Reserve units paid out through swaps",
		}, []string{"asset"}),

		ReserveAvailable: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "token_reserve_available_units",
			Help: "Last observed custodian reserve balance",
		}),

		// Blacklist
		BlacklistSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "token_blacklist_size",
			Help: "Accounts currently blacklisted",
		}),

		BlacklistDenials: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_blacklist_denials_total",
			Help: "Operations denied by the blacklist",
		}, []string{"command_type"}),

		// Persistence
		PersistCommandsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "token_persist_commands_written_total",
			Help: "Command envelopes written to Postgres",
		}),

		PersistEntriesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "token_persist_entries_written_total",
			Help: "Ledger entries written to Postgres",
		}),

		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "token_persist_batch_size",
			Help:    "Commands per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		PersistErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistRetry: promauto.NewCounter(prometheus.CounterOpts{
			Name: "token_persist_retry_total",
			Help: "Persistence retries",
		}),

		PersistLastSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "token_persist_last_sequence",
			Help: "Last persisted sequence",
		}),

		// Snapshot
		SnapshotTaken: promauto.NewCounter(prometheus.CounterOpts{
			Name: "token_snapshot_taken_total",
			Help: "Snapshots created",
		}),

		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "token_snapshot_duration_seconds",
			Help:    "Snapshot creation time",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		}),

		SnapshotSizeBytes: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "token_snapshot_size_bytes",
			Help: "Last snapshot size",
		}),

		SnapshotLastSeq: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "token_snapshot_last_sequence",
			Help: "Sequence of last snapshot",
		}),

		ReplayTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "token_replay_commands_total",
			Help: "Commands replayed on startup",
		}),

		ReplayDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "token_replay_duration_seconds",
			Help: "Total replay time",
		}),

		// Query API
		QueryRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_query_requests_total",
			Help: "Query requests",
		}, []string{"endpoint"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "token_query_duration_seconds",
			Help:    "Query latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_query_errors_total",
			Help: "Query errors",
		}, []string{"endpoint"}),
	}
}

// SetChannelMetrics updates channel utilization metrics.
func (m *Metrics) SetChannelMetrics(name string, size, capacity int) {
	m.ChannelSize.WithLabelValues(name).Set(float64(size))
	m.ChannelCapacity.WithLabelValues(name).Set(float64(capacity))
	if capacity > 0 {
		m.ChannelUtilization.WithLabelValues(name).Set(float64(size) / float64(capacity))
	}
}
