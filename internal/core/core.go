// Package core is the single-threaded deterministic command processor.
// Commands enter one at a time, mutate the in-memory stores through the
// engine, and leave as sequenced outputs carrying the state hash chain.
package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/authz"
	"TokenLedger/internal/command"
	"TokenLedger/internal/engine"
	"TokenLedger/internal/event"
	"TokenLedger/internal/ledger"
	"TokenLedger/internal/observability"
	"TokenLedger/internal/swap"
)

// Core is the single-threaded command processor. Exactly one goroutine
// drives ProcessCommand; everything it touches is unsynchronized by design.
type Core struct {
	sequence          int64
	admin             string
	hasher            *StateHasher
	balances          *ledger.BalanceStore
	supply            *ledger.SupplyStore
	gate              *authz.Gate
	engine            *engine.Engine
	settler           *swap.Settler
	idempotency       *IdempotencyChecker
	sequenceValidator *SequenceValidator
	metrics           *observability.Metrics

	persistChan    chan<- CoreOutput
	projectionChan chan<- CoreOutput

	// outbound accumulates the notifications emitted while the current
	// command is being applied; they ship with the command's output.
	outbound []event.Notification
}

// CoreOutput is one applied command: the command itself (journaled for
// replay), its envelope, the ledger entries it produced, and the
// notifications to fan out to the parties involved.
type CoreOutput struct {
	Command       command.Command
	Envelope      *command.Envelope
	Entries       []ledger.Entry
	Notifications []event.Notification
	StateDelta    []byte
}

func NewCore(
	startSequence int64,
	admin string,
	balances *ledger.BalanceStore,
	supply *ledger.SupplyStore,
	gate *authz.Gate,
	eng *engine.Engine,
	settler *swap.Settler,
	bus *event.Bus,
	persistChan, projectionChan chan<- CoreOutput,
	dbChecker DBIdempotencyChecker,
	metrics *observability.Metrics,
) *Core {
	c := &Core{
		sequence:          startSequence,
		admin:             admin,
		hasher:            NewStateHasher(),
		balances:          balances,
		supply:            supply,
		gate:              gate,
		engine:            eng,
		settler:           settler,
		idempotency:       NewIdempotencyChecker(1_000_000, dbChecker),
		sequenceValidator: NewSequenceValidator(),
		metrics:           metrics,
		persistChan:       persistChan,
		projectionChan:    projectionChan,
	}

	// Collect every notification emitted during dispatch so the outbound
	// publisher can fan it out after the command persists. Subscribed
	// last: by then the settler has already run for this notification.
	bus.Subscribe(func(ctx context.Context, tx *ledger.Txn, n event.Notification) error {
		c.outbound = append(c.outbound, n)
		return nil
	})

	return c
}

// ProcessCommand is the main processing pipeline.
func (c *Core) ProcessCommand(ctx context.Context, cmd command.Command) error {
	start := time.Now()
	commandType := cmd.CommandType().String()
	idempotencyKey := cmd.IdempotencyKey()

	// Step 1: Idempotency check (two-tier)
	isDuplicate := c.idempotency.IsDuplicate(commandType, idempotencyKey)

	// Step 2: Sequence validation
	partition := cmd.Partition()
	sourceSequence := cmd.SourceSequence()
	if err := c.sequenceValidator.ValidateSequence(partition, sourceSequence, idempotencyKey, isDuplicate); err != nil {
		if c.metrics != nil {
			c.metrics.CoreCommandsRejected.WithLabelValues(commandType, "sequence").Inc()
		}
		return fmt.Errorf("sequence validation failed: %w", err)
	}

	if isDuplicate {
		if c.metrics != nil {
			c.metrics.CoreCommandsRejected.WithLabelValues(commandType, "duplicate").Inc()
		}
		return nil
	}

	// Step 3: Dispatch. The engine applies the mutations atomically; the
	// collector gathers the notifications emitted along the way.
	c.outbound = nil
	entries, err := c.dispatch(ctx, cmd)
	if err != nil {
		c.outbound = nil
		if c.metrics != nil {
			c.metrics.CoreCommandsRejected.WithLabelValues(commandType, "validation").Inc()
		}
		return fmt.Errorf("dispatch failed: %w", err)
	}
	notifications := c.outbound
	c.outbound = nil

	// Step 4: Post-check invariants
	if err := c.postCheckInvariants(entries); err != nil {
		panic(fmt.Sprintf("FATAL: invariant violated: %v", err))
	}

	// Step 5: State digest and hash chain
	stateDigest := c.computeStateDigest(entries)
	prevHash := c.hasher.GetPrevHash()
	stateHash := c.hasher.ComputeHash(c.sequence, stateDigest)

	envelope := &command.Envelope{
		Sequence:       c.sequence,
		CommandID:      idempotencyKey,
		CommandType:    cmd.CommandType(),
		Actor:          cmd.Actor(),
		Partition:      partition,
		Timestamp:      cmd.OccurredAt(),
		SourceSequence: sourceSequence,
		StateHash:      stateHash,
		PrevHash:       prevHash,
	}

	output := CoreOutput{
		Command:       cmd,
		Envelope:      envelope,
		Entries:       entries,
		Notifications: notifications,
		StateDelta:    stateDigest,
	}
	c.sequence++

	// Step 6: Emit. Persistence gets a BLOCKING send — the core stalls
	// until the writer drains, so no applied command is ever lost.
	// Projections get a NON-BLOCKING send and rebuild from the operation
	// log if they fall behind.
	c.persistChan <- output

	select {
	case c.projectionChan <- output:
	default:
		if c.metrics != nil {
			c.metrics.ProjectionDrops.WithLabelValues("all").Inc()
		}
	}

	// Step 7: Mark as processed
	c.idempotency.MarkProcessed(commandType, idempotencyKey)

	if c.metrics != nil {
		c.metrics.CoreCommandsApplied.WithLabelValues(commandType).Inc()
		c.metrics.CoreCommandDuration.WithLabelValues(commandType).Observe(time.Since(start).Seconds())
		c.metrics.CoreSequence.Set(float64(c.sequence))
		for _, entry := range entries {
			c.metrics.CoreEntries.WithLabelValues(entry.Kind.String()).Inc()
		}
	}

	return nil
}

// capabilityFor derives the capability from the authenticated actor.
// The admin identity is the only privileged one.
func (c *Core) capabilityFor(actor string) authz.Capability {
	if actor == c.admin {
		return authz.CapAdmin
	}
	return authz.CapNone
}

func (c *Core) dispatch(ctx context.Context, cmd command.Command) ([]ledger.Entry, error) {
	switch cm := cmd.(type) {
	case *command.Transfer:
		entries, err := c.engine.Transfer(ctx, cm.Actor(), cm.From, cm.To, cm.Quantity, cm.Memo)
		if err == nil && c.metrics != nil {
			c.metrics.TransfersApplied.WithLabelValues(cm.Quantity.Symbol.Code).Inc()
		}
		return entries, err
	case *command.Burn:
		entries, err := c.engine.Burn(ctx, cm.Actor(), c.capabilityFor(cm.Actor()), cm.From, cm.Quantity, cm.Memo)
		if err == nil && c.metrics != nil {
			c.metrics.BurnsApplied.WithLabelValues(cm.Quantity.Symbol.Code).Inc()
		}
		return entries, err
	case *command.Swap:
		if c.settler == nil {
			return nil, fmt.Errorf("swap settlement not configured")
		}
		entries, err := c.settler.Swap(ctx, cm.Actor(), c.capabilityFor(cm.Actor()), cm.Account, cm.Memo)
		if err == nil && c.metrics != nil {
			c.metrics.SwapsSettled.WithLabelValues(c.settler.Token().Code).Inc()
		}
		return entries, err
	case *command.Close:
		return c.engine.Close(ctx, cm.Actor(), c.capabilityFor(cm.Actor()), cm.Owner, cm.Code)
	case *command.CloseAll:
		return c.engine.CloseAll(ctx, cm.Actor(), c.capabilityFor(cm.Actor()), cm.Owner)
	case *command.SetAuthorization:
		entries, err := c.engine.SetAuthorization(ctx, cm.Actor(), c.capabilityFor(cm.Actor()), cm.Account, cm.Authorized)
		if err == nil && c.metrics != nil {
			c.metrics.BlacklistSize.Set(float64(len(c.gate.Snapshot())))
		}
		return entries, err
	default:
		return nil, fmt.Errorf("unknown command type: %T", cmd)
	}
}

// computeStateDigest creates canonical bytes for the state hash: the
// applied entries followed by the resulting balance of every touched
// (account, asset) pair, in sorted order.
func (c *Core) computeStateDigest(entries []ledger.Entry) []byte {
	digest := make([]byte, 0, len(entries)*48)

	for _, entry := range entries {
		digest = append(digest, byte(entry.Kind))
		digest = append(digest, byte(len(entry.Account)))
		digest = append(digest, []byte(entry.Account)...)
		digest = append(digest, byte(len(entry.Asset)))
		digest = append(digest, []byte(entry.Asset)...)
		digest = appendInt64LE(digest, entry.Delta)
	}

	touched := make(map[string]ledger.Entry)
	for _, entry := range entries {
		if entry.Asset == "" {
			continue
		}
		touched[entry.Account+":"+entry.Asset] = entry
	}
	paths := make([]string, 0, len(touched))
	for path := range touched {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		entry := touched[path]
		var units int64
		if bal, err := c.balances.Balance(entry.Account, entry.Asset); err == nil {
			units = bal.Units
		}
		digest = append(digest, byte(len(path)))
		digest = append(digest, []byte(path)...)
		digest = appendInt64LE(digest, units)
	}

	return digest
}

func appendInt64LE(buf []byte, v int64) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}

// postCheckInvariants verifies conservation for every asset the command
// touched: the sum of all balance records never exceeds the supply, and
// the supply never goes negative. Violations are programming errors, not
// input errors.
func (c *Core) postCheckInvariants(entries []ledger.Entry) error {
	codes := make(map[string]struct{})
	for _, entry := range entries {
		if entry.Asset != "" {
			codes[entry.Asset] = struct{}{}
		}
	}

	// Periodic full sweep across every registered asset.
	if c.sequence > 0 && c.sequence%1000 == 0 {
		for _, code := range c.supply.Codes() {
			codes[code] = struct{}{}
		}
	}

	for code := range codes {
		st, err := c.supply.Supply(code)
		if err != nil {
			continue
		}
		if st.Supply.Units < 0 {
			return fmt.Errorf("supply negative for %s: %d (at seq %d)", code, st.Supply.Units, c.sequence)
		}
		if total := c.balances.TotalUnits(code); total > st.Supply.Units {
			return fmt.Errorf("balances exceed supply for %s: %d > %d (at seq %d)",
				code, total, st.Supply.Units, c.sequence)
		}
	}

	return nil
}

// --- Snapshot Restore & Startup Methods ---

// SnapshotState holds the serializable in-memory state for restore.
// This mirrors persistence.SnapshotData but uses typed fields.
type SnapshotState struct {
	Sequence        int64
	StateHash       [32]byte
	Balances        map[string]asset.Amount
	Supply          map[string]ledger.Stats
	Blacklist       []string
	SequenceState   map[string]int64
	IdempotencyKeys []string
}

// RestoreFromSnapshot restores the core's in-memory state. On warm
// restart the caller loads the latest snapshot, restores, then replays
// the operation log past the snapshot sequence.
func (c *Core) RestoreFromSnapshot(snap *SnapshotState) error {
	c.sequence = snap.Sequence + 1 // next sequence to assign
	c.hasher.SetPrevHash(snap.StateHash)

	if err := c.balances.Restore(snap.Balances); err != nil {
		return fmt.Errorf("restore balances: %w", err)
	}
	c.supply.Restore(snap.Supply)
	c.gate.Restore(snap.Blacklist)

	for partition, nextSeq := range snap.SequenceState {
		c.sequenceValidator.RestorePartition(partition, nextSeq)
	}
	return nil
}

// SetDurableDedup attaches the durable (Postgres) dedup tier. The core
// starts without it: startup replay feeds back rows from the same
// operation log the checker queries, so with the tier attached every
// replayed command would be reported as its own duplicate and skipped.
// Attach only after replay completes.
func (c *Core) SetDurableDedup(checker DBIdempotencyChecker) {
	c.idempotency.dbChecker = checker
}

// WarmLRU loads recent idempotency keys into the LRU cache, keeping
// recently processed commands off the cold DB path after a restart.
func (c *Core) WarmLRU(keys []string) {
	c.idempotency.lru.WarmFromKeys(keys)
}

// GetSequence returns the current global sequence number.
func (c *Core) GetSequence() int64 {
	return c.sequence
}

// GetStateHash returns the current state hash (chain tip).
func (c *Core) GetStateHash() [32]byte {
	return c.hasher.GetPrevHash()
}

// CreateSnapshotState captures the current in-memory state for persistence.
func (c *Core) CreateSnapshotState() *SnapshotState {
	return &SnapshotState{
		Sequence:        c.sequence - 1, // last processed sequence
		StateHash:       c.hasher.GetPrevHash(),
		Balances:        c.balances.Snapshot(),
		Supply:          c.supply.Snapshot(),
		Blacklist:       c.gate.Snapshot(),
		SequenceState:   c.sequenceValidator.GetAllPartitions(),
		IdempotencyKeys: c.idempotency.lru.GetAllKeys(),
	}
}
