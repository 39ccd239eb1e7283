package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SnapshotManager handles creating and loading state snapshots for recovery.
// Snapshots contain balances, supply stats, the blacklist, the idempotency
// LRU, per-partition sequence counters, and the last state hash.
type SnapshotManager struct {
	db *sql.DB
}

// SnapshotData contains the full in-memory state at a point in time.
// It mirrors core.SnapshotState in serializable form; the orchestrator
// (cmd/main.go) bridges between the two.
type SnapshotData struct {
	Sequence        int64                  `json:"sequence"`
	StateHash       []byte                 `json:"state_hash"`
	Balances        map[string]AmountSnap  `json:"balances"`         // "owner:CODE" -> amount
	Supply          map[string]SupplySnap  `json:"supply"`           // asset code -> supply stats
	Blacklist       []string               `json:"blacklist"`        // blocked account names
	SequenceState   map[string]int64       `json:"sequence_state"`   // partition -> next expected seq
	IdempotencyKeys []string               `json:"idempotency_keys"` // Recent keys for LRU warming
	CreatedAt       time.Time              `json:"created_at"`
}

// AmountSnap is a serializable fixed-point quantity.
type AmountSnap struct {
	Units     int64  `json:"units"`
	Code      string `json:"code"`
	Precision uint32  `json:"precision"`
}

// SupplySnap is a serializable supply record.
type SupplySnap struct {
	SupplyUnits    int64  `json:"supply_units"`
	MaxSupplyUnits int64  `json:"max_supply_units"`
	Code           string `json:"code"`
	Precision      uint32  `json:"precision"`
	Issuer         string `json:"issuer"`
}

func NewSnapshotManager(db *sql.DB) *SnapshotManager {
	return &SnapshotManager{db: db}
}

// SaveSnapshot persists a snapshot to Postgres. Snapshots are taken
// periodically and verified by replaying commands from the snapshot
// sequence forward.
func (sm *SnapshotManager) SaveSnapshot(ctx context.Context, snap *SnapshotData) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	snapshotID := uuid.New()
	sizeBytes := len(data)
	formatVersion := int32(1) // v1: JSON-encoded SnapshotData

	_, err = sm.db.ExecContext(ctx, `
		INSERT INTO token_ledger.snapshots
			(snapshot_id, sequence, data, state_hash, format_version, size_bytes, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
		ON CONFLICT (sequence) DO UPDATE SET data = $3, state_hash = $4, size_bytes = $6
	`, snapshotID, snap.Sequence, data, snap.StateHash, formatVersion, sizeBytes, snap.CreatedAt)

	return err
}

// LoadLatestSnapshot loads the most recent verified snapshot. On warm
// restart the orchestrator restores from it and replays commands from
// snapshot.sequence+1. Returns nil on cold start.
func (sm *SnapshotManager) LoadLatestSnapshot(ctx context.Context) (*SnapshotData, error) {
	row := sm.db.QueryRowContext(ctx, `
		SELECT data FROM token_ledger.snapshots
		WHERE verified = TRUE
		ORDER BY sequence DESC
		LIMIT 1
	`)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No snapshot — cold start
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap SnapshotData
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

// MarkVerified marks a snapshot as verified after integrity check.
func (sm *SnapshotManager) MarkVerified(ctx context.Context, sequence int64) error {
	_, err := sm.db.ExecContext(ctx, `
		UPDATE token_ledger.snapshots SET verified = TRUE WHERE sequence = $1
	`, sequence)
	return err
}

// LoadCommandsFrom loads applied commands from a given sequence for replay.
// Used for warm restart (replay from snapshot) and cold restart (replay all).
func (sm *SnapshotManager) LoadCommandsFrom(ctx context.Context, fromSequence int64, limit int) ([]CommandRow, error) {
	rows, err := sm.db.QueryContext(ctx, `
		SELECT sequence, command_type, command_id, actor, partition, payload,
		       state_hash, prev_hash, timestamp, source_sequence
		FROM token_ledger.commands
		WHERE sequence >= $1
		ORDER BY sequence ASC
		LIMIT $2
	`, fromSequence, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commands []CommandRow
	for rows.Next() {
		var c CommandRow
		if err := rows.Scan(
			&c.Sequence, &c.CommandType, &c.CommandID, &c.Actor, &c.Partition,
			&c.Payload, &c.StateHash, &c.PrevHash, &c.Timestamp, &c.SourceSequence,
		); err != nil {
			return nil, err
		}
		commands = append(commands, c)
	}

	return commands, rows.Err()
}

// GetLatestSequence returns the highest sequence in the command log.
func (sm *SnapshotManager) GetLatestSequence(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	err := sm.db.QueryRowContext(ctx, `
		SELECT MAX(sequence) FROM token_ledger.commands
	`).Scan(&seq)
	if err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil // Empty command log
	}
	return seq.Int64, nil
}
