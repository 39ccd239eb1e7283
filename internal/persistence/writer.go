package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CommandLogWriter writes applied commands and their ledger entries to
// Postgres using batch inserts. This implementation uses multi-row INSERT
// as a portable alternative; switch to pgx CopyFrom for production-grade
// throughput.
type CommandLogWriter struct {
	db           *sql.DB
	batchSize    int
	flushTimeout time.Duration
}

// CommandRow represents a row in token_ledger.commands
type CommandRow struct {
	Sequence       int64
	CommandType    string
	CommandID      string
	Actor          string
	Partition      string
	Payload        []byte // JSON-encoded command payload
	StateHash      []byte
	PrevHash       []byte
	Timestamp      time.Time
	SourceSequence int64
}

// EntryRow represents a row in token_ledger.entries. Position orders the
// entries produced by a single command; (sequence, position) is the key.
type EntryRow struct {
	Sequence int64
	Position int32
	Account  string
	Asset    string
	Delta    int64
	Kind     string
}

func NewCommandLogWriter(db *sql.DB, batchSize int, flushTimeout time.Duration) *CommandLogWriter {
	return &CommandLogWriter{
		db:           db,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
	}
}

// WriteCommandBatch writes a batch of commands to token_ledger.commands
// using multi-row INSERT inside the caller's transaction.
func (w *CommandLogWriter) WriteCommandBatch(ctx context.Context, tx *sql.Tx, commands []CommandRow) error {
	if len(commands) == 0 {
		return nil
	}

	// Build multi-row INSERT
	query := `INSERT INTO token_ledger.commands
		(sequence, command_type, command_id, actor, partition, payload, state_hash, prev_hash, timestamp, source_sequence)
		VALUES `

	values := make([]string, 0, len(commands))
	args := make([]interface{}, 0, len(commands)*10)

	for i, c := range commands {
		base := i * 10
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10,
		))
		args = append(args,
			c.Sequence, c.CommandType, c.CommandID, c.Actor, c.Partition,
			c.Payload, c.StateHash, c.PrevHash, c.Timestamp, c.SourceSequence,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING" // Idempotent writes

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// WriteEntryBatch writes a batch of ledger entries to token_ledger.entries.
func (w *CommandLogWriter) WriteEntryBatch(ctx context.Context, tx *sql.Tx, entries []EntryRow) error {
	if len(entries) == 0 {
		return nil
	}

	query := `INSERT INTO token_ledger.entries
		(sequence, position, account, asset, delta, kind)
		VALUES `

	values := make([]string, 0, len(entries))
	args := make([]interface{}, 0, len(entries)*6)

	for i, e := range entries {
		base := i * 6
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		args = append(args,
			e.Sequence, e.Position, e.Account, e.Asset, e.Delta, e.Kind,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence, position) DO NOTHING"

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// MarshalCommandPayload serializes a command payload to JSON for storage.
func MarshalCommandPayload(payload interface{}) ([]byte, error) {
	return json.Marshal(payload)
}
