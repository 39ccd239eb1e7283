package projection

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// ProjectionOutput mirrors the data needed by projection workers.
// The orchestrator bridges between core.CoreOutput and this.
type ProjectionOutput struct {
	Sequence    int64
	CommandType string
	Entries     []Entry
	Timestamp   int64
}

// Entry is a simplified ledger entry for projection consumption.
type Entry struct {
	Account string
	Asset   string
	Delta   int64
	Kind    string
}

// ProjectionWorker updates projection tables from applied commands.
// The projection channel is non-blocking with drop: if projections fall
// behind, they can be rebuilt from the command log.
type ProjectionWorker struct {
	db        *sql.DB
	inputChan <-chan ProjectionOutput
	lastSeq   int64
}

func NewProjectionWorker(db *sql.DB, inputChan <-chan ProjectionOutput) *ProjectionWorker {
	return &ProjectionWorker{
		db:        db,
		inputChan: inputChan,
	}
}

// Run starts the projection worker loop.
func (pw *ProjectionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				return nil
			}

			if err := pw.processOutput(ctx, output); err != nil {
				log.Printf("WARN: projection update failed at seq=%d: %v", output.Sequence, err)
				// Continue — projections are eventually consistent
				// and can be rebuilt from the command log
			}

			pw.lastSeq = output.Sequence
		}
	}
}

func (pw *ProjectionWorker) processOutput(ctx context.Context, output ProjectionOutput) error {
	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range output.Entries {
		if err := pw.applyEntry(ctx, tx, output.Sequence, e); err != nil {
			return fmt.Errorf("%s projection: %w", e.Kind, err)
		}
	}

	// Update projection watermark
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		VALUES ('main', $1, NOW())
		ON CONFLICT (worker_id) DO UPDATE SET last_sequence = $1, updated_at = NOW()
	`, output.Sequence); err != nil {
		return fmt.Errorf("watermark update: %w", err)
	}

	return tx.Commit()
}

func (pw *ProjectionWorker) applyEntry(ctx context.Context, tx *sql.Tx, seq int64, e Entry) error {
	switch e.Kind {
	case "credit", "debit":
		return pw.applyBalanceDelta(ctx, tx, seq, e)

	case "record_closed":
		// Zero-balance record removed from the holdings table.
		_, err := tx.ExecContext(ctx, `
			DELETE FROM projections.balances WHERE account = $1 AND asset = $2
		`, e.Account, e.Asset)
		return err

	case "supply_decrease":
		// Delta is negative for a supply decrease.
		_, err := tx.ExecContext(ctx, `
			UPDATE projections.supply
			SET supply_units = supply_units + $2, last_sequence = $3
			WHERE asset = $1
		`, e.Asset, e.Delta, seq)
		return err

	case "blacklist_add":
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projections.blacklist (account, since_sequence)
			VALUES ($1, $2)
			ON CONFLICT (account) DO NOTHING
		`, e.Account, seq)
		return err

	case "blacklist_remove":
		_, err := tx.ExecContext(ctx, `
			DELETE FROM projections.blacklist WHERE account = $1
		`, e.Account)
		return err
	}

	return nil
}

func (pw *ProjectionWorker) applyBalanceDelta(ctx context.Context, tx *sql.Tx, seq int64, e Entry) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account, asset, units, last_sequence)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account, asset)
		DO UPDATE SET units = projections.balances.units + $3, last_sequence = $4
	`, e.Account, e.Asset, e.Delta, seq); err != nil {
		return err
	}

	// Mirror in-memory pruning: no zero-balance rows.
	_, err := tx.ExecContext(ctx, `
		DELETE FROM projections.balances WHERE account = $1 AND asset = $2 AND units = 0
	`, e.Account, e.Asset)
	return err
}

// RebuildProjections rebuilds the balance projection from the command log.
// Supply and blacklist projections are refreshed from the next snapshot.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	truncateStatements := []string{
		`TRUNCATE projections.balances`,
		`DELETE FROM projections.watermark WHERE worker_id = 'main'`,
	}

	for _, stmt := range truncateStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO projections.balances (account, asset, units, last_sequence)
		SELECT
			account,
			asset,
			SUM(delta) AS units,
			MAX(sequence) AS last_sequence
		FROM token_ledger.entries
		WHERE kind IN ('credit', 'debit')
		GROUP BY account, asset
		HAVING SUM(delta) <> 0
	`)
	if err != nil {
		return fmt.Errorf("rebuild balances: %w", err)
	}

	log.Println("INFO: projection rebuild complete")
	return nil
}
