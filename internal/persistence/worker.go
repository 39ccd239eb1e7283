package persistence

import (
	"TokenLedger/internal/observability"
	"context"
	"database/sql"
	"log"
	"time"
)

// Output mirrors the shape of core.CoreOutput after row conversion, to avoid
// an import cycle. The orchestrator (cmd/main.go) bridges between the two.
type Output struct {
	CommandRow CommandRow
	EntryRows  []EntryRow
}

// PersistenceWorker drains the persist channel and batch-writes to Postgres.
// This goroutine runs independently from the deterministic core. The persist
// channel uses BLOCKING sends from the core, so if this worker falls behind,
// the core stalls — guaranteeing no applied command is lost.
type PersistenceWorker struct {
	writer       *CommandLogWriter
	inputChan    <-chan Output
	batchSize    int
	flushTimeout time.Duration
	metrics      *observability.Metrics
}

func NewPersistenceWorker(
	db *sql.DB,
	inputChan <-chan Output,
	batchSize int,
	flushTimeout time.Duration,
	metrics *observability.Metrics,
) *PersistenceWorker {
	return &PersistenceWorker{
		writer:       NewCommandLogWriter(db, batchSize, flushTimeout),
		inputChan:    inputChan,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		metrics:      metrics,
	}
}

// Run starts the persistence worker loop. It batches incoming outputs
// and flushes either when the batch is full or the flush timeout expires.
// Blocks until ctx is cancelled.
func (pw *PersistenceWorker) Run(ctx context.Context) error {
	commandBatch := make([]CommandRow, 0, pw.batchSize)
	entryBatch := make([]EntryRow, 0, pw.batchSize*4) // ~4 entries per command avg

	timer := time.NewTimer(pw.flushTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			// Graceful shutdown: flush remaining
			if len(commandBatch) > 0 {
				if err := pw.flush(ctx, commandBatch, entryBatch); err != nil {
					log.Printf("ERROR: final flush failed: %v", err)
				}
			}
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				// Channel closed — flush and exit
				if len(commandBatch) > 0 {
					if err := pw.flush(context.Background(), commandBatch, entryBatch); err != nil {
						log.Printf("ERROR: final flush failed: %v", err)
					}
				}
				return nil
			}

			commandBatch = append(commandBatch, output.CommandRow)
			entryBatch = append(entryBatch, output.EntryRows...)

			// Flush if batch is full
			if len(commandBatch) >= pw.batchSize {
				if err := pw.flushWithRetry(ctx, commandBatch, entryBatch); err != nil {
					log.Printf("ERROR: batch flush failed after retries: %v", err)
				}
				commandBatch = commandBatch[:0]
				entryBatch = entryBatch[:0]
				timer.Reset(pw.flushTimeout)
			}

		case <-timer.C:
			// Flush timeout — write whatever we have
			if len(commandBatch) > 0 {
				if err := pw.flushWithRetry(ctx, commandBatch, entryBatch); err != nil {
					log.Printf("ERROR: timeout flush failed after retries: %v", err)
				}
				commandBatch = commandBatch[:0]
				entryBatch = entryBatch[:0]
			}
			timer.Reset(pw.flushTimeout)
		}
	}
}

// flushWithRetry attempts to flush with exponential backoff. The worker
// NEVER drops applied commands — it retries indefinitely until the write
// succeeds or the context is cancelled (graceful shutdown).
func (pw *PersistenceWorker) flushWithRetry(ctx context.Context, commands []CommandRow, entries []EntryRow) error {
	backoff := 100 * time.Millisecond
	const maxBackoff = 30 * time.Second

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			log.Printf("WARN: persistence retry attempt %d (backoff=%v, commands=%d)",
				attempt, backoff, len(commands))
			select {
			case <-ctx.Done():
				// Graceful shutdown — attempt one final flush with background
				// context to avoid losing the batch.
				if finalErr := pw.flush(context.Background(), commands, entries); finalErr != nil {
					return finalErr
				}
				return nil
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		err := pw.flush(ctx, commands, entries)
		if err == nil {
			if attempt > 0 {
				log.Printf("INFO: persistence flush succeeded after %d retries", attempt)
			}
			return nil
		}

		if pw.metrics != nil {
			pw.metrics.PersistRetry.Inc()
		}
	}
}

func (pw *PersistenceWorker) flush(ctx context.Context, commands []CommandRow, entries []EntryRow) error {
	start := time.Now()

	// Write commands and entries in a single transaction
	tx, err := pw.writer.db.BeginTx(ctx, nil)
	if err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("tx_begin").Inc()
		}
		return err
	}
	defer tx.Rollback()

	if err := pw.writer.WriteCommandBatch(ctx, tx, commands); err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("write_commands").Inc()
		}
		return err
	}

	if err := pw.writer.WriteEntryBatch(ctx, tx, entries); err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("write_entries").Inc()
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("tx_commit").Inc()
		}
		return err
	}

	if pw.metrics != nil {
		pw.metrics.PersistBatchDur.Observe(time.Since(start).Seconds())
		pw.metrics.PersistBatchSize.Observe(float64(len(commands)))
		pw.metrics.PersistCommandsWritten.Add(float64(len(commands)))
		pw.metrics.PersistEntriesWritten.Add(float64(len(entries)))
		if len(commands) > 0 {
			pw.metrics.PersistLastSequence.Set(float64(commands[len(commands)-1].Sequence))
		}
	}

	return nil
}

// GetWriter returns the underlying writer.
func (pw *PersistenceWorker) GetWriter() *CommandLogWriter {
	return pw.writer
}
