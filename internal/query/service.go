package query

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"TokenLedger/internal/ledger"
	"TokenLedger/internal/observability"
)

// QueryService provides read-only access to projection tables. Queries are
// served via gRPC and HTTP/JSON (gRPC-Gateway), reading from PostgreSQL
// projection tables. All responses include as_of_sequence for freshness
// semantics.
type QueryService struct {
	db      *sql.DB
	metrics *observability.Metrics
}

func NewQueryService(db *sql.DB, metrics *observability.Metrics) *QueryService {
	return &QueryService{db: db, metrics: metrics}
}

// GetBalance returns an owner's balance for a specific asset. An owner with
// no record in the asset is an error, not a zero balance: records are pruned
// when a balance reaches zero, so absence means "never held or fully spent".
func (qs *QueryService) GetBalance(
	ctx context.Context,
	owner string,
	asset string,
) (*BalanceResponse, error) {
	defer qs.observe("get_balance", time.Now())

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	var units int64
	err = qs.db.QueryRowContext(ctx, `
		SELECT units FROM projections.balances
		WHERE account = $1 AND asset = $2
	`, owner, asset).Scan(&units)
	if err == sql.ErrNoRows {
		qs.countError("get_balance")
		return nil, fmt.Errorf("%s has no %s balance: %w", owner, asset, ledger.ErrNoBalanceRecord)
	}
	if err != nil {
		qs.countError("get_balance")
		return nil, err
	}

	return &BalanceResponse{
		Owner:        owner,
		Asset:        asset,
		Units:        units,
		AsOfSequence: asOfSeq,
	}, nil
}

// GetHoldings returns every balance record an owner has, ordered by asset.
func (qs *QueryService) GetHoldings(
	ctx context.Context,
	owner string,
) (*HoldingsResponse, error) {
	defer qs.observe("get_holdings", time.Now())

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT asset, units FROM projections.balances
		WHERE account = $1
		ORDER BY asset
	`, owner)
	if err != nil {
		qs.countError("get_holdings")
		return nil, err
	}
	defer rows.Close()

	resp := &HoldingsResponse{Owner: owner, AsOfSequence: asOfSeq}
	for rows.Next() {
		var h HoldingResponse
		if err := rows.Scan(&h.Asset, &h.Units); err != nil {
			return nil, err
		}
		resp.Holdings = append(resp.Holdings, h)
	}

	return resp, rows.Err()
}

// GetSupply returns the circulating supply stats for an asset.
func (qs *QueryService) GetSupply(
	ctx context.Context,
	asset string,
) (*SupplyResponse, error) {
	defer qs.observe("get_supply", time.Now())

	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	var resp SupplyResponse
	resp.Asset = asset
	resp.AsOfSequence = asOfSeq
	err = qs.db.QueryRowContext(ctx, `
		SELECT supply_units, max_supply_units, precision, issuer
		FROM projections.supply
		WHERE asset = $1
	`, asset).Scan(&resp.SupplyUnits, &resp.MaxSupplyUnits, &resp.Precision, &resp.Issuer)
	if err == sql.ErrNoRows {
		qs.countError("get_supply")
		return nil, fmt.Errorf("asset %s: %w", asset, ledger.ErrUnknownAsset)
	}
	if err != nil {
		qs.countError("get_supply")
		return nil, err
	}

	return &resp, nil
}

// ListBlacklist returns all blocked accounts, ordered by name.
func (qs *QueryService) ListBlacklist(ctx context.Context) ([]BlacklistEntry, error) {
	defer qs.observe("list_blacklist", time.Now())

	rows, err := qs.db.QueryContext(ctx, `
		SELECT account, since_sequence FROM projections.blacklist
		ORDER BY account
	`)
	if err != nil {
		qs.countError("list_blacklist")
		return nil, err
	}
	defer rows.Close()

	var entries []BlacklistEntry
	for rows.Next() {
		var e BlacklistEntry
		if err := rows.Scan(&e.Account, &e.SinceSequence); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetHistory returns ledger entries touching an account, newest first,
// with cursor-based pagination.
func (qs *QueryService) GetHistory(
	ctx context.Context,
	account string,
	limit int,
	afterSequence *int64,
) ([]HistoryEntry, error) {
	defer qs.observe("get_history", time.Now())

	query := `
		SELECT e.sequence, e.position, e.account, e.asset, e.delta, e.kind,
		       c.command_type, c.command_id, c.actor, c.timestamp
		FROM token_ledger.entries e
		JOIN token_ledger.commands c ON c.sequence = e.sequence
		WHERE e.account = $1
	`
	args := []interface{}{account}
	argIdx := 2

	if afterSequence != nil {
		query += fmt.Sprintf(" AND e.sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY e.sequence DESC, e.position ASC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		qs.countError("get_history")
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var ts time.Time
		if err := rows.Scan(
			&e.Sequence, &e.Position, &e.Account, &e.Asset, &e.Delta, &e.Kind,
			&e.CommandType, &e.CommandID, &e.Actor, &ts,
		); err != nil {
			return nil, err
		}
		e.Timestamp = ts.UnixMicro()
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// --- Admin APIs ---

// VerifyIntegrity checks hash chain continuity in the command log and that
// no asset's projected holdings exceed its recorded supply.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	defer qs.observe("verify_integrity", time.Now())

	report := &IntegrityReport{}

	// Check hash chain continuity
	rows, err := qs.db.QueryContext(ctx, `
		SELECT c1.sequence
		FROM token_ledger.commands c1
		LEFT JOIN token_ledger.commands c2 ON c2.sequence = c1.sequence - 1
		WHERE c1.sequence > 0 AND c1.prev_hash != COALESCE(c2.state_hash, c1.prev_hash)
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Held units per asset must not exceed circulating supply
	mismatchRows, err := qs.db.QueryContext(ctx, `
		SELECT s.asset, COALESCE(SUM(b.units), 0) AS held, s.supply_units
		FROM projections.supply s
		LEFT JOIN projections.balances b ON b.asset = s.asset
		GROUP BY s.asset, s.supply_units
		HAVING COALESCE(SUM(b.units), 0) > s.supply_units
	`)
	if err != nil {
		return nil, err
	}
	defer mismatchRows.Close()

	for mismatchRows.Next() {
		var m SupplyMismatch
		if err := mismatchRows.Scan(&m.Asset, &m.HeldUnits, &m.SupplyUnits); err != nil {
			return nil, err
		}
		report.SupplyMismatch = append(report.SupplyMismatch, m)
	}
	if err := mismatchRows.Err(); err != nil {
		return nil, err
	}

	report.IsHealthy = len(report.HashChainBreaks) == 0 && len(report.SupplyMismatch) == 0
	return report, nil
}

// --- helpers ---

func (qs *QueryService) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(last_sequence, 0) FROM projections.watermark WHERE worker_id = 'main'
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}

func (qs *QueryService) observe(method string, start time.Time) {
	if qs.metrics == nil {
		return
	}
	qs.metrics.QueryRequests.WithLabelValues(method).Inc()
	qs.metrics.QueryDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func (qs *QueryService) countError(method string) {
	if qs.metrics == nil {
		return
	}
	qs.metrics.QueryErrors.WithLabelValues(method).Inc()
}
