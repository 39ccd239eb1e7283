package ledger

import (
	"fmt"
	"sort"

	"TokenLedger/internal/asset"
)

// Stats is the per-asset supply record: current supply, the cap it was
// issued under, and the issuer identity. Issuance happened before this
// ledger's lifetime — there is no mint operation, so supply only ever
// decreases (burns) or stands still.
type Stats struct {
	Supply    asset.Amount
	MaxSupply asset.Amount
	Issuer    string
}

// SupplyStore holds one Stats record per asset code. Records exist for
// the lifetime of the asset and are never deleted.
//
// Not thread-safe — mutated only by the single-threaded core.
type SupplyStore struct {
	stats map[string]Stats
}

func NewSupplyStore() *SupplyStore {
	return &SupplyStore{
		stats: make(map[string]Stats),
	}
}

// Register installs a supply record. Bootstrap and snapshot-restore only:
// runtime operations never create assets.
func (ss *SupplyStore) Register(st Stats) error {
	if st.Supply.Symbol != st.MaxSupply.Symbol {
		return fmt.Errorf("%w: supply %s vs max %s", ErrPrecisionMismatch, st.Supply.Symbol, st.MaxSupply.Symbol)
	}
	if st.Supply.Units < 0 || st.Supply.Units > st.MaxSupply.Units {
		return fmt.Errorf("%w: supply %s outside [0, %s]", ErrInvalidQuantity, st.Supply, st.MaxSupply)
	}
	if st.Issuer == "" {
		return fmt.Errorf("supply record for %s has no issuer", st.Supply.Symbol.Code)
	}
	ss.stats[st.Supply.Symbol.Code] = st
	return nil
}

// Supply returns the record for an asset code.
// Fails with ErrUnknownAsset when no record exists.
func (ss *SupplyStore) Supply(code string) (Stats, error) {
	st, ok := ss.stats[code]
	if !ok {
		return Stats{}, fmt.Errorf("%w: %s", ErrUnknownAsset, code)
	}
	return st, nil
}

// Decrease subtracts a burned quantity from the asset's current supply.
// The quantity must be positive and carry the record's exact symbol.
// No floor check beyond zero is needed: burn debits a sufficient balance
// first, which transitively bounds the decrease.
func (ss *SupplyStore) Decrease(tx *Txn, quantity asset.Amount) error {
	st, ok := ss.stats[quantity.Symbol.Code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, quantity.Symbol.Code)
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: decrease of %s", ErrInvalidQuantity, quantity)
	}
	if quantity.Symbol != st.Supply.Symbol {
		return fmt.Errorf("%w: supply %s vs quantity %s", ErrPrecisionMismatch, st.Supply.Symbol, quantity.Symbol)
	}

	prev := st
	tx.Record(func() { ss.stats[quantity.Symbol.Code] = prev })

	st.Supply.Units -= quantity.Units
	ss.stats[quantity.Symbol.Code] = st

	tx.Note(Entry{Account: st.Issuer, Asset: quantity.Symbol.Code, Delta: -quantity.Units, Kind: EntrySupplyDecrease})
	return nil
}

// Codes returns all registered asset codes, sorted.
func (ss *SupplyStore) Codes() []string {
	codes := make([]string, 0, len(ss.stats))
	for code := range ss.stats {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Snapshot returns a copy of all supply records keyed by asset code.
func (ss *SupplyStore) Snapshot() map[string]Stats {
	snap := make(map[string]Stats, len(ss.stats))
	for code, st := range ss.stats {
		snap[code] = st
	}
	return snap
}

// Restore replaces all records from a snapshot produced by Snapshot.
func (ss *SupplyStore) Restore(snap map[string]Stats) {
	stats := make(map[string]Stats, len(snap))
	for code, st := range snap {
		stats[code] = st
	}
	ss.stats = stats
}
