package ledger

import (
	"fmt"
	"sort"

	"TokenLedger/internal/asset"
)

type balanceKey struct {
	owner string
	code  string
}

// BalanceStore holds per-(owner, asset) balance records. A record exists
// only while its amount is strictly positive: debiting a record down to
// zero deletes it, so no zero-balance rows ever persist.
//
// Not thread-safe — mutated only by the single-threaded core.
type BalanceStore struct {
	balances map[balanceKey]asset.Amount
}

func NewBalanceStore() *BalanceStore {
	return &BalanceStore{
		balances: make(map[balanceKey]asset.Amount),
	}
}

// Balance returns the owner's balance of the given asset code.
// Fails with ErrNoBalanceRecord when no record exists.
func (bs *BalanceStore) Balance(owner, code string) (asset.Amount, error) {
	rec, ok := bs.balances[balanceKey{owner: owner, code: code}]
	if !ok {
		return asset.Amount{}, fmt.Errorf("%w: owner=%s asset=%s", ErrNoBalanceRecord, owner, code)
	}
	return rec, nil
}

// Credit creates or increases the owner's record for value's asset.
// The value is always a previously debited positive amount, so no upper
// bound is enforced here.
func (bs *BalanceStore) Credit(tx *Txn, owner string, value asset.Amount) error {
	if !value.IsPositive() {
		return fmt.Errorf("%w: credit of %s", ErrInvalidQuantity, value)
	}

	key := balanceKey{owner: owner, code: value.Symbol.Code}
	prev, existed := bs.balances[key]

	if existed && prev.Symbol != value.Symbol {
		return fmt.Errorf("%w: record %s vs credit %s", ErrPrecisionMismatch, prev.Symbol, value.Symbol)
	}

	tx.Record(func() {
		if existed {
			bs.balances[key] = prev
		} else {
			delete(bs.balances, key)
		}
	})

	next := value
	if existed {
		next.Units = prev.Units + value.Units
	}
	bs.balances[key] = next

	tx.Note(Entry{Account: owner, Asset: value.Symbol.Code, Delta: value.Units, Kind: EntryCredit})
	return nil
}

// Debit decreases the owner's record for value's asset. Fails with
// ErrNoBalanceRecord when absent and ErrInsufficientBalance when the
// record holds less than value. A record reaching zero is deleted.
func (bs *BalanceStore) Debit(tx *Txn, owner string, value asset.Amount) error {
	if !value.IsPositive() {
		return fmt.Errorf("%w: debit of %s", ErrInvalidQuantity, value)
	}

	key := balanceKey{owner: owner, code: value.Symbol.Code}
	prev, existed := bs.balances[key]
	if !existed {
		return fmt.Errorf("%w: owner=%s asset=%s", ErrNoBalanceRecord, owner, value.Symbol.Code)
	}
	if prev.Symbol != value.Symbol {
		return fmt.Errorf("%w: record %s vs debit %s", ErrPrecisionMismatch, prev.Symbol, value.Symbol)
	}
	if prev.Units < value.Units {
		return fmt.Errorf("%w: owner=%s has %s, needs %s", ErrInsufficientBalance, owner, prev, value)
	}

	tx.Record(func() { bs.balances[key] = prev })

	remaining := prev
	remaining.Units -= value.Units
	if remaining.Units <= 0 {
		delete(bs.balances, key)
	} else {
		bs.balances[key] = remaining
	}

	tx.Note(Entry{Account: owner, Asset: value.Symbol.Code, Delta: -value.Units, Kind: EntryDebit})
	return nil
}

// Close deletes the owner's record for the given asset code. The record
// must exist (ErrNotFound) and hold exactly zero (ErrBalanceNotZero).
// Zero records only arise from restored legacy state — live debits prune
// them — but the operation stays for parity with the original contract.
func (bs *BalanceStore) Close(tx *Txn, owner, code string) error {
	key := balanceKey{owner: owner, code: code}
	rec, ok := bs.balances[key]
	if !ok {
		return fmt.Errorf("%w: owner=%s asset=%s", ErrNotFound, owner, code)
	}
	if rec.Units != 0 {
		return fmt.Errorf("%w: owner=%s holds %s", ErrBalanceNotZero, owner, rec)
	}

	tx.Record(func() { bs.balances[key] = rec })
	delete(bs.balances, key)

	tx.Note(Entry{Account: owner, Asset: code, Delta: 0, Kind: EntryRecordClosed})
	return nil
}

// CloseAll deletes every record of the owner. All records must be zero;
// otherwise nothing is deleted and ErrBalanceNotZero is returned.
func (bs *BalanceStore) CloseAll(tx *Txn, owner string) error {
	var keys []balanceKey
	for key, rec := range bs.balances {
		if key.owner != owner {
			continue
		}
		if rec.Units != 0 {
			return fmt.Errorf("%w: owner=%s holds %s", ErrBalanceNotZero, owner, rec)
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return fmt.Errorf("%w: owner=%s", ErrNotFound, owner)
	}

	// Deterministic order for the entry trail.
	sort.Slice(keys, func(i, j int) bool { return keys[i].code < keys[j].code })

	for _, key := range keys {
		rec := bs.balances[key]
		k := key
		tx.Record(func() { bs.balances[k] = rec })
		delete(bs.balances, key)
		tx.Note(Entry{Account: owner, Asset: key.code, Delta: 0, Kind: EntryRecordClosed})
	}
	return nil
}

// OwnerHoldings returns the owner's records, sorted by asset code.
func (bs *BalanceStore) OwnerHoldings(owner string) []asset.Amount {
	var out []asset.Amount
	for key, rec := range bs.balances {
		if key.owner == owner {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol.Code < out[j].Symbol.Code })
	return out
}

// TotalUnits sums all record units for an asset code. Used by invariant
// checks: the sum must never exceed the asset's current supply.
func (bs *BalanceStore) TotalUnits(code string) int64 {
	var total int64
	for key, rec := range bs.balances {
		if key.code == code {
			total += rec.Units
		}
	}
	return total
}

// Snapshot returns a copy of all records keyed by "owner:CODE".
func (bs *BalanceStore) Snapshot() map[string]asset.Amount {
	snap := make(map[string]asset.Amount, len(bs.balances))
	for key, rec := range bs.balances {
		snap[key.owner+":"+key.code] = rec
	}
	return snap
}

// Restore replaces all records from a snapshot produced by Snapshot.
func (bs *BalanceStore) Restore(snap map[string]asset.Amount) error {
	balances := make(map[balanceKey]asset.Amount, len(snap))
	for path, rec := range snap {
		idx := lastColon(path)
		if idx <= 0 || idx == len(path)-1 {
			return fmt.Errorf("malformed balance path %q", path)
		}
		balances[balanceKey{owner: path[:idx], code: path[idx+1:]}] = rec
	}
	bs.balances = balances
	return nil
}

func lastColon(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ':' {
			return i
		}
	}
	return -1
}
