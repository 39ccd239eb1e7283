// Package authz implements the account blacklist consulted by every
// balance-changing operation.
package authz

import (
	"fmt"
	"sort"

	"TokenLedger/internal/ledger"
)

// Capability is an explicit grant passed into authorization checks, in
// place of an ambient "who is calling" lookup. The admin capability is
// attached by the command layer only when the authenticated actor is the
// ledger's administrative identity.
type Capability uint8

const (
	CapNone Capability = iota
	// CapAdmin marks administrative calls. Admin-authorized burns and the
	// swap engine's internal burns bypass the blacklist so that emergency
	// remediation of a blocked account stays possible.
	CapAdmin
)

// Gate is the set of blacklisted accounts. Absence means authorized.
//
// Not thread-safe — mutated only by the single-threaded core.
type Gate struct {
	blocked map[string]struct{}
}

func NewGate() *Gate {
	return &Gate{
		blocked: make(map[string]struct{}),
	}
}

// SetAuthorization blocks (authorized=false) or unblocks (authorized=true)
// an account. Blocking an already-blocked account fails with
// ErrAlreadyBlacklisted; unblocking an account that is not blocked fails
// with ErrNotBlacklisted.
func (g *Gate) SetAuthorization(tx *ledger.Txn, account string, authorized bool) error {
	_, blocked := g.blocked[account]

	if authorized {
		if !blocked {
			return fmt.Errorf("%w: %s", ledger.ErrNotBlacklisted, account)
		}
		tx.Record(func() { g.blocked[account] = struct{}{} })
		delete(g.blocked, account)
		tx.Note(ledger.Entry{Account: account, Kind: ledger.EntryBlacklistRemove})
		return nil
	}

	if blocked {
		return fmt.Errorf("%w: %s", ledger.ErrAlreadyBlacklisted, account)
	}
	tx.Record(func() { delete(g.blocked, account) })
	g.blocked[account] = struct{}{}
	tx.Note(ledger.Entry{Account: account, Kind: ledger.EntryBlacklistAdd})
	return nil
}

// Check fails with ErrUnauthorized when the account is blacklisted.
// CapAdmin bypasses the gate.
func (g *Gate) Check(account string, cap Capability) error {
	if cap == CapAdmin {
		return nil
	}
	if _, blocked := g.blocked[account]; blocked {
		return fmt.Errorf("%w: %s is blacklisted", ledger.ErrUnauthorized, account)
	}
	return nil
}

// IsBlacklisted reports membership without capability semantics.
func (g *Gate) IsBlacklisted(account string) bool {
	_, blocked := g.blocked[account]
	return blocked
}

// Snapshot returns the blacklist, sorted.
func (g *Gate) Snapshot() []string {
	out := make([]string, 0, len(g.blocked))
	for account := range g.blocked {
		out = append(out, account)
	}
	sort.Strings(out)
	return out
}

// Restore replaces the blacklist from a snapshot.
func (g *Gate) Restore(accounts []string) {
	blocked := make(map[string]struct{}, len(accounts))
	for _, account := range accounts {
		blocked[account] = struct{}{}
	}
	g.blocked = blocked
}
