// Package engine validates and applies the ledger's balance-changing
// operations: transfer, burn, close, close_all, and authorization changes.
package engine

import (
	"context"
	"fmt"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/authz"
	"TokenLedger/internal/event"
	"TokenLedger/internal/ledger"
)

// MaxMemoBytes bounds memo length, matching the chain contract this
// ledger mirrors.
const MaxMemoBytes = 256

// Config carries the engine's identities and policy knobs. The disabled
// destination list is configuration data loaded at startup — business
// identifiers never live in code.
type Config struct {
	// Self is the ledger's own account identity. Transfers originating
	// from it are the settlement engine's outbound legs.
	Self string

	// Admin is the administrative identity. Only it may change
	// authorization, and its burns bypass the blacklist.
	Admin string

	// DisabledDestinations lists exchange/aggregator accounts transfers
	// may not reach.
	DisabledDestinations []string

	// SupportContact is appended to operational failure messages whose
	// underlying resource is replenished out of band.
	SupportContact string
}

// Engine applies operations atomically: every public method runs in one
// ledger.Txn covering its own mutations and those of any synchronous
// notification subscriber, and rolls the whole set back on any error.
//
// Not thread-safe — driven only by the single-threaded core.
type Engine struct {
	cfg      Config
	balances *ledger.BalanceStore
	supply   *ledger.SupplyStore
	gate     *authz.Gate
	bus      *event.Bus
	disabled map[string]struct{}
	resolver func(account string) bool
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithAccountResolver replaces the default well-formedness check used to
// decide whether a transfer destination exists.
func WithAccountResolver(resolve func(account string) bool) Option {
	return func(e *Engine) { e.resolver = resolve }
}

func New(cfg Config, balances *ledger.BalanceStore, supply *ledger.SupplyStore, gate *authz.Gate, bus *event.Bus, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		balances: balances,
		supply:   supply,
		gate:     gate,
		bus:      bus,
		disabled: make(map[string]struct{}, len(cfg.DisabledDestinations)),
		resolver: ValidAccountName,
	}
	for _, account := range cfg.DisabledDestinations {
		e.disabled[account] = struct{}{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidAccountName is the default account resolver: 1-12 chars from the
// chain name alphabet (a-z, 1-5, dot), not starting or ending with a dot.
func ValidAccountName(account string) bool {
	if len(account) == 0 || len(account) > 12 {
		return false
	}
	if account[0] == '.' || account[len(account)-1] == '.' {
		return false
	}
	for _, c := range account {
		if (c < 'a' || c > 'z') && (c < '1' || c > '5') && c != '.' {
			return false
		}
	}
	return true
}

// Transfer moves quantity from one account to another. Authority is
// required from `from` only — there is no administrative override for
// moving someone else's funds. Both parties are checked against the
// blacklist, and destinations on the disabled list are refused outright.
// The debit/credit pair and everything done by notification subscribers
// apply atomically or not at all.
func (e *Engine) Transfer(ctx context.Context, actor, from, to string, quantity asset.Amount, memo string) ([]ledger.Entry, error) {
	if actor != from {
		return nil, fmt.Errorf("%w: missing authority of %s", ledger.ErrUnauthorized, from)
	}
	if _, bad := e.disabled[to]; bad {
		return nil, fmt.Errorf("%w: destination %s; please wait for official news from %s",
			ledger.ErrTransferDisabled, to, e.cfg.SupportContact)
	}
	if _, bad := e.disabled[from]; bad {
		return nil, fmt.Errorf("%w: source %s; please wait for official news from %s",
			ledger.ErrTransferDisabled, from, e.cfg.SupportContact)
	}
	if err := e.gate.Check(from, authz.CapNone); err != nil {
		return nil, err
	}
	if err := e.gate.Check(to, authz.CapNone); err != nil {
		return nil, err
	}
	if from == to {
		return nil, fmt.Errorf("%w: %s", ledger.ErrSelfTransfer, from)
	}
	if !e.resolver(to) {
		return nil, fmt.Errorf("%w: %s", ledger.ErrUnknownAccount, to)
	}
	if err := e.validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validateMemo(memo); err != nil {
		return nil, err
	}

	tx := ledger.Begin()
	if err := e.applyTransfer(ctx, tx, from, to, quantity, memo); err != nil {
		tx.Rollback()
		return nil, err
	}
	entries := tx.Entries()
	tx.Commit()
	return entries, nil
}

func (e *Engine) applyTransfer(ctx context.Context, tx *ledger.Txn, from, to string, quantity asset.Amount, memo string) error {
	if err := e.balances.Debit(tx, from, quantity); err != nil {
		return err
	}
	if err := e.balances.Credit(tx, to, quantity); err != nil {
		return err
	}
	// Subscribers (the swap settlement engine among them) run here, inside
	// the same Txn. Their mutations and failures are this transfer's.
	return e.bus.Publish(ctx, tx, &event.TransferOccurred{
		From:     from,
		To:       to,
		Quantity: quantity,
		Memo:     memo,
	})
}

// Burn retires quantity from circulation: supply decreases and the
// holder's balance is debited, atomically. Authority is required from
// `from` or from the administrative identity; administrative burns bypass
// the blacklist, matching the settlement engine's internal retirement of
// swapped tokens.
func (e *Engine) Burn(ctx context.Context, actor string, cap authz.Capability, from string, quantity asset.Amount, memo string) ([]ledger.Entry, error) {
	if cap != authz.CapAdmin && actor != from {
		return nil, fmt.Errorf("%w: missing authority of %s", ledger.ErrUnauthorized, from)
	}
	if err := e.gate.Check(from, cap); err != nil {
		return nil, err
	}
	if err := e.validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validateMemo(memo); err != nil {
		return nil, err
	}

	tx := ledger.Begin()
	if err := e.Retire(ctx, tx, from, quantity, memo); err != nil {
		tx.Rollback()
		return nil, err
	}
	entries := tx.Entries()
	tx.Commit()
	return entries, nil
}

// Retire performs the burn mutations inside an already-open transaction.
// The settlement engine uses this to retire tokens received by the
// settlement account within the triggering transfer's Txn. Authority and
// blacklist checks are the caller's responsibility.
func (e *Engine) Retire(ctx context.Context, tx *ledger.Txn, from string, quantity asset.Amount, memo string) error {
	if err := e.supply.Decrease(tx, quantity); err != nil {
		return err
	}
	if err := e.balances.Debit(tx, from, quantity); err != nil {
		return err
	}
	return e.bus.Publish(ctx, tx, &event.BurnExecuted{
		From:     from,
		Quantity: quantity,
		Memo:     memo,
	})
}

// Close deletes the owner's zero balance record for one asset.
// Authority: owner or admin.
func (e *Engine) Close(ctx context.Context, actor string, cap authz.Capability, owner, code string) ([]ledger.Entry, error) {
	if cap != authz.CapAdmin && actor != owner {
		return nil, fmt.Errorf("%w: missing authority of %s", ledger.ErrUnauthorized, owner)
	}

	tx := ledger.Begin()
	if err := e.balances.Close(tx, owner, code); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := e.bus.Publish(ctx, tx, &event.BalanceClosed{Owner: owner, Asset: code}); err != nil {
		tx.Rollback()
		return nil, err
	}
	entries := tx.Entries()
	tx.Commit()
	return entries, nil
}

// CloseAll deletes every record of the owner; all must be zero or nothing
// is deleted.
func (e *Engine) CloseAll(ctx context.Context, actor string, cap authz.Capability, owner string) ([]ledger.Entry, error) {
	if cap != authz.CapAdmin && actor != owner {
		return nil, fmt.Errorf("%w: missing authority of %s", ledger.ErrUnauthorized, owner)
	}

	tx := ledger.Begin()
	if err := e.balances.CloseAll(tx, owner); err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, entry := range tx.Entries() {
		if err := e.bus.Publish(ctx, tx, &event.BalanceClosed{Owner: owner, Asset: entry.Asset}); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	entries := tx.Entries()
	tx.Commit()
	return entries, nil
}

// SetAuthorization blocks or unblocks an account. Admin only.
func (e *Engine) SetAuthorization(ctx context.Context, actor string, cap authz.Capability, account string, authorized bool) ([]ledger.Entry, error) {
	if cap != authz.CapAdmin {
		return nil, fmt.Errorf("%w: authorization changes require %s", ledger.ErrUnauthorized, e.cfg.Admin)
	}

	tx := ledger.Begin()
	if err := e.gate.SetAuthorization(tx, account, authorized); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := e.bus.Publish(ctx, tx, &event.AuthorizationChanged{Account: account, Authorized: authorized}); err != nil {
		tx.Rollback()
		return nil, err
	}
	entries := tx.Entries()
	tx.Commit()
	return entries, nil
}

// GetBalance returns the owner's balance of an asset.
// Fails with ErrNoBalanceRecord when absent.
func (e *Engine) GetBalance(owner, code string) (asset.Amount, error) {
	return e.balances.Balance(owner, code)
}

// GetSupply returns the supply record for an asset.
func (e *Engine) GetSupply(code string) (ledger.Stats, error) {
	return e.supply.Supply(code)
}

// Self returns the ledger's own account identity.
func (e *Engine) Self() string { return e.cfg.Self }

// SupportContact returns the configured out-of-band support channel.
func (e *Engine) SupportContact() string { return e.cfg.SupportContact }

func (e *Engine) validateQuantity(quantity asset.Amount) error {
	st, err := e.supply.Supply(quantity.Symbol.Code)
	if err != nil {
		return err
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: %s", ledger.ErrInvalidQuantity, quantity)
	}
	if quantity.Symbol != st.Supply.Symbol {
		return fmt.Errorf("%w: asset %s vs quantity %s", ledger.ErrPrecisionMismatch, st.Supply.Symbol, quantity.Symbol)
	}
	return nil
}

func validateMemo(memo string) error {
	if len(memo) > MaxMemoBytes {
		return fmt.Errorf("%w: %d bytes", ledger.ErrMemoTooLong, len(memo))
	}
	return nil
}
