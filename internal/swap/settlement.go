// Package swap settles 1:1 conversions of the ledger's token into a
// higher-precision reserve asset held by an external custodian.
//
// Settlement is notification-triggered: holders transfer tokens to the
// settlement account, and the settler — subscribed to the engine's
// notification bus — retires the received tokens and issues the outbound
// reserve transfer inside the same transaction. There is exactly one
// execution path, so a swap can never debit the holder twice.
package swap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/authz"
	"TokenLedger/internal/engine"
	"TokenLedger/internal/event"
	"TokenLedger/internal/ledger"
)

// Config fixes the settler's asset pair and accounts. The conversion
// rate is always 1:1 by value; only the precision differs.
type Config struct {
	// Token is the ledger-native asset being swapped away.
	Token asset.Symbol

	// Reserve is the external asset paid out, at equal or higher
	// precision than Token.
	Reserve asset.Symbol

	// ReserveContract names the external contract custodying Reserve.
	ReserveContract string

	// SettlementAccount receives inbound swap transfers. Tokens landing
	// here are retired.
	SettlementAccount string

	// Custodian is the account on ReserveContract that pays out.
	Custodian string

	// Headroom is the number of minimal reserve units kept back beyond
	// the exact payout when checking availability. 0 or 1.
	Headroom int64

	// Memo annotates the outbound reserve transfer.
	Memo string
}

// Settler converts tokens arriving at the settlement account into
// reserve-asset payouts. It subscribes to the engine's bus, so its
// mutations ride inside the triggering transfer's transaction and roll
// back with it.
type Settler struct {
	cfg        Config
	engine     *engine.Engine
	bus        *event.Bus
	oracle     ReserveOracle
	transferer ReserveTransferer
	scale      int64
	log        zerolog.Logger
}

func New(cfg Config, eng *engine.Engine, bus *event.Bus, oracle ReserveOracle, transferer ReserveTransferer, log zerolog.Logger) (*Settler, error) {
	if cfg.Headroom != 0 && cfg.Headroom != 1 {
		return nil, fmt.Errorf("headroom must be 0 or 1, got %d", cfg.Headroom)
	}
	if cfg.SettlementAccount == "" || cfg.Custodian == "" || cfg.ReserveContract == "" {
		return nil, fmt.Errorf("settlement account, custodian, and reserve contract are required")
	}
	scale, err := asset.ScaleFactor(cfg.Token, cfg.Reserve)
	if err != nil {
		return nil, fmt.Errorf("token/reserve pair: %w", err)
	}
	s := &Settler{
		cfg:        cfg,
		engine:     eng,
		bus:        bus,
		oracle:     oracle,
		transferer: transferer,
		scale:      scale,
		log:        log,
	}
	bus.Subscribe(s.HandleNotification)
	return s, nil
}

// SetGateways replaces the reserve oracle and transferer. Called once at
// startup after replay completes, switching from ReplayReserveGateway to
// the live bridge. Not safe concurrently with settlement.
func (s *Settler) SetGateways(oracle ReserveOracle, transferer ReserveTransferer) {
	s.oracle = oracle
	s.transferer = transferer
}

// Swap converts the account's entire token balance into the reserve
// asset. There is no partial swap: the holder's full balance moves to
// the settlement account, which triggers settlement through the bus.
// Authority is required from the account or the administrative identity;
// either way the transfer runs as the account, so blacklisted holders
// cannot swap.
func (s *Settler) Swap(ctx context.Context, actor string, cap authz.Capability, account, memo string) ([]ledger.Entry, error) {
	if cap != authz.CapAdmin && actor != account {
		return nil, fmt.Errorf("%w: missing authority of %s", ledger.ErrUnauthorized, account)
	}
	balance, err := s.engine.GetBalance(account, s.cfg.Token.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s holds no %s", ledger.ErrNoBalance, account, s.cfg.Token.Code)
	}
	if !balance.IsPositive() {
		return nil, fmt.Errorf("%w: %s holds no %s", ledger.ErrNoBalance, account, s.cfg.Token.Code)
	}
	return s.engine.Transfer(ctx, account, account, s.cfg.SettlementAccount, balance, memo)
}

// Token returns the ledger-native asset this settler converts.
func (s *Settler) Token() asset.Symbol { return s.cfg.Token }

// HandleNotification is the settler's bus subscription. Only transfer
// notifications are interesting; everything else passes through.
//
// Guard order matters: outbound legs originate from the ledger's own
// identity and must be ignored before any other check, or settlement
// would recurse.
func (s *Settler) HandleNotification(ctx context.Context, tx *ledger.Txn, n event.Notification) error {
	t, ok := n.(*event.TransferOccurred)
	if !ok {
		return nil
	}
	if t.From == s.engine.Self() || t.From == s.cfg.SettlementAccount {
		return nil
	}
	switch t.To {
	case s.cfg.SettlementAccount:
		return s.settle(ctx, tx, t.From, t.Quantity, t.Memo)
	case s.engine.Self():
		// Tokens sent at the ledger identity itself have no settlement
		// path and would be stranded. Fail the transfer loudly rather
		// than absorb the funds.
		return fmt.Errorf("transfers to %s are not accepted; send to %s to swap, or contact %s",
			t.To, s.cfg.SettlementAccount, s.engine.SupportContact())
	default:
		return nil
	}
}

// settle retires the received tokens and pays out the reserve asset.
// Runs inside the triggering transfer's transaction: any failure rolls
// back the holder's debit along with the retirement.
func (s *Settler) settle(ctx context.Context, tx *ledger.Txn, holder string, quantity asset.Amount, memo string) error {
	if quantity.Symbol != s.cfg.Token {
		return fmt.Errorf("%w: settlement accepts %s, got %s", ledger.ErrPrecisionMismatch, s.cfg.Token, quantity.Symbol)
	}

	payout, err := asset.Rescale(quantity, s.cfg.Reserve)
	if err != nil {
		return fmt.Errorf("rescale %s: %w", quantity, err)
	}

	available, err := s.oracle.Balance(ctx, s.cfg.Custodian, s.cfg.Reserve)
	if err != nil {
		return fmt.Errorf("reserve availability: %w", err)
	}
	if available.Units < payout.Units+s.cfg.Headroom {
		return fmt.Errorf("%w: please wait for the reserve to replenish, or contact %s",
			ledger.ErrReserveDepleted, s.engine.SupportContact())
	}

	if err := s.engine.Retire(ctx, tx, s.cfg.SettlementAccount, quantity, memo); err != nil {
		return err
	}
	if err := s.transferer.RequestTransfer(ctx, s.cfg.Custodian, holder, payout, s.cfg.Memo); err != nil {
		return fmt.Errorf("reserve payout: %w", err)
	}

	s.log.Info().
		Str("holder", holder).
		Str("retired", quantity.String()).
		Str("payout", payout.String()).
		Msg("swap settled")

	return s.bus.Publish(ctx, tx, &event.SwapSettled{
		Account:         holder,
		TokenQuantity:   quantity,
		ReserveQuantity: payout,
		Memo:            memo,
	})
}
