package engine_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/authz"
	"TokenLedger/internal/engine"
	"TokenLedger/internal/event"
	"TokenLedger/internal/ledger"
)

var cusd = asset.MustSymbol("CUSD", 2)

type fixture struct {
	engine   *engine.Engine
	balances *ledger.BalanceStore
	supply   *ledger.SupplyStore
	gate     *authz.Gate
	bus      *event.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	balances := ledger.NewBalanceStore()
	supply := ledger.NewSupplyStore()
	gate := authz.NewGate()
	bus := event.NewBus()

	err := supply.Register(ledger.Stats{
		Supply:    asset.NewAmount(100_000, cusd),
		MaxSupply: asset.NewAmount(1_000_000_00, cusd),
		Issuer:    "carbon",
	})
	if err != nil {
		t.Fatalf("register supply: %v", err)
	}
	for owner, units := range map[string]int64{"alice": 50_000, "bob": 30_000, "mallory": 20_000} {
		if err := balances.Credit(nil, owner, asset.NewAmount(units, cusd)); err != nil {
			t.Fatalf("seed %s: %v", owner, err)
		}
	}

	cfg := engine.Config{
		Self:                 "carbonledger",
		Admin:                "carbonadmin",
		DisabledDestinations: []string{"exchange.hot"},
		SupportContact:       "support.example/help",
	}
	return &fixture{
		engine:   engine.New(cfg, balances, supply, gate, bus),
		balances: balances,
		supply:   supply,
		gate:     gate,
		bus:      bus,
	}
}

func (f *fixture) units(t *testing.T, owner string) int64 {
	t.Helper()
	bal, err := f.balances.Balance(owner, "CUSD")
	if err != nil {
		if errors.Is(err, ledger.ErrNoBalanceRecord) {
			return 0
		}
		t.Fatalf("balance %s: %v", owner, err)
	}
	return bal.Units
}

// ---------------------------------------------------------------------------
// Transfer
// ---------------------------------------------------------------------------

func TestTransferMovesValueAndConserves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	entries, err := f.engine.Transfer(ctx, "alice", "alice", "bob", asset.NewAmount(10_000, cusd), "rent")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want debit+credit", len(entries))
	}
	if f.units(t, "alice") != 40_000 || f.units(t, "bob") != 40_000 {
		t.Errorf("balances: alice=%d bob=%d", f.units(t, "alice"), f.units(t, "bob"))
	}
	if total := f.balances.TotalUnits("CUSD"); total != 100_000 {
		t.Errorf("conservation broken: total=%d", total)
	}
}

func TestTransferRequiresSourceAuthority(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Transfer(context.Background(), "bob", "alice", "bob", asset.NewAmount(1, cusd), "")
	if !errors.Is(err, ledger.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestTransferRefusesDisabledDestinations(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Transfer(context.Background(), "alice", "alice", "exchange.hot", asset.NewAmount(1, cusd), "")
	if !errors.Is(err, ledger.ErrTransferDisabled) {
		t.Fatalf("got %v, want ErrTransferDisabled", err)
	}
	if !strings.Contains(err.Error(), "support.example/help") {
		t.Errorf("error lacks support contact: %v", err)
	}
	if f.units(t, "alice") != 50_000 {
		t.Error("balance moved despite refusal")
	}
}

func TestTransferChecksBothPartiesAgainstBlacklist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.gate.SetAuthorization(nil, "mallory", false); err != nil {
		t.Fatalf("block: %v", err)
	}

	if _, err := f.engine.Transfer(ctx, "mallory", "mallory", "bob", asset.NewAmount(1, cusd), ""); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Errorf("blocked sender: got %v, want ErrUnauthorized", err)
	}
	if _, err := f.engine.Transfer(ctx, "alice", "alice", "mallory", asset.NewAmount(1, cusd), ""); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Errorf("blocked recipient: got %v, want ErrUnauthorized", err)
	}
}

func TestTransferRejectsSelfUnknownAndBadQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.engine.Transfer(ctx, "alice", "alice", "alice", asset.NewAmount(1, cusd), ""); !errors.Is(err, ledger.ErrSelfTransfer) {
		t.Errorf("self transfer: got %v, want ErrSelfTransfer", err)
	}
	if _, err := f.engine.Transfer(ctx, "alice", "alice", "NOT_VALID", asset.NewAmount(1, cusd), ""); !errors.Is(err, ledger.ErrUnknownAccount) {
		t.Errorf("bad account: got %v, want ErrUnknownAccount", err)
	}
	if _, err := f.engine.Transfer(ctx, "alice", "alice", "bob", asset.NewAmount(0, cusd), ""); !errors.Is(err, ledger.ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v, want ErrInvalidQuantity", err)
	}
	unknown := asset.MustSymbol("DOGE", 2)
	if _, err := f.engine.Transfer(ctx, "alice", "alice", "bob", asset.NewAmount(1, unknown), ""); !errors.Is(err, ledger.ErrUnknownAsset) {
		t.Errorf("unknown asset: got %v, want ErrUnknownAsset", err)
	}
	wrong := asset.MustSymbol("CUSD", 4)
	if _, err := f.engine.Transfer(ctx, "alice", "alice", "bob", asset.NewAmount(1, wrong), ""); !errors.Is(err, ledger.ErrPrecisionMismatch) {
		t.Errorf("precision mismatch: got %v, want ErrPrecisionMismatch", err)
	}
}

func TestTransferMemoLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	memo := strings.Repeat("x", engine.MaxMemoBytes)
	if _, err := f.engine.Transfer(ctx, "alice", "alice", "bob", asset.NewAmount(1, cusd), memo); err != nil {
		t.Errorf("256-byte memo rejected: %v", err)
	}
	if _, err := f.engine.Transfer(ctx, "alice", "alice", "bob", asset.NewAmount(1, cusd), memo+"x"); !errors.Is(err, ledger.ErrMemoTooLong) {
		t.Errorf("257-byte memo: got %v, want ErrMemoTooLong", err)
	}
}

func TestTransferRollsBackOnSubscriberError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("subscriber exploded")
	f.bus.Subscribe(func(ctx context.Context, tx *ledger.Txn, n event.Notification) error {
		if n.Kind() == event.KindTransferOccurred {
			return boom
		}
		return nil
	})

	_, err := f.engine.Transfer(context.Background(), "alice", "alice", "bob", asset.NewAmount(10_000, cusd), "")
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want subscriber error", err)
	}
	if f.units(t, "alice") != 50_000 || f.units(t, "bob") != 30_000 {
		t.Errorf("mutations survived rollback: alice=%d bob=%d", f.units(t, "alice"), f.units(t, "bob"))
	}
}

func TestTransferNotifiesBothParties(t *testing.T) {
	f := newFixture(t)
	var seen *event.TransferOccurred
	f.bus.Subscribe(func(ctx context.Context, tx *ledger.Txn, n event.Notification) error {
		if tr, ok := n.(*event.TransferOccurred); ok {
			seen = tr
		}
		return nil
	})

	if _, err := f.engine.Transfer(context.Background(), "alice", "alice", "bob", asset.NewAmount(100, cusd), "hello"); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if seen == nil {
		t.Fatal("no notification delivered")
	}
	got := seen.Recipients()
	if len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Errorf("recipients: %v", got)
	}
	if seen.Memo != "hello" {
		t.Errorf("memo: %q", seen.Memo)
	}
}

// ---------------------------------------------------------------------------
// Burn
// ---------------------------------------------------------------------------

func TestBurnDecreasesSupplyAndBalance(t *testing.T) {
	f := newFixture(t)

	entries, err := f.engine.Burn(context.Background(), "alice", authz.CapNone, "alice", asset.NewAmount(10_000, cusd), "exit")
	if err != nil {
		t.Fatalf("burn: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want supply_decrease+debit", len(entries))
	}
	if f.units(t, "alice") != 40_000 {
		t.Errorf("alice: %d", f.units(t, "alice"))
	}
	st, _ := f.supply.Supply("CUSD")
	if st.Supply.Units != 90_000 {
		t.Errorf("supply: %d", st.Supply.Units)
	}
}

func TestBurnAuthority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.engine.Burn(ctx, "bob", authz.CapNone, "alice", asset.NewAmount(1, cusd), ""); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Errorf("third party burn: got %v, want ErrUnauthorized", err)
	}
	// Admin may burn anyone's tokens, blacklisted holders included.
	if err := f.gate.SetAuthorization(nil, "mallory", false); err != nil {
		t.Fatalf("block: %v", err)
	}
	if _, err := f.engine.Burn(ctx, "carbonadmin", authz.CapAdmin, "mallory", asset.NewAmount(20_000, cusd), "seize"); err != nil {
		t.Errorf("admin burn of blocked holder: %v", err)
	}
	// The holder themselves stays gated.
	if _, err := f.engine.Burn(ctx, "mallory", authz.CapNone, "mallory", asset.NewAmount(1, cusd), ""); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Errorf("blocked holder burn: got %v, want ErrUnauthorized", err)
	}
}

func TestBurnInsufficientRollsBack(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Burn(context.Background(), "alice", authz.CapNone, "alice", asset.NewAmount(50_001, cusd), "")
	if !errors.Is(err, ledger.ErrInsufficientBalance) {
		t.Fatalf("got %v, want ErrInsufficientBalance", err)
	}
	// Supply decrease happens first in the txn; it must have unwound.
	st, _ := f.supply.Supply("CUSD")
	if st.Supply.Units != 100_000 {
		t.Errorf("supply after failed burn: %d", st.Supply.Units)
	}
}

// ---------------------------------------------------------------------------
// Close / CloseAll / SetAuthorization
// ---------------------------------------------------------------------------

func TestCloseAuthority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.balances.Restore(map[string]asset.Amount{
		"alice:CUSD": asset.NewAmount(0, cusd),
	}); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if _, err := f.engine.Close(ctx, "bob", authz.CapNone, "alice", "CUSD"); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Errorf("third party close: got %v, want ErrUnauthorized", err)
	}
	if _, err := f.engine.Close(ctx, "alice", authz.CapNone, "alice", "CUSD"); err != nil {
		t.Errorf("owner close: %v", err)
	}
}

func TestCloseAllEmitsPerRecord(t *testing.T) {
	f := newFixture(t)
	if err := f.balances.Restore(map[string]asset.Amount{
		"carol:CUSD": asset.NewAmount(0, cusd),
		"carol:USDT": asset.NewAmount(0, asset.MustSymbol("USDT", 4)),
	}); err != nil {
		t.Fatalf("restore: %v", err)
	}

	var closed []string
	f.bus.Subscribe(func(ctx context.Context, tx *ledger.Txn, n event.Notification) error {
		if bc, ok := n.(*event.BalanceClosed); ok {
			closed = append(closed, bc.Asset)
		}
		return nil
	})

	entries, err := f.engine.CloseAll(context.Background(), "carol", authz.CapNone, "carol")
	if err != nil {
		t.Fatalf("close_all: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("entries: %d", len(entries))
	}
	if len(closed) != 2 || closed[0] != "CUSD" || closed[1] != "USDT" {
		t.Errorf("notifications: %v", closed)
	}
}

func TestSetAuthorizationAdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.engine.SetAuthorization(ctx, "alice", authz.CapNone, "mallory", false); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Errorf("non-admin: got %v, want ErrUnauthorized", err)
	}
	if _, err := f.engine.SetAuthorization(ctx, "carbonadmin", authz.CapAdmin, "mallory", false); err != nil {
		t.Fatalf("admin block: %v", err)
	}
	if !f.gate.IsBlacklisted("mallory") {
		t.Error("mallory not blocked")
	}
}

// ---------------------------------------------------------------------------
// Account names
// ---------------------------------------------------------------------------

func TestValidAccountName(t *testing.T) {
	valid := []string{"alice", "exchange.hot", "a", "bob12345", "carbon.swap"}
	invalid := []string{"", "Alice", "toolongaccount", "account6", ".alice", "alice.", "has_underbar"}

	for _, name := range valid {
		if !engine.ValidAccountName(name) {
			t.Errorf("%q rejected", name)
		}
	}
	for _, name := range invalid {
		if engine.ValidAccountName(name) {
			t.Errorf("%q accepted", name)
		}
	}
}
