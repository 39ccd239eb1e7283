package ledger_test

import (
	"errors"
	"testing"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/ledger"
)

var (
	cusd = asset.MustSymbol("CUSD", 2)
	usdt = asset.MustSymbol("USDT", 4)
)

func registerCUSD(t *testing.T, ss *ledger.SupplyStore, supply int64) {
	t.Helper()
	err := ss.Register(ledger.Stats{
		Supply:    asset.NewAmount(supply, cusd),
		MaxSupply: asset.NewAmount(1_000_000_00, cusd),
		Issuer:    "carbon",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
}

// ---------------------------------------------------------------------------
// BalanceStore
// ---------------------------------------------------------------------------

func TestCreditCreatesAndAccumulates(t *testing.T) {
	bs := ledger.NewBalanceStore()

	if err := bs.Credit(nil, "alice", asset.NewAmount(150, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if err := bs.Credit(nil, "alice", asset.NewAmount(50, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}

	bal, err := bs.Balance("alice", "CUSD")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal.Units != 200 {
		t.Errorf("balance: got %d, want 200", bal.Units)
	}
}

func TestCreditRejectsNonPositiveAndMismatch(t *testing.T) {
	bs := ledger.NewBalanceStore()

	if err := bs.Credit(nil, "alice", asset.NewAmount(0, cusd)); !errors.Is(err, ledger.ErrInvalidQuantity) {
		t.Errorf("zero credit: got %v, want ErrInvalidQuantity", err)
	}
	if err := bs.Credit(nil, "alice", asset.NewAmount(-5, cusd)); !errors.Is(err, ledger.ErrInvalidQuantity) {
		t.Errorf("negative credit: got %v, want ErrInvalidQuantity", err)
	}

	if err := bs.Credit(nil, "alice", asset.NewAmount(100, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}
	other := asset.MustSymbol("CUSD", 4)
	if err := bs.Credit(nil, "alice", asset.NewAmount(100, other)); !errors.Is(err, ledger.ErrPrecisionMismatch) {
		t.Errorf("precision mismatch: got %v, want ErrPrecisionMismatch", err)
	}
}

func TestDebitPrunesZeroRecords(t *testing.T) {
	bs := ledger.NewBalanceStore()
	if err := bs.Credit(nil, "alice", asset.NewAmount(150, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}

	if err := bs.Debit(nil, "alice", asset.NewAmount(150, cusd)); err != nil {
		t.Fatalf("debit: %v", err)
	}

	// Record deleted, not left at zero.
	if _, err := bs.Balance("alice", "CUSD"); !errors.Is(err, ledger.ErrNoBalanceRecord) {
		t.Errorf("after full debit: got %v, want ErrNoBalanceRecord", err)
	}
}

func TestDebitFailures(t *testing.T) {
	bs := ledger.NewBalanceStore()

	if err := bs.Debit(nil, "ghost", asset.NewAmount(1, cusd)); !errors.Is(err, ledger.ErrNoBalanceRecord) {
		t.Errorf("absent record: got %v, want ErrNoBalanceRecord", err)
	}

	if err := bs.Credit(nil, "alice", asset.NewAmount(100, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if err := bs.Debit(nil, "alice", asset.NewAmount(101, cusd)); !errors.Is(err, ledger.ErrInsufficientBalance) {
		t.Errorf("overdrawn: got %v, want ErrInsufficientBalance", err)
	}

	// Failed debit leaves the record intact.
	bal, err := bs.Balance("alice", "CUSD")
	if err != nil || bal.Units != 100 {
		t.Errorf("after failed debit: bal=%v err=%v", bal, err)
	}
}

func TestCloseRequiresZero(t *testing.T) {
	bs := ledger.NewBalanceStore()

	if err := bs.Close(nil, "alice", "CUSD"); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("close absent: got %v, want ErrNotFound", err)
	}

	if err := bs.Credit(nil, "alice", asset.NewAmount(100, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if err := bs.Close(nil, "alice", "CUSD"); !errors.Is(err, ledger.ErrBalanceNotZero) {
		t.Errorf("close funded: got %v, want ErrBalanceNotZero", err)
	}

	// Zero records only arise from restored state.
	if err := bs.Restore(map[string]asset.Amount{"bob:CUSD": asset.NewAmount(0, cusd)}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if err := bs.Close(nil, "bob", "CUSD"); err != nil {
		t.Errorf("close zero record: %v", err)
	}
	if _, err := bs.Balance("bob", "CUSD"); !errors.Is(err, ledger.ErrNoBalanceRecord) {
		t.Errorf("record survived close: %v", err)
	}
}

func TestCloseAllIsAllOrNothing(t *testing.T) {
	bs := ledger.NewBalanceStore()
	err := bs.Restore(map[string]asset.Amount{
		"carol:CUSD": asset.NewAmount(0, cusd),
		"carol:USDT": asset.NewAmount(7, usdt),
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if err := bs.CloseAll(nil, "carol"); !errors.Is(err, ledger.ErrBalanceNotZero) {
		t.Fatalf("close_all with funded record: got %v, want ErrBalanceNotZero", err)
	}
	// Nothing deleted.
	if _, err := bs.Balance("carol", "CUSD"); err != nil {
		t.Errorf("zero record was deleted: %v", err)
	}

	if err := bs.CloseAll(nil, "nobody"); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("close_all absent owner: got %v, want ErrNotFound", err)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	bs := ledger.NewBalanceStore()
	if err := bs.Credit(nil, "alice", asset.NewAmount(150, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if err := bs.Credit(nil, "bob", asset.NewAmount(25, usdt)); err != nil {
		t.Fatalf("credit: %v", err)
	}

	snap := bs.Snapshot()
	restored := ledger.NewBalanceStore()
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	bal, err := restored.Balance("alice", "CUSD")
	if err != nil || bal.Units != 150 {
		t.Errorf("alice after restore: bal=%v err=%v", bal, err)
	}
	if restored.TotalUnits("USDT") != 25 {
		t.Errorf("USDT total: got %d, want 25", restored.TotalUnits("USDT"))
	}

	if err := restored.Restore(map[string]asset.Amount{"nocolon": {}}); err == nil {
		t.Error("malformed path accepted")
	}
}

// ---------------------------------------------------------------------------
// SupplyStore
// ---------------------------------------------------------------------------

func TestSupplyDecrease(t *testing.T) {
	ss := ledger.NewSupplyStore()
	registerCUSD(t, ss, 10_000)

	if err := ss.Decrease(nil, asset.NewAmount(2_500, cusd)); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	st, err := ss.Supply("CUSD")
	if err != nil || st.Supply.Units != 7_500 {
		t.Errorf("supply after burn: %v err=%v", st.Supply, err)
	}

	if err := ss.Decrease(nil, asset.NewAmount(1, usdt)); !errors.Is(err, ledger.ErrUnknownAsset) {
		t.Errorf("unknown asset: got %v, want ErrUnknownAsset", err)
	}
	if err := ss.Decrease(nil, asset.NewAmount(0, cusd)); !errors.Is(err, ledger.ErrInvalidQuantity) {
		t.Errorf("zero decrease: got %v, want ErrInvalidQuantity", err)
	}
	wrong := asset.MustSymbol("CUSD", 4)
	if err := ss.Decrease(nil, asset.NewAmount(1, wrong)); !errors.Is(err, ledger.ErrPrecisionMismatch) {
		t.Errorf("precision mismatch: got %v, want ErrPrecisionMismatch", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	ss := ledger.NewSupplyStore()

	err := ss.Register(ledger.Stats{
		Supply:    asset.NewAmount(100, cusd),
		MaxSupply: asset.NewAmount(50, cusd),
		Issuer:    "carbon",
	})
	if !errors.Is(err, ledger.ErrInvalidQuantity) {
		t.Errorf("supply above max: got %v, want ErrInvalidQuantity", err)
	}

	err = ss.Register(ledger.Stats{
		Supply:    asset.NewAmount(10, cusd),
		MaxSupply: asset.NewAmount(50, cusd),
	})
	if err == nil {
		t.Error("missing issuer accepted")
	}

	if _, err := ss.Supply("CUSD"); !errors.Is(err, ledger.ErrUnknownAsset) {
		t.Errorf("lookup after failed register: got %v, want ErrUnknownAsset", err)
	}
}

// ---------------------------------------------------------------------------
// Txn
// ---------------------------------------------------------------------------

func TestTxnRollbackRestoresStores(t *testing.T) {
	bs := ledger.NewBalanceStore()
	ss := ledger.NewSupplyStore()
	registerCUSD(t, ss, 10_000)
	if err := bs.Credit(nil, "alice", asset.NewAmount(500, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}

	tx := ledger.Begin()
	if err := bs.Debit(tx, "alice", asset.NewAmount(200, cusd)); err != nil {
		t.Fatalf("debit: %v", err)
	}
	if err := bs.Credit(tx, "bob", asset.NewAmount(200, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if err := ss.Decrease(tx, asset.NewAmount(100, cusd)); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if got := len(tx.Entries()); got != 3 {
		t.Fatalf("entries: got %d, want 3", got)
	}

	tx.Rollback()

	bal, err := bs.Balance("alice", "CUSD")
	if err != nil || bal.Units != 500 {
		t.Errorf("alice after rollback: bal=%v err=%v", bal, err)
	}
	if _, err := bs.Balance("bob", "CUSD"); !errors.Is(err, ledger.ErrNoBalanceRecord) {
		t.Errorf("bob after rollback: got %v, want ErrNoBalanceRecord", err)
	}
	st, _ := ss.Supply("CUSD")
	if st.Supply.Units != 10_000 {
		t.Errorf("supply after rollback: got %d, want 10000", st.Supply.Units)
	}
	if tx.Entries() != nil {
		t.Error("entries survived rollback")
	}

	// Second rollback is a no-op.
	tx.Rollback()
}

func TestTxnCommitKeepsMutations(t *testing.T) {
	bs := ledger.NewBalanceStore()

	tx := ledger.Begin()
	if err := bs.Credit(tx, "alice", asset.NewAmount(100, cusd)); err != nil {
		t.Fatalf("credit: %v", err)
	}
	tx.Commit()
	tx.Rollback() // after commit, must not undo

	bal, err := bs.Balance("alice", "CUSD")
	if err != nil || bal.Units != 100 {
		t.Errorf("after commit+rollback: bal=%v err=%v", bal, err)
	}
}
