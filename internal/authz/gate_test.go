package authz_test

import (
	"errors"
	"testing"

	"TokenLedger/internal/authz"
	"TokenLedger/internal/ledger"
)

func TestBlockAndUnblock(t *testing.T) {
	g := authz.NewGate()

	if err := g.SetAuthorization(nil, "mallory", false); err != nil {
		t.Fatalf("block: %v", err)
	}
	if !g.IsBlacklisted("mallory") {
		t.Error("mallory not blacklisted after block")
	}
	if err := g.Check("mallory", authz.CapNone); !errors.Is(err, ledger.ErrUnauthorized) {
		t.Errorf("check blocked: got %v, want ErrUnauthorized", err)
	}

	if err := g.SetAuthorization(nil, "mallory", true); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if err := g.Check("mallory", authz.CapNone); err != nil {
		t.Errorf("check after unblock: %v", err)
	}
}

func TestDoubleBlockAndSpuriousUnblock(t *testing.T) {
	g := authz.NewGate()

	if err := g.SetAuthorization(nil, "mallory", false); err != nil {
		t.Fatalf("block: %v", err)
	}
	if err := g.SetAuthorization(nil, "mallory", false); !errors.Is(err, ledger.ErrAlreadyBlacklisted) {
		t.Errorf("double block: got %v, want ErrAlreadyBlacklisted", err)
	}
	if err := g.SetAuthorization(nil, "alice", true); !errors.Is(err, ledger.ErrNotBlacklisted) {
		t.Errorf("spurious unblock: got %v, want ErrNotBlacklisted", err)
	}
}

func TestAdminBypassesGate(t *testing.T) {
	g := authz.NewGate()
	if err := g.SetAuthorization(nil, "mallory", false); err != nil {
		t.Fatalf("block: %v", err)
	}
	if err := g.Check("mallory", authz.CapAdmin); err != nil {
		t.Errorf("admin check: %v", err)
	}
}

func TestGateRollback(t *testing.T) {
	g := authz.NewGate()

	tx := ledger.Begin()
	if err := g.SetAuthorization(tx, "mallory", false); err != nil {
		t.Fatalf("block: %v", err)
	}
	tx.Rollback()

	if g.IsBlacklisted("mallory") {
		t.Error("blacklist entry survived rollback")
	}
}

func TestGateSnapshotRestore(t *testing.T) {
	g := authz.NewGate()
	for _, acct := range []string{"zed", "abe"} {
		if err := g.SetAuthorization(nil, acct, false); err != nil {
			t.Fatalf("block %s: %v", acct, err)
		}
	}

	snap := g.Snapshot()
	if len(snap) != 2 || snap[0] != "abe" || snap[1] != "zed" {
		t.Fatalf("snapshot not sorted: %v", snap)
	}

	restored := authz.NewGate()
	restored.Restore(snap)
	if !restored.IsBlacklisted("zed") || !restored.IsBlacklisted("abe") {
		t.Error("restore lost entries")
	}
}
