package ingestion_test

import (
	"encoding/json"
	"testing"
	"time"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/command"
	"TokenLedger/internal/ingestion"
)

var testRegistry = ingestion.SymbolRegistry{
	"CUSD": asset.MustSymbol("CUSD", 2),
}

func rawFromJSON(t *testing.T, v interface{}) ingestion.RawCommand {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return ingestion.RawCommand{
		Subject:   "test",
		Source:    "nats",
		Data:      data,
		Timestamp: time.Now(),
		AckFunc:   func() {},
		NakFunc:   func() {},
	}
}

func TestParseTransfer(t *testing.T) {
	payload := map[string]interface{}{
		"command_id":   "550e8400-e29b-41d4-a716-446655440000",
		"actor":        "alice",
		"sequence":     int64(42),
		"timestamp_us": int64(1700000000000000),
		"from":         "alice",
		"to":           "bob",
		"quantity":     "5.00",
		"asset":        "CUSD",
		"memo":         "invoice 7",
	}

	raw := rawFromJSON(t, payload)
	cmd, err := ingestion.NewParser(testRegistry).Parse(raw, "Transfer")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	tr, ok := cmd.(*command.Transfer)
	if !ok {
		t.Fatalf("expected *command.Transfer, got %T", cmd)
	}

	if tr.From != "alice" || tr.To != "bob" {
		t.Errorf("parties: %s -> %s", tr.From, tr.To)
	}
	if tr.Quantity.Units != 500 {
		t.Errorf("quantity: got %d, want 500", tr.Quantity.Units)
	}
	if tr.Quantity.Symbol.Precision != 2 {
		t.Errorf("precision: %d", tr.Quantity.Symbol.Precision)
	}
	if tr.Memo != "invoice 7" {
		t.Errorf("memo: %q", tr.Memo)
	}
	if tr.SourceSequence() != 42 {
		t.Errorf("sequence: %d", tr.SourceSequence())
	}
	if tr.Actor() != "alice" {
		t.Errorf("actor: %s", tr.Actor())
	}
	if tr.Partition() != "source:nats" {
		t.Errorf("partition: %s", tr.Partition())
	}
	if tr.CommandType() != command.TypeTransfer {
		t.Errorf("command type: %v", tr.CommandType())
	}
}

func TestParseTransferRejectsBadQuantity(t *testing.T) {
	parser := ingestion.NewParser(testRegistry)

	cases := []map[string]interface{}{
		{"quantity": "5.005", "asset": "CUSD"}, // sub-precision
		{"quantity": "5.00", "asset": "DOGE"},  // unregistered
		{"quantity": "abc", "asset": "CUSD"},   // not a number
	}
	for _, extra := range cases {
		payload := map[string]interface{}{
			"command_id":   "550e8400-e29b-41d4-a716-446655440000",
			"actor":        "alice",
			"sequence":     int64(1),
			"timestamp_us": int64(1700000000000000),
			"from":         "alice",
			"to":           "bob",
		}
		for k, v := range extra {
			payload[k] = v
		}
		if _, err := parser.Parse(rawFromJSON(t, payload), "Transfer"); err == nil {
			t.Errorf("accepted %v", extra)
		}
	}
}

func TestParseSwap(t *testing.T) {
	payload := map[string]interface{}{
		"command_id":   "660e8400-e29b-41d4-a716-446655440001",
		"actor":        "alice",
		"sequence":     int64(7),
		"timestamp_us": int64(1700000000000000),
		"account":      "alice",
	}

	cmd, err := ingestion.NewParser(testRegistry).Parse(rawFromJSON(t, payload), "Swap")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sw, ok := cmd.(*command.Swap)
	if !ok {
		t.Fatalf("expected *command.Swap, got %T", cmd)
	}
	if sw.Account != "alice" {
		t.Errorf("account=%s", sw.Account)
	}

	delete(payload, "account")
	if _, err := ingestion.NewParser(testRegistry).Parse(rawFromJSON(t, payload), "Swap"); err == nil {
		t.Error("accepted swap without account")
	}
}

func TestParseSetAuthorization(t *testing.T) {
	payload := map[string]interface{}{
		"command_id":   "770e8400-e29b-41d4-a716-446655440002",
		"actor":        "carbonadmin",
		"sequence":     int64(3),
		"timestamp_us": int64(1700000000000000),
		"account":      "mallory",
		"authorized":   false,
	}

	cmd, err := ingestion.NewParser(testRegistry).Parse(rawFromJSON(t, payload), "SetAuthorization")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sa := cmd.(*command.SetAuthorization)
	if sa.Account != "mallory" || sa.Authorized {
		t.Errorf("account=%s authorized=%v", sa.Account, sa.Authorized)
	}
}

func TestParseRejectsMissingActorAndBadID(t *testing.T) {
	parser := ingestion.NewParser(testRegistry)

	noActor := map[string]interface{}{
		"command_id":   "550e8400-e29b-41d4-a716-446655440000",
		"sequence":     int64(1),
		"timestamp_us": int64(1700000000000000),
		"owner":        "alice",
	}
	if _, err := parser.Parse(rawFromJSON(t, noActor), "CloseAll"); err == nil {
		t.Error("missing actor accepted")
	}

	badID := map[string]interface{}{
		"command_id":   "not-a-uuid",
		"actor":        "alice",
		"sequence":     int64(1),
		"timestamp_us": int64(1700000000000000),
		"owner":        "alice",
	}
	if _, err := parser.Parse(rawFromJSON(t, badID), "CloseAll"); err == nil {
		t.Error("bad command_id accepted")
	}

	if _, err := parser.Parse(rawFromJSON(t, noActor), "Mint"); err == nil {
		t.Error("unknown command type accepted")
	}
}
