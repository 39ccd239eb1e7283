package ledger

// EntryKind classifies a single ledger mutation for the operation log.
type EntryKind int32

const (
	EntryCredit EntryKind = iota
	EntryDebit
	EntrySupplyDecrease
	EntryRecordClosed
	EntryBlacklistAdd
	EntryBlacklistRemove
)

func (k EntryKind) String() string {
	switch k {
	case EntryCredit:
		return "credit"
	case EntryDebit:
		return "debit"
	case EntrySupplyDecrease:
		return "supply_decrease"
	case EntryRecordClosed:
		return "record_closed"
	case EntryBlacklistAdd:
		return "blacklist_add"
	case EntryBlacklistRemove:
		return "blacklist_remove"
	default:
		return "unknown"
	}
}

// Entry records one applied mutation: the account touched, the asset code,
// and the signed delta in units. Entries double as the rows journaled to
// the operation log and as the audit trail for projections.
type Entry struct {
	Account string
	Asset   string
	Delta   int64
	Kind    EntryKind
}

// Txn is an in-memory undo log giving atomic multi-key mutation to the
// single-threaded core. Stores register an undo closure before each
// mutation; Rollback replays them in reverse. This stands in for the
// transactional key-value substrate the ledger assumes: either every
// mutation of an operation applies, or none do — including mutations made
// by synchronous notification subscribers further down the call chain.
//
// Not thread-safe. Exactly one Txn is live at a time inside the core.
type Txn struct {
	undo    []func()
	entries []Entry
	done    bool
}

func Begin() *Txn {
	return &Txn{}
}

// Record registers an undo closure for a mutation about to be applied.
// A nil *Txn is a no-op so stores can be driven directly in tests.
func (t *Txn) Record(undo func()) {
	if t == nil {
		return
	}
	t.undo = append(t.undo, undo)
}

// Note appends an Entry describing an applied mutation.
func (t *Txn) Note(e Entry) {
	if t == nil {
		return
	}
	t.entries = append(t.entries, e)
}

// Entries returns the mutations applied so far, in order.
func (t *Txn) Entries() []Entry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Rollback undoes every recorded mutation, newest first. Safe to call
// more than once; only the first call has effect.
func (t *Txn) Rollback() {
	if t == nil || t.done {
		return
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	t.entries = nil
	t.done = true
}

// Commit discards the undo log, making the mutations final.
func (t *Txn) Commit() {
	if t == nil {
		return
	}
	t.undo = nil
	t.done = true
}
