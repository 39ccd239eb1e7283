// Package command defines the typed operations fed into the deterministic
// core, after ingestion has parsed and validated the wire payloads.
package command

import (
	"time"

	"github.com/google/uuid"

	"TokenLedger/internal/asset"
)

// Type discriminates command payloads.
type Type int32

const (
	TypeUnknown Type = iota
	TypeTransfer
	TypeBurn
	TypeSwap
	TypeClose
	TypeCloseAll
	TypeSetAuthorization
)

func (t Type) String() string {
	switch t {
	case TypeTransfer:
		return "Transfer"
	case TypeBurn:
		return "Burn"
	case TypeSwap:
		return "Swap"
	case TypeClose:
		return "Close"
	case TypeCloseAll:
		return "CloseAll"
	case TypeSetAuthorization:
		return "SetAuthorization"
	default:
		return "Unknown"
	}
}

// Command is implemented by every typed operation. The actor is the
// authenticated identity the upstream gateway attached; the core derives
// capabilities from it, never from ambient state. SourceSequence orders
// commands within their partition, and the timestamp is a versioned
// input — the core never reads the wall clock.
type Command interface {
	CommandType() Type
	IdempotencyKey() string
	Actor() string
	Partition() string
	SourceSequence() int64
	OccurredAt() time.Time
}

// Base carries the fields shared by every command.
type Base struct {
	CommandID uuid.UUID
	Issuer    string
	Source    string
	Sequence  int64
	Timestamp time.Time
}

func (b Base) IdempotencyKey() string { return b.CommandID.String() }
func (b Base) Actor() string          { return b.Issuer }
func (b Base) SourceSequence() int64  { return b.Sequence }
func (b Base) OccurredAt() time.Time  { return b.Timestamp }

// Partition returns the sequencing partition, one per command source.
func (b Base) Partition() string {
	if b.Source == "" {
		return "global"
	}
	return "source:" + b.Source
}

// Transfer moves quantity between two accounts.
type Transfer struct {
	Base
	From     string
	To       string
	Quantity asset.Amount
	Memo     string
}

func (c *Transfer) CommandType() Type { return TypeTransfer }

// Burn retires quantity from the holder's balance and the supply.
type Burn struct {
	Base
	From     string
	Quantity asset.Amount
	Memo     string
}

func (c *Burn) CommandType() Type { return TypeBurn }

// Swap converts the account's entire token balance into the reserve
// asset. It carries no quantity: the settler reads the holder's current
// balance and settles all of it.
type Swap struct {
	Base
	Account string
	Memo    string
}

func (c *Swap) CommandType() Type { return TypeSwap }

// Close deletes the owner's zero balance record for one asset code.
type Close struct {
	Base
	Owner string
	Code  string
}

func (c *Close) CommandType() Type { return TypeClose }

// CloseAll deletes every zero balance record of the owner.
type CloseAll struct {
	Base
	Owner string
}

func (c *CloseAll) CommandType() Type { return TypeCloseAll }

// SetAuthorization blocks or unblocks an account.
type SetAuthorization struct {
	Base
	Account    string
	Authorized bool
}

func (c *SetAuthorization) CommandType() Type { return TypeSetAuthorization }

// Envelope is the core's per-command record: the global sequence it was
// applied at and its position in the state hash chain. Envelopes are the
// rows of the operation log.
type Envelope struct {
	Sequence       int64
	CommandID      string
	CommandType    Type
	Actor          string
	Partition      string
	Timestamp      time.Time
	SourceSequence int64
	StateHash      [32]byte
	PrevHash       [32]byte
}
