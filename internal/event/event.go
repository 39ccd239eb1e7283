// Package event defines the notifications the engine emits when state
// changes, and the synchronous bus that delivers them within the emitting
// operation's transaction.
package event

import (
	"TokenLedger/internal/asset"
)

// Kind discriminates notification payloads.
type Kind int32

const (
	KindUnknown Kind = iota
	KindTransferOccurred
	KindBurnExecuted
	KindSwapSettled
	KindAuthorizationChanged
	KindBalanceClosed
)

func (k Kind) String() string {
	switch k {
	case KindTransferOccurred:
		return "TransferOccurred"
	case KindBurnExecuted:
		return "BurnExecuted"
	case KindSwapSettled:
		return "SwapSettled"
	case KindAuthorizationChanged:
		return "AuthorizationChanged"
	case KindBalanceClosed:
		return "BalanceClosed"
	default:
		return "Unknown"
	}
}

// Notification is implemented by every payload delivered on the bus.
// Recipients lists the accounts the notification concerns; the outbound
// publisher fans the notification out to each of them plus the ledger's
// own identity, mirroring the require_recipient contract of the chain
// this ledger descends from.
type Notification interface {
	Kind() Kind
	Recipients() []string
}

// TransferOccurred is emitted after a transfer's debit and credit have
// both been applied. Subscribers run inside the same transaction: an
// error from any subscriber rolls the transfer back.
type TransferOccurred struct {
	From     string
	To       string
	Quantity asset.Amount
	Memo     string
}

func (n *TransferOccurred) Kind() Kind           { return KindTransferOccurred }
func (n *TransferOccurred) Recipients() []string { return []string{n.From, n.To} }

// BurnExecuted is emitted after supply and balance have both decreased.
type BurnExecuted struct {
	From     string
	Quantity asset.Amount
	Memo     string
}

func (n *BurnExecuted) Kind() Kind           { return KindBurnExecuted }
func (n *BurnExecuted) Recipients() []string { return []string{n.From} }

// SwapSettled is emitted after the settlement engine has issued the
// outbound reserve transfer instruction.
type SwapSettled struct {
	Account         string
	TokenQuantity   asset.Amount
	ReserveQuantity asset.Amount
	Memo            string
}

func (n *SwapSettled) Kind() Kind           { return KindSwapSettled }
func (n *SwapSettled) Recipients() []string { return []string{n.Account} }

// AuthorizationChanged is emitted when an account is blocked or unblocked.
type AuthorizationChanged struct {
	Account    string
	Authorized bool
}

func (n *AuthorizationChanged) Kind() Kind           { return KindAuthorizationChanged }
func (n *AuthorizationChanged) Recipients() []string { return []string{n.Account} }

// BalanceClosed is emitted per record removed by close/close_all.
type BalanceClosed struct {
	Owner string
	Asset string
}

func (n *BalanceClosed) Kind() Kind           { return KindBalanceClosed }
func (n *BalanceClosed) Recipients() []string { return []string{n.Owner} }
