package ledger

import "errors"

// Sentinel errors for every policy and resource violation the ledger can
// produce. Callers branch with errors.Is; operations wrap these with
// context via fmt.Errorf("...: %w", ...). Any error aborts the enclosing
// operation completely — there are no partial applies.
var (
	ErrUnauthorized        = errors.New("account is not authorized")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrPrecisionMismatch   = errors.New("symbol precision mismatch")
	ErrInsufficientBalance = errors.New("overdrawn balance")
	ErrReserveDepleted     = errors.New("reserve balance depleted")
	ErrUnknownAsset        = errors.New("token with symbol does not exist")
	ErrUnknownAccount      = errors.New("account does not exist")
	ErrNotFound            = errors.New("balance record does not exist")
	ErrNoBalanceRecord     = errors.New("no balance record found")
	ErrNoBalance           = errors.New("owner has no remaining balance")
	ErrSelfTransfer        = errors.New("cannot transfer to self")
	ErrTransferDisabled    = errors.New("transfer has been disabled for this destination")
	ErrBalanceNotZero      = errors.New("cannot close because the balance is not zero")
	ErrAlreadyBlacklisted  = errors.New("account is already blacklisted")
	ErrNotBlacklisted      = errors.New("account is not blacklisted")
	ErrMemoTooLong         = errors.New("memo has more than 256 bytes")
)
