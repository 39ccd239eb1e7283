package ingestion

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/command"
)

// GRPCIngestService provides admin/manual command injection via gRPC.
// It is for administrative operations and low-volume submission, not for
// high-throughput ingestion (use NATS for that). Injected commands carry
// their own contiguous source sequence on the "grpc" partition.
type GRPCIngestService struct {
	commandChan chan<- command.Command
	registry    SymbolRegistry
	nextSeq     atomic.Int64
}

// NewGRPCIngestService builds the service. startSeq must be the next
// expected sequence for the grpc partition, recovered from the core
// after snapshot restore.
func NewGRPCIngestService(commandChan chan<- command.Command, registry SymbolRegistry, startSeq int64) *GRPCIngestService {
	s := &GRPCIngestService{
		commandChan: commandChan,
		registry:    registry,
	}
	s.nextSeq.Store(startSeq)
	return s
}

func (s *GRPCIngestService) base(actor string) command.Base {
	return command.Base{
		CommandID: uuid.New(),
		Issuer:    actor,
		Source:    "grpc",
		Sequence:  s.nextSeq.Add(1) - 1,
		Timestamp: time.Now(),
	}
}

func (s *GRPCIngestService) quantity(value, code string) (asset.Amount, error) {
	sym, err := s.registry.Resolve(code)
	if err != nil {
		return asset.Amount{}, err
	}
	quantity, err := asset.ParseAmount(value, sym)
	if err != nil {
		return asset.Amount{}, err
	}
	if !quantity.IsPositive() {
		return asset.Amount{}, fmt.Errorf("quantity must be positive")
	}
	return quantity, nil
}

func (s *GRPCIngestService) send(ctx context.Context, cmd command.Command) error {
	select {
	case s.commandChan <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SubmitTransfer injects a Transfer command.
func (s *GRPCIngestService) SubmitTransfer(ctx context.Context, actor, from, to, value, code, memo string) error {
	quantity, err := s.quantity(value, code)
	if err != nil {
		return err
	}
	return s.send(ctx, &command.Transfer{
		Base: s.base(actor), From: from, To: to, Quantity: quantity, Memo: memo,
	})
}

// SubmitBurn injects a Burn command.
func (s *GRPCIngestService) SubmitBurn(ctx context.Context, actor, from, value, code, memo string) error {
	quantity, err := s.quantity(value, code)
	if err != nil {
		return err
	}
	return s.send(ctx, &command.Burn{
		Base: s.base(actor), From: from, Quantity: quantity, Memo: memo,
	})
}

// SubmitSwap injects a Swap command. The swap settles the account's full
// balance, so there is no quantity to validate here.
func (s *GRPCIngestService) SubmitSwap(ctx context.Context, actor, account, memo string) error {
	if account == "" {
		return fmt.Errorf("account is required")
	}
	return s.send(ctx, &command.Swap{
		Base: s.base(actor), Account: account, Memo: memo,
	})
}

// SubmitClose injects a Close command.
func (s *GRPCIngestService) SubmitClose(ctx context.Context, actor, owner, code string) error {
	if _, err := s.registry.Resolve(code); err != nil {
		return err
	}
	return s.send(ctx, &command.Close{
		Base: s.base(actor), Owner: owner, Code: code,
	})
}

// SubmitCloseAll injects a CloseAll command.
func (s *GRPCIngestService) SubmitCloseAll(ctx context.Context, actor, owner string) error {
	return s.send(ctx, &command.CloseAll{
		Base: s.base(actor), Owner: owner,
	})
}

// SubmitSetAuthorization injects a SetAuthorization command.
func (s *GRPCIngestService) SubmitSetAuthorization(ctx context.Context, actor, account string, authorized bool) error {
	if account == "" {
		return fmt.Errorf("account is required")
	}
	return s.send(ctx, &command.SetAuthorization{
		Base: s.base(actor), Account: account, Authorized: authorized,
	})
}
