package swap

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/nats-io/nats.go"

	"TokenLedger/internal/asset"
)

// ReserveOracle reports how much of the reserve asset the custodian
// account holds on the reserve contract. The settlement engine consults
// it before retiring tokens so a depleted float fails the whole swap
// instead of stranding a retired balance.
type ReserveOracle interface {
	Balance(ctx context.Context, custodian string, symbol asset.Symbol) (asset.Amount, error)
}

// ReserveTransferer issues the outbound reserve-asset transfer that
// completes a swap. Implementations deliver the instruction to whatever
// system custodies the reserve; a returned error aborts and rolls back
// the settlement.
type ReserveTransferer interface {
	RequestTransfer(ctx context.Context, from, to string, quantity asset.Amount, memo string) error
}

// reserveBalanceRequest / reserveBalanceReply are the wire shapes of the
// balance query answered by the reserve bridge.
type reserveBalanceRequest struct {
	Account string `json:"account"`
	Symbol  string `json:"symbol"`
}

type reserveBalanceReply struct {
	Quantity string `json:"quantity"`
	Error    string `json:"error,omitempty"`
}

type reserveTransferRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo"`
}

type reserveTransferReply struct {
	Error string `json:"error,omitempty"`
}

// ReplayReserveGateway satisfies both reserve ports without touching the
// external contract. Startup replay uses it: the operation log already
// records every settlement that succeeded, so replaying one must neither
// re-query the reserve (its balance has moved since) nor pay the holder
// a second time.
type ReplayReserveGateway struct{}

func (ReplayReserveGateway) Balance(ctx context.Context, custodian string, symbol asset.Symbol) (asset.Amount, error) {
	return asset.NewAmount(math.MaxInt64-1, symbol), nil
}

func (ReplayReserveGateway) RequestTransfer(ctx context.Context, from, to string, quantity asset.Amount, memo string) error {
	return nil
}

// NATSReserveGateway talks to the reserve bridge over NATS request/reply.
// Subjects are reserve.balance.{contract} and reserve.transfer.{contract}
// so one bridge can serve several reserve contracts.
type NATSReserveGateway struct {
	nc       *nats.Conn
	contract string
	timeout  time.Duration
}

func NewNATSReserveGateway(nc *nats.Conn, contract string, timeout time.Duration) *NATSReserveGateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NATSReserveGateway{nc: nc, contract: contract, timeout: timeout}
}

func (g *NATSReserveGateway) Balance(ctx context.Context, custodian string, symbol asset.Symbol) (asset.Amount, error) {
	payload, err := json.Marshal(reserveBalanceRequest{Account: custodian, Symbol: symbol.String()})
	if err != nil {
		return asset.Amount{}, fmt.Errorf("marshal balance request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	msg, err := g.nc.RequestWithContext(ctx, "reserve.balance."+g.contract, payload)
	if err != nil {
		return asset.Amount{}, fmt.Errorf("reserve balance query (%s): %w", g.contract, err)
	}

	var reply reserveBalanceReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return asset.Amount{}, fmt.Errorf("decode balance reply: %w", err)
	}
	if reply.Error != "" {
		return asset.Amount{}, fmt.Errorf("reserve bridge: %s", reply.Error)
	}

	quantity, err := asset.ParseAmount(reply.Quantity, symbol)
	if err != nil {
		return asset.Amount{}, fmt.Errorf("reserve balance %q: %w", reply.Quantity, err)
	}
	return quantity, nil
}

func (g *NATSReserveGateway) RequestTransfer(ctx context.Context, from, to string, quantity asset.Amount, memo string) error {
	payload, err := json.Marshal(reserveTransferRequest{
		From:     from,
		To:       to,
		Quantity: quantity.String(),
		Memo:     memo,
	})
	if err != nil {
		return fmt.Errorf("marshal transfer request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	msg, err := g.nc.RequestWithContext(ctx, "reserve.transfer."+g.contract, payload)
	if err != nil {
		return fmt.Errorf("reserve transfer request (%s): %w", g.contract, err)
	}

	var reply reserveTransferReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return fmt.Errorf("decode transfer reply: %w", err)
	}
	if reply.Error != "" {
		return fmt.Errorf("reserve bridge: %s", reply.Error)
	}
	return nil
}
