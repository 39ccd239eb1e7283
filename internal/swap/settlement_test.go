package swap_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/authz"
	"TokenLedger/internal/engine"
	"TokenLedger/internal/event"
	"TokenLedger/internal/ledger"
	"TokenLedger/internal/swap"
)

var (
	cusd = asset.MustSymbol("CUSD", 2)
	usdt = asset.MustSymbol("USDT", 4)
)

type stubOracle struct {
	available asset.Amount
	err       error
}

func (o *stubOracle) Balance(ctx context.Context, custodian string, symbol asset.Symbol) (asset.Amount, error) {
	if o.err != nil {
		return asset.Amount{}, o.err
	}
	return o.available, nil
}

type recordingTransferer struct {
	requests []transferRequest
	err      error
}

type transferRequest struct {
	From, To string
	Quantity asset.Amount
	Memo     string
}

func (r *recordingTransferer) RequestTransfer(ctx context.Context, from, to string, quantity asset.Amount, memo string) error {
	if r.err != nil {
		return r.err
	}
	r.requests = append(r.requests, transferRequest{From: from, To: to, Quantity: quantity, Memo: memo})
	return nil
}

type fixture struct {
	engine     *engine.Engine
	settler    *swap.Settler
	balances   *ledger.BalanceStore
	supply     *ledger.SupplyStore
	bus        *event.Bus
	oracle     *stubOracle
	transferer *recordingTransferer
	settled    []*event.SwapSettled
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	balances := ledger.NewBalanceStore()
	supply := ledger.NewSupplyStore()
	gate := authz.NewGate()
	bus := event.NewBus()

	require.NoError(t, supply.Register(ledger.Stats{
		Supply:    asset.NewAmount(100_000, cusd),
		MaxSupply: asset.NewAmount(1_000_000_00, cusd),
		Issuer:    "carbon",
	}))
	require.NoError(t, balances.Credit(nil, "alice", asset.NewAmount(50_000, cusd)))
	require.NoError(t, balances.Credit(nil, "erin", asset.NewAmount(500, cusd)))
	require.NoError(t, balances.Credit(nil, "mallory", asset.NewAmount(10_000, cusd)))

	eng := engine.New(engine.Config{
		Self:           "carbonledger",
		Admin:          "carbonadmin",
		SupportContact: "support.example/help",
	}, balances, supply, gate, bus)

	oracle := &stubOracle{available: asset.NewAmount(10_000_0000, usdt)}
	transferer := &recordingTransferer{}

	settler, err := swap.New(swap.Config{
		Token:             cusd,
		Reserve:           usdt,
		ReserveContract:   "tethertether",
		SettlementAccount: "carbon.swap",
		Custodian:         "carbonfund",
		Headroom:          1,
		Memo:              "1:1 CUSD/USDT swap",
	}, eng, bus, oracle, transferer, zerolog.Nop())
	require.NoError(t, err)

	f := &fixture{
		engine:     eng,
		settler:    settler,
		balances:   balances,
		supply:     supply,
		bus:        bus,
		oracle:     oracle,
		transferer: transferer,
	}
	bus.Subscribe(func(ctx context.Context, tx *ledger.Txn, n event.Notification) error {
		if s, ok := n.(*event.SwapSettled); ok {
			f.settled = append(f.settled, s)
		}
		return nil
	})
	return f
}

func (f *fixture) units(t *testing.T, owner string) int64 {
	t.Helper()
	bal, err := f.balances.Balance(owner, "CUSD")
	if errors.Is(err, ledger.ErrNoBalanceRecord) {
		return 0
	}
	require.NoError(t, err)
	return bal.Units
}

func TestNewValidatesConfig(t *testing.T) {
	f := newFixture(t)

	_, err := swap.New(swap.Config{
		Token: cusd, Reserve: usdt,
		ReserveContract: "tethertether", SettlementAccount: "carbon.swap", Custodian: "carbonfund",
		Headroom: 2,
	}, f.engine, f.bus, f.oracle, f.transferer, zerolog.Nop())
	require.Error(t, err, "headroom outside {0,1}")

	_, err = swap.New(swap.Config{
		Token: usdt, Reserve: cusd,
		ReserveContract: "tethertether", SettlementAccount: "carbon.swap", Custodian: "carbonfund",
	}, f.engine, f.bus, f.oracle, f.transferer, zerolog.Nop())
	require.Error(t, err, "reserve below token precision")
}

func TestSwapSettlesFullBalance(t *testing.T) {
	f := newFixture(t)

	// erin holds exactly 5.00 CUSD; swap takes no quantity and settles
	// the whole holding for exactly 5.0000 USDT.
	entries, err := f.settler.Swap(context.Background(), "erin", authz.CapNone, "erin", "cashing out")
	require.NoError(t, err)

	require.Equal(t, int64(0), f.units(t, "erin"), "full balance is debited")
	require.Equal(t, int64(0), f.units(t, "carbon.swap"), "settlement account must not accumulate")

	st, err := f.supply.Supply("CUSD")
	require.NoError(t, err)
	require.Equal(t, int64(99_500), st.Supply.Units, "swapped tokens are retired")

	require.Len(t, f.transferer.requests, 1)
	req := f.transferer.requests[0]
	require.Equal(t, "carbonfund", req.From)
	require.Equal(t, "erin", req.To)
	require.Equal(t, asset.NewAmount(50_000, usdt), req.Quantity)
	require.Equal(t, "1:1 CUSD/USDT swap", req.Memo)

	require.Len(t, f.settled, 1)
	require.Equal(t, "erin", f.settled[0].Account)
	require.Equal(t, asset.NewAmount(500, cusd), f.settled[0].TokenQuantity)
	require.Equal(t, asset.NewAmount(50_000, usdt), f.settled[0].ReserveQuantity)

	// Debit, credit, supply decrease, settlement-account debit.
	require.Len(t, entries, 4)
}

func TestSwapRequiresBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// No record at all.
	_, err := f.settler.Swap(ctx, "bob", authz.CapNone, "bob", "")
	require.ErrorIs(t, err, ledger.ErrNoBalance)

	// A swapped-out holder has no record left; a second swap is NoBalance,
	// not a zero-quantity settlement.
	_, err = f.settler.Swap(ctx, "erin", authz.CapNone, "erin", "")
	require.NoError(t, err)
	_, err = f.settler.Swap(ctx, "erin", authz.CapNone, "erin", "")
	require.ErrorIs(t, err, ledger.ErrNoBalance)
	require.Len(t, f.transferer.requests, 1, "no payout without a balance")
}

func TestDirectTransferToSettlementAccountSettles(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Transfer(context.Background(), "alice", "alice", "carbon.swap", asset.NewAmount(200, cusd), "swap please")
	require.NoError(t, err)

	require.Equal(t, int64(49_800), f.units(t, "alice"))
	require.Len(t, f.transferer.requests, 1)
	require.Equal(t, asset.NewAmount(20_000, usdt), f.transferer.requests[0].Quantity)
}

func TestSwapAuthority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.settler.Swap(ctx, "bob", authz.CapNone, "alice", "")
	require.ErrorIs(t, err, ledger.ErrUnauthorized)

	// Admin may initiate, but the transfer still runs as the holder, so a
	// blacklisted holder cannot swap even with admin backing.
	_, err = f.engine.SetAuthorization(ctx, "carbonadmin", authz.CapAdmin, "mallory", false)
	require.NoError(t, err)
	_, err = f.settler.Swap(ctx, "carbonadmin", authz.CapAdmin, "mallory", "")
	require.ErrorIs(t, err, ledger.ErrUnauthorized)
}

func TestReserveDepletedLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	// Exactly the payout, no headroom unit to spare.
	f.oracle.available = asset.NewAmount(50_000, usdt)

	_, err := f.settler.Swap(context.Background(), "erin", authz.CapNone, "erin", "")
	require.ErrorIs(t, err, ledger.ErrReserveDepleted)
	require.Contains(t, err.Error(), "support.example/help")

	require.Equal(t, int64(500), f.units(t, "erin"), "holder debit must roll back")
	st, _ := f.supply.Supply("CUSD")
	require.Equal(t, int64(100_000), st.Supply.Units)
	require.Empty(t, f.transferer.requests)
	require.Empty(t, f.settled)
}

func TestHeadroomBoundary(t *testing.T) {
	f := newFixture(t)
	// Payout plus the single headroom unit: allowed.
	f.oracle.available = asset.NewAmount(50_001, usdt)

	_, err := f.settler.Swap(context.Background(), "erin", authz.CapNone, "erin", "")
	require.NoError(t, err)
	require.Len(t, f.transferer.requests, 1)
}

func TestOracleFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	f.oracle.err = errors.New("bridge down")

	_, err := f.settler.Swap(context.Background(), "erin", authz.CapNone, "erin", "")
	require.Error(t, err)
	require.Equal(t, int64(500), f.units(t, "erin"))
}

func TestTransferRequestFailureRollsBackRetirement(t *testing.T) {
	f := newFixture(t)
	f.transferer.err = errors.New("reserve contract rejected")

	_, err := f.settler.Swap(context.Background(), "erin", authz.CapNone, "erin", "")
	require.Error(t, err)

	require.Equal(t, int64(500), f.units(t, "erin"))
	st, _ := f.supply.Supply("CUSD")
	require.Equal(t, int64(100_000), st.Supply.Units, "retirement must roll back")
}

func TestMisdirectedTransferFailsLoudly(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Transfer(context.Background(), "alice", "alice", "carbonledger", asset.NewAmount(100, cusd), "oops")
	require.Error(t, err)
	require.Contains(t, err.Error(), "carbon.swap")
	require.Equal(t, int64(50_000), f.units(t, "alice"), "misdirected transfer must not apply")
}

func TestUnrelatedTransfersPassThrough(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Transfer(context.Background(), "alice", "alice", "mallory", asset.NewAmount(100, cusd), "")
	require.NoError(t, err)
	require.Empty(t, f.transferer.requests)
	require.Empty(t, f.settled)
}

func TestOutboundLegsDoNotTriggerSettlement(t *testing.T) {
	f := newFixture(t)

	// A notification whose source is the ledger's own identity is an
	// outbound leg; settling it would recurse.
	tx := ledger.Begin()
	err := f.bus.Publish(context.Background(), tx, &event.TransferOccurred{
		From:     "carbonledger",
		To:       "carbon.swap",
		Quantity: asset.NewAmount(500, cusd),
		Memo:     "",
	})
	tx.Rollback()

	require.NoError(t, err)
	require.Empty(t, f.transferer.requests)
	require.Empty(t, f.settled)
}

func TestReplayGatewaySuppressesReservePayout(t *testing.T) {
	f := newFixture(t)

	// During startup replay the settler runs on the replay gateway: the
	// recorded settlement is re-applied to ledger state, but the reserve
	// bridge is neither queried nor paid.
	f.oracle.err = errors.New("bridge must not be queried")
	f.settler.SetGateways(swap.ReplayReserveGateway{}, swap.ReplayReserveGateway{})

	_, err := f.settler.Swap(context.Background(), "erin", authz.CapNone, "erin", "")
	require.NoError(t, err)
	require.Equal(t, int64(0), f.units(t, "erin"), "ledger state still applies")
	require.Empty(t, f.transferer.requests, "no live payout during replay")

	// Back on the live bridge, the oracle is consulted again.
	f.settler.SetGateways(f.oracle, f.transferer)
	_, err = f.settler.Swap(context.Background(), "alice", authz.CapNone, "alice", "")
	require.Error(t, err)
}
