package server

import (
	"TokenLedger/internal/ingestion"
	"TokenLedger/internal/observability"
	"TokenLedger/internal/persistence"
	"TokenLedger/internal/projection"
	"TokenLedger/internal/query"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"TokenLedger/internal/ledger"

	adminv1 "TokenLedger/gen/go/tokenledger/admin/v1"
	ingestv1 "TokenLedger/gen/go/tokenledger/ingest/v1"
	queryv1 "TokenLedger/gen/go/tokenledger/query/v1"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// SnapshotFunc asks the core loop to take a snapshot between commands.
// Returns the snapshot sequence and its size in bytes.
type SnapshotFunc func(ctx context.Context) (int64, int, error)

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	DB            *sql.DB
	QueryService  *query.QueryService
	IngestService *ingestion.GRPCIngestService
	SnapshotMgr   *persistence.SnapshotManager
	TakeSnapshot  SnapshotFunc
	StartTime     time.Time
	HealthChecker *observability.HealthChecker
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	// Register services
	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{qs: deps.QueryService})
	ingestv1.RegisterIngestServiceServer(grpcServer, &ingestServiceImpl{svc: deps.IngestService})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		db:           deps.DB,
		snapMgr:      deps.SnapshotMgr,
		takeSnapshot: deps.TakeSnapshot,
		queryService: deps.QueryService,
		startTime:    deps.StartTime,
	})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served via gRPC-Gateway for tooling, dashboards, curl.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	// Register gateway handlers — they proxy HTTP/JSON to the gRPC server
	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := ingestv1.RegisterIngestServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ingest gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs *query.QueryService
}

func (s *queryServiceImpl) GetBalance(ctx context.Context, req *queryv1.GetBalanceRequest) (*queryv1.GetBalanceResponse, error) {
	if req.Owner == "" || req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "owner and asset are required")
	}

	bal, err := s.qs.GetBalance(ctx, req.Owner, req.Asset)
	if err != nil {
		if errors.Is(err, ledger.ErrNoBalanceRecord) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		return nil, status.Errorf(codes.Internal, "get balance: %v", err)
	}

	return &queryv1.GetBalanceResponse{
		Owner:        bal.Owner,
		Asset:        bal.Asset,
		Units:        bal.Units,
		AsOfSequence: bal.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListHoldings(ctx context.Context, req *queryv1.ListHoldingsRequest) (*queryv1.ListHoldingsResponse, error) {
	if req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner is required")
	}

	holdings, err := s.qs.GetHoldings(ctx, req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get holdings: %v", err)
	}

	resp := &queryv1.ListHoldingsResponse{
		Owner:        holdings.Owner,
		AsOfSequence: holdings.AsOfSequence,
	}
	for _, h := range holdings.Holdings {
		resp.Holdings = append(resp.Holdings, &queryv1.Holding{
			Asset: h.Asset,
			Units: h.Units,
		})
	}

	return resp, nil
}

func (s *queryServiceImpl) GetSupply(ctx context.Context, req *queryv1.GetSupplyRequest) (*queryv1.GetSupplyResponse, error) {
	if req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "asset is required")
	}

	supply, err := s.qs.GetSupply(ctx, req.Asset)
	if err != nil {
		if errors.Is(err, ledger.ErrUnknownAsset) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		return nil, status.Errorf(codes.Internal, "get supply: %v", err)
	}

	return &queryv1.GetSupplyResponse{
		Asset:          supply.Asset,
		SupplyUnits:    supply.SupplyUnits,
		MaxSupplyUnits: supply.MaxSupplyUnits,
		Precision:      uint32(supply.Precision),
		Issuer:         supply.Issuer,
		AsOfSequence:   supply.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListBlacklist(ctx context.Context, req *queryv1.ListBlacklistRequest) (*queryv1.ListBlacklistResponse, error) {
	entries, err := s.qs.ListBlacklist(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list blacklist: %v", err)
	}

	resp := &queryv1.ListBlacklistResponse{}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &queryv1.BlacklistEntry{
			Account:       e.Account,
			SinceSequence: e.SinceSequence,
		})
	}

	return resp, nil
}

func (s *queryServiceImpl) ListHistory(ctx context.Context, req *queryv1.ListHistoryRequest) (*queryv1.ListHistoryResponse, error) {
	if req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var afterSeq *int64
	if req.FromSequence > 0 {
		afterSeq = &req.FromSequence
	}

	entries, err := s.qs.GetHistory(ctx, req.Account, pageSize, afterSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get history: %v", err)
	}

	resp := &queryv1.ListHistoryResponse{}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &queryv1.HistoryEntry{
			Sequence:    e.Sequence,
			Position:    e.Position,
			Account:     e.Account,
			Asset:       e.Asset,
			Delta:       e.Delta,
			Kind:        e.Kind,
			CommandType: e.CommandType,
			CommandId:   e.CommandID,
			Actor:       e.Actor,
			TimestampUs: e.Timestamp,
		})
	}

	return resp, nil
}

// ============================================================================
// IngestService gRPC implementation
// ============================================================================

type ingestServiceImpl struct {
	ingestv1.UnimplementedIngestServiceServer
	svc *ingestion.GRPCIngestService
}

func accepted(err error) (*ingestv1.SubmitResponse, error) {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, status.Error(codes.DeadlineExceeded, "command queue unavailable")
		}
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return &ingestv1.SubmitResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) SubmitTransfer(ctx context.Context, req *ingestv1.SubmitTransferRequest) (*ingestv1.SubmitResponse, error) {
	if req.Actor == "" || req.From == "" || req.To == "" {
		return nil, status.Error(codes.InvalidArgument, "actor, from and to are required")
	}
	return accepted(s.svc.SubmitTransfer(ctx, req.Actor, req.From, req.To, req.Quantity, req.Asset, req.Memo))
}

func (s *ingestServiceImpl) SubmitBurn(ctx context.Context, req *ingestv1.SubmitBurnRequest) (*ingestv1.SubmitResponse, error) {
	if req.Actor == "" || req.From == "" {
		return nil, status.Error(codes.InvalidArgument, "actor and from are required")
	}
	return accepted(s.svc.SubmitBurn(ctx, req.Actor, req.From, req.Quantity, req.Asset, req.Memo))
}

func (s *ingestServiceImpl) SubmitSwap(ctx context.Context, req *ingestv1.SubmitSwapRequest) (*ingestv1.SubmitResponse, error) {
	if req.Actor == "" || req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "actor and account are required")
	}
	return accepted(s.svc.SubmitSwap(ctx, req.Actor, req.Account, req.Memo))
}

func (s *ingestServiceImpl) SubmitClose(ctx context.Context, req *ingestv1.SubmitCloseRequest) (*ingestv1.SubmitResponse, error) {
	if req.Actor == "" || req.Owner == "" || req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "actor, owner and asset are required")
	}
	return accepted(s.svc.SubmitClose(ctx, req.Actor, req.Owner, req.Asset))
}

func (s *ingestServiceImpl) SubmitCloseAll(ctx context.Context, req *ingestv1.SubmitCloseAllRequest) (*ingestv1.SubmitResponse, error) {
	if req.Actor == "" || req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "actor and owner are required")
	}
	return accepted(s.svc.SubmitCloseAll(ctx, req.Actor, req.Owner))
}

func (s *ingestServiceImpl) SubmitSetAuthorization(ctx context.Context, req *ingestv1.SubmitSetAuthorizationRequest) (*ingestv1.SubmitResponse, error) {
	if req.Actor == "" || req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "actor and account are required")
	}
	return accepted(s.svc.SubmitSetAuthorization(ctx, req.Actor, req.Account, req.Authorized))
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	db           *sql.DB
	snapMgr      *persistence.SnapshotManager
	takeSnapshot SnapshotFunc
	queryService *query.QueryService
	startTime    time.Time
}

func (s *adminServiceImpl) TakeSnapshot(ctx context.Context, req *adminv1.TakeSnapshotRequest) (*adminv1.TakeSnapshotResponse, error) {
	if s.takeSnapshot == nil {
		return nil, status.Error(codes.Unimplemented, "snapshotting not wired")
	}

	seq, size, err := s.takeSnapshot(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "take snapshot: %v", err)
	}

	return &adminv1.TakeSnapshotResponse{
		Sequence:  seq,
		SizeBytes: int64(size),
	}, nil
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := projection.RebuildProjections(ctx, s.db); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{
		Started: true,
	}, nil
}

func (s *adminServiceImpl) GetCommandLogInfo(ctx context.Context, req *adminv1.GetCommandLogInfoRequest) (*adminv1.GetCommandLogInfoResponse, error) {
	latestSeq, err := s.snapMgr.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}

	return &adminv1.GetCommandLogInfoResponse{
		LastSequence: latestSeq,
	}, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.queryService.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed: report.IsHealthy,
	}

	if !report.IsHealthy {
		if len(report.HashChainBreaks) > 0 {
			resp.FirstMismatchSequence = report.HashChainBreaks[0]
		}
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, %d assets over supply",
			len(report.HashChainBreaks), len(report.SupplyMismatch))
	}

	return resp, nil
}
