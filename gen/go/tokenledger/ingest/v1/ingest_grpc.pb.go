// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: tokenledger/ingest/v1/ingest.proto

package ingestv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	IngestService_SubmitTransfer_FullMethodName         = "/tokenledger.ingest.v1.IngestService/SubmitTransfer"
	IngestService_SubmitBurn_FullMethodName             = "/tokenledger.ingest.v1.IngestService/SubmitBurn"
	IngestService_SubmitSwap_FullMethodName             = "/tokenledger.ingest.v1.IngestService/SubmitSwap"
	IngestService_SubmitClose_FullMethodName            = "/tokenledger.ingest.v1.IngestService/SubmitClose"
	IngestService_SubmitCloseAll_FullMethodName         = "/tokenledger.ingest.v1.IngestService/SubmitCloseAll"
	IngestService_SubmitSetAuthorization_FullMethodName = "/tokenledger.ingest.v1.IngestService/SubmitSetAuthorization"
)

// IngestServiceClient is the client API for IngestService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// IngestService accepts admin/manual command submission. Commands are
// queued into the same deterministic core as the NATS stream; acceptance
// means queued, not applied.
type IngestServiceClient interface {
	SubmitTransfer(ctx context.Context, in *SubmitTransferRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	SubmitBurn(ctx context.Context, in *SubmitBurnRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	SubmitSwap(ctx context.Context, in *SubmitSwapRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	SubmitClose(ctx context.Context, in *SubmitCloseRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	SubmitCloseAll(ctx context.Context, in *SubmitCloseAllRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	SubmitSetAuthorization(ctx context.Context, in *SubmitSetAuthorizationRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
}

type ingestServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestServiceClient(cc grpc.ClientConnInterface) IngestServiceClient {
	return &ingestServiceClient{cc}
}

func (c *ingestServiceClient) SubmitTransfer(ctx context.Context, in *SubmitTransferRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitTransfer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitBurn(ctx context.Context, in *SubmitBurnRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitBurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitSwap(ctx context.Context, in *SubmitSwapRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitSwap_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitClose(ctx context.Context, in *SubmitCloseRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitClose_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitCloseAll(ctx context.Context, in *SubmitCloseAllRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitCloseAll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestServiceClient) SubmitSetAuthorization(ctx context.Context, in *SubmitSetAuthorizationRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, IngestService_SubmitSetAuthorization_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestServiceServer is the server API for IngestService service.
// All implementations must embed UnimplementedIngestServiceServer
// for forward compatibility.
//
// IngestService accepts admin/manual command submission. Commands are
// queued into the same deterministic core as the NATS stream; acceptance
// means queued, not applied.
type IngestServiceServer interface {
	SubmitTransfer(context.Context, *SubmitTransferRequest) (*SubmitResponse, error)
	SubmitBurn(context.Context, *SubmitBurnRequest) (*SubmitResponse, error)
	SubmitSwap(context.Context, *SubmitSwapRequest) (*SubmitResponse, error)
	SubmitClose(context.Context, *SubmitCloseRequest) (*SubmitResponse, error)
	SubmitCloseAll(context.Context, *SubmitCloseAllRequest) (*SubmitResponse, error)
	SubmitSetAuthorization(context.Context, *SubmitSetAuthorizationRequest) (*SubmitResponse, error)
	mustEmbedUnimplementedIngestServiceServer()
}

// UnimplementedIngestServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestServiceServer struct{}

func (UnimplementedIngestServiceServer) SubmitTransfer(context.Context, *SubmitTransferRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitTransfer not implemented")
}
func (UnimplementedIngestServiceServer) SubmitBurn(context.Context, *SubmitBurnRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitBurn not implemented")
}
func (UnimplementedIngestServiceServer) SubmitSwap(context.Context, *SubmitSwapRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitSwap not implemented")
}
func (UnimplementedIngestServiceServer) SubmitClose(context.Context, *SubmitCloseRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitClose not implemented")
}
func (UnimplementedIngestServiceServer) SubmitCloseAll(context.Context, *SubmitCloseAllRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitCloseAll not implemented")
}
func (UnimplementedIngestServiceServer) SubmitSetAuthorization(context.Context, *SubmitSetAuthorizationRequest) (*SubmitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitSetAuthorization not implemented")
}
func (UnimplementedIngestServiceServer) mustEmbedUnimplementedIngestServiceServer() {}
func (UnimplementedIngestServiceServer) testEmbeddedByValue()                       {}

// UnsafeIngestServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestServiceServer will
// result in compilation errors.
type UnsafeIngestServiceServer interface {
	mustEmbedUnimplementedIngestServiceServer()
}

func RegisterIngestServiceServer(s grpc.ServiceRegistrar, srv IngestServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestService_ServiceDesc, srv)
}

func _IngestService_SubmitTransfer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitTransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitTransfer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitTransfer(ctx, req.(*SubmitTransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitBurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitBurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitBurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitBurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitBurn(ctx, req.(*SubmitBurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitSwap_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitSwapRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitSwap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitSwap_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitSwap(ctx, req.(*SubmitSwapRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitClose_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitCloseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitClose(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitClose_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitClose(ctx, req.(*SubmitCloseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitCloseAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitCloseAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitCloseAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitCloseAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitCloseAll(ctx, req.(*SubmitCloseAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestService_SubmitSetAuthorization_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitSetAuthorizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServiceServer).SubmitSetAuthorization(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestService_SubmitSetAuthorization_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestServiceServer).SubmitSetAuthorization(ctx, req.(*SubmitSetAuthorizationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestService_ServiceDesc is the grpc.ServiceDesc for IngestService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tokenledger.ingest.v1.IngestService",
	HandlerType: (*IngestServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitTransfer",
			Handler:    _IngestService_SubmitTransfer_Handler,
		},
		{
			MethodName: "SubmitBurn",
			Handler:    _IngestService_SubmitBurn_Handler,
		},
		{
			MethodName: "SubmitSwap",
			Handler:    _IngestService_SubmitSwap_Handler,
		},
		{
			MethodName: "SubmitClose",
			Handler:    _IngestService_SubmitClose_Handler,
		},
		{
			MethodName: "SubmitCloseAll",
			Handler:    _IngestService_SubmitCloseAll_Handler,
		},
		{
			MethodName: "SubmitSetAuthorization",
			Handler:    _IngestService_SubmitSetAuthorization_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tokenledger/ingest/v1/ingest.proto",
}
