// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.1
// 	protoc        (unknown)
// source: tokenledger/ingest/v1/ingest.proto

package ingestv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Quantities travel as decimal strings ("1.50") plus the asset code; the
// service resolves the code to a registered precision and rejects values
// that do not fit it exactly.
type SubmitTransferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Actor         string                 `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor,omitempty"`
	From          string                 `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To            string                 `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Quantity      string                 `protobuf:"bytes,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Asset         string                 `protobuf:"bytes,5,opt,name=asset,proto3" json:"asset,omitempty"`
	Memo          string                 `protobuf:"bytes,6,opt,name=memo,proto3" json:"memo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitTransferRequest) Reset() {
	*x = SubmitTransferRequest{}
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitTransferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitTransferRequest) ProtoMessage() {}

func (x *SubmitTransferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitTransferRequest.ProtoReflect.Descriptor instead.
func (*SubmitTransferRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitTransferRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *SubmitTransferRequest) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *SubmitTransferRequest) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *SubmitTransferRequest) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *SubmitTransferRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *SubmitTransferRequest) GetMemo() string {
	if x != nil {
		return x.Memo
	}
	return ""
}

type SubmitBurnRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Actor         string                 `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor,omitempty"`
	From          string                 `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	Quantity      string                 `protobuf:"bytes,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Asset         string                 `protobuf:"bytes,4,opt,name=asset,proto3" json:"asset,omitempty"`
	Memo          string                 `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBurnRequest) Reset() {
	*x = SubmitBurnRequest{}
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBurnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBurnRequest) ProtoMessage() {}

func (x *SubmitBurnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBurnRequest.ProtoReflect.Descriptor instead.
func (*SubmitBurnRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitBurnRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *SubmitBurnRequest) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *SubmitBurnRequest) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *SubmitBurnRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *SubmitBurnRequest) GetMemo() string {
	if x != nil {
		return x.Memo
	}
	return ""
}

// Swap settles the account's full token balance; there is no quantity.
type SubmitSwapRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Actor         string                 `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor,omitempty"`
	Account       string                 `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Memo          string                 `protobuf:"bytes,3,opt,name=memo,proto3" json:"memo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitSwapRequest) Reset() {
	*x = SubmitSwapRequest{}
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitSwapRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitSwapRequest) ProtoMessage() {}

func (x *SubmitSwapRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitSwapRequest.ProtoReflect.Descriptor instead.
func (*SubmitSwapRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitSwapRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *SubmitSwapRequest) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *SubmitSwapRequest) GetMemo() string {
	if x != nil {
		return x.Memo
	}
	return ""
}

type SubmitCloseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Actor         string                 `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor,omitempty"`
	Owner         string                 `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Asset         string                 `protobuf:"bytes,3,opt,name=asset,proto3" json:"asset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitCloseRequest) Reset() {
	*x = SubmitCloseRequest{}
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitCloseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitCloseRequest) ProtoMessage() {}

func (x *SubmitCloseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitCloseRequest.ProtoReflect.Descriptor instead.
func (*SubmitCloseRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitCloseRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *SubmitCloseRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *SubmitCloseRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

type SubmitCloseAllRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Actor         string                 `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor,omitempty"`
	Owner         string                 `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitCloseAllRequest) Reset() {
	*x = SubmitCloseAllRequest{}
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitCloseAllRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitCloseAllRequest) ProtoMessage() {}

func (x *SubmitCloseAllRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitCloseAllRequest.ProtoReflect.Descriptor instead.
func (*SubmitCloseAllRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitCloseAllRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *SubmitCloseAllRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type SubmitSetAuthorizationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Actor         string                 `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor,omitempty"`
	Account       string                 `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Authorized    bool                   `protobuf:"varint,3,opt,name=authorized,proto3" json:"authorized,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitSetAuthorizationRequest) Reset() {
	*x = SubmitSetAuthorizationRequest{}
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitSetAuthorizationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitSetAuthorizationRequest) ProtoMessage() {}

func (x *SubmitSetAuthorizationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitSetAuthorizationRequest.ProtoReflect.Descriptor instead.
func (*SubmitSetAuthorizationRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{5}
}

func (x *SubmitSetAuthorizationRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *SubmitSetAuthorizationRequest) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *SubmitSetAuthorizationRequest) GetAuthorized() bool {
	if x != nil {
		return x.Authorized
	}
	return false
}

type SubmitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitResponse) Reset() {
	*x = SubmitResponse{}
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitResponse) ProtoMessage() {}

func (x *SubmitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_ingest_v1_ingest_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitResponse.ProtoReflect.Descriptor instead.
func (*SubmitResponse) Descriptor() ([]byte, []int) {
	return file_tokenledger_ingest_v1_ingest_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

var File_tokenledger_ingest_v1_ingest_proto protoreflect.FileDescriptor

var file_tokenledger_ingest_v1_ingest_proto_rawDesc = []byte{
	0x0a, 0x22, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x69, 0x6e,
	0x67, 0x65, 0x73, 0x74, 0x2f, 0x76, 0x31, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x12, 0x15, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f,
	0x67, 0x6c, 0x65, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x73, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x97, 0x01, 0x0a, 0x15, 0x53, 0x75,
	0x62, 0x6d, 0x69, 0x74, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x66, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x12, 0x0a, 0x04, 0x66, 0x72, 0x6f,
	0x6d, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x66, 0x72, 0x6f, 0x6d, 0x12, 0x0e, 0x0a,
	0x02, 0x74, 0x6f, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x74, 0x6f, 0x12, 0x1a, 0x0a,
	0x08, 0x71, 0x75, 0x61, 0x6e, 0x74, 0x69, 0x74, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x08, 0x71, 0x75, 0x61, 0x6e, 0x74, 0x69, 0x74, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x73, 0x73,
	0x65, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x12,
	0x12, 0x0a, 0x04, 0x6d, 0x65, 0x6d, 0x6f, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6d,
	0x65, 0x6d, 0x6f, 0x22, 0x83, 0x01, 0x0a, 0x11, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x42, 0x75,
	0x72, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x63, 0x74,
	0x6f, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x12,
	0x12, 0x0a, 0x04, 0x66, 0x72, 0x6f, 0x6d, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x66,
	0x72, 0x6f, 0x6d, 0x12, 0x1a, 0x0a, 0x08, 0x71, 0x75, 0x61, 0x6e, 0x74, 0x69, 0x74, 0x79, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x71, 0x75, 0x61, 0x6e, 0x74, 0x69, 0x74, 0x79, 0x12,
	0x14, 0x0a, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05,
	0x61, 0x73, 0x73, 0x65, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x6d, 0x65, 0x6d, 0x6f, 0x18, 0x05, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x04, 0x6d, 0x65, 0x6d, 0x6f, 0x22, 0x57, 0x0a, 0x11, 0x53, 0x75, 0x62,
	0x6d, 0x69, 0x74, 0x53, 0x77, 0x61, 0x70, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14,
	0x0a, 0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61,
	0x63, 0x74, 0x6f, 0x72, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x12,
	0x0a, 0x04, 0x6d, 0x65, 0x6d, 0x6f, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6d, 0x65,
	0x6d, 0x6f, 0x22, 0x56, 0x0a, 0x12, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x43, 0x6c, 0x6f, 0x73,
	0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x63, 0x74, 0x6f,
	0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x14,
	0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f,
	0x77, 0x6e, 0x65, 0x72, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x22, 0x43, 0x0a, 0x15, 0x53, 0x75,
	0x62, 0x6d, 0x69, 0x74, 0x43, 0x6c, 0x6f, 0x73, 0x65, 0x41, 0x6c, 0x6c, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e,
	0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x22,
	0x6f, 0x0a, 0x1d, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x65, 0x74, 0x41, 0x75, 0x74, 0x68,
	0x6f, 0x72, 0x69, 0x7a, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x14, 0x0a, 0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x05, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74,
	0x12, 0x1e, 0x0a, 0x0a, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x65, 0x64, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x0a, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x65, 0x64,
	0x22, 0x2c, 0x0a, 0x0e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x32, 0xb8,
	0x06, 0x0a, 0x0d, 0x49, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65,
	0x12, 0x87, 0x01, 0x0a, 0x0e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x54, 0x72, 0x61, 0x6e, 0x73,
	0x66, 0x65, 0x72, 0x12, 0x2c, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d,
	0x69, 0x74, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x66, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x25, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e,
	0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x20, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1a,
	0x3a, 0x01, 0x2a, 0x22, 0x15, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64,
	0x73, 0x2f, 0x74, 0x72, 0x61, 0x6e, 0x73, 0x66, 0x65, 0x72, 0x12, 0x7b, 0x0a, 0x0a, 0x53, 0x75,
	0x62, 0x6d, 0x69, 0x74, 0x42, 0x75, 0x72, 0x6e, 0x12, 0x28, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e,
	0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31,
	0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x42, 0x75, 0x72, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x25, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69,
	0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1c, 0x82, 0xd3, 0xe4, 0x93, 0x02,
	0x16, 0x3a, 0x01, 0x2a, 0x22, 0x11, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x61, 0x6e,
	0x64, 0x73, 0x2f, 0x62, 0x75, 0x72, 0x6e, 0x12, 0x7b, 0x0a, 0x0a, 0x53, 0x75, 0x62, 0x6d, 0x69,
	0x74, 0x53, 0x77, 0x61, 0x70, 0x12, 0x28, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64,
	0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75,
	0x62, 0x6d, 0x69, 0x74, 0x53, 0x77, 0x61, 0x70, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x25, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e,
	0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1c, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x16, 0x3a, 0x01,
	0x2a, 0x22, 0x11, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64, 0x73, 0x2f,
	0x73, 0x77, 0x61, 0x70, 0x12, 0x7e, 0x0a, 0x0b, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x43, 0x6c,
	0x6f, 0x73, 0x65, 0x12, 0x29, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65,
	0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d,
	0x69, 0x74, 0x43, 0x6c, 0x6f, 0x73, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25,
	0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67,
	0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1d, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x17, 0x3a, 0x01, 0x2a,
	0x22, 0x12, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64, 0x73, 0x2f, 0x63,
	0x6c, 0x6f, 0x73, 0x65, 0x12, 0x87, 0x01, 0x0a, 0x0e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x43,
	0x6c, 0x6f, 0x73, 0x65, 0x41, 0x6c, 0x6c, 0x12, 0x2c, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c,
	0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x43, 0x6c, 0x6f, 0x73, 0x65, 0x41, 0x6c, 0x6c, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64,
	0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75,
	0x62, 0x6d, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x20, 0x82, 0xd3,
	0xe4, 0x93, 0x02, 0x1a, 0x3a, 0x01, 0x2a, 0x22, 0x15, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d,
	0x6d, 0x61, 0x6e, 0x64, 0x73, 0x2f, 0x63, 0x6c, 0x6f, 0x73, 0x65, 0x61, 0x6c, 0x6c, 0x12, 0x98,
	0x01, 0x0a, 0x16, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x65, 0x74, 0x41, 0x75, 0x74, 0x68,
	0x6f, 0x72, 0x69, 0x7a, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x34, 0x2e, 0x74, 0x6f, 0x6b, 0x65,
	0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x65, 0x74, 0x41, 0x75, 0x74, 0x68, 0x6f,
	0x72, 0x69, 0x7a, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x25, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x69, 0x6e,
	0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x21, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1b, 0x3a, 0x01,
	0x2a, 0x22, 0x16, 0x2f, 0x76, 0x31, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64, 0x73, 0x2f,
	0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x65, 0x42, 0x33, 0x5a, 0x31, 0x54, 0x6f, 0x6b,
	0x65, 0x6e, 0x4c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f,
	0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x69, 0x6e, 0x67, 0x65,
	0x73, 0x74, 0x2f, 0x76, 0x31, 0x3b, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x76, 0x31, 0x62, 0x06,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_tokenledger_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_tokenledger_ingest_v1_ingest_proto_rawDescData = file_tokenledger_ingest_v1_ingest_proto_rawDesc
)

func file_tokenledger_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_tokenledger_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_tokenledger_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(file_tokenledger_ingest_v1_ingest_proto_rawDescData)
	})
	return file_tokenledger_ingest_v1_ingest_proto_rawDescData
}

var file_tokenledger_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_tokenledger_ingest_v1_ingest_proto_goTypes = []any{
	(*SubmitTransferRequest)(nil),         // 0: tokenledger.ingest.v1.SubmitTransferRequest
	(*SubmitBurnRequest)(nil),             // 1: tokenledger.ingest.v1.SubmitBurnRequest
	(*SubmitSwapRequest)(nil),             // 2: tokenledger.ingest.v1.SubmitSwapRequest
	(*SubmitCloseRequest)(nil),            // 3: tokenledger.ingest.v1.SubmitCloseRequest
	(*SubmitCloseAllRequest)(nil),         // 4: tokenledger.ingest.v1.SubmitCloseAllRequest
	(*SubmitSetAuthorizationRequest)(nil), // 5: tokenledger.ingest.v1.SubmitSetAuthorizationRequest
	(*SubmitResponse)(nil),                // 6: tokenledger.ingest.v1.SubmitResponse
}
var file_tokenledger_ingest_v1_ingest_proto_depIdxs = []int32{
	0, // 0: tokenledger.ingest.v1.IngestService.SubmitTransfer:input_type -> tokenledger.ingest.v1.SubmitTransferRequest
	1, // 1: tokenledger.ingest.v1.IngestService.SubmitBurn:input_type -> tokenledger.ingest.v1.SubmitBurnRequest
	2, // 2: tokenledger.ingest.v1.IngestService.SubmitSwap:input_type -> tokenledger.ingest.v1.SubmitSwapRequest
	3, // 3: tokenledger.ingest.v1.IngestService.SubmitClose:input_type -> tokenledger.ingest.v1.SubmitCloseRequest
	4, // 4: tokenledger.ingest.v1.IngestService.SubmitCloseAll:input_type -> tokenledger.ingest.v1.SubmitCloseAllRequest
	5, // 5: tokenledger.ingest.v1.IngestService.SubmitSetAuthorization:input_type -> tokenledger.ingest.v1.SubmitSetAuthorizationRequest
	6, // 6: tokenledger.ingest.v1.IngestService.SubmitTransfer:output_type -> tokenledger.ingest.v1.SubmitResponse
	6, // 7: tokenledger.ingest.v1.IngestService.SubmitBurn:output_type -> tokenledger.ingest.v1.SubmitResponse
	6, // 8: tokenledger.ingest.v1.IngestService.SubmitSwap:output_type -> tokenledger.ingest.v1.SubmitResponse
	6, // 9: tokenledger.ingest.v1.IngestService.SubmitClose:output_type -> tokenledger.ingest.v1.SubmitResponse
	6, // 10: tokenledger.ingest.v1.IngestService.SubmitCloseAll:output_type -> tokenledger.ingest.v1.SubmitResponse
	6, // 11: tokenledger.ingest.v1.IngestService.SubmitSetAuthorization:output_type -> tokenledger.ingest.v1.SubmitResponse
	6, // [6:12] is the sub-list for method output_type
	0, // [0:6] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_tokenledger_ingest_v1_ingest_proto_init() }
func file_tokenledger_ingest_v1_ingest_proto_init() {
	if File_tokenledger_ingest_v1_ingest_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_tokenledger_ingest_v1_ingest_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_tokenledger_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_tokenledger_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_tokenledger_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_tokenledger_ingest_v1_ingest_proto = out.File
	file_tokenledger_ingest_v1_ingest_proto_rawDesc = nil
	file_tokenledger_ingest_v1_ingest_proto_goTypes = nil
	file_tokenledger_ingest_v1_ingest_proto_depIdxs = nil
}
