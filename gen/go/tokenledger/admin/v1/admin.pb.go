// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.1
// 	protoc        (unknown)
// source: tokenledger/admin/v1/admin.proto

package adminv1

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

type TakeSnapshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TakeSnapshotRequest) Reset() {
	*x = TakeSnapshotRequest{}
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TakeSnapshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeSnapshotRequest) ProtoMessage() {}

func (x *TakeSnapshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeSnapshotRequest.ProtoReflect.Descriptor instead.
func (*TakeSnapshotRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_admin_v1_admin_proto_rawDescGZIP(), []int{0}
}

type TakeSnapshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sequence      int64                  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	SizeBytes     int64                  `protobuf:"varint,2,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TakeSnapshotResponse) Reset() {
	*x = TakeSnapshotResponse{}
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TakeSnapshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeSnapshotResponse) ProtoMessage() {}

func (x *TakeSnapshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeSnapshotResponse.ProtoReflect.Descriptor instead.
func (*TakeSnapshotResponse) Descriptor() ([]byte, []int) {
	return file_tokenledger_admin_v1_admin_proto_rawDescGZIP(), []int{1}
}

func (x *TakeSnapshotResponse) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *TakeSnapshotResponse) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

type RebuildProjectionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RebuildProjectionsRequest) Reset() {
	*x = RebuildProjectionsRequest{}
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RebuildProjectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RebuildProjectionsRequest) ProtoMessage() {}

func (x *RebuildProjectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RebuildProjectionsRequest.ProtoReflect.Descriptor instead.
func (*RebuildProjectionsRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_admin_v1_admin_proto_rawDescGZIP(), []int{2}
}

type RebuildProjectionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Started       bool                   `protobuf:"varint,1,opt,name=started,proto3" json:"started,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RebuildProjectionsResponse) Reset() {
	*x = RebuildProjectionsResponse{}
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RebuildProjectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RebuildProjectionsResponse) ProtoMessage() {}

func (x *RebuildProjectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RebuildProjectionsResponse.ProtoReflect.Descriptor instead.
func (*RebuildProjectionsResponse) Descriptor() ([]byte, []int) {
	return file_tokenledger_admin_v1_admin_proto_rawDescGZIP(), []int{3}
}

func (x *RebuildProjectionsResponse) GetStarted() bool {
	if x != nil {
		return x.Started
	}
	return false
}

type GetCommandLogInfoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCommandLogInfoRequest) Reset() {
	*x = GetCommandLogInfoRequest{}
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCommandLogInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCommandLogInfoRequest) ProtoMessage() {}

func (x *GetCommandLogInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCommandLogInfoRequest.ProtoReflect.Descriptor instead.
func (*GetCommandLogInfoRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_admin_v1_admin_proto_rawDescGZIP(), []int{4}
}

type GetCommandLogInfoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LastSequence  int64                  `protobuf:"varint,1,opt,name=last_sequence,json=lastSequence,proto3" json:"last_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCommandLogInfoResponse) Reset() {
	*x = GetCommandLogInfoResponse{}
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCommandLogInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCommandLogInfoResponse) ProtoMessage() {}

func (x *GetCommandLogInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCommandLogInfoResponse.ProtoReflect.Descriptor instead.
func (*GetCommandLogInfoResponse) Descriptor() ([]byte, []int) {
	return file_tokenledger_admin_v1_admin_proto_rawDescGZIP(), []int{5}
}

func (x *GetCommandLogInfoResponse) GetLastSequence() int64 {
	if x != nil {
		return x.LastSequence
	}
	return 0
}

type VerifyIntegrityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyIntegrityRequest) Reset() {
	*x = VerifyIntegrityRequest{}
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyIntegrityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityRequest) ProtoMessage() {}

func (x *VerifyIntegrityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityRequest.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityRequest) Descriptor() ([]byte, []int) {
	return file_tokenledger_admin_v1_admin_proto_rawDescGZIP(), []int{6}
}

type VerifyIntegrityResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Passed                bool                   `protobuf:"varint,1,opt,name=passed,proto3" json:"passed,omitempty"`
	FirstMismatchSequence int64                  `protobuf:"varint,2,opt,name=first_mismatch_sequence,json=firstMismatchSequence,proto3" json:"first_mismatch_sequence,omitempty"`
	ErrorDetail           string                 `protobuf:"bytes,3,opt,name=error_detail,json=errorDetail,proto3" json:"error_detail,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *VerifyIntegrityResponse) Reset() {
	*x = VerifyIntegrityResponse{}
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyIntegrityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyIntegrityResponse) ProtoMessage() {}

func (x *VerifyIntegrityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tokenledger_admin_v1_admin_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyIntegrityResponse.ProtoReflect.Descriptor instead.
func (*VerifyIntegrityResponse) Descriptor() ([]byte, []int) {
	return file_tokenledger_admin_v1_admin_proto_rawDescGZIP(), []int{7}
}

func (x *VerifyIntegrityResponse) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *VerifyIntegrityResponse) GetFirstMismatchSequence() int64 {
	if x != nil {
		return x.FirstMismatchSequence
	}
	return 0
}

func (x *VerifyIntegrityResponse) GetErrorDetail() string {
	if x != nil {
		return x.ErrorDetail
	}
	return ""
}

var File_tokenledger_admin_v1_admin_proto protoreflect.FileDescriptor

var file_tokenledger_admin_v1_admin_proto_rawDesc = []byte{
	0x0a, 0x20, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x61, 0x64,
	0x6d, 0x69, 0x6e, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x14, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e,
	0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65,
	0x2f, 0x61, 0x70, 0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x15, 0x0a, 0x13, 0x54, 0x61, 0x6b, 0x65, 0x53, 0x6e,
	0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x51, 0x0a,
	0x14, 0x54, 0x61, 0x6b, 0x65, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63,
	0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x69, 0x7a, 0x65, 0x5f, 0x62, 0x79, 0x74, 0x65, 0x73, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x73, 0x69, 0x7a, 0x65, 0x42, 0x79, 0x74, 0x65, 0x73,
	0x22, 0x1b, 0x0a, 0x19, 0x52, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a, 0x65,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x36, 0x0a,
	0x1a, 0x52, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69,
	0x6f, 0x6e, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73,
	0x74, 0x61, 0x72, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x74,
	0x61, 0x72, 0x74, 0x65, 0x64, 0x22, 0x1a, 0x0a, 0x18, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6d, 0x6d,
	0x61, 0x6e, 0x64, 0x4c, 0x6f, 0x67, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x22, 0x40, 0x0a, 0x19, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64, 0x4c,
	0x6f, 0x67, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23,
	0x0a, 0x0d, 0x6c, 0x61, 0x73, 0x74, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x6c, 0x61, 0x73, 0x74, 0x53, 0x65, 0x71, 0x75, 0x65,
	0x6e, 0x63, 0x65, 0x22, 0x18, 0x0a, 0x16, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74,
	0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x8c, 0x01,
	0x0a, 0x17, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74,
	0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x70, 0x61, 0x73,
	0x73, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x70, 0x61, 0x73, 0x73, 0x65,
	0x64, 0x12, 0x36, 0x0a, 0x17, 0x66, 0x69, 0x72, 0x73, 0x74, 0x5f, 0x6d, 0x69, 0x73, 0x6d, 0x61,
	0x74, 0x63, 0x68, 0x5f, 0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x15, 0x66, 0x69, 0x72, 0x73, 0x74, 0x4d, 0x69, 0x73, 0x6d, 0x61, 0x74, 0x63,
	0x68, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x21, 0x0a, 0x0c, 0x65, 0x72, 0x72,
	0x6f, 0x72, 0x5f, 0x64, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0b, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x44, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x32, 0xe7, 0x04, 0x0a,
	0x0c, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x84, 0x01,
	0x0a, 0x0c, 0x54, 0x61, 0x6b, 0x65, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x12, 0x29,
	0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x61, 0x6b, 0x65, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68,
	0x6f, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2a, 0x2e, 0x74, 0x6f, 0x6b, 0x65,
	0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31,
	0x2e, 0x54, 0x61, 0x6b, 0x65, 0x53, 0x6e, 0x61, 0x70, 0x73, 0x68, 0x6f, 0x74, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x1d, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x17, 0x3a, 0x01, 0x2a,
	0x22, 0x12, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x73, 0x6e, 0x61, 0x70,
	0x73, 0x68, 0x6f, 0x74, 0x12, 0xa1, 0x01, 0x0a, 0x12, 0x52, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64,
	0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x2f, 0x2e, 0x74, 0x6f,
	0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e,
	0x76, 0x31, 0x2e, 0x52, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63,
	0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x30, 0x2e, 0x74,
	0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e,
	0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x50, 0x72, 0x6f, 0x6a, 0x65,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x28,
	0x82, 0xd3, 0xe4, 0x93, 0x02, 0x22, 0x3a, 0x01, 0x2a, 0x22, 0x1d, 0x2f, 0x76, 0x31, 0x2f, 0x61,
	0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x72, 0x65, 0x62, 0x75, 0x69, 0x6c, 0x64, 0x2d, 0x70, 0x72, 0x6f,
	0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x93, 0x01, 0x0a, 0x11, 0x47, 0x65, 0x74,
	0x43, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64, 0x4c, 0x6f, 0x67, 0x49, 0x6e, 0x66, 0x6f, 0x12, 0x2e,
	0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64,
	0x4c, 0x6f, 0x67, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2f,
	0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64,
	0x4c, 0x6f, 0x67, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22,
	0x1d, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x17, 0x12, 0x15, 0x2f, 0x76, 0x31, 0x2f, 0x61, 0x64, 0x6d,
	0x69, 0x6e, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x61, 0x6e, 0x64, 0x2d, 0x6c, 0x6f, 0x67, 0x12, 0x95,
	0x01, 0x0a, 0x0f, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69,
	0x74, 0x79, 0x12, 0x2c, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72,
	0x2e, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79,
	0x49, 0x6e, 0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x2d, 0x2e, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x61,
	0x64, 0x6d, 0x69, 0x6e, 0x2e, 0x76, 0x31, 0x2e, 0x56, 0x65, 0x72, 0x69, 0x66, 0x79, 0x49, 0x6e,
	0x74, 0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22,
	0x25, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1f, 0x3a, 0x01, 0x2a, 0x22, 0x1a, 0x2f, 0x76, 0x31, 0x2f,
	0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x76, 0x65, 0x72, 0x69, 0x66, 0x79, 0x2d, 0x69, 0x6e, 0x74,
	0x65, 0x67, 0x72, 0x69, 0x74, 0x79, 0x42, 0x31, 0x5a, 0x2f, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x4c,
	0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x74, 0x6f, 0x6b,
	0x65, 0x6e, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x2f, 0x76,
	0x31, 0x3b, 0x61, 0x64, 0x6d, 0x69, 0x6e, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x33,
}

var (
	file_tokenledger_admin_v1_admin_proto_rawDescOnce sync.Once
	file_tokenledger_admin_v1_admin_proto_rawDescData = file_tokenledger_admin_v1_admin_proto_rawDesc
)

func file_tokenledger_admin_v1_admin_proto_rawDescGZIP() []byte {
	file_tokenledger_admin_v1_admin_proto_rawDescOnce.Do(func() {
		file_tokenledger_admin_v1_admin_proto_rawDescData = protoimpl.X.CompressGZIP(file_tokenledger_admin_v1_admin_proto_rawDescData)
	})
	return file_tokenledger_admin_v1_admin_proto_rawDescData
}

var file_tokenledger_admin_v1_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_tokenledger_admin_v1_admin_proto_goTypes = []any{
	(*TakeSnapshotRequest)(nil),        // 0: tokenledger.admin.v1.TakeSnapshotRequest
	(*TakeSnapshotResponse)(nil),       // 1: tokenledger.admin.v1.TakeSnapshotResponse
	(*RebuildProjectionsRequest)(nil),  // 2: tokenledger.admin.v1.RebuildProjectionsRequest
	(*RebuildProjectionsResponse)(nil), // 3: tokenledger.admin.v1.RebuildProjectionsResponse
	(*GetCommandLogInfoRequest)(nil),   // 4: tokenledger.admin.v1.GetCommandLogInfoRequest
	(*GetCommandLogInfoResponse)(nil),  // 5: tokenledger.admin.v1.GetCommandLogInfoResponse
	(*VerifyIntegrityRequest)(nil),     // 6: tokenledger.admin.v1.VerifyIntegrityRequest
	(*VerifyIntegrityResponse)(nil),    // 7: tokenledger.admin.v1.VerifyIntegrityResponse
}
var file_tokenledger_admin_v1_admin_proto_depIdxs = []int32{
	0, // 0: tokenledger.admin.v1.AdminService.TakeSnapshot:input_type -> tokenledger.admin.v1.TakeSnapshotRequest
	2, // 1: tokenledger.admin.v1.AdminService.RebuildProjections:input_type -> tokenledger.admin.v1.RebuildProjectionsRequest
	4, // 2: tokenledger.admin.v1.AdminService.GetCommandLogInfo:input_type -> tokenledger.admin.v1.GetCommandLogInfoRequest
	6, // 3: tokenledger.admin.v1.AdminService.VerifyIntegrity:input_type -> tokenledger.admin.v1.VerifyIntegrityRequest
	1, // 4: tokenledger.admin.v1.AdminService.TakeSnapshot:output_type -> tokenledger.admin.v1.TakeSnapshotResponse
	3, // 5: tokenledger.admin.v1.AdminService.RebuildProjections:output_type -> tokenledger.admin.v1.RebuildProjectionsResponse
	5, // 6: tokenledger.admin.v1.AdminService.GetCommandLogInfo:output_type -> tokenledger.admin.v1.GetCommandLogInfoResponse
	7, // 7: tokenledger.admin.v1.AdminService.VerifyIntegrity:output_type -> tokenledger.admin.v1.VerifyIntegrityResponse
	4, // [4:8] is the sub-list for method output_type
	0, // [0:4] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_tokenledger_admin_v1_admin_proto_init() }
func file_tokenledger_admin_v1_admin_proto_init() {
	if File_tokenledger_admin_v1_admin_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_tokenledger_admin_v1_admin_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_tokenledger_admin_v1_admin_proto_goTypes,
		DependencyIndexes: file_tokenledger_admin_v1_admin_proto_depIdxs,
		MessageInfos:      file_tokenledger_admin_v1_admin_proto_msgTypes,
	}.Build()
	File_tokenledger_admin_v1_admin_proto = out.File
	file_tokenledger_admin_v1_admin_proto_rawDesc = nil
	file_tokenledger_admin_v1_admin_proto_goTypes = nil
	file_tokenledger_admin_v1_admin_proto_depIdxs = nil
}
