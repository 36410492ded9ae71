// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: company/v1/company.proto

package companyv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SchedulingConfigRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SchedulingConfigRequest) Reset() {
	*x = SchedulingConfigRequest{}
	mi := &file_company_v1_company_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SchedulingConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SchedulingConfigRequest) ProtoMessage() {}

func (x *SchedulingConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SchedulingConfigRequest.ProtoReflect.Descriptor instead.
func (*SchedulingConfigRequest) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{0}
}

func (x *SchedulingConfigRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type SchedulingConfigResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	CompanyId             string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Timezone              string                 `protobuf:"bytes,2,opt,name=timezone,proto3" json:"timezone,omitempty"`
	WorkingDays           []int32                `protobuf:"varint,3,rep,packed,name=working_days,json=workingDays,proto3" json:"working_days,omitempty"`
	DayStartMinute        int32                  `protobuf:"varint,4,opt,name=day_start_minute,json=dayStartMinute,proto3" json:"day_start_minute,omitempty"`
	DayEndMinute          int32                  `protobuf:"varint,5,opt,name=day_end_minute,json=dayEndMinute,proto3" json:"day_end_minute,omitempty"`
	SlotStepMinutes       int32                  `protobuf:"varint,6,opt,name=slot_step_minutes,json=slotStepMinutes,proto3" json:"slot_step_minutes,omitempty"`
	BufferBeforeMinutes   int32                  `protobuf:"varint,7,opt,name=buffer_before_minutes,json=bufferBeforeMinutes,proto3" json:"buffer_before_minutes,omitempty"`
	BufferAfterMinutes    int32                  `protobuf:"varint,8,opt,name=buffer_after_minutes,json=bufferAfterMinutes,proto3" json:"buffer_after_minutes,omitempty"`
	MinAdvanceHours       int32                  `protobuf:"varint,9,opt,name=min_advance_hours,json=minAdvanceHours,proto3" json:"min_advance_hours,omitempty"`
	MaxAdvanceDays        int32                  `protobuf:"varint,10,opt,name=max_advance_days,json=maxAdvanceDays,proto3" json:"max_advance_days,omitempty"`
	CapacityHoursPerDay   int32                  `protobuf:"varint,11,opt,name=capacity_hours_per_day,json=capacityHoursPerDay,proto3" json:"capacity_hours_per_day,omitempty"`
	SelfSchedulingEnabled bool                   `protobuf:"varint,12,opt,name=self_scheduling_enabled,json=selfSchedulingEnabled,proto3" json:"self_scheduling_enabled,omitempty"`
	AutoApproveSelections bool                   `protobuf:"varint,13,opt,name=auto_approve_selections,json=autoApproveSelections,proto3" json:"auto_approve_selections,omitempty"`
	DepositCents          int64                  `protobuf:"varint,14,opt,name=deposit_cents,json=depositCents,proto3" json:"deposit_cents,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *SchedulingConfigResponse) Reset() {
	*x = SchedulingConfigResponse{}
	mi := &file_company_v1_company_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SchedulingConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SchedulingConfigResponse) ProtoMessage() {}

func (x *SchedulingConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SchedulingConfigResponse.ProtoReflect.Descriptor instead.
func (*SchedulingConfigResponse) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{1}
}

func (x *SchedulingConfigResponse) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *SchedulingConfigResponse) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *SchedulingConfigResponse) GetWorkingDays() []int32 {
	if x != nil {
		return x.WorkingDays
	}
	return nil
}

func (x *SchedulingConfigResponse) GetDayStartMinute() int32 {
	if x != nil {
		return x.DayStartMinute
	}
	return 0
}

func (x *SchedulingConfigResponse) GetDayEndMinute() int32 {
	if x != nil {
		return x.DayEndMinute
	}
	return 0
}

func (x *SchedulingConfigResponse) GetSlotStepMinutes() int32 {
	if x != nil {
		return x.SlotStepMinutes
	}
	return 0
}

func (x *SchedulingConfigResponse) GetBufferBeforeMinutes() int32 {
	if x != nil {
		return x.BufferBeforeMinutes
	}
	return 0
}

func (x *SchedulingConfigResponse) GetBufferAfterMinutes() int32 {
	if x != nil {
		return x.BufferAfterMinutes
	}
	return 0
}

func (x *SchedulingConfigResponse) GetMinAdvanceHours() int32 {
	if x != nil {
		return x.MinAdvanceHours
	}
	return 0
}

func (x *SchedulingConfigResponse) GetMaxAdvanceDays() int32 {
	if x != nil {
		return x.MaxAdvanceDays
	}
	return 0
}

func (x *SchedulingConfigResponse) GetCapacityHoursPerDay() int32 {
	if x != nil {
		return x.CapacityHoursPerDay
	}
	return 0
}

func (x *SchedulingConfigResponse) GetSelfSchedulingEnabled() bool {
	if x != nil {
		return x.SelfSchedulingEnabled
	}
	return false
}

func (x *SchedulingConfigResponse) GetAutoApproveSelections() bool {
	if x != nil {
		return x.AutoApproveSelections
	}
	return false
}

func (x *SchedulingConfigResponse) GetDepositCents() int64 {
	if x != nil {
		return x.DepositCents
	}
	return 0
}

type ListTimeOffRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	RangeStart    *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=range_start,json=rangeStart,proto3" json:"range_start,omitempty"`
	RangeEnd      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=range_end,json=rangeEnd,proto3" json:"range_end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTimeOffRequest) Reset() {
	*x = ListTimeOffRequest{}
	mi := &file_company_v1_company_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTimeOffRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTimeOffRequest) ProtoMessage() {}

func (x *ListTimeOffRequest) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTimeOffRequest.ProtoReflect.Descriptor instead.
func (*ListTimeOffRequest) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{2}
}

func (x *ListTimeOffRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ListTimeOffRequest) GetRangeStart() *timestamppb.Timestamp {
	if x != nil {
		return x.RangeStart
	}
	return nil
}

func (x *ListTimeOffRequest) GetRangeEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.RangeEnd
	}
	return nil
}

type TimeOffEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EntryId       string                 `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	EmployeeId    string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	StartTime     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime       *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimeOffEntry) Reset() {
	*x = TimeOffEntry{}
	mi := &file_company_v1_company_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimeOffEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimeOffEntry) ProtoMessage() {}

func (x *TimeOffEntry) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimeOffEntry.ProtoReflect.Descriptor instead.
func (*TimeOffEntry) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{3}
}

func (x *TimeOffEntry) GetEntryId() string {
	if x != nil {
		return x.EntryId
	}
	return ""
}

func (x *TimeOffEntry) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *TimeOffEntry) GetStartTime() *timestamppb.Timestamp {
	if x != nil {
		return x.StartTime
	}
	return nil
}

func (x *TimeOffEntry) GetEndTime() *timestamppb.Timestamp {
	if x != nil {
		return x.EndTime
	}
	return nil
}

func (x *TimeOffEntry) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListTimeOffResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*TimeOffEntry        `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTimeOffResponse) Reset() {
	*x = ListTimeOffResponse{}
	mi := &file_company_v1_company_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTimeOffResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTimeOffResponse) ProtoMessage() {}

func (x *ListTimeOffResponse) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTimeOffResponse.ProtoReflect.Descriptor instead.
func (*ListTimeOffResponse) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{4}
}

func (x *ListTimeOffResponse) GetEntries() []*TimeOffEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

var File_company_v1_company_proto protoreflect.FileDescriptor

const file_company_v1_company_proto_rawDesc = "" +
	"\n" +
	"\x18company/v1/company.proto\x12\n" +
	"company.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"8\n" +
	"\x17SchedulingConfigRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\"\xfa\x04\n" +
	"\x18SchedulingConfigResponse\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1a\n" +
	"\btimezone\x18\x02 \x01(\tR\btimezone\x12!\n" +
	"\fworking_days\x18\x03 \x03(\x05R\vworkingDays\x12(\n" +
	"\x10day_start_minute\x18\x04 \x01(\x05R\x0edayStartMinute\x12$\n" +
	"\x0eday_end_minute\x18\x05 \x01(\x05R\fdayEndMinute\x12*\n" +
	"\x11slot_step_minutes\x18\x06 \x01(\x05R\x0fslotStepMinutes\x122\n" +
	"\x15buffer_before_minutes\x18\a \x01(\x05R\x13bufferBeforeMinutes\x120\n" +
	"\x14buffer_after_minutes\x18\b \x01(\x05R\x12bufferAfterMinutes\x12*\n" +
	"\x11min_advance_hours\x18\t \x01(\x05R\x0fminAdvanceHours\x12(\n" +
	"\x10max_advance_days\x18\n" +
	" \x01(\x05R\x0emaxAdvanceDays\x123\n" +
	"\x16capacity_hours_per_day\x18\v \x01(\x05R\x13capacityHoursPerDay\x126\n" +
	"\x17self_scheduling_enabled\x18\f \x01(\bR\x15selfSchedulingEnabled\x126\n" +
	"\x17auto_approve_selections\x18\r \x01(\bR\x15autoApproveSelections\x12#\n" +
	"\rdeposit_cents\x18\x0e \x01(\x03R\fdepositCents\"\xa9\x01\n" +
	"\x12ListTimeOffRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12;\n" +
	"\vrange_start\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"rangeStart\x127\n" +
	"\trange_end\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\brangeEnd\"\xd4\x01\n" +
	"\fTimeOffEntry\x12\x19\n" +
	"\bentry_id\x18\x01 \x01(\tR\aentryId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x129\n" +
	"\n" +
	"start_time\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tstartTime\x125\n" +
	"\bend_time\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\aendTime\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\"I\n" +
	"\x13ListTimeOffResponse\x122\n" +
	"\aentries\x18\x01 \x03(\v2\x18.company.v1.TimeOffEntryR\aentries2\xc2\x01\n" +
	"\x0eCompanyService\x12`\n" +
	"\x13GetSchedulingConfig\x12#.company.v1.SchedulingConfigRequest\x1a$.company.v1.SchedulingConfigResponse\x12N\n" +
	"\vListTimeOff\x12\x1e.company.v1.ListTimeOffRequest\x1a\x1f.company.v1.ListTimeOffResponseBBZ@github.com/trademate-pro/backend/protos/gen/company/v1;companyv1b\x06proto3"

var (
	file_company_v1_company_proto_rawDescOnce sync.Once
	file_company_v1_company_proto_rawDescData []byte
)

func file_company_v1_company_proto_rawDescGZIP() []byte {
	file_company_v1_company_proto_rawDescOnce.Do(func() {
		file_company_v1_company_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_company_v1_company_proto_rawDesc), len(file_company_v1_company_proto_rawDesc)))
	})
	return file_company_v1_company_proto_rawDescData
}

var file_company_v1_company_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_company_v1_company_proto_goTypes = []any{
	(*SchedulingConfigRequest)(nil),  // 0: company.v1.SchedulingConfigRequest
	(*SchedulingConfigResponse)(nil), // 1: company.v1.SchedulingConfigResponse
	(*ListTimeOffRequest)(nil),       // 2: company.v1.ListTimeOffRequest
	(*TimeOffEntry)(nil),             // 3: company.v1.TimeOffEntry
	(*ListTimeOffResponse)(nil),      // 4: company.v1.ListTimeOffResponse
	(*timestamppb.Timestamp)(nil),    // 5: google.protobuf.Timestamp
}
var file_company_v1_company_proto_depIdxs = []int32{
	5, // 0: company.v1.ListTimeOffRequest.range_start:type_name -> google.protobuf.Timestamp
	5, // 1: company.v1.ListTimeOffRequest.range_end:type_name -> google.protobuf.Timestamp
	5, // 2: company.v1.TimeOffEntry.start_time:type_name -> google.protobuf.Timestamp
	5, // 3: company.v1.TimeOffEntry.end_time:type_name -> google.protobuf.Timestamp
	3, // 4: company.v1.ListTimeOffResponse.entries:type_name -> company.v1.TimeOffEntry
	0, // 5: company.v1.CompanyService.GetSchedulingConfig:input_type -> company.v1.SchedulingConfigRequest
	2, // 6: company.v1.CompanyService.ListTimeOff:input_type -> company.v1.ListTimeOffRequest
	1, // 7: company.v1.CompanyService.GetSchedulingConfig:output_type -> company.v1.SchedulingConfigResponse
	4, // 8: company.v1.CompanyService.ListTimeOff:output_type -> company.v1.ListTimeOffResponse
	7, // [7:9] is the sub-list for method output_type
	5, // [5:7] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_company_v1_company_proto_init() }
func file_company_v1_company_proto_init() {
	if File_company_v1_company_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_company_v1_company_proto_rawDesc), len(file_company_v1_company_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_company_v1_company_proto_goTypes,
		DependencyIndexes: file_company_v1_company_proto_depIdxs,
		MessageInfos:      file_company_v1_company_proto_msgTypes,
	}.Build()
	File_company_v1_company_proto = out.File
	file_company_v1_company_proto_goTypes = nil
	file_company_v1_company_proto_depIdxs = nil
}
