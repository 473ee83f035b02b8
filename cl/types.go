package cl

import "strings"

// Opaque native handles. Their values are meaningful only to the driver; the
// binding stores and forwards them without interpretation. They are declared
// as uintptr so that the package compiles without cgo and so that driver
// handles stay invisible to the Go garbage collector.
type (
	PlatformID uintptr
	DeviceID   uintptr
	ContextID  uintptr
	QueueID    uintptr
	MemID      uintptr
	ProgramID  uintptr
	KernelID   uintptr
	EventID    uintptr
	SamplerID  uintptr
)

// DeviceType is the cl_device_type bitfield.
type DeviceType uint64

const (
	DeviceTypeDefault     DeviceType = 1 << 0
	DeviceTypeCPU         DeviceType = 1 << 1
	DeviceTypeGPU         DeviceType = 1 << 2
	DeviceTypeAccelerator DeviceType = 1 << 3
	DeviceTypeCustom      DeviceType = 1 << 4
	DeviceTypeAll         DeviceType = 0xFFFFFFFF
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeDefault:
		return "default"
	case DeviceTypeCPU:
		return "cpu"
	case DeviceTypeGPU:
		return "gpu"
	case DeviceTypeAccelerator:
		return "accelerator"
	case DeviceTypeCustom:
		return "custom"
	case DeviceTypeAll:
		return "all"
	}
	return "unknown"
}

// ParseDeviceType maps the textual names used in configuration files onto the
// native bitfield. Unknown names select all device types.
func ParseDeviceType(s string) DeviceType {
	switch strings.ToLower(s) {
	case "cpu":
		return DeviceTypeCPU
	case "gpu":
		return DeviceTypeGPU
	case "accelerator":
		return DeviceTypeAccelerator
	case "default":
		return DeviceTypeDefault
	case "custom":
		return DeviceTypeCustom
	}
	return DeviceTypeAll
}

// PlatformInfo names a cl_platform_info query.
type PlatformInfo uint32

const (
	PlatformProfile    PlatformInfo = 0x0900
	PlatformVersion    PlatformInfo = 0x0901
	PlatformName       PlatformInfo = 0x0902
	PlatformVendor     PlatformInfo = 0x0903
	PlatformExtensions PlatformInfo = 0x0904
	// Requires OpenCL 2.1.
	PlatformHostTimerResolution PlatformInfo = 0x0905
	// Require OpenCL 3.0.
	PlatformNumericVersion        PlatformInfo = 0x0906
	PlatformExtensionsWithVersion PlatformInfo = 0x0907
)

// DeviceInfo names a cl_device_info query. Only the parameters this binding
// exposes typed accessors for are spelled out; any cl_device_info value can
// be passed to Device.Info.
type DeviceInfo uint32

const (
	DeviceTypeInfo            DeviceInfo = 0x1000
	DeviceVendorID            DeviceInfo = 0x1001
	DeviceMaxComputeUnits     DeviceInfo = 0x1002
	DeviceMaxWorkItemDims     DeviceInfo = 0x1003
	DeviceMaxWorkGroupSize    DeviceInfo = 0x1004
	DeviceMaxWorkItemSizes    DeviceInfo = 0x1005
	DeviceMaxClockFrequency   DeviceInfo = 0x100C
	DeviceAddressBits         DeviceInfo = 0x100D
	DeviceMaxMemAllocSize     DeviceInfo = 0x1010
	DeviceGlobalMemSize       DeviceInfo = 0x101F
	DeviceLocalMemSize        DeviceInfo = 0x1023
	DeviceAvailable           DeviceInfo = 0x1027
	DeviceCompilerAvailable   DeviceInfo = 0x1028
	DeviceNameInfo            DeviceInfo = 0x102B
	DeviceVendorInfo          DeviceInfo = 0x102C
	DriverVersionInfo         DeviceInfo = 0x102D
	DeviceProfileInfo         DeviceInfo = 0x102E
	DeviceVersionInfo         DeviceInfo = 0x102F
	DeviceExtensionsInfo      DeviceInfo = 0x1030
	DevicePlatformInfo        DeviceInfo = 0x1031
	DeviceOpenCLCVersion      DeviceInfo = 0x103D
	DevicePartitionMaxSubDevs DeviceInfo = 0x1043
	DeviceReferenceCountInfo  DeviceInfo = 0x1047
)

// ContextInfo names a cl_context_info query.
type ContextInfo uint32

const (
	ContextReferenceCount ContextInfo = 0x1080
	ContextDevices        ContextInfo = 0x1081
	ContextPropertiesInfo ContextInfo = 0x1082
	ContextNumDevices     ContextInfo = 0x1083
)

// ContextProperty is an entry of the zero-terminated cl_context_properties
// list passed to context creation.
type ContextProperty uintptr

const ContextPlatform ContextProperty = 0x1084

// QueueInfo names a cl_command_queue_info query.
type QueueInfo uint32

const (
	QueueContext        QueueInfo = 0x1090
	QueueDevice         QueueInfo = 0x1091
	QueueReferenceCount QueueInfo = 0x1092
	QueuePropertiesInfo QueueInfo = 0x1093
	// Requires OpenCL 2.0.
	QueueSize QueueInfo = 0x1094
	// Requires OpenCL 2.1.
	QueueDeviceDefault QueueInfo = 0x1095
)

// QueueProperties is the cl_command_queue_properties bitfield.
type QueueProperties uint64

const (
	QueueOutOfOrderExec QueueProperties = 1 << 0
	QueueProfiling      QueueProperties = 1 << 1
	// Require OpenCL 2.0.
	QueueOnDevice        QueueProperties = 1 << 2
	QueueOnDeviceDefault QueueProperties = 1 << 3
)

// MemFlags is the cl_mem_flags bitfield.
type MemFlags uint64

const (
	MemReadWrite     MemFlags = 1 << 0
	MemWriteOnly     MemFlags = 1 << 1
	MemReadOnly      MemFlags = 1 << 2
	MemUseHostPtr    MemFlags = 1 << 3
	MemAllocHostPtr  MemFlags = 1 << 4
	MemCopyHostPtr   MemFlags = 1 << 5
	MemHostWriteOnly MemFlags = 1 << 7
	MemHostReadOnly  MemFlags = 1 << 8
	MemHostNoAccess  MemFlags = 1 << 9
	// Require OpenCL 2.0.
	MemSVMFineGrainBuffer MemFlags = 1 << 10
	MemSVMAtomics         MemFlags = 1 << 11
	MemKernelReadAndWrite MemFlags = 1 << 12
)

// MemObjectType is the cl_mem_object_type enumeration.
type MemObjectType uint32

const (
	MemObjectBuffer       MemObjectType = 0x10F0
	MemObjectImage2D      MemObjectType = 0x10F1
	MemObjectImage3D      MemObjectType = 0x10F2
	MemObjectImage2DArray MemObjectType = 0x10F3
	MemObjectImage1D      MemObjectType = 0x10F4
	MemObjectImage1DArray MemObjectType = 0x10F5
	MemObjectImage1DBuf   MemObjectType = 0x10F6
	MemObjectPipe         MemObjectType = 0x10F7
)

// MemInfo names a cl_mem_info query.
type MemInfo uint32

const (
	MemTypeInfo            MemInfo = 0x1100
	MemFlagsInfo           MemInfo = 0x1101
	MemSize                MemInfo = 0x1102
	MemHostPtrInfo         MemInfo = 0x1103
	MemMapCount            MemInfo = 0x1104
	MemReferenceCount      MemInfo = 0x1105
	MemContext             MemInfo = 0x1106
	MemAssociatedMemObject MemInfo = 0x1107
	MemOffset              MemInfo = 0x1108
	// Requires OpenCL 2.0.
	MemUsesSVMPointer MemInfo = 0x1109
)

// ImageInfo names a cl_image_info query.
type ImageInfo uint32

const (
	ImageFormatInfo  ImageInfo = 0x1110
	ImageElementSize ImageInfo = 0x1111
	ImageRowPitch    ImageInfo = 0x1112
	ImageSlicePitch  ImageInfo = 0x1113
	ImageWidth       ImageInfo = 0x1114
	ImageHeight      ImageInfo = 0x1115
	ImageDepth       ImageInfo = 0x1116
)

// ImageFormat mirrors cl_image_format.
type ImageFormat struct {
	ChannelOrder uint32
	ChannelType  uint32
}

// Channel orders.
const (
	ChannelOrderR    uint32 = 0x10B0
	ChannelOrderA    uint32 = 0x10B1
	ChannelOrderRG   uint32 = 0x10B2
	ChannelOrderRGB  uint32 = 0x10B4
	ChannelOrderRGBA uint32 = 0x10B5
	ChannelOrderBGRA uint32 = 0x10B6
)

// Channel types.
const (
	ChannelTypeUnormInt8    uint32 = 0x10D2
	ChannelTypeSignedInt8   uint32 = 0x10D5
	ChannelTypeUnsignedInt8 uint32 = 0x10DA
	ChannelTypeHalfFloat    uint32 = 0x10DD
	ChannelTypeFloat        uint32 = 0x10DE
)

// ImageDesc mirrors cl_image_desc, with the mem_object union member carried
// as a raw MemID.
type ImageDesc struct {
	Type         MemObjectType
	Width        uintptr
	Height       uintptr
	Depth        uintptr
	ArraySize    uintptr
	RowPitch     uintptr
	SlicePitch   uintptr
	NumMipLevels uint32
	NumSamples   uint32
	MemObject    MemID
}

// SamplerInfo names a cl_sampler_info query.
type SamplerInfo uint32

const (
	SamplerReferenceCount     SamplerInfo = 0x1150
	SamplerContext            SamplerInfo = 0x1151
	SamplerNormalizedCoords   SamplerInfo = 0x1152
	SamplerAddressingModeInfo SamplerInfo = 0x1153
	SamplerFilterModeInfo     SamplerInfo = 0x1154
)

// AddressingMode is the cl_addressing_mode enumeration.
type AddressingMode uint32

const (
	AddressNone           AddressingMode = 0x1130
	AddressClampToEdge    AddressingMode = 0x1131
	AddressClamp          AddressingMode = 0x1132
	AddressRepeat         AddressingMode = 0x1133
	AddressMirroredRepeat AddressingMode = 0x1134
)

// FilterMode is the cl_filter_mode enumeration.
type FilterMode uint32

const (
	FilterNearest FilterMode = 0x1140
	FilterLinear  FilterMode = 0x1141
)

// ProgramInfo names a cl_program_info query.
type ProgramInfo uint32

const (
	ProgramReferenceCount ProgramInfo = 0x1160
	ProgramContext        ProgramInfo = 0x1161
	ProgramNumDevices     ProgramInfo = 0x1162
	ProgramDevices        ProgramInfo = 0x1163
	ProgramSource         ProgramInfo = 0x1164
	ProgramBinarySizes    ProgramInfo = 0x1165
	ProgramBinaries       ProgramInfo = 0x1166
	ProgramNumKernels     ProgramInfo = 0x1167
	ProgramKernelNames    ProgramInfo = 0x1168
	// Requires OpenCL 2.1.
	ProgramIL ProgramInfo = 0x1169
)

// ProgramBuildInfo names a cl_program_build_info query.
type ProgramBuildInfo uint32

const (
	ProgramBuildStatusInfo ProgramBuildInfo = 0x1181
	ProgramBuildOptions    ProgramBuildInfo = 0x1182
	ProgramBuildLog        ProgramBuildInfo = 0x1183
	ProgramBinaryType      ProgramBuildInfo = 0x1184
)

// BuildStatus is the cl_build_status enumeration.
type BuildStatus int32

const (
	BuildSuccess    BuildStatus = 0
	BuildNone       BuildStatus = -1
	BuildError      BuildStatus = -2
	BuildInProgress BuildStatus = -3
)

// KernelInfo names a cl_kernel_info query.
type KernelInfo uint32

const (
	KernelFunctionName   KernelInfo = 0x1190
	KernelNumArgs        KernelInfo = 0x1191
	KernelReferenceCount KernelInfo = 0x1192
	KernelContext        KernelInfo = 0x1193
	KernelProgram        KernelInfo = 0x1194
	KernelAttributes     KernelInfo = 0x1195
)

// KernelArgInfo names a cl_kernel_arg_info query.
type KernelArgInfo uint32

const (
	KernelArgAddressQualifier KernelArgInfo = 0x1196
	KernelArgAccessQualifier  KernelArgInfo = 0x1197
	KernelArgTypeName         KernelArgInfo = 0x1198
	KernelArgTypeQualifier    KernelArgInfo = 0x1199
	KernelArgName             KernelArgInfo = 0x119A
)

// Kernel argument address qualifiers.
const (
	KernelArgAddressGlobal   uint32 = 0x119B
	KernelArgAddressLocal    uint32 = 0x119C
	KernelArgAddressConstant uint32 = 0x119D
	KernelArgAddressPrivate  uint32 = 0x119E
)

// Kernel argument access qualifiers.
const (
	KernelArgAccessReadOnly  uint32 = 0x11A0
	KernelArgAccessWriteOnly uint32 = 0x11A1
	KernelArgAccessReadWrite uint32 = 0x11A2
	KernelArgAccessNone      uint32 = 0x11A3
)

// Kernel argument type qualifier bits.
const (
	KernelArgTypeNone     uint64 = 0
	KernelArgTypeConst    uint64 = 1 << 0
	KernelArgTypeRestrict uint64 = 1 << 1
	KernelArgTypeVolatile uint64 = 1 << 2
	KernelArgTypePipe     uint64 = 1 << 3
)

// KernelWorkGroupInfo names a cl_kernel_work_group_info query.
type KernelWorkGroupInfo uint32

const (
	KernelWorkGroupSize        KernelWorkGroupInfo = 0x11B0
	KernelCompileWorkGroupSize KernelWorkGroupInfo = 0x11B1
	KernelLocalMemSize         KernelWorkGroupInfo = 0x11B2
	KernelPreferredWGSizeMult  KernelWorkGroupInfo = 0x11B3
	KernelPrivateMemSize       KernelWorkGroupInfo = 0x11B4
	KernelGlobalWorkSize       KernelWorkGroupInfo = 0x11B5
)

// EventInfo names a cl_event_info query.
type EventInfo uint32

const (
	EventCommandQueue    EventInfo = 0x11D0
	EventCommandType     EventInfo = 0x11D1
	EventReferenceCount  EventInfo = 0x11D2
	EventExecutionStatus EventInfo = 0x11D3
	EventContext         EventInfo = 0x11D4
)

// Command execution statuses reported by EventExecutionStatus queries and
// delivered to event callbacks.
const (
	Complete  int32 = 0
	Running   int32 = 1
	Submitted int32 = 2
	Queued    int32 = 3
)

// ProfilingInfo names a cl_profiling_info query. Values are device time
// counters in nanoseconds.
type ProfilingInfo uint32

const (
	ProfilingCommandQueued ProfilingInfo = 0x1280
	ProfilingCommandSubmit ProfilingInfo = 0x1281
	ProfilingCommandStart  ProfilingInfo = 0x1282
	ProfilingCommandEnd    ProfilingInfo = 0x1283
	// Requires OpenCL 2.0.
	ProfilingCommandComplete ProfilingInfo = 0x1284
)

// MapFlags is the cl_map_flags bitfield for EnqueueMapBuffer.
type MapFlags uint64

const (
	MapRead  MapFlags = 1 << 0
	MapWrite MapFlags = 1 << 1
	// Requires OpenCL 1.2.
	MapWriteInvalidateRegion MapFlags = 1 << 2
)

// DevicePartitionProperty is an entry of the zero-terminated partition
// property list passed to Device.Partition.
type DevicePartitionProperty uintptr

const (
	DevicePartitionEqually          DevicePartitionProperty = 0x1086
	DevicePartitionByCounts         DevicePartitionProperty = 0x1087
	DevicePartitionByCountsListEnd  DevicePartitionProperty = 0x0
	DevicePartitionByAffinityDomain DevicePartitionProperty = 0x1088
)

// NameVersion mirrors cl_name_version (OpenCL 3.0): a numeric version packed
// as major.minor.patch alongside a fixed 64-byte name.
type NameVersion struct {
	Version uint32
	Name    string
}

// Version packs major.minor.patch the way CL_MAKE_VERSION does.
func Version(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// UnpackVersion splits a packed numeric version into its components.
func UnpackVersion(v uint32) (major, minor, patch uint32) {
	return v >> 22, (v >> 12) & 0x3FF, v & 0xFFF
}
