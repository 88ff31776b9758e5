package va

import "fmt"

// Status is a numeric driver status. The zero value means success; every
// other value describes a failure and satisfies error.
type Status uint32

const (
	StatusSuccess                      Status = 0x00000000
	StatusErrorOperationFailed         Status = 0x00000001
	StatusErrorAllocationFailed        Status = 0x00000002
	StatusErrorInvalidDisplay          Status = 0x00000003
	StatusErrorInvalidConfig           Status = 0x00000004
	StatusErrorInvalidContext          Status = 0x00000005
	StatusErrorInvalidSurface          Status = 0x00000006
	StatusErrorInvalidBuffer           Status = 0x00000007
	StatusErrorInvalidImage            Status = 0x00000008
	StatusErrorInvalidSubpicture       Status = 0x00000009
	StatusErrorAttrNotSupported        Status = 0x0000000a
	StatusErrorMaxNumExceeded          Status = 0x0000000b
	StatusErrorUnsupportedProfile      Status = 0x0000000c
	StatusErrorUnsupportedEntrypoint   Status = 0x0000000d
	StatusErrorUnsupportedRTFormat     Status = 0x0000000e
	StatusErrorUnsupportedBufferType   Status = 0x0000000f
	StatusErrorSurfaceBusy             Status = 0x00000010
	StatusErrorFlagNotSupported        Status = 0x00000011
	StatusErrorInvalidParameter        Status = 0x00000012
	StatusErrorResolutionNotSupported  Status = 0x00000013
	StatusErrorUnimplemented           Status = 0x00000014
	StatusErrorSurfaceInDisplaying     Status = 0x00000015
	StatusErrorInvalidImageFormat      Status = 0x00000016
	StatusErrorDecodingError           Status = 0x00000017
	StatusErrorEncodingError           Status = 0x00000018
	StatusErrorInvalidValue            Status = 0x00000019
	StatusErrorUnsupportedFilter       Status = 0x00000020
	StatusErrorInvalidFilterChain      Status = 0x00000021
	StatusErrorHWBusy                  Status = 0x00000022
	StatusErrorUnsupportedMemoryType   Status = 0x00000024
	StatusErrorNotEnoughBuffer         Status = 0x00000025
	StatusErrorTimedOut                Status = 0x00000026
	StatusErrorUnknown                 Status = 0xffffffff
)

// Description returns the standard description for the status.
func (s Status) Description() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusErrorOperationFailed:
		return "operation failed"
	case StatusErrorAllocationFailed:
		return "resource allocation failed"
	case StatusErrorInvalidDisplay:
		return "invalid VADisplay"
	case StatusErrorInvalidConfig:
		return "invalid VAConfigID"
	case StatusErrorInvalidContext:
		return "invalid VAContextID"
	case StatusErrorInvalidSurface:
		return "invalid VASurfaceID"
	case StatusErrorInvalidBuffer:
		return "invalid VABufferID"
	case StatusErrorInvalidImage:
		return "invalid VAImageID"
	case StatusErrorInvalidSubpicture:
		return "invalid VASubpictureID"
	case StatusErrorAttrNotSupported:
		return "attribute not supported"
	case StatusErrorMaxNumExceeded:
		return "list argument exceeds maximum number"
	case StatusErrorUnsupportedProfile:
		return "the requested VAProfile is not supported"
	case StatusErrorUnsupportedEntrypoint:
		return "the requested VAEntrypoint is not supported"
	case StatusErrorUnsupportedRTFormat:
		return "the requested RT Format is not supported"
	case StatusErrorUnsupportedBufferType:
		return "the requested VABufferType is not supported"
	case StatusErrorSurfaceBusy:
		return "surface is in use"
	case StatusErrorFlagNotSupported:
		return "flag not supported"
	case StatusErrorInvalidParameter:
		return "invalid parameter"
	case StatusErrorResolutionNotSupported:
		return "resolution not supported"
	case StatusErrorUnimplemented:
		return "the requested function is not implemented"
	case StatusErrorSurfaceInDisplaying:
		return "surface is in displaying (may by overwritten if rendering)"
	case StatusErrorInvalidImageFormat:
		return "invalid VAImageFormat"
	case StatusErrorDecodingError:
		return "internal decoding error"
	case StatusErrorEncodingError:
		return "internal encoding error"
	case StatusErrorInvalidValue:
		return "invalid value"
	case StatusErrorUnsupportedFilter:
		return "unsupported filter"
	case StatusErrorInvalidFilterChain:
		return "invalid filter chain"
	case StatusErrorHWBusy:
		return "HW busy"
	case StatusErrorUnsupportedMemoryType:
		return "unsupported memory type"
	case StatusErrorNotEnoughBuffer:
		return "allocated memory size is not enough for input or output"
	case StatusErrorTimedOut:
		return "timeout"
	default:
		return "unknown libva error / description missing"
	}
}

// Error formats the status the way failed driver calls are reported.
func (s Status) Error() string {
	return fmt.Sprintf("%d (%s)", uint32(s), s.Description())
}
