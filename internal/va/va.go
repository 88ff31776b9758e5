// Package va models the VA-API capability surface: profiles, entry points,
// configuration and surface attributes, video processing filters and image
// formats, together with the Display interface capability providers
// implement.
package va

// Version of the capability interface modelled by this package.
const (
	VersionMajor = 1
	VersionMinor = 13
	VersionMicro = 0
)

// Driver object handles. Values are provider-assigned and opaque.
type (
	ConfigID  uint32
	ContextID uint32
	BufferID  uint32
	SurfaceID uint32
)

// Invalid handle sentinels marking absent objects.
const (
	InvalidConfig  ConfigID  = 0xffffffff
	InvalidContext ContextID = 0xffffffff
	InvalidBuffer  BufferID  = 0xffffffff
	InvalidSurface SurfaceID = 0xffffffff
)

// BufferType identifies the payload class of a created buffer.
type BufferType uint32

// ProcFilterParameterBufferType carries filter parameters for pipeline
// probes.
const ProcFilterParameterBufferType BufferType = 42
