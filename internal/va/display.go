package va

// Display is a handle to an opened capability provider. Implementations
// mirror the driver entry points: list queries size their destination from
// the matching MaxNum method or a count-only call, fill the caller's slice
// and report how many entries were written. Failed calls return a Status.
type Display interface {
	// Version reports the provider's runtime version.
	Version() (major, minor int)
	// Vendor returns the driver vendor string, empty when unknown.
	Vendor() string

	MaxNumProfiles() int
	QueryProfiles(dst []Profile) (int, error)

	MaxNumEntrypoints() int
	QueryEntrypoints(profile Profile, dst []Entrypoint) (int, error)

	// GetConfigAttributes fills Value for every record in attribs,
	// reporting AttribNotSupported where the pair does not support the
	// attribute.
	GetConfigAttributes(profile Profile, entrypoint Entrypoint, attribs []ConfigAttrib) error

	CreateConfig(profile Profile, entrypoint Entrypoint, attribs []ConfigAttrib) (ConfigID, error)
	DestroyConfig(config ConfigID) error

	// QuerySurfaceAttributes reports the attribute count when dst is nil
	// and fills dst otherwise.
	QuerySurfaceAttributes(config ConfigID, dst []SurfaceAttrib) (int, error)

	CreateContext(config ConfigID, width, height int, flags uint32) (ContextID, error)
	DestroyContext(context ContextID) error

	QueryVideoProcFilters(context ContextID, dst []FilterType) (int, error)
	QueryDeinterlacingCaps(context ContextID, dst []DeinterlacingCap) (int, error)
	QueryColorBalanceCaps(context ContextID, dst []ColorBalanceCap) (int, error)
	QueryTotalColorCorrectionCaps(context ContextID, dst []TotalColorCorrectionCap) (int, error)
	QueryHDRToneMappingCaps(context ContextID, dst []HDRToneMappingCap) (int, error)
	Query3DLUTCaps(context ContextID, dst []LUT3DCap) (int, error)
	QueryFilterCaps(context ContextID, filter FilterType, dst []FilterCap) (int, error)

	CreateBuffer(context ContextID, bufferType BufferType, payload any) (BufferID, error)
	DestroyBuffer(buffer BufferID) error

	// QueryVideoProcPipelineCaps reports the pipeline capabilities for the
	// filter chain described by the parameter buffers. An empty chain
	// queries the unfiltered pipeline.
	QueryVideoProcPipelineCaps(context ContextID, filters []BufferID) (PipelineCaps, error)

	MaxNumImageFormats() int
	QueryImageFormats(dst []ImageFormat) (int, error)

	MaxNumSubpictureFormats() int
	// QuerySubpictureFormats fills formats and the matching capability
	// flags index for index.
	QuerySubpictureFormats(formats []ImageFormat, flags []uint32) (int, error)
}
