package snapshot

import (
	"github.com/jacoelho/vadumpcaps/internal/va"
)

// Display serves capability queries from a parsed snapshot. It hands out
// config, context and buffer handles and validates their lifecycle the way
// a driver would.
type Display struct {
	doc document

	nextID   uint32
	configs  map[va.ConfigID]configState
	contexts map[va.ContextID]va.ConfigID
	buffers  map[va.BufferID]bufferState

	sticky map[string]va.Status
	queued map[string][]va.Status
}

type configState struct {
	profile    va.Profile
	entrypoint va.Entrypoint
	rtFormat   uint32
}

type bufferState struct {
	bufferType va.BufferType
	payload    any
}

// Fail makes every subsequent call of the named Display method return
// status. Operation names are method names, e.g. "QueryProfiles".
func (d *Display) Fail(op string, status va.Status) {
	d.sticky[op] = status
}

// FailOnce makes the next call of the named Display method return status.
// Repeated calls queue further failures.
func (d *Display) FailOnce(op string, status va.Status) {
	d.queued[op] = append(d.queued[op], status)
}

func (d *Display) failure(op string) error {
	if queue := d.queued[op]; len(queue) > 0 {
		status := queue[0]
		d.queued[op] = queue[1:]
		return status
	}
	if status, ok := d.sticky[op]; ok {
		return status
	}
	return nil
}

func (d *Display) profile(profile va.Profile) *profileEntry {
	for i := range d.doc.Profiles {
		if va.Profile(d.doc.Profiles[i].Profile) == profile {
			return &d.doc.Profiles[i]
		}
	}
	return nil
}

func (d *Display) entrypoint(profile va.Profile, entrypoint va.Entrypoint) *entrypointEntry {
	p := d.profile(profile)
	if p == nil {
		return nil
	}
	for i := range p.Entrypoints {
		if va.Entrypoint(p.Entrypoints[i].Entrypoint) == entrypoint {
			return &p.Entrypoints[i]
		}
	}
	return nil
}

// Version reports the recorded driver version.
func (d *Display) Version() (int, int) {
	return d.doc.Driver.Version.Major, d.doc.Driver.Version.Minor
}

// Vendor returns the recorded driver vendor string.
func (d *Display) Vendor() string {
	return d.doc.Driver.Vendor
}

func (d *Display) MaxNumProfiles() int {
	return len(d.doc.Profiles)
}

func (d *Display) QueryProfiles(dst []va.Profile) (int, error) {
	if err := d.failure("QueryProfiles"); err != nil {
		return 0, err
	}
	if len(dst) < len(d.doc.Profiles) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, p := range d.doc.Profiles {
		dst[i] = va.Profile(p.Profile)
	}
	return len(d.doc.Profiles), nil
}

func (d *Display) MaxNumEntrypoints() int {
	count := 0
	for _, p := range d.doc.Profiles {
		count = max(count, len(p.Entrypoints))
	}
	return count
}

func (d *Display) QueryEntrypoints(profile va.Profile, dst []va.Entrypoint) (int, error) {
	if err := d.failure("QueryEntrypoints"); err != nil {
		return 0, err
	}
	p := d.profile(profile)
	if p == nil {
		return 0, va.StatusErrorUnsupportedProfile
	}
	if len(dst) < len(p.Entrypoints) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, e := range p.Entrypoints {
		dst[i] = va.Entrypoint(e.Entrypoint)
	}
	return len(p.Entrypoints), nil
}

func (d *Display) GetConfigAttributes(profile va.Profile, entrypoint va.Entrypoint, attribs []va.ConfigAttrib) error {
	if err := d.failure("GetConfigAttributes"); err != nil {
		return err
	}
	e := d.entrypoint(profile, entrypoint)
	if e == nil {
		return va.StatusErrorUnsupportedEntrypoint
	}

	for i := range attribs {
		attribs[i].Value = va.AttribNotSupported
		for _, a := range e.Attributes {
			if va.ConfigAttribType(a.Type) == attribs[i].Type {
				attribs[i].Value = a.Value
				break
			}
		}
	}
	return nil
}

func (d *Display) CreateConfig(profile va.Profile, entrypoint va.Entrypoint, attribs []va.ConfigAttrib) (va.ConfigID, error) {
	if err := d.failure("CreateConfig"); err != nil {
		return va.InvalidConfig, err
	}
	if d.profile(profile) == nil {
		return va.InvalidConfig, va.StatusErrorUnsupportedProfile
	}
	if d.entrypoint(profile, entrypoint) == nil {
		return va.InvalidConfig, va.StatusErrorUnsupportedEntrypoint
	}

	state := configState{profile: profile, entrypoint: entrypoint}
	for _, a := range attribs {
		if a.Type == va.ConfigAttribRTFormat {
			state.rtFormat = a.Value
		}
	}

	id := va.ConfigID(d.nextID)
	d.nextID++
	d.configs[id] = state
	return id, nil
}

func (d *Display) DestroyConfig(config va.ConfigID) error {
	if _, ok := d.configs[config]; !ok {
		return va.StatusErrorInvalidConfig
	}
	delete(d.configs, config)
	return nil
}

func (d *Display) QuerySurfaceAttributes(config va.ConfigID, dst []va.SurfaceAttrib) (int, error) {
	if err := d.failure("QuerySurfaceAttributes"); err != nil {
		return 0, err
	}
	state, ok := d.configs[config]
	if !ok {
		return 0, va.StatusErrorInvalidConfig
	}

	e := d.entrypoint(state.profile, state.entrypoint)
	if e == nil {
		return 0, va.StatusErrorInvalidConfig
	}

	var records []surfaceAttributeEntry
	for i := range e.SurfaceFormats {
		if e.SurfaceFormats[i].RTFormat == state.rtFormat {
			records = e.SurfaceFormats[i].Attributes
			break
		}
	}

	if dst == nil {
		return len(records), nil
	}
	if len(dst) < len(records) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, r := range records {
		dst[i] = surfaceAttrib(r)
	}
	return len(records), nil
}

func surfaceAttrib(r surfaceAttributeEntry) va.SurfaceAttrib {
	attrib := va.SurfaceAttrib{
		Type:  va.SurfaceAttribType(r.Type),
		Flags: r.Flags,
		Value: va.GenericValue{Type: va.GenericValueInteger, I: int32(r.Value)},
	}
	if r.Format != 0 {
		attrib.Value.I = int32(uint32(r.Format))
	}
	if len(r.Modifiers) > 0 {
		attrib.Value = va.GenericValue{
			Type: va.GenericValuePointer,
			P:    append([]uint64(nil), r.Modifiers...),
		}
	}
	return attrib
}

func (d *Display) CreateContext(config va.ConfigID, width, height int, flags uint32) (va.ContextID, error) {
	if err := d.failure("CreateContext"); err != nil {
		return va.InvalidContext, err
	}
	if _, ok := d.configs[config]; !ok {
		return va.InvalidContext, va.StatusErrorInvalidConfig
	}
	if width <= 0 || height <= 0 {
		return va.InvalidContext, va.StatusErrorResolutionNotSupported
	}

	id := va.ContextID(d.nextID)
	d.nextID++
	d.contexts[id] = config
	return id, nil
}

func (d *Display) DestroyContext(context va.ContextID) error {
	if _, ok := d.contexts[context]; !ok {
		return va.StatusErrorInvalidContext
	}
	delete(d.contexts, context)
	return nil
}

func (d *Display) QueryVideoProcFilters(context va.ContextID, dst []va.FilterType) (int, error) {
	if err := d.failure("QueryVideoProcFilters"); err != nil {
		return 0, err
	}
	if _, ok := d.contexts[context]; !ok {
		return 0, va.StatusErrorInvalidContext
	}
	if d.doc.Processing == nil {
		return 0, nil
	}

	filters := d.doc.Processing.Filters
	if len(dst) < len(filters) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, f := range filters {
		dst[i] = va.FilterType(f)
	}
	return len(filters), nil
}

func (d *Display) QueryDeinterlacingCaps(context va.ContextID, dst []va.DeinterlacingCap) (int, error) {
	if err := d.failure("QueryDeinterlacingCaps"); err != nil {
		return 0, err
	}
	if _, ok := d.contexts[context]; !ok {
		return 0, va.StatusErrorInvalidContext
	}
	if d.doc.Processing == nil {
		return 0, nil
	}

	entries := d.doc.Processing.Deinterlacing
	if len(dst) < len(entries) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, e := range entries {
		dst[i] = va.DeinterlacingCap{Type: va.DeinterlacingType(e.Type)}
	}
	return len(entries), nil
}

func (d *Display) QueryColorBalanceCaps(context va.ContextID, dst []va.ColorBalanceCap) (int, error) {
	if err := d.failure("QueryColorBalanceCaps"); err != nil {
		return 0, err
	}
	if _, ok := d.contexts[context]; !ok {
		return 0, va.StatusErrorInvalidContext
	}
	if d.doc.Processing == nil {
		return 0, nil
	}

	entries := d.doc.Processing.ColorBalance
	if len(dst) < len(entries) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, e := range entries {
		dst[i] = va.ColorBalanceCap{
			Type:  va.ColorBalanceType(e.Type),
			Range: capRange(e.Range),
		}
	}
	return len(entries), nil
}

func (d *Display) QueryTotalColorCorrectionCaps(context va.ContextID, dst []va.TotalColorCorrectionCap) (int, error) {
	if err := d.failure("QueryTotalColorCorrectionCaps"); err != nil {
		return 0, err
	}
	if _, ok := d.contexts[context]; !ok {
		return 0, va.StatusErrorInvalidContext
	}
	if d.doc.Processing == nil {
		return 0, nil
	}

	entries := d.doc.Processing.TotalColorCorrection
	if len(dst) < len(entries) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, e := range entries {
		dst[i] = va.TotalColorCorrectionCap{
			Type:  va.TotalColorCorrectionType(e.Type),
			Range: capRange(e.Range),
		}
	}
	return len(entries), nil
}

func (d *Display) QueryHDRToneMappingCaps(context va.ContextID, dst []va.HDRToneMappingCap) (int, error) {
	if err := d.failure("QueryHDRToneMappingCaps"); err != nil {
		return 0, err
	}
	if _, ok := d.contexts[context]; !ok {
		return 0, va.StatusErrorInvalidContext
	}
	if d.doc.Processing == nil {
		return 0, nil
	}

	entries := d.doc.Processing.HDRToneMapping
	if len(dst) < len(entries) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, e := range entries {
		dst[i] = va.HDRToneMappingCap{
			MetadataType: va.HDRMetadataType(e.Type),
			CapsFlag:     e.ToneMapping,
		}
	}
	return len(entries), nil
}

func (d *Display) Query3DLUTCaps(context va.ContextID, dst []va.LUT3DCap) (int, error) {
	if err := d.failure("Query3DLUTCaps"); err != nil {
		return 0, err
	}
	if _, ok := d.contexts[context]; !ok {
		return 0, va.StatusErrorInvalidContext
	}
	if d.doc.Processing == nil {
		return 0, nil
	}

	entries := d.doc.Processing.LUT3D
	if len(dst) < len(entries) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, e := range entries {
		dst[i] = va.LUT3DCap{
			LUTSize:        e.Size,
			LUTStride:      [3]uint32{e.Stride[0], e.Stride[1], e.Stride[2]},
			BitDepth:       e.BitDepth,
			NumChannel:     e.Channels,
			ChannelMapping: e.Mapping,
		}
	}
	return len(entries), nil
}

func (d *Display) QueryFilterCaps(context va.ContextID, filter va.FilterType, dst []va.FilterCap) (int, error) {
	if err := d.failure("QueryFilterCaps"); err != nil {
		return 0, err
	}
	if _, ok := d.contexts[context]; !ok {
		return 0, va.StatusErrorInvalidContext
	}
	if d.doc.Processing == nil {
		return 0, nil
	}

	r, ok := d.doc.Processing.Ranges[uint32(filter)]
	if !ok {
		return 0, nil
	}
	if len(dst) < 1 {
		return 0, va.StatusErrorMaxNumExceeded
	}
	dst[0] = va.FilterCap{Range: capRange(r)}
	return 1, nil
}

func capRange(r rangeEntry) va.Range {
	return va.Range{
		Min:     r.Min,
		Max:     r.Max,
		Default: r.Default,
		Step:    r.Step,
	}
}

func (d *Display) CreateBuffer(context va.ContextID, bufferType va.BufferType, payload any) (va.BufferID, error) {
	if err := d.failure("CreateBuffer"); err != nil {
		return va.InvalidBuffer, err
	}
	if _, ok := d.contexts[context]; !ok {
		return va.InvalidBuffer, va.StatusErrorInvalidContext
	}

	id := va.BufferID(d.nextID)
	d.nextID++
	d.buffers[id] = bufferState{bufferType: bufferType, payload: payload}
	return id, nil
}

func (d *Display) DestroyBuffer(buffer va.BufferID) error {
	if _, ok := d.buffers[buffer]; !ok {
		return va.StatusErrorInvalidBuffer
	}
	delete(d.buffers, buffer)
	return nil
}

func (d *Display) QueryVideoProcPipelineCaps(context va.ContextID, filters []va.BufferID) (va.PipelineCaps, error) {
	if err := d.failure("QueryVideoProcPipelineCaps"); err != nil {
		return va.PipelineCaps{}, err
	}
	if _, ok := d.contexts[context]; !ok {
		return va.PipelineCaps{}, va.StatusErrorInvalidContext
	}

	filter := va.ProcFilterNone
	for _, id := range filters {
		buffer, ok := d.buffers[id]
		if !ok {
			return va.PipelineCaps{}, va.StatusErrorInvalidBuffer
		}
		filter = payloadFilter(buffer.payload)
	}

	entry := d.pipeline(filter)
	if entry == nil {
		return va.PipelineCaps{}, va.StatusErrorUnsupportedFilter
	}
	return pipelineCaps(*entry), nil
}

func (d *Display) pipeline(filter va.FilterType) *pipelineEntry {
	if d.doc.Processing == nil {
		return nil
	}
	for i := range d.doc.Processing.Pipelines {
		if va.FilterType(d.doc.Processing.Pipelines[i].Filter) == filter {
			return &d.doc.Processing.Pipelines[i]
		}
	}
	return nil
}

func payloadFilter(payload any) va.FilterType {
	switch p := payload.(type) {
	case va.DeinterlacingParam:
		return p.Type
	case []va.ColorBalanceParam:
		if len(p) > 0 {
			return p[0].Type
		}
	case []va.TotalColorCorrectionParam:
		if len(p) > 0 {
			return p[0].Type
		}
	case va.HVSNoiseReductionParam:
		return p.Type
	case va.HDRToneMappingParam:
		return p.Type
	case va.LUT3DParam:
		return p.Type
	case va.FilterParam:
		return p.Type
	}
	return va.ProcFilterNone
}

func pipelineCaps(e pipelineEntry) va.PipelineCaps {
	caps := va.PipelineCaps{
		PipelineFlags:         e.PipelineFlags,
		FilterFlags:           e.FilterFlags,
		NumForwardReferences:  e.NumForwardReferences,
		NumBackwardReferences: e.NumBackwardReferences,
		RotationFlags:         e.RotationFlags,
		BlendFlags:            e.BlendFlags,
		MirrorFlags:           e.MirrorFlags,
		NumAdditionalOutputs:  e.NumAdditionalOutputs,
		InputPixelFormats:     append([]va.FourCC(nil), e.InputPixelFormats...),
		OutputPixelFormats:    append([]va.FourCC(nil), e.OutputPixelFormats...),
		MaxInputWidth:         e.MaxInputWidth,
		MaxInputHeight:        e.MaxInputHeight,
		MinInputWidth:         e.MinInputWidth,
		MinInputHeight:        e.MinInputHeight,
		MaxOutputWidth:        e.MaxOutputWidth,
		MaxOutputHeight:       e.MaxOutputHeight,
		MinOutputWidth:        e.MinOutputWidth,
		MinOutputHeight:       e.MinOutputHeight,
	}
	for _, s := range e.InputColorStandards {
		caps.InputColorStandards = append(caps.InputColorStandards, va.ColorStandard(s))
	}
	for _, s := range e.OutputColorStandards {
		caps.OutputColorStandards = append(caps.OutputColorStandards, va.ColorStandard(s))
	}
	return caps
}

func (d *Display) MaxNumImageFormats() int {
	return len(d.doc.ImageFormats)
}

func (d *Display) QueryImageFormats(dst []va.ImageFormat) (int, error) {
	if err := d.failure("QueryImageFormats"); err != nil {
		return 0, err
	}
	if len(dst) < len(d.doc.ImageFormats) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, f := range d.doc.ImageFormats {
		dst[i] = imageFormat(f)
	}
	return len(d.doc.ImageFormats), nil
}

func (d *Display) MaxNumSubpictureFormats() int {
	return len(d.doc.SubpictureFormats)
}

func (d *Display) QuerySubpictureFormats(formats []va.ImageFormat, flags []uint32) (int, error) {
	if err := d.failure("QuerySubpictureFormats"); err != nil {
		return 0, err
	}
	entries := d.doc.SubpictureFormats
	if len(formats) < len(entries) || len(flags) < len(entries) {
		return 0, va.StatusErrorMaxNumExceeded
	}
	for i, f := range entries {
		formats[i] = imageFormat(f)
		flags[i] = f.Flags
	}
	return len(entries), nil
}

func imageFormat(f formatEntry) va.ImageFormat {
	return va.ImageFormat{
		FourCC:       f.FourCC,
		ByteOrder:    f.ByteOrder,
		BitsPerPixel: f.BitsPerPixel,
		Depth:        f.Depth,
		RedMask:      f.RedMask,
		GreenMask:    f.GreenMask,
		BlueMask:     f.BlueMask,
		AlphaMask:    f.AlphaMask,
	}
}

// Leaked reports the number of live config, context and buffer handles.
// After a traversal everything created should have been destroyed.
func (d *Display) Leaked() int {
	return len(d.configs) + len(d.contexts) + len(d.buffers)
}
