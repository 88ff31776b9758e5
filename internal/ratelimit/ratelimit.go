// Package ratelimit paces capability queries, so a full traversal does not
// hammer a fragile driver with back-to-back calls.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/jacoelho/vadumpcaps/internal/va"
)

// Display decorates a va.Display, spacing driver calls according to a
// queries-per-second limit. Destroy calls are not paced, so cleanup cannot
// be interrupted by a cancelled wait.
type Display struct {
	inner   va.Display
	ctx     context.Context
	limiter *rate.Limiter
}

// Wrap returns a pacing decorator around inner. A limit of 0 or below
// disables pacing; waits are bounded by ctx.
func Wrap(ctx context.Context, inner va.Display, queriesPerSecond float64) *Display {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if queriesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(queriesPerSecond), 1)
	}

	return &Display{
		inner:   inner,
		ctx:     ctx,
		limiter: limiter,
	}
}

// Limit reports the configured queries per second, 0 when unpaced.
func (d *Display) Limit() float64 {
	limit := d.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return float64(limit)
}

func (d *Display) wait() error {
	return d.limiter.Wait(d.ctx)
}

func (d *Display) Version() (major, minor int) {
	return d.inner.Version()
}

func (d *Display) Vendor() string {
	return d.inner.Vendor()
}

func (d *Display) MaxNumProfiles() int {
	return d.inner.MaxNumProfiles()
}

func (d *Display) QueryProfiles(dst []va.Profile) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryProfiles(dst)
}

func (d *Display) MaxNumEntrypoints() int {
	return d.inner.MaxNumEntrypoints()
}

func (d *Display) QueryEntrypoints(profile va.Profile, dst []va.Entrypoint) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryEntrypoints(profile, dst)
}

func (d *Display) GetConfigAttributes(profile va.Profile, entrypoint va.Entrypoint, attribs []va.ConfigAttrib) error {
	if err := d.wait(); err != nil {
		return err
	}
	return d.inner.GetConfigAttributes(profile, entrypoint, attribs)
}

func (d *Display) CreateConfig(profile va.Profile, entrypoint va.Entrypoint, attribs []va.ConfigAttrib) (va.ConfigID, error) {
	if err := d.wait(); err != nil {
		return va.InvalidConfig, err
	}
	return d.inner.CreateConfig(profile, entrypoint, attribs)
}

func (d *Display) DestroyConfig(config va.ConfigID) error {
	return d.inner.DestroyConfig(config)
}

func (d *Display) QuerySurfaceAttributes(config va.ConfigID, dst []va.SurfaceAttrib) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QuerySurfaceAttributes(config, dst)
}

func (d *Display) CreateContext(config va.ConfigID, width, height int, flags uint32) (va.ContextID, error) {
	if err := d.wait(); err != nil {
		return va.InvalidContext, err
	}
	return d.inner.CreateContext(config, width, height, flags)
}

func (d *Display) DestroyContext(context va.ContextID) error {
	return d.inner.DestroyContext(context)
}

func (d *Display) QueryVideoProcFilters(context va.ContextID, dst []va.FilterType) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryVideoProcFilters(context, dst)
}

func (d *Display) QueryDeinterlacingCaps(context va.ContextID, dst []va.DeinterlacingCap) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryDeinterlacingCaps(context, dst)
}

func (d *Display) QueryColorBalanceCaps(context va.ContextID, dst []va.ColorBalanceCap) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryColorBalanceCaps(context, dst)
}

func (d *Display) QueryTotalColorCorrectionCaps(context va.ContextID, dst []va.TotalColorCorrectionCap) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryTotalColorCorrectionCaps(context, dst)
}

func (d *Display) QueryHDRToneMappingCaps(context va.ContextID, dst []va.HDRToneMappingCap) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryHDRToneMappingCaps(context, dst)
}

func (d *Display) Query3DLUTCaps(context va.ContextID, dst []va.LUT3DCap) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.Query3DLUTCaps(context, dst)
}

func (d *Display) QueryFilterCaps(context va.ContextID, filter va.FilterType, dst []va.FilterCap) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryFilterCaps(context, filter, dst)
}

func (d *Display) CreateBuffer(context va.ContextID, bufferType va.BufferType, payload any) (va.BufferID, error) {
	if err := d.wait(); err != nil {
		return va.InvalidBuffer, err
	}
	return d.inner.CreateBuffer(context, bufferType, payload)
}

func (d *Display) DestroyBuffer(buffer va.BufferID) error {
	return d.inner.DestroyBuffer(buffer)
}

func (d *Display) QueryVideoProcPipelineCaps(context va.ContextID, filters []va.BufferID) (va.PipelineCaps, error) {
	if err := d.wait(); err != nil {
		return va.PipelineCaps{}, err
	}
	return d.inner.QueryVideoProcPipelineCaps(context, filters)
}

func (d *Display) MaxNumImageFormats() int {
	return d.inner.MaxNumImageFormats()
}

func (d *Display) QueryImageFormats(dst []va.ImageFormat) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QueryImageFormats(dst)
}

func (d *Display) MaxNumSubpictureFormats() int {
	return d.inner.MaxNumSubpictureFormats()
}

func (d *Display) QuerySubpictureFormats(formats []va.ImageFormat, flags []uint32) (int, error) {
	if err := d.wait(); err != nil {
		return 0, err
	}
	return d.inner.QuerySubpictureFormats(formats, flags)
}
