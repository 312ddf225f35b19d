package gait

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	ErrNotReady           = errors.New("gait: skeleton not ready")
	ErrAlreadyInitialized = errors.New("gait: pose already initialized")
)

// Rig sequences classification, the one-shot standing pose and the per-frame
// driver for one skeleton.
type Rig struct {
	log zerolog.Logger

	skel Skeleton
	root Root
	reg  *Registry

	links       *LinkSet
	driver      *Driver
	initialized bool
}

func NewRig(log zerolog.Logger) *Rig {
	return &Rig{log: log.With().Str("component", "gait").Logger()}
}

// OnSkeletonReady classifies the skeleton. It may be repeated until the pose
// is initialized.
func (r *Rig) OnSkeletonReady(s Skeleton, root Root) (*Registry, error) {
	if r.initialized {
		return nil, ErrAlreadyInitialized
	}
	r.skel = s
	r.root = root
	r.reg = Classify(s)

	ev := r.log.Info().Int("joints", r.reg.Len())
	for _, g := range r.reg.Groups() {
		ev = ev.Strs(g.Leg.Short(), g.Joints)
	}
	ev.Msg("skeleton classified")
	return r.reg, nil
}

// InitializePose applies the standing pose exactly once and arms the driver.
// The root's position at this moment becomes the spawn position.
func (r *Rig) InitializePose() (*LinkSet, error) {
	if r.reg == nil {
		return nil, ErrNotReady
	}
	if r.initialized {
		return nil, ErrAlreadyInitialized
	}
	r.initialized = true
	r.links = ApplyStandingPose(r.reg, r.skel)
	r.driver = NewDriver(r.links, r.root)

	r.log.Info().
		Int("calves", len(r.links.Calves())).
		Int("hips", len(r.links.Hips())).
		Int("shoulders", len(r.links.Shoulders())).
		Int("thighs", r.links.ThighsAdjusted).
		Msg("standing pose applied")
	if n := r.links.FallbackThighs + r.links.FallbackCalves + r.links.FallbackHips + r.links.FallbackShoulder; n > 0 {
		r.log.Debug().
			Int("thighs", r.links.FallbackThighs).
			Int("calves", r.links.FallbackCalves).
			Int("hips", r.links.FallbackHips).
			Int("shoulders", r.links.FallbackShoulder).
			Msg("links found by name only")
	}
	return r.links, nil
}

// Tick runs one frame. It reports false until the pose is initialized.
func (r *Rig) Tick(dt float64) (Frame, bool) {
	if r.driver == nil {
		return Frame{}, false
	}
	return r.driver.Tick(dt), true
}

func (r *Rig) Ready() bool         { return r.reg != nil }
func (r *Rig) Initialized() bool   { return r.initialized }
func (r *Rig) Registry() *Registry { return r.reg }
func (r *Rig) Links() *LinkSet     { return r.links }
func (r *Rig) Driver() *Driver     { return r.driver }
