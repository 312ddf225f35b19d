package app

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"quadtrot/gait"
	"quadtrot/hal"
	"quadtrot/internal/trace"
	"quadtrot/quarkgl"
	"quadtrot/skeleton"
)

// Options configures a Viewer.
type Options struct {
	// Model is a URDF path; empty loads the builtin quadruped.
	Model  string
	Logger zerolog.Logger
	// Recorder receives one sample per driver frame when set. It must be initialized.
	Recorder trace.Recorder
	// NoRender skips the renderer and HUD.
	NoRender bool
}

var (
	colorBackground = quarkgl.RGB(0x1A, 0x1A, 0x1A)
	colorFloor      = quarkgl.RGB(0x22, 0x22, 0x22)
)

// Viewer boots a robot, stands it up and animates the trot every step.
type Viewer struct {
	h   hal.HAL
	ctx context.Context
	log zerolog.Logger

	model     *skeleton.Model
	rig       *gait.Rig
	placement Placement

	scene    *quarkgl.Scene
	renderer *quarkgl.Renderer
	orbit    quarkgl.OrbitController
	target   *quarkgl.RGB565Target
	hud      *hud
	noRender bool

	rec   trace.Recorder
	run   trace.Run
	frame gait.Frame

	paused bool
}

// New loads the model, places it, applies the standing pose and returns a
// viewer ready to Step.
func New(ctx context.Context, h hal.HAL, opts Options) (*Viewer, error) {
	if h == nil {
		return nil, errors.New("app: nil hal")
	}
	v := &Viewer{
		h:        h,
		ctx:      ctx,
		log:      opts.Logger.With().Str("component", "viewer").Logger(),
		rec:      opts.Recorder,
		noRender: opts.NoRender,
		scene:    quarkgl.CreateScene(),
	}

	model, err := loadModel(opts.Model)
	if err != nil {
		return nil, err
	}
	v.model = model
	v.log.Info().
		Str("model", model.Describe()).
		Int("skipped_meshes", model.SkippedMeshes).
		Msg("model loaded")

	v.rig = gait.NewRig(opts.Logger)
	if _, err := v.rig.OnSkeletonReady(model, model.Root()); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	v.scene.Add(model.Base)
	v.setupScene()
	v.placement = Place(model.Base, &v.scene.Camera, &v.orbit)
	v.addFloor()
	v.log.Info().
		Bool("fallback", v.placement.Fallback).
		Float64("scale", v.placement.Scale).
		Float64("max_dim", v.placement.MaxDim).
		Msg("model placed")

	if _, err := v.rig.InitializePose(); err != nil {
		return nil, fmt.Errorf("standing pose: %w", err)
	}

	if v.rec != nil {
		run, err := v.rec.BeginRun(ctx, model.Name)
		if err != nil {
			return nil, fmt.Errorf("begin trace run: %w", err)
		}
		v.run = run
		v.log.Info().Str("run", run.ID).Msg("recording trace")
	}

	if !v.noRender {
		if disp := h.Display(); disp != nil {
			if fb := disp.Framebuffer(); fb != nil && fb.Format() == hal.PixelFormatRGB565 {
				v.target = &quarkgl.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
				v.renderer = quarkgl.NewRenderer(fb.Width(), fb.Height(), true)
				v.renderer.ClearColor = colorBackground
				v.hud = newHUD(fb)
			}
		}
	}
	return v, nil
}

func loadModel(path string) (*skeleton.Model, error) {
	if path == "" {
		m, err := skeleton.Builtin()
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		return m, nil
	}
	m, err := skeleton.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return m, nil
}

func (v *Viewer) setupScene() {
	cam := &v.scene.Camera
	cam.FOVYRad = 75 * math.Pi / 180
	cam.Near = 0.1
	cam.Far = 1000
	v.scene.Light = quarkgl.Light{
		Mode:      quarkgl.LightAmbientDirectional,
		Ambient:   0.6,
		Dir:       quarkgl.Normalize(quarkgl.V3(-5, -10, -5)),
		DirAmount: 0.8,
	}
	v.orbit.MinRadius = 1
	v.orbit.MaxRadius = 20
}

// addFloor puts a dark square just below the placed model.
func (v *Viewer) addFloor() {
	y := 0.0
	if !v.placement.Fallback {
		y = v.placement.Bounds.Min.Y
	}
	floor := quarkgl.NewNode("")
	floor.Mesh = quarkgl.GridMesh(20, y-0.001, colorFloor)
	v.scene.Add(floor)
	floor.UpdateWorld(true)
}

// Step runs one frame: input, gait, camera, render and trace. A panic inside
// the frame is returned as a *PanicError.
func (v *Viewer) Step() error {
	return v.guard(v.step)
}

func (v *Viewer) step() error {
	v.handleKeys()

	if !v.paused {
		dt := 0.0
		if c := v.h.Clock(); c != nil {
			dt = c.Delta()
		}
		if f, ok := v.rig.Tick(dt); ok {
			v.frame = f
			if err := v.record(f); err != nil {
				return err
			}
		}
	}

	v.orbit.Apply(&v.scene.Camera)
	v.render()
	return nil
}

func (v *Viewer) record(f gait.Frame) error {
	if v.rec == nil {
		return nil
	}
	s := trace.Sample{Seq: f.Seq, Cycle: f.Cycle, EaseA: f.EaseA, EaseB: f.EaseB}
	if c := v.h.Clock(); c != nil {
		s.Elapsed = c.Elapsed()
	}
	for i, leg := range gait.Legs {
		s.Calf[i] = gait.CalfAngle(f.Ease(leg))
	}
	if err := v.rec.Record(v.ctx, v.run.ID, s); err != nil {
		return fmt.Errorf("record frame %d: %w", f.Seq, err)
	}
	return nil
}

func (v *Viewer) render() {
	if v.renderer == nil {
		return
	}
	v.renderer.Render(v.target, v.scene)
	v.hud.draw(v.status())
}

// Close ends the trace run. The recorder itself belongs to the caller.
func (v *Viewer) Close() error {
	if v.rec != nil && v.run.ID != "" {
		v.log.Info().Str("run", v.run.ID).Uint64("frames", v.frame.Seq).Msg("trace run finished")
	}
	return nil
}

func (v *Viewer) Model() *skeleton.Model      { return v.model }
func (v *Viewer) Rig() *gait.Rig              { return v.rig }
func (v *Viewer) Scene() *quarkgl.Scene       { return v.scene }
func (v *Viewer) Placement() Placement        { return v.placement }
func (v *Viewer) Frame() gait.Frame           { return v.frame }
func (v *Viewer) Run() trace.Run              { return v.run }
func (v *Viewer) Paused() bool                { return v.paused }
func (v *Viewer) SetPaused(p bool)            { v.paused = p }
func (v *Viewer) Renderer() *quarkgl.Renderer { return v.renderer }
