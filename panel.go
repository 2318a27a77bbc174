package montepi

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default panel layout. The plot is a fixed-size square; controls and the
// estimate readout sit in a column on the right.
const (
	panelW = 640
	panelH = 480

	plotX    = 20
	plotY    = 20
	plotSize = 440

	sidebarX = 480
	buttonW  = 136
	buttonH  = 36

	dotRadius     = 2
	flashDuration = 0.25 // seconds
)

var (
	panelClearColor = Color{R: 0.118, G: 0.118, B: 0.157, A: 1}
	plotFillColor   = Color{R: 0.161, G: 0.161, B: 0.216, A: 1}
	plotLineColor   = Color{R: 0.45, G: 0.45, B: 0.55, A: 1}
	hitColor        = Color{R: 0.3, G: 0.9, B: 0.5, A: 1}
	missColor       = Color{R: 0.9, G: 0.3, B: 0.3, A: 1}
)

// Panel is the interactive π estimation view. It implements [ebiten.Game]:
// Update advances the simulation one frame (driver ticks, sampling, pointer
// input) and Draw renders the plot, the running estimate, and the controls.
//
// All simulation state lives in an estimator [Machine] driven strictly one
// event at a time from the game loop; the Panel itself is just the adapter
// between Ebitengine and the reducer.
type Panel struct {
	machine *Machine
	sampler Sampler
	driver  *Driver

	plot       Rect
	stopBtn    *Button
	restartBtn *Button
	buttons    []*Button

	pointerDown bool
	injectQueue []syntheticPointerEvent
	script      *ScriptRunner

	flash      float32
	flashTween *gween.Tween

	fps *fpsOverlay
}

// NewPanel creates a panel sampling from the given source at
// [DefaultSampleInterval].
func NewPanel(sampler Sampler) *Panel {
	p := &Panel{
		machine: NewMachine(),
		sampler: sampler,
		driver:  NewDriver(DefaultSampleInterval),
		plot:    Rect{X: plotX, Y: plotY, Width: plotSize, Height: plotSize},
	}
	p.stopBtn = NewButton(
		Rect{X: sidebarX, Y: 40, Width: buttonW, Height: buttonH},
		"Stop", p.Stop,
	)
	p.restartBtn = NewButton(
		Rect{X: sidebarX, Y: 88, Width: buttonW, Height: buttonH},
		"Restart", p.Restart,
	)
	p.buttons = []*Button{p.stopBtn, p.restartBtn}
	return p
}

// SetSampleInterval changes the driver cadence. A non-positive interval
// restores the default.
func (p *Panel) SetSampleInterval(interval time.Duration) {
	p.driver = NewDriver(interval)
}

// SetShowFPS toggles the FPS/TPS overlay.
func (p *Panel) SetShowFPS(show bool) {
	if show && p.fps == nil {
		p.fps = newFPSOverlay()
	}
	if !show {
		p.fps = nil
	}
}

// State returns the current estimator state.
func (p *Panel) State() State {
	return p.machine.State()
}

// Stop freezes the estimate; history and counts are preserved. Bound to the
// Stop button.
func (p *Panel) Stop() {
	p.machine.Dispatch(RequestStop{})
}

// Restart discards all samples and resumes estimation from scratch. Bound to
// the Restart button.
func (p *Panel) Restart() {
	p.machine.Dispatch(RequestRestart{})
	p.driver.Reset()
	p.flashTween = gween.New(1, 0, flashDuration, ease.OutQuad)
}

// Update advances the panel one frame. Part of the [ebiten.Game] interface.
func (p *Panel) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if p.script != nil {
		p.script.step(p)
	}
	p.processPointer()
	p.advance(dt)
	return nil
}

// advance runs one frame of simulation: driver ticks become samples unless
// the estimator is stopped, and animations progress by dt seconds.
// Sampling is skipped entirely while stopped; the observable result is the
// same as sampling and discarding, without the wasted work.
func (p *Panel) advance(dt float64) {
	ticks := p.driver.Advance(time.Duration(dt * float64(time.Second)))
	if !p.machine.State().Stopped {
		for i := 0; i < ticks; i++ {
			p.machine.Dispatch(SampleArrived{Point: p.sampler.Next()})
		}
	}
	for _, b := range p.buttons {
		b.update(dt)
	}
	if p.flashTween != nil {
		v, done := p.flashTween.Update(float32(dt))
		p.flash = v
		if done {
			p.flashTween = nil
		}
	}
	if p.fps != nil {
		p.fps.update(dt)
	}
}

// processPointer feeds one frame of pointer input to the buttons. Injected
// synthetic events take priority over the real mouse, one per frame, so
// scripted input is delivered with the same pacing as real input.
func (p *Panel) processPointer() {
	if p.processInjected() {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.applyPointer(float64(mx), float64(my), pressed)
}

// applyPointer performs edge detection on the pointer state and routes
// press/release/move to the buttons.
func (p *Panel) applyPointer(x, y float64, pressed bool) {
	switch {
	case pressed && !p.pointerDown:
		p.pointerDown = true
		for _, b := range p.buttons {
			b.handlePress(x, y)
		}
	case !pressed && p.pointerDown:
		p.pointerDown = false
		for _, b := range p.buttons {
			b.handleRelease(x, y)
		}
	case !pressed:
		for _, b := range p.buttons {
			b.handleMove(x, y)
		}
	}
}

// Draw renders the panel. Part of the [ebiten.Game] interface.
func (p *Panel) Draw(screen *ebiten.Image) {
	screen.Fill(panelClearColor.toRGBA())

	// Plot frame and the inscribed circle.
	fillRect(screen, p.plot, plotFillColor)
	cx := float32(p.plot.X + p.plot.Width/2)
	cy := float32(p.plot.Y + p.plot.Height/2)
	vector.StrokeRect(screen,
		float32(p.plot.X), float32(p.plot.Y),
		float32(p.plot.Width), float32(p.plot.Height),
		1, plotLineColor.toRGBA(), true)
	vector.StrokeCircle(screen, cx, cy, float32(p.plot.Width/2),
		1, plotLineColor.toRGBA(), true)

	// Oldest dots first so the newest land on top.
	st := p.machine.State()
	p.drawDots(screen, st.Misses, missColor)
	p.drawDots(screen, st.Hits, hitColor)

	if p.flash > 0 {
		fillRect(screen, p.plot, Color{R: 1, G: 1, B: 1, A: 0.3 * float64(p.flash)})
	}

	p.drawReadout(screen, st)
	for _, b := range p.buttons {
		b.draw(screen)
	}
	if p.fps != nil {
		p.fps.draw(screen)
	}
}

// drawDots renders one history sequence, faded by age.
func (p *Panel) drawDots(screen *ebiten.Image, points []Point, base Color) {
	n := len(points)
	for i := n - 1; i >= 0; i-- {
		x, y := p.toPlot(points[i])
		c := base.Faded(AgeWeight(i, n))
		vector.DrawFilledCircle(screen, float32(x), float32(y), dotRadius, c.toRGBA(), true)
	}
}

// toPlot maps a unit-square point to plot pixel coordinates. The Y axis
// flips so that positive Y points up on screen.
func (p *Panel) toPlot(pt Point) (x, y float64) {
	x = p.plot.X + (pt.X+1)/2*p.plot.Width
	y = p.plot.Y + (1-pt.Y)/2*p.plot.Height
	return x, y
}

// drawReadout renders the estimate label and sample counts.
func (p *Panel) drawReadout(screen *ebiten.Image, st State) {
	lines := fmt.Sprintf("pi = %s\n\nhits    %d\nmisses  %d\ntotal   %d",
		FormatEstimate(st.EstimatePi()),
		st.HitCount, st.MissCount, st.Total())
	if st.Stopped {
		lines += "\n\n[stopped]"
	}
	ebitenutil.DebugPrintAt(screen, lines, sidebarX, 150)
}

// Layout reports the fixed logical screen size. Part of the [ebiten.Game]
// interface.
func (p *Panel) Layout(outsideWidth, outsideHeight int) (int, int) {
	return panelW, panelH
}
