// Package montepi is an interactive Monte Carlo estimation of π for
// [Ebitengine].
//
// Montepi samples random points in the square [-1,1]×[-1,1], classifies each
// against the inscribed unit circle, and derives a live estimate of π from the
// hit ratio. The sampled points are plotted as they arrive, fading with age,
// alongside the running estimate and Stop/Restart controls.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	panel := montepi.NewPanel(montepi.NewUniformSampler())
//	montepi.Run(panel, montepi.RunConfig{
//		Title: "Monte Carlo π", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Panel.Update] and [Panel.Draw] directly.
//
// # Estimation core
//
// The simulation state is a pure reducer: [Reduce] maps a [State] and an
// [Event] to a new State without mutating either. Three events exist:
// [SampleArrived], [RequestStop], and [RequestRestart]. The estimate is
// derived, never stored:
//
//	est := state.EstimatePi() // 4 · hits / (hits + misses), NaN with no samples
//
// Sampling is an injectable [Sampler] so the core can be driven with fixed
// point sequences in tests; [UniformSampler] is the production source and
// [SequenceSampler] the deterministic one.
//
// # Headless scripting
//
// Synthetic pointer events ([Panel.InjectClick] and friends) and a JSON
// [ScriptRunner] allow automated sessions without a real mouse, mirroring
// real input frame for frame.
//
// [Ebitengine]: https://ebitengine.org
package montepi
