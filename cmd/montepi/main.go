// Montepi opens an interactive Monte Carlo estimation of π: random points
// accumulate on a square plot, colored by whether they fall inside the
// inscribed circle, while the running estimate updates live. Stop freezes
// the estimate; Restart begins a fresh run.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/montepi"
)

const windowTitle = "Monte Carlo π"

func main() {
	seed := flag.Int64("seed", 0, "random seed; 0 seeds from the current time")
	interval := flag.Duration("interval", montepi.DefaultSampleInterval, "time between samples")
	script := flag.String("script", "", "JSON session script to run instead of mouse input")
	showFPS := flag.Bool("fps", false, "show the FPS/TPS overlay")
	flag.Parse()

	var sampler montepi.Sampler
	if *seed != 0 {
		sampler = montepi.NewUniformSamplerSeeded(*seed)
	} else {
		sampler = montepi.NewUniformSampler()
	}

	panel := montepi.NewPanel(sampler)
	panel.SetSampleInterval(*interval)

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := montepi.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		panel.SetScriptRunner(runner)
	}

	if err := montepi.Run(panel, montepi.RunConfig{
		Title:   windowTitle,
		ShowFPS: *showFPS,
	}); err != nil {
		log.Fatal(err)
	}
}
