/*
Package testbed drives the frame graph headlessly: it loads a graph config,
builds the passes and renders a fixed number of frames, reloading the graph
whenever the config file changes on disk.
*/
package testbed

import (
	"sync"

	"github.com/emberengine/ember/engine/config"
	"github.com/emberengine/ember/engine/core"
	"github.com/emberengine/ember/engine/renderer"
	"github.com/emberengine/ember/engine/renderer/headless"
)

// defaultConfig is used when no config path is given: a multisampled
// offscreen scene pass resolved and mipped, followed by a present pass on
// the default framebuffer.
const defaultConfig = `
[graph]
trace = true

[[targets]]
name = "scene"
sample_count = 4
color_buffers = 2
mipmapped = true
depth = true

[[passes]]
name = "world"
target = "scene"
clear_color = [0.1, 0.1, 0.12, 1.0]
clear_depth = 1.0

[[passes]]
name = "present"
clear_color = [0.0, 0.0, 0.0, 1.0]
`

type Testbed struct {
	device  *headless.Device
	watcher *config.Watcher

	mutex sync.Mutex
	graph *renderer.FrameGraph
}

// New builds a testbed from the config at path, or from the built-in default
// when path is empty. A non-empty path is also watched for hot reloads.
func New(path string) (*Testbed, error) {
	var cfg *config.Config
	var err error
	if path == "" {
		cfg, err = config.Parse([]byte(defaultConfig))
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, err
	}

	tb := &Testbed{
		device: headless.New(&headless.Config{SampleCount: 4}),
	}
	if err := tb.rebuild(cfg); err != nil {
		return nil, err
	}

	if path != "" {
		watcher, err := config.NewWatcher(path, func(fresh *config.Config) {
			if err := tb.rebuild(fresh); err != nil {
				core.LogWarn("testbed: rebuilding frame graph failed: %v", err)
			}
		})
		if err != nil {
			return nil, err
		}
		if err := watcher.Start(); err != nil {
			return nil, err
		}
		tb.watcher = watcher
	}

	return tb, nil
}

func (tb *Testbed) rebuild(cfg *config.Config) error {
	graph, _, err := headless.BuildGraph(tb.device, cfg)
	if err != nil {
		return err
	}
	tb.mutex.Lock()
	tb.graph = graph
	tb.mutex.Unlock()
	return nil
}

// Run renders the requested number of frames and logs a summary.
func (tb *Testbed) Run(frames int) error {
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	clock := core.NewClock()
	for frame := 0; frame < frames; frame++ {
		clock.Start()

		tb.mutex.Lock()
		graph := tb.graph
		tb.mutex.Unlock()

		passesBefore := tb.device.RenderPassCount()
		if err := graph.Render(tb.device); err != nil {
			return err
		}

		clock.Update()
		core.MetricsUpdate(clock.Elapsed())
		core.MetricsRecordPasses(tb.device.RenderPassCount() - passesBefore)
	}

	core.LogInfo("testbed: rendered %d frames, %d passes total, last frame ran %d passes",
		frames, tb.device.RenderPassCount(), core.MetricsPassesLastFrame())
	return nil
}

// Close stops the config watcher, if any.
func (tb *Testbed) Close() error {
	if tb.watcher != nil {
		return tb.watcher.Close()
	}
	return nil
}
