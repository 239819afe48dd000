/*
Headless demo of the frame-graph renderer. Pass a TOML graph config as the
first argument to drive the testbed from a file (with hot reload), or run
without arguments to use the built-in graph.
*/
package main

import (
	"os"

	"github.com/emberengine/ember/engine/core"
	"github.com/emberengine/ember/testbed"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	tb, err := testbed.New(path)
	if err != nil {
		core.LogFatal("testbed setup failed: %v", err)
	}
	defer tb.Close()

	if err := tb.Run(240); err != nil {
		core.LogFatal("testbed run failed: %v", err)
	}
}
