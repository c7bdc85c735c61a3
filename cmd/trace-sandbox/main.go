// trace-sandbox draws a partitioned scene in the terminal and shows how the
// fixed-point kernel classifies the viewer and intersects its shot with each wall.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fixedcore/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene YAML file (default: built-in scene)")
	debugLog := flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	flag.Parse()

	if logFile := setupLogging(*debugLog); logFile != nil {
		defer logFile.Close()
	}

	sc := scene.Default()
	if *scenePath != "" {
		var err error
		if sc, err = scene.Load(*scenePath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTRACE-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			log.Printf("crash: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sb, err := NewSandbox(screen, sc)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	log.Printf("trace-sandbox started: %d nodes, %d subsectors", len(sc.Nodes), sc.Subsectors)
	run(screen, sb)
	screen.Fini()
}

func run(screen tcell.Screen, sb *Sandbox) {
	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	sb.Draw()
	for ev := range eventChan {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !sb.HandleKey(ev) {
				return
			}
		case *tcell.EventResize:
			sb.Resize()
			screen.Sync()
		}
		sb.Draw()
	}
}
