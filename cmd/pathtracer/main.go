// Command pathtracer renders a JSON scene description offline and writes
// the resolved image to the path the scene requests.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/loaders"
	"github.com/mario007/mc-pathtracer/pkg/output"
	"github.com/mario007/mc-pathtracer/pkg/renderer"
)

func main() {
	console := flag.Bool("console", false, "print elapsed-time progress lines to stdout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [--console] <scene.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *console); err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath string, console bool) error {
	s, err := loaders.LoadJSONFile(scenePath)
	if err != nil {
		return err
	}

	var log core.Logger = &renderer.NopLogger{}
	if console {
		log = renderer.NewDefaultLogger()
	}

	sched := renderer.NewScheduler(s, log)
	sched.Prepare()

	start := time.Now()
	for !sched.Render(100 * time.Millisecond) {
		if console {
			fmt.Fprintf(os.Stdout, "rendering... %s elapsed\n", time.Since(start).Round(time.Second))
		}
	}

	if err := output.WriteImage(s.OutputPath, sched.Image(), s.Tonemap); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "wrote %s in %s\n", s.OutputPath, time.Since(start).Round(time.Millisecond))
	return nil
}
