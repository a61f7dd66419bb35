// Dispatches one expression to the four-operator fleet and prints its
// result, or runs a smoke test against each operator in turn.
//
// For usage details, run orchestrator with the command line flag -h.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Shearerbeard/PESA-equation-services/clog"
	"github.com/Shearerbeard/PESA-equation-services/config"
	"github.com/Shearerbeard/PESA-equation-services/orchestrator"
)

func main() {
	var help bool
	var log bool
	var fixture string
	var smokeTest bool
	var term bool
	var timeout time.Duration

	flag.Usage = usage
	flag.BoolVar(&help, "h", false, "Show usage information")
	flag.BoolVar(&log, "l", false, "Show logging output (for debugging)")
	flag.StringVar(&fixture, "fixture", "nested", "Name of a predefined expression to dispatch")
	flag.BoolVar(&smokeTest, "smoke-test", false, "Run one single-hop request against each operator instead of dispatching -fixture")
	flag.BoolVar(&term, "term", false, "Send term to all four operators and exit")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "Deadline for the whole run: warm-up plus the request")
	flag.Parse()

	if help {
		usage()
		os.Exit(0)
	}
	if log {
		clog.Enable()
	}

	addrs, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	o := orchestrator.New(addrs)
	defer o.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := o.WarmUp(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch {
	case term:
		o.Shutdown(ctx)
	case smokeTest:
		results := o.SmokeTest(ctx)
		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}
		sort.Strings(names)
		failed := false
		for _, name := range names {
			if err := results[name]; err != nil {
				failed = true
				fmt.Printf("%s: FAIL (%v)\n", name, err)
			} else {
				fmt.Printf("%s: ok\n", name)
			}
		}
		if failed {
			os.Exit(1)
		}
	default:
		root, ok := orchestrator.Fixtures[fixture]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown fixture %q; known fixtures: %v\n", fixture, orchestrator.FixtureNames())
			os.Exit(1)
		}
		result, err := o.Dispatch(ctx, root)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(result)
	}
}

func usage() {
	fmt.Print(`usage: orchestrator [-h] [-l] [-fixture name] [-smoke-test] [-term] [-timeout d]

Dispatches a predefined expression (see -fixture) to the operator
fleet and prints its result. Operator addresses are read from
ADDER_ADDR, SUBTRACTOR_ADDR, MULTIPLIER_ADDR and DIVIDER_ADDR (or a
.env file in the working directory).

Flags:
`)
	flag.PrintDefaults()
}
