// Command valleycheck verifies the Concurrencia valley model: it proves the
// safety properties over every interleaving, checks the progress targets for
// starvation, and prints full counterexample traces when a check fails.
//
// Usage:
//
//	valleycheck -villages 2
//	valleycheck -villages 2 -groups 6            # misconfigured on purpose
//	valleycheck -villages 2 -dot reachable.dot   # dump the state graph
//	valleycheck -villages 2 -walk 40 -seed 7     # one random execution
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ecranney/eng-village-circuit/checking"
	"github.com/ecranney/eng-village-circuit/graph"
	"github.com/ecranney/eng-village-circuit/lts"
	"github.com/ecranney/eng-village-circuit/sim"
	"github.com/ecranney/eng-village-circuit/valley"
)

func main() {
	var (
		villages  = flag.Int("villages", valley.DefaultVillages, "number of villages in the circuit")
		groups    = flag.Int("groups", 0, "maximum number of groups in the valley (default 2*villages+1)")
		maxStates = flag.Int("max-states", graph.DefaultMaxStates, "abort exploration beyond this many states")
		target    = flag.String("progress", "", "check a single progress target instead of all of them")
		dotFile   = flag.String("dot", "", "write the reachable-state graph to this file in DOT format")
		walkSteps = flag.Int("walk", 0, "fire this many random actions and print the trace")
		seed      = flag.Int64("seed", 1, "seed for the random walk")
	)
	flag.Parse()

	system, err := valley.New(
		valley.Config{Villages: *villages, MaxGroups: *groups},
		valley.WithMaxStates(*maxStates),
	)
	if err != nil {
		log.Fatalf("valleycheck: %v", err)
	}

	if *dotFile != "" {
		if err := writeDOT(system, *dotFile); err != nil {
			log.Fatalf("valleycheck: %v", err)
		}
	}
	if *walkSteps > 0 {
		trace := sim.NewWalker(system.Machine(), *seed).Walk(*walkSteps)
		fmt.Printf("random walk (%v steps): %v\n", len(trace), lts.Labels(trace))
	}

	failed := !checkSafety(system)
	if !checkProgress(system, *target) {
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

func checkSafety(system *valley.System) bool {
	violations, err := system.VerifySafety()
	if err != nil {
		log.Fatalf("valleycheck: %v", err)
	}
	ok, report := checking.Report(violations)
	fmt.Println(report)
	return ok
}

func checkProgress(system *valley.System, only string) bool {
	targets := []string{only}
	if only == "" {
		targets = maps.Keys(system.Targets())
		slices.Sort(targets)
	}
	ok := true
	for _, target := range targets {
		witness, err := system.VerifyProgress(target)
		if err != nil {
			log.Fatalf("valleycheck: %v", err)
		}
		if witness != nil {
			fmt.Printf("%v: %v\n", target, witness)
			ok = false
			continue
		}
		fmt.Printf("%v: no starvation\n", target)
	}
	return ok
}

func writeDOT(system *valley.System, path string) error {
	g, err := graph.Explore(system.Machine())
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.Export(f)
}
