// Iteratively eliminates dominated strategies from a reference game until
// no strategy is dominated.
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/gameforms"
	"github.com/timpalpant/gameforms/internal/config"
	"github.com/timpalpant/gameforms/internal/fixtures"
	"github.com/timpalpant/gameforms/support"
)

func main() {
	cfg, err := config.LoadCommands()
	if err != nil {
		// glog is not usable before flag.Parse.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	game := flag.String("game", cfg.Game,
		fmt.Sprintf("Reference game to solve, one of: %s", strings.Join(fixtures.Names(), ", ")))
	strict := flag.Bool("strict", cfg.Strict, "Only eliminate strictly dominated strategies")
	maxRounds := flag.Int("max_rounds", cfg.MaxRounds, "Maximum number of elimination rounds")
	debugAddr := flag.String("debug_addr", cfg.DebugAddr, "Address to serve pprof and expvar on")
	flag.Parse()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	loader, ok := fixtures.Loaders[*game]
	if !ok {
		glog.Fatalf("Unknown game: %q", *game)
	}

	g, err := gameforms.ReadGame(loader)
	if err != nil {
		glog.Fatal(err)
	}

	result, rounds, err := solve(support.Full(g), *strict, *maxRounds)
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Converged after %d rounds: %v", rounds, result)
	for _, p := range g.Players() {
		fmt.Fprintf(os.Stdout, "%s:", p.Label())
		for _, s := range result.PlayerStrategies(p) {
			fmt.Fprintf(os.Stdout, " %s", s.Label())
		}
		fmt.Fprintln(os.Stdout)
	}
}

// solve runs elimination rounds until a round removes nothing.
func solve(p *support.Profile, strict bool, maxRounds int) (*support.Profile, int, error) {
	for round := 1; round <= maxRounds; round++ {
		next, err := support.UndominatedStrategiesSolve(p, strict)
		if err != nil {
			return nil, round, err
		}

		if next.Equal(p) {
			return p, round - 1, nil
		}

		glog.Infof("Round %d: %d -> %d strategies", round, p.Len(), next.Len())
		p = next
	}

	return nil, maxRounds, errors.Errorf("no fixed point after %d rounds", maxRounds)
}
