// Script to count the nodes, information sets and strategies of the
// reference tree games.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"

	"github.com/timpalpant/gameforms"
	"github.com/timpalpant/gameforms/cfrtree"
	"github.com/timpalpant/gameforms/internal/config"
	"github.com/timpalpant/gameforms/internal/fixtures"
)

func main() {
	cfg, err := config.LoadCommands()
	if err != nil {
		// glog is not usable before flag.Parse.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	seed := flag.Int64("seed", 123, "Seed for sampling chance nodes")
	debugAddr := flag.String("debug_addr", cfg.DebugAddr, "Address to serve pprof and expvar on")
	flag.Parse()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	rng := rand.New(rand.NewSource(*seed))
	for _, name := range fixtures.Names() {
		g, err := gameforms.ReadGame(fixtures.Loaders[name])
		if err != nil {
			glog.Fatal(err)
		}
		if !g.IsTree() {
			glog.V(1).Infof("Skipping table game %s", name)
			continue
		}

		root, err := cfrtree.New(g, rng)
		if err != nil {
			glog.Fatal(err)
		}

		counts := countNodesParallel(root)
		glog.Infof("%s: %d nodes (%d terminal, %d player, %d chance), %d infosets, %d strategies",
			name, counts.Total(), counts.Terminal, counts.Player, counts.Chance,
			counts.InfoSets, len(g.Strategies()))
	}
}

// countNodesParallel counts each subtree of the root in its own goroutine.
func countNodesParallel(root cfr.GameTreeNode) cfrtree.Counts {
	if root.NumChildren() == 0 {
		return cfrtree.Count(root)
	}

	var total cfrtree.Counts
	var wg sync.WaitGroup
	var mu sync.Mutex
	children := make([]cfr.GameTreeNode, root.NumChildren())
	for i := range children {
		children[i] = root.GetChild(i)
	}

	for _, child := range children {
		wg.Add(1)
		go func(child cfr.GameTreeNode) {
			defer wg.Done()
			n := cfrtree.Count(child)
			mu.Lock()
			total.Terminal += n.Terminal
			total.Player += n.Player
			total.Chance += n.Chance
			mu.Unlock()
		}(child)
	}
	wg.Wait()

	// Information sets may span subtrees, so they are counted once over
	// the whole tree.
	total.InfoSets = countInfoSets(root)
	switch root.Type() {
	case cfr.ChanceNodeType:
		total.Chance++
	case cfr.PlayerNodeType:
		total.Player++
	}
	root.Close()
	return total
}

func countInfoSets(root cfr.GameTreeNode) int {
	seen := make(map[string]struct{})
	cfrtree.Visit(root, func(node cfr.GameTreeNode) {
		if node.Type() == cfr.PlayerNodeType {
			seen[node.InfoSet(node.Player()).Key()] = struct{}{}
		}
	})
	return len(seen)
}
