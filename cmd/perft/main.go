// Command perft runs a move-generation node count from a FEN position, used
// to validate board.GenerateMoves and Position.Make/Unmake against known
// node counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shintakezou/gargantua/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN position to search from")
	depth := flag.Int("depth", 5, "search depth in plies")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown")
	repeat := flag.Int("repeat", 1, "repeat perft N times and report aggregate (for steadier timings)")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}

	start := time.Now()

	if *divide {
		results := board.PerftDivide(pos, *depth)
		var total uint64
		for _, r := range results {
			fmt.Printf("%s: %d\n", r.Move, r.Nodes)
			total += r.Nodes
		}
		elapsed := time.Since(start)
		fmt.Printf("\nNodes: %d\n", total)
		fmt.Printf("Time: %s\n", elapsed)
		return
	}

	var nodes uint64
	for i := 0; i < *repeat; i++ {
		nodes = board.Perft(pos, *depth)
	}
	elapsed := time.Since(start)

	var nps float64
	if elapsed.Seconds() > 0 {
		nps = float64(nodes) * float64(*repeat) / elapsed.Seconds()
	}

	fmt.Printf("Depth: %d\n", *depth)
	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %s\n", elapsed)
	fmt.Printf("NPS: %.0f\n", nps)
}
