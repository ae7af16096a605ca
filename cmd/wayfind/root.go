package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/wayfind/exptree"
	"github.com/katalvlaran/wayfind/problem"
	"github.com/katalvlaran/wayfind/search"
)

var rootCmd = &cobra.Command{
	Use:   "wayfind <file> <method>",
	Short: "Wayfind runs classical route searches over a problem file",
	Long: `Wayfind loads a four-section problem file (Nodes, Edges, Origin,
Destinations) and walks its graph with one of the classical search
strategies: BFS, DFS, GBFS, AS (alias A*), CUS1 (cost-first) or CUS2
(weighted A*). Append -all to a method token to keep searching until
every reachable goal has a path.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

// Execute runs the root command and exits nonzero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Float64("weight", search.DefaultWeight, "heuristic multiplier for CUS2")
	rootCmd.Flags().Bool("check", false, "report arcs cheaper than the straight-line distance")
	rootCmd.Flags().Bool("tree", false, "print the exploration tree after the result")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging to stderr")
}

func runSearch(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	setupLogging(verbose)

	filename, token := args[0], strings.ToUpper(strings.TrimSpace(args[1]))
	method, all, err := search.ParseMethod(token)
	if err != nil {
		return err
	}

	p, err := problem.Load(filename)
	if err != nil {
		return err
	}
	slog.Debug("problem loaded",
		"nodes", p.Graph.NodeCount(),
		"arcs", p.Graph.ArcCount(),
		"origin", p.Origin,
		"destinations", p.Destinations,
		"bound", p.Graph.Bound())

	if check, _ := cmd.Flags().GetBool("check"); check {
		reportAdmissibility(p)
	}

	weight, _ := cmd.Flags().GetFloat64("weight")
	opts := []search.Option{search.WithWeight(weight)}

	var trace search.Trace
	if all {
		res, errAll := search.RunAll(method, p.Graph, p.Origin, p.Destinations, opts...)
		if errAll != nil {
			return errAll
		}
		trace = res.Trace
		printAll(filename, token, p.Destinations, res)
	} else {
		res, errRun := search.Run(method, p.Graph, p.Origin, p.Destinations, opts...)
		if errRun != nil {
			return errRun
		}
		trace = res.Trace
		printOne(filename, token, res)
	}

	if showTree, _ := cmd.Flags().GetBool("tree"); showTree {
		printTree(trace)
	}

	return nil
}

// setupLogging routes diagnostics to stderr so stdout stays reserved
// for the result block. Debug level requires --verbose.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// printOne writes the single-goal result block.
func printOne(filename, token string, res *search.Result) {
	fmt.Printf("%s %s\n", filename, token)
	if !res.Found() {
		fmt.Println("No path found.")
		return
	}
	fmt.Printf("%s %d\n", res.Goal, res.Expanded)
	fmt.Println(strings.Join(res.Path, " -> "))
}

// printAll writes the multi-goal result block: a reached/total summary
// and one enumerated path per reached goal, in lexicographic order.
func printAll(filename, token string, destinations []string, res *search.AllResult) {
	fmt.Printf("%s %s\n", filename, token)
	goals := res.Goals()
	if len(goals) == 0 {
		fmt.Println("No path found.")
		return
	}
	fmt.Printf("%d/%d goals reached, %d nodes expanded\n",
		len(goals), countDistinct(destinations), res.Expanded)
	for i, goal := range goals {
		fmt.Printf("%d) %s: %s\n", i+1, goal, strings.Join(res.Paths[goal], " -> "))
	}
	promptGoal(goals, res)
}

// countDistinct counts unique IDs; the destinations line may repeat one.
func countDistinct(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// promptGoal lets an interactive user pick one reached goal and
// re-prints its goal/expanded/path block, the hand-off for an external
// display layer. Skipped when stdin is not a terminal.
func promptGoal(goals []string, res *search.AllResult) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	fmt.Printf("Select a goal to visualize [1-%d]: ", len(goals))
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	k, err := strconv.Atoi(line)
	if err != nil || k < 1 || k > len(goals) {
		fmt.Fprintf(os.Stderr, "invalid selection: %s\n", line)
		return
	}
	goal := goals[k-1]
	fmt.Printf("%s %d\n", goal, res.Expanded)
	fmt.Println(strings.Join(res.Paths[goal], " -> "))
}

// reportAdmissibility warns about every arc cheaper than the
// straight-line distance between its endpoints; such arcs void the A*
// optimality guarantee. A clean graph logs at info level only.
func reportAdmissibility(p *problem.Problem) {
	violations, err := search.CheckAdmissible(p.Graph)
	if err != nil {
		slog.Error("admissibility check failed", "err", err)
		return
	}
	if len(violations) == 0 {
		slog.Info("heuristic is admissible for this graph")
		return
	}
	for _, v := range violations {
		slog.Warn("arc undercuts straight-line distance",
			"from", v.From, "to", v.To, "cost", v.Cost, "straight", v.Straight)
	}
}

// printTree renders the exploration tree in pre-order, one node per
// line, indented by depth and tagged with its first-pop ordinal.
func printTree(trace search.Trace) {
	t, err := exptree.FromTrace(trace)
	if err != nil {
		slog.Error("exploration tree", "err", err)
		return
	}
	fmt.Println("exploration tree:")
	printNode(t.Root, 0)
}

func printNode(n *exptree.Node, depth int) {
	fmt.Printf("%s%s (%d)\n", strings.Repeat("  ", depth), n.ID, n.Order)
	for _, c := range n.Children {
		printNode(c, depth+1)
	}
}
