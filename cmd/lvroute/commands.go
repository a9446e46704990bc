package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/metrics"
)

// newRootCmd wires every subcommand around one app instance.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:   "lvroute",
		Short: "Route queries over a directed multi-criteria network",
		Long: `lvroute loads a records file of VERTEX and EDGE lines and answers
shortest and alternative route queries by distance, time or cost. Every
returned route counts as demand on the edges it uses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.dataFlag, "data", "", "records file to load")
	pf.StringVar(&a.configFlag, "config", "", "YAML config file")
	pf.StringVar(&a.logLevelFlag, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.save, "save", false, "write demand back to the data file after a query")

	root.AddCommand(
		newShortestCmd(a),
		newAlternativesCmd(a),
		newReachableCmd(a),
		newVerticesCmd(a),
		newEdgesCmd(a),
		newStatsCmd(a),
		newMetricsCmd(a),
		newAddVertexCmd(a),
		newUpdateVertexCmd(a),
		newRemoveVertexCmd(a),
		newAddEdgeCmd(a),
		newRemoveEdgeCmd(a),
		newGenerateCmd(a),
	)

	return root
}

func newShortestCmd(a *app) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "shortest FROM TO",
		Short: "Print the cheapest route between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.criterion(cmd, by)
			if err != nil {
				return err
			}
			p, err := a.net.ShortestPath(args[0], args[1], c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case p.Invalid():
				fmt.Fprintf(out, "unknown vertex: %s or %s\n", args[0], args[1])
			case !p.Found():
				fmt.Fprintln(out, p)
			default:
				fmt.Fprintln(out, p)
				for _, e := range p.Edges {
					printEdge(out, e)
				}
			}

			return a.persistIfAsked()
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "criterion: distance, time or cost")

	return cmd
}

func newAlternativesCmd(a *app) *cobra.Command {
	var (
		by string
		k  int
	)
	cmd := &cobra.Command{
		Use:   "alternatives FROM TO",
		Short: "Print up to K simple routes ordered by weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.criterion(cmd, by)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("k") {
				k = a.cfg.Alternatives
			}
			if k < 1 {
				return fmt.Errorf("-k must be at least 1, got %d", k)
			}
			paths, err := a.net.AlternativePaths(cmd.Context(), args[0], args[1], c, k)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(paths) == 0 {
				fmt.Fprintln(out, "no path")
			}
			for i, p := range paths {
				fmt.Fprintf(out, "%d. %s\n", i+1, p)
			}

			return a.persistIfAsked()
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "criterion: distance, time or cost")
	cmd.Flags().IntVarP(&k, "k", "k", 3, "number of routes")

	return cmd
}

func newReachableCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "reachable FROM",
		Short: "List hop counts from a vertex, or the fewest-stops route with --to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if to != "" {
				keys := a.net.FewestStops(args[0], to)
				if keys == nil {
					fmt.Fprintln(out, "no path")
					return nil
				}
				fmt.Fprintln(out, strings.Join(keys, " -> "))
				return nil
			}
			hops, err := a.net.Reachable(args[0])
			if err != nil {
				return err
			}
			for v := range a.net.AllVerticesInKeyOrder() {
				if d, ok := hops[v.Key]; ok {
					fmt.Fprintf(out, "%-6s %d\n", v.Key, d)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target vertex")

	return cmd
}

func newVerticesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vertices",
		Short: "List vertices in key order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for v := range a.net.AllVerticesInKeyOrder() {
				fmt.Fprintf(out, "%-6s %-32s %-16s out=%d\n", v.Key, v.Name, v.Group, a.net.OutDegree(v.Key))
			}

			return nil
		},
	}
}

func newEdgesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edges [KEY]",
		Short: "List every edge, or the edges touching KEY",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				for _, l := range a.net.EdgesOf(args[0]) {
					printEdge(out, l.Edge)
				}
				return nil
			}
			for l := range a.net.AllEdges() {
				printEdge(out, l.Edge)
			}

			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print connection and demand statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			st := a.net.Stats()
			fmt.Fprintf(out, "vertices: %d  edges: %d  total demand: %d\n", st.VertexCount, st.EdgeCount, st.TotalDemand)
			if most, ok := a.net.MostConnected(); ok {
				fmt.Fprintf(out, "most connected: %s (%d)\n", most.Vertex.Key, most.OutDegree)
			}
			if least, ok := a.net.LeastConnected(); ok {
				fmt.Fprintf(out, "least connected: %s (%d)\n", least.Vertex.Key, least.OutDegree)
			}
			fmt.Fprintln(out, "connections:")
			for _, c := range a.net.ConnectionStats() {
				fmt.Fprintf(out, "  %-6s %d\n", c.Vertex.Key, c.OutDegree)
			}
			fmt.Fprintln(out, "most demanded:")
			for _, l := range a.net.MostDemanded(top) {
				fmt.Fprintf(out, "  %s -> %s demand %d\n", l.From.Key, l.To.Key, l.Edge.Demand)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of most demanded edges")

	return cmd
}

func newMetricsCmd(a *app) *cobra.Command {
	var namespace string
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print graph statistics in Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := prometheus.NewRegistry()
			if err := reg.Register(metrics.NewCollector(a.net.Graph(), namespace)); err != nil {
				return err
			}

			return metrics.WriteText(cmd.OutOrStdout(), reg)
		},
	}
	cmd.Flags().StringVar(&namespace, "namespace", "lvroute", "metric name prefix")

	return cmd
}

func newAddVertexCmd(a *app) *cobra.Command {
	var x, y float64
	cmd := &cobra.Command{
		Use:   "add-vertex KEY NAME GROUP",
		Short: "Add a vertex and save the data file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.net.AddVertex(args[0], args[1], args[2], x, y) {
				return fmt.Errorf("vertex %q is empty or already exists", args[0])
			}

			return a.persist()
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "layout x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "layout y coordinate")

	return cmd
}

func newUpdateVertexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update-vertex KEY NAME GROUP",
		Short: "Rename a vertex, keeping its edges and demand, and save",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.net.UpdateVertex(args[0], args[1], args[2]) {
				return fmt.Errorf("vertex %q not found", args[0])
			}

			return a.persist()
		},
	}
}

func newRemoveVertexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-vertex KEY",
		Short: "Remove a vertex with all its edges and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.net.RemoveVertex(args[0]) {
				return fmt.Errorf("vertex %q not found", args[0])
			}

			return a.persist()
		},
	}
}

func newAddEdgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-edge FROM TO DISTANCE TIME COST",
		Short: "Add a directed edge and save",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWeight(args[2:])
			if err != nil {
				return err
			}
			if !a.net.AddEdge(args[0], args[1], w.Distance, w.Time, w.Cost) {
				return fmt.Errorf("edge %s -> %s rejected: unknown vertex or invalid weight", args[0], args[1])
			}

			return a.persist()
		},
	}
}

func newRemoveEdgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-edge FROM TO DISTANCE TIME COST",
		Short: "Remove the first edge matching all three weights and save",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWeight(args[2:])
			if err != nil {
				return err
			}
			if !a.net.RemoveEdge(args[0], args[1], w.Distance, w.Time, w.Cost) {
				return fmt.Errorf("no edge %s -> %s with that weight", args[0], args[1])
			}

			return a.persist()
		},
	}
}

func parseWeight(args []string) (core.Weight, error) {
	var vals [3]float64
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return core.Weight{}, fmt.Errorf("weight %q: %w", s, err)
		}
		vals[i] = v
	}

	return core.Weight{Distance: vals[0], Time: vals[1], Cost: vals[2]}, nil
}

func printEdge(w io.Writer, e *core.Edge) {
	fmt.Fprintf(w, "  %-4s %s -> %s  distance=%s time=%s cost=%s demand=%d\n",
		e.ID, e.From, e.To,
		strconv.FormatFloat(e.Weight.Distance, 'f', -1, 64),
		strconv.FormatFloat(e.Weight.Time, 'f', -1, 64),
		strconv.FormatFloat(e.Weight.Cost, 'f', -1, 64),
		e.Demand)
}
