package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtsp/builder"
	"github.com/katalvlaran/lvtsp/config"
	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/printer"
	"github.com/katalvlaran/lvtsp/reader"
	"github.com/katalvlaran/lvtsp/tsp"
)

const defaultConfigPath = "lvtsp.yaml"

var errNoDataset = errors.New("name a dataset or pass --edges")

// app carries the state shared by every command once PersistentPreRunE ran.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// persistent flags
	configPath string
	dataDir    string
	logLevel   string

	// ad-hoc dataset flags
	edges    string
	nodes    string
	shipping bool

	// heuristic flags
	eps       float64
	maxSweeps int

	cfg config.Config
	log *slog.Logger
	pr  *printer.Printer
}

// newRootCmd wires the command tree to the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "lvtsp",
		Short: "Exact and approximate TSP solvers over CSV graph datasets",
		Long: `lvtsp loads a graph from an edge file (and optionally a coordinate file)
and computes Travelling Salesman tours starting and ending at vertex 0.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", defaultConfigPath, "dataset catalogue (YAML); built-in catalogue when missing")
	pf.StringVar(&a.dataDir, "data-dir", "", "directory relative dataset paths are resolved against")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	datasetsCmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the datasets of the catalogue",
		Args:  cobra.NoArgs,
		RunE:  a.runDatasets,
	}
	datasetsCmd.Flags().String("init", "", "write the active catalogue as YAML to this path")

	showCmd := &cobra.Command{
		Use:   "show [dataset]",
		Short: "Print every coordinate and edge of a graph",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runShow,
	}
	exactCmd := &cobra.Command{
		Use:   "exact [dataset]",
		Short: "Optimal tour by branch and bound over direct edges",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.solver(tsp.BranchAndBound, "Backtracking Algorithm"),
	}
	triangularCmd := &cobra.Command{
		Use:   "triangular [dataset]",
		Short: "MST preorder tour (shipping pricing for shipping datasets)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.solver(tsp.Triangular, "Triangular Approximation Heuristic"),
	}
	heuristicCmd := &cobra.Command{
		Use:   "heuristic [dataset]",
		Short: "Nearest-neighbour tour improved by 2-opt",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.solver(tsp.Heuristic, "Nearest Neighbour + 2-opt"),
	}
	solveCmd := &cobra.Command{
		Use:   "solve [dataset]",
		Short: "Run the solver named by --algo",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runSolve,
	}
	solveCmd.Flags().String("algo", tsp.Heuristic.String(), "exact, triangular, shipping, nearest or heuristic")

	for _, c := range []*cobra.Command{showCmd, exactCmd, triangularCmd, heuristicCmd, solveCmd} {
		f := c.Flags()
		f.StringVar(&a.edges, "edges", "", "edge CSV file (src,dst,weight)")
		f.StringVar(&a.nodes, "nodes", "", "node CSV file (id,longitude,latitude)")
		f.BoolVar(&a.shipping, "shipping", false, "price missing edges with the mean MST distance")
	}
	for _, c := range []*cobra.Command{heuristicCmd, solveCmd} {
		c.Flags().Float64Var(&a.eps, "eps", tsp.DefaultEps, "minimal 2-opt gain")
		c.Flags().IntVar(&a.maxSweeps, "max-sweeps", 0, "bound on 2-opt sweeps (0 = until no move)")
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random geometric graph as edges.csv and nodes.csv",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	gf := generateCmd.Flags()
	gf.Int("n", 10, "number of vertices")
	gf.Int64("seed", 1, "random seed")
	gf.Float64("density", 1, "probability of keeping each non-ring edge")
	gf.String("out", ".", "output directory")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive numbered menu over the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu()
		},
	}

	root.AddCommand(datasetsCmd, showCmd, exactCmd, triangularCmd, heuristicCmd, solveCmd, generateCmd, menuCmd)

	return root
}

// setup loads the catalogue and installs the logger and printer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := newLogger(a.errOut, level)
	if err != nil {
		return err
	}

	a.cfg, a.log, a.pr = cfg, logger, printer.New(a.out)
	a.log.Debug("configuration loaded", "path", a.configPath, "data_dir", cfg.DataDir, "datasets", len(cfg.Datasets))

	return nil
}

func (a *app) runDatasets(cmd *cobra.Command, _ []string) error {
	if path, _ := cmd.Flags().GetString("init"); path != "" {
		if err := config.Save(path, a.cfg); err != nil {
			return err
		}
		a.log.Info("catalogue written", "path", path)
		return nil
	}

	for _, group := range a.cfg.Groups() {
		var items []string
		for _, d := range a.cfg.InGroup(group) {
			item := fmt.Sprintf("%-12s %s", d.Name, d.Label())
			if d.Shipping {
				item += " (shipping)"
			}
			items = append(items, item)
		}
		a.pr.Menu(strings.ToUpper(group), items)
	}

	return nil
}

func (a *app) runShow(_ *cobra.Command, args []string) error {
	g, _, err := a.loadArgs(args)
	if err != nil {
		return err
	}
	a.pr.Content(g)

	return nil
}

// solver returns a RunE that loads the dataset and runs algo on it.
func (a *app) solver(algo tsp.Algorithm, title string) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		g, ds, err := a.loadArgs(args)
		if err != nil {
			return err
		}
		return a.solve(g, ds, algo, title)
	}
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("algo")
	algo, err := tsp.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	g, ds, err := a.loadArgs(args)
	if err != nil {
		return err
	}

	return a.solve(g, ds, algo, "")
}

// solve runs algo on g and prints the outcome. The triangular solver
// switches to shipping pricing for shipping datasets. Solver sentinel
// failures are reported on the console, not returned.
func (a *app) solve(g *core.Graph, ds config.Dataset, algo tsp.Algorithm, title string) error {
	if algo == tsp.Triangular && ds.Shipping {
		algo = tsp.Shipping
	}
	opts := tsp.Options{Algo: algo, Eps: a.eps, MaxSweeps: a.maxSweeps}
	if opts.Eps == 0 {
		opts.Eps = tsp.DefaultEps
	}

	a.log.Debug("solver started", "algorithm", algo, "dataset", ds.Name)
	start := time.Now()
	res, err := tsp.Solve(g, opts)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, tsp.ErrNoTour), errors.Is(err, tsp.ErrNotFullyConnected):
		a.log.Info("solver found no tour", "algorithm", algo, "elapsed", elapsed, "err", err)
		a.pr.Failure(title, err)
		return nil
	case err != nil:
		return fmt.Errorf("%s: %w", algo, err)
	}

	a.log.Info("solver finished", "algorithm", algo, "cost", res.Cost, "elapsed", elapsed)
	a.pr.Result(title, res, elapsed)

	return nil
}

// loadArgs resolves the dataset from a catalogue name or the ad-hoc flags.
func (a *app) loadArgs(args []string) (*core.Graph, config.Dataset, error) {
	var ds config.Dataset
	switch {
	case len(args) == 1:
		d, err := a.cfg.Lookup(args[0])
		if err != nil {
			return nil, ds, err
		}
		ds = a.cfg.Resolve(d)
		ds.Shipping = ds.Shipping || a.shipping
	case a.edges != "":
		ds = config.Dataset{
			Name:     filepath.Base(a.edges),
			Edges:    a.edges,
			Nodes:    a.nodes,
			Shipping: a.shipping,
		}
	default:
		return nil, ds, errNoDataset
	}

	g, err := a.load(ds)

	return g, ds, err
}

// load reads an already resolved dataset.
func (a *app) load(ds config.Dataset) (*core.Graph, error) {
	start := time.Now()
	g, err := reader.LoadFiles(ds.Edges, ds.Nodes)
	if err != nil {
		return nil, err
	}
	a.log.Info("dataset loaded",
		"name", ds.Name,
		"edges_file", ds.Edges,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"coords", g.HasCoords(),
		"elapsed", time.Since(start))

	return g, nil
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	n, _ := f.GetInt("n")
	seed, _ := f.GetInt64("seed")
	density, _ := f.GetFloat64("density")
	dir, _ := f.GetString("out")
	if density < builder.MinProbability || density > builder.MaxProbability {
		return fmt.Errorf("density %g outside [0,1]", density)
	}

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDensity(density)},
		builder.Geometric(n),
	)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err = writeFile(filepath.Join(dir, "edges.csv"), g, reader.WriteEdges); err != nil {
		return err
	}
	if err = writeFile(filepath.Join(dir, "nodes.csv"), g, reader.WriteNodes); err != nil {
		return err
	}
	a.log.Info("graph generated", "dir", dir, "vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", seed)

	return nil
}

func writeFile(path string, g *core.Graph, fn func(io.Writer, *core.Graph) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(f, g); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
