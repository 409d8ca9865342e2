package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/beamphys/beamgen/internal/analysis"
	"github.com/beamphys/beamgen/internal/automation"
	"github.com/beamphys/beamgen/internal/beam"
	"github.com/beamphys/beamgen/internal/config"
	"github.com/beamphys/beamgen/internal/export"
	"github.com/beamphys/beamgen/internal/phasespace"
	"github.com/beamphys/beamgen/internal/physics"
	"github.com/beamphys/beamgen/internal/storage"
	"github.com/beamphys/beamgen/internal/viz"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool

	// generate parameters
	species    string
	momentum   float64
	particles  int
	numSlices  int
	seed       uint64
	source     string
	inputFile  string
	inputRows  int
	configFile string
	preset     string
	outFile    string
	dryRun     bool

	// twiss overrides
	betaX  float64
	alphaX float64
	emitX  float64
	betaY  float64
	alphaY float64
	emitY  float64
	dppRMS float64
	meanX  float64
	meanPX float64
	meanY  float64
	meanPY float64
	meanD  float64

	// analysis options
	profileCol string
	bins       int
	sliceN     int
	outDir     string

	// plot axes
	plotX   string
	plotY   string
	svgFile string

	// sweep and trial parameters
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	trialCount int
)

// main is the entry point for the beamgen CLI; it registers commands and
// flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "beamgen",
		Short: "particle beam phase-space generator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".beamgen", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a beam distribution",
		RunE:  runGenerate,
	}
	genCmd.Flags().StringVar(&species, "species", config.DefaultSpecies, "particle species")
	genCmd.Flags().Float64Var(&momentum, "momentum", 0, "beam momentum (MeV/c)")
	genCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	genCmd.Flags().IntVar(&numSlices, "slices", config.DefaultSlices, "number of beam slices")
	genCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	genCmd.Flags().StringVar(&source, "source", "twiss", "distribution source (twiss, sigma, file, none)")
	genCmd.Flags().StringVar(&inputFile, "file", "", "CSV distribution for the file source")
	genCmd.Flags().IntVar(&inputRows, "rows", 0, "particles to keep from the file (0 keeps all)")
	genCmd.Flags().Float64Var(&betaX, "beta-x", 1, "horizontal beta function (m)")
	genCmd.Flags().Float64Var(&alphaX, "alpha-x", 0, "horizontal alpha function")
	genCmd.Flags().Float64Var(&emitX, "emit-x", config.DefaultEmit, "horizontal emittance (m.rad)")
	genCmd.Flags().Float64Var(&betaY, "beta-y", 1, "vertical beta function (m)")
	genCmd.Flags().Float64Var(&alphaY, "alpha-y", 0, "vertical alpha function")
	genCmd.Flags().Float64Var(&emitY, "emit-y", config.DefaultEmit, "vertical emittance (m.rad)")
	genCmd.Flags().Float64Var(&dppRMS, "dpp-rms", config.DefaultDppRMS, "momentum spread")
	genCmd.Flags().Float64Var(&meanX, "x0", 0, "horizontal mean position (m)")
	genCmd.Flags().Float64Var(&meanPX, "px0", 0, "horizontal mean angle (rad)")
	genCmd.Flags().Float64Var(&meanY, "y0", 0, "vertical mean position (m)")
	genCmd.Flags().Float64Var(&meanPY, "py0", 0, "vertical mean angle (rad)")
	genCmd.Flags().Float64Var(&meanD, "dpp0", 0, "mean momentum offset")
	genCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	genCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	genCmd.Flags().StringVar(&outFile, "out", "", "also write the distribution to a CSV file")
	genCmd.Flags().BoolVar(&dryRun, "dry-run", false, "skip saving the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [run_id|file.csv]",
		Short: "moments and twiss estimates for a distribution",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	profileCmd := &cobra.Command{
		Use:   "profile [run_id|file.csv]",
		Short: "plot column profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfile,
	}
	profileCmd.Flags().StringVar(&profileCol, "col", "", "single column to plot")
	profileCmd.Flags().IntVar(&bins, "bins", 40, "histogram bins")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id|file.csv]",
		Short: "scatter plot of a phase-space projection",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&plotX, "x", "Y", "x-axis column")
	plotCmd.Flags().StringVar(&plotY, "y", "T", "y-axis column")
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the plot as an SVG file")

	sliceCmd := &cobra.Command{
		Use:   "slice [run_id|file.csv]",
		Short: "split a distribution into longitudinal slices",
		Args:  cobra.ExactArgs(1),
		RunE:  runSlice,
	}
	sliceCmd.Flags().IntVar(&sliceN, "n", 4, "number of slices")
	sliceCmd.Flags().StringVar(&outDir, "out-dir", "", "write each slice as a CSV file")

	viewCmd := &cobra.Command{
		Use:   "view [run_id|file.csv]",
		Short: "interactive phase-space explorer",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().IntVar(&sliceN, "n", 4, "number of slices")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata and distribution to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [species]",
		Short: "list preset configurations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresetConfigs,
	}

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list known particle species",
		RunE:  listSpecies,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [file.yaml]",
		Short: "build and store a scripted sequence of beams",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep a twiss parameter and measure the generated optics",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&species, "species", config.DefaultSpecies, "particle species")
	sweepCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particles per sweep point")
	sweepCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "base config file (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "base preset configuration")
	sweepCmd.Flags().StringVar(&sweepParam, "param", beam.TwissBetaX, "twiss parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 1, "lowest parameter value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 10, "highest parameter value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of sweep points")

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "repeat a generation with fresh seeds and report the emittance spread",
		RunE:  runTrials,
	}
	trialsCmd.Flags().StringVar(&species, "species", config.DefaultSpecies, "particle species")
	trialsCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particles per trial")
	trialsCmd.Flags().Uint64Var(&seed, "seed", 0, "base seed for the trial set")
	trialsCmd.Flags().StringVar(&configFile, "config", "", "base config file (yaml)")
	trialsCmd.Flags().StringVar(&preset, "preset", "", "base preset configuration")
	trialsCmd.Flags().IntVar(&trialCount, "n", 10, "number of trials")

	rootCmd.AddCommand(genCmd, listCmd, statsCmd, profileCmd, plotCmd, sliceCmd, viewCmd,
		exportCmd, presetsCmd, speciesCmd, batchCmd, sweepCmd, trialsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	b, err := cfg.Build()
	if err != nil {
		return err
	}
	slog.Debug("beam built", "species", cfg.Species, "source", cfg.Source, "particles", b.Particles())
	if b.Empty() {
		fmt.Println("empty beam (no distribution source)")
		return nil
	}

	fmt.Printf("generated %s beam: %d particles\n", cfg.Species, b.Particles())
	if b.Kinematics() != nil {
		brho, err := b.Brho()
		if err != nil {
			return err
		}
		fmt.Printf("momentum: %.3f MeV/c  rigidity: %.4f T.m\n", b.Kinematics().Momentum(), brho)
	}
	fmt.Println()

	if err := printSummary(b.Distribution()); err != nil {
		return err
	}
	printTwissEstimate(b.Distribution())

	if outFile != "" {
		if err := b.Distribution().WriteCSVFile(outFile); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", outFile)
	}

	if dryRun {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta := storage.RunMetadata{
		Species:  cfg.Species,
		Source:   cfg.Source,
		Slices:   cfg.Slices,
		Seed:     cfg.Seed,
		Momentum: cfg.Momentum,
	}
	if cfg.Source == "twiss" {
		meta.Params = cfg.Twiss
	}
	if brho, err := b.Brho(); err == nil {
		meta.Brho = brho
	}
	runID, err := st.Save(meta, b.Distribution())
	if err != nil {
		return err
	}
	slog.Debug("run saved", "id", runID, "dir", dataDir)
	fmt.Printf("\nrun id: %s\n", runID)

	return nil
}

// resolveConfig builds the effective beam config: defaults, then
// preset, then config file, then any changed CLI flags on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(species, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(species))
		}
		cfg = p.Clone()
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("species") {
		cfg.Species = species
	}
	if cmd.Flags().Changed("momentum") {
		cfg.Momentum = momentum
	}
	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("slices") {
		cfg.Slices = numSlices
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("source") {
		cfg.Source = source
	}
	if cmd.Flags().Changed("file") {
		cfg.Source = "file"
		cfg.File.Path = inputFile
	}
	if cmd.Flags().Changed("rows") {
		cfg.File.Rows = inputRows
	}

	twissOverrides := map[string]struct {
		flag  string
		value float64
	}{
		beam.TwissBetaX:  {"beta-x", betaX},
		beam.TwissAlphaX: {"alpha-x", alphaX},
		beam.TwissEmitX:  {"emit-x", emitX},
		beam.TwissBetaY:  {"beta-y", betaY},
		beam.TwissAlphaY: {"alpha-y", alphaY},
		beam.TwissEmitY:  {"emit-y", emitY},
		beam.TwissDppRMS: {"dpp-rms", dppRMS},
		beam.TwissX:      {"x0", meanX},
		beam.TwissPX:     {"px0", meanPX},
		beam.TwissY:      {"y0", meanY},
		beam.TwissPY:     {"py0", meanPY},
		beam.TwissDpp:    {"dpp0", meanD},
	}
	for key, o := range twissOverrides {
		if cmd.Flags().Changed(o.flag) {
			if cfg.Twiss == nil {
				cfg.Twiss = config.TwissConfig{}
			}
			cfg.Twiss[key] = o.value
		}
	}

	return cfg, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSPECIES\tSOURCE\tTIME\tPARTICLES\tSLICES\tMOMENTUM")

	for _, run := range runs {
		mom := "-"
		if run.Momentum > 0 {
			mom = fmt.Sprintf("%.1f", run.Momentum)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID,
			run.Species,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Particles,
			run.Slices,
			mom,
		)
	}

	return w.Flush()
}

func runStats(cmd *cobra.Command, args []string) error {
	tab, meta, err := resolveTable(args[0])
	if err != nil {
		return err
	}

	if meta != nil {
		fmt.Printf("run: %s\n", meta.ID)
		fmt.Printf("species: %s\n", meta.Species)
		fmt.Printf("source: %s\n", meta.Source)
		if meta.Momentum > 0 {
			fmt.Printf("momentum: %.3f MeV/c\n", meta.Momentum)
		}
	}
	fmt.Printf("particles: %d\n\n", tab.NumRows())

	if err := printSummary(tab); err != nil {
		return err
	}
	printTwissEstimate(tab)

	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	tab, _, err := resolveTable(args[0])
	if err != nil {
		return err
	}

	labels := tab.Labels()
	if profileCol != "" {
		labels = []string{profileCol}
	}
	for _, label := range labels {
		xs, err := tab.Column(label)
		if err != nil {
			return err
		}
		graph := viz.HistogramPlot(xs, bins, 80, 10, label+" profile")
		if graph == "" {
			continue
		}
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func runSlice(cmd *cobra.Command, args []string) error {
	tab, meta, err := resolveTable(args[0])
	if err != nil {
		return err
	}

	n := sliceN
	if !cmd.Flags().Changed("n") && meta != nil && meta.Slices > 0 {
		n = meta.Slices
	}

	b, err := beam.NewFromTable(tab, beam.WithSlices(n))
	if err != nil {
		return err
	}
	seq, err := b.Slices()
	if err != nil {
		return err
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLICE\tPARTICLES\tMEAN Y\tSIGMA Y\tMEAN D\tSIGMA D")

	i := 0
	for chunk := range seq {
		sum := analysis.Summarize(chunk)
		fmt.Fprintf(w, "%d\t%d\t%.4e\t%.4e\t%.4e\t%.4e\n",
			i, chunk.NumRows(), sum[0].Mean, sum[0].Sigma, sum[4].Mean, sum[4].Sigma)
		if outDir != "" {
			path := filepath.Join(outDir, fmt.Sprintf("slice_%03d.csv", i))
			if err := chunk.WriteCSVFile(path); err != nil {
				return err
			}
		}
		i++
	}

	return w.Flush()
}

func runView(cmd *cobra.Command, args []string) error {
	tab, meta, err := resolveTable(args[0])
	if err != nil {
		return err
	}

	n := sliceN
	opts := []beam.Option{}
	if meta != nil {
		if !cmd.Flags().Changed("n") && meta.Slices > 0 {
			n = meta.Slices
		}
		if p, err := physics.Species(meta.Species); err == nil {
			opts = append(opts, beam.WithSpecies(p))
		}
	}
	opts = append(opts, beam.WithSlices(n))

	b, err := beam.NewFromTable(tab, opts...)
	if err != nil {
		return err
	}
	e, err := viz.NewExplorer(b)
	if err != nil {
		return err
	}

	p := tea.NewProgram(e)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	tab, _, err := resolveTable(args[0])
	if err != nil {
		return err
	}

	out, err := viz.Scatter(tab, plotX, plotY, 70, 20)
	if err != nil {
		return err
	}
	fmt.Print(out)

	if svgFile != "" {
		if err := export.WriteScatterSVG(svgFile, tab, plotX, plotY, 640, 480); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}

	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	tab, err := st.LoadDistribution(runID)
	if err != nil {
		return err
	}

	if outFile != "" {
		return storage.ExportJSON(outFile, *meta, tab)
	}
	return storage.ExportJSONStdout(*meta, tab)
}

func listPresetConfigs(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		names := config.ListPresets(args[0])
		if len(names) == 0 {
			fmt.Printf("no presets for species: %s\n", args[0])
			return nil
		}
		fmt.Printf("presets for %s:\n", args[0])
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	for _, sp := range physics.SpeciesNames() {
		names := config.ListPresets(sp)
		if len(names) == 0 {
			continue
		}
		fmt.Printf("%s:\n", sp)
		for _, name := range names {
			p := config.GetPreset(sp, name)
			fmt.Printf("  %-14s %s source, %d particles, %d slices\n", name, p.Source, p.Particles, p.Slices)
		}
	}
	return nil
}

func listSpecies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS (MeV/c^2)\tCHARGE")
	for _, name := range physics.SpeciesNames() {
		p, err := physics.Species(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.6f\t%+d\n", p.Name, p.Mass, p.Charge)
	}
	return w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	batch, err := automation.LoadBatch(args[0])
	if err != nil {
		return err
	}
	if batch.Description != "" {
		fmt.Printf("%s: %s\n", batch.Name, batch.Description)
	}

	st := storage.New(dataDir)
	ids, err := automation.RunBatch(batch, st)
	if err != nil {
		return err
	}

	fmt.Printf("\nstored %d runs:\n", len(ids))
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	points, err := automation.RunSweep(&automation.Sweep{
		Base:  base,
		Param: sweepParam,
		Min:   sweepMin,
		Max:   sweepMax,
		Steps: sweepSteps,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tEMIT X\tBETA X\tALPHA X\tEMIT Y\tBETA Y\n", sweepParam)
	data := make([]float64, len(points))
	for i, p := range points {
		fmt.Fprintf(w, "%.6g\t%.4e\t%.4f\t%.4f\t%.4e\t%.4f\n",
			p.Value, p.Twiss.EmitX, p.Twiss.BetaX, p.Twiss.AlphaX, p.Twiss.EmitY, p.Twiss.BetaY)
		data[i] = p.Twiss.BetaX
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("measured beta x across the sweep"),
	))
	return nil
}

func runTrials(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := automation.RunTrials(base, trialCount)
	if err != nil {
		return err
	}

	fmt.Printf("\n%d trials, %d particles each\n", res.Trials, base.Particles)
	fmt.Printf("emit x: %.4e +/- %.4e (%.2f%%)\n", res.MeanEmitX, res.SigmaEmitX, 100*res.SigmaEmitX/res.MeanEmitX)
	fmt.Printf("emit y: %.4e +/- %.4e (%.2f%%)\n", res.MeanEmitY, res.SigmaEmitY, 100*res.SigmaEmitY/res.MeanEmitY)
	return nil
}

// resolveTable loads a distribution either from a stored run or, when
// the argument names a CSV file, straight from disk. Run metadata is
// nil for file arguments.
func resolveTable(arg string) (*phasespace.Table, *storage.RunMetadata, error) {
	if strings.HasSuffix(arg, ".csv") {
		tab, err := phasespace.ReadCSVFile(arg)
		return tab, nil, err
	}
	st := storage.New(dataDir)
	meta, err := st.Load(arg)
	if err != nil {
		return nil, nil, err
	}
	tab, err := st.LoadDistribution(arg)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("loaded distribution", "run", arg, "rows", tab.NumRows())
	return tab, meta, nil
}

func printSummary(t *phasespace.Table) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COL\tMEAN\tSIGMA\tMIN\tMAX")
	for _, cs := range analysis.Summarize(t) {
		fmt.Fprintf(w, "%s\t%.6e\t%.6e\t%.6e\t%.6e\n", cs.Label, cs.Mean, cs.Sigma, cs.Min, cs.Max)
	}
	return w.Flush()
}

func printTwissEstimate(t *phasespace.Table) {
	est, err := analysis.EstimateTwiss(t)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("emit x: %.4e  beta x: %.4f  alpha x: %.4f\n", est.EmitX, est.BetaX, est.AlphaX)
	fmt.Printf("emit y: %.4e  beta y: %.4f  alpha y: %.4f\n", est.EmitY, est.BetaY, est.AlphaY)
	fmt.Printf("dp/p: %.4e +/- %.4e\n", est.MeanDpp, est.SigmaDpp)
}
