package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/convect1d/internal/config"
	"github.com/san-kum/convect1d/internal/convect"
	"github.com/san-kum/convect1d/internal/field"
	"github.com/san-kum/convect1d/internal/metrics"
	"github.com/san-kum/convect1d/internal/storage"
	"github.com/san-kum/convect1d/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir       string
	nx            int
	length        float64
	steps         int
	dt            float64
	speed         float64
	ic            string
	boundary      string
	snapshotEvery int
	configFile    string
	preset        string
	frameRate     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "convect1d",
		Short: "explicit upwind solver for 1-D linear convection",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".convect1d", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the solver and store the result",
		RunE:  runSolver,
	}
	addCaseFlags(runCmd)
	runCmd.Flags().IntVar(&snapshotEvery, "snapshot-every", 0, "record field every k steps (0: initial and final only)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run snapshots to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export full run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the advecting field in the terminal",
		RunE:  runLive,
	}
	addCaseFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, p := range names {
				cfg := config.GetPreset(p)
				fmt.Printf("%-10s nx=%d steps=%d dt=%g ic=%s boundary=%s courant=%.3f\n",
					p, cfg.Nx, cfg.Steps, cfg.Dt, cfg.InitialCondition, cfg.Boundary, cfg.Courant())
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run the same case under wrap and clamp boundaries",
		RunE:  compareBoundaries,
	}
	addCaseFlags(compareCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, liveCmd, presetsCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCaseFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nx, "nx", config.DefaultNx, "number of grid points")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "domain length")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of timesteps")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&speed, "c", config.DefaultSpeed, "wave speed")
	cmd.Flags().StringVar(&ic, "ic", config.DefaultIC, "initial condition (hat|gaussian|sine)")
	cmd.Flags().StringVar(&boundary, "boundary", config.DefaultBoundary, "boundary mode (wrap|clamp)")
}

// resolveConfig merges preset, config file, and CLI flags, in that order of
// increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("nx") {
		cfg.Nx = nx
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("c") {
		cfg.WaveSpeed = speed
	}
	if cmd.Flags().Changed("ic") {
		cfg.InitialCondition = ic
	}
	if cmd.Flags().Changed("boundary") {
		cfg.Boundary = boundary
	}
	if cmd.Flags().Changed("snapshot-every") {
		cfg.SnapshotEvery = snapshotEvery
	}

	return cfg, nil
}

func setupCase(cfg *config.Config) (field.Field, convect.Config, convect.Boundary, error) {
	g := field.Grid{N: cfg.Nx, Length: cfg.Length}

	u0, err := field.InitialCondition(cfg.InitialCondition, g)
	if err != nil {
		return nil, convect.Config{}, convect.Wrap, err
	}

	b, err := convect.ParseBoundary(cfg.Boundary)
	if err != nil {
		return nil, convect.Config{}, convect.Wrap, err
	}

	sc := convect.Config{
		Dx:            g.Dx(),
		Dt:            cfg.Dt,
		C:             cfg.WaveSpeed,
		Steps:         cfg.Steps,
		SnapshotEvery: cfg.SnapshotEvery,
	}
	return u0, sc, b, nil
}

func runSolver(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	u0, sc, b, err := setupCase(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	stepper := convect.New(b)
	for _, m := range metrics.Default(sc.Dx) {
		stepper.AddMetric(m)
	}

	fmt.Printf("advecting %d points for %d steps (courant %.3f, boundary %s)\n",
		cfg.Nx, cfg.Steps, sc.Courant(), b)
	if sc.Courant() > 1 {
		fmt.Println("warning: courant number exceeds 1, the scheme will be unstable")
	}

	start := time.Now()
	result, err := stepper.Run(context.Background(), u0, sc)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println()
	fmt.Println(viz.PlotField(u0, "u(x) initial"))
	fmt.Println()
	fmt.Println(viz.PlotField(result.Final, fmt.Sprintf("u(x) after %d steps", cfg.Steps)))
	fmt.Println()

	meta := storage.RunMetadata{
		Nx:               cfg.Nx,
		Length:           cfg.Length,
		Dx:               sc.Dx,
		Dt:               cfg.Dt,
		WaveSpeed:        cfg.WaveSpeed,
		Steps:            cfg.Steps,
		Courant:          sc.Courant(),
		InitialCondition: cfg.InitialCondition,
		Boundary:         b.String(),
	}
	runID, err := st.Save(meta, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
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
	fmt.Fprintln(w, "ID\tTIME\tNX\tSTEPS\tDT\tC\tCOURANT\tIC\tBOUNDARY")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.4f\t%.2f\t%.3f\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nx,
			run.Steps,
			run.Dt,
			run.WaveSpeed,
			run.Courant,
			run.InitialCondition,
			run.Boundary,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	snaps, times, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("courant: %.3f, boundary: %s\n", meta.Courant, meta.Boundary)
	fmt.Printf("snapshots: %d\n\n", len(snaps))

	first, last := snaps[0], snaps[len(snaps)-1]
	fmt.Println(viz.PlotPair(first, last,
		fmt.Sprintf("u(x) at t=%.3f (blue) and t=%.3f (red)", times[0], times[len(times)-1])))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	snaps, times, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range snaps[0] {
		header = append(header, fmt.Sprintf("u%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, snap := range snaps {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range snap {
			row = append(row, strconv.FormatFloat(val, 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	snaps, times, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, snaps, times)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	u0, sc, b, err := setupCase(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(u0, sc, b, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareBoundaries(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	u0, sc, _, err := setupCase(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("comparing boundary modes (nx=%d, steps=%d, courant=%.3f)\n\n",
		cfg.Nx, cfg.Steps, sc.Courant())

	finals := make(map[string]field.Field)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOUNDARY\tMASS\tMIN\tMAX\tTOTAL_VAR")

	for _, b := range []convect.Boundary{convect.Wrap, convect.Clamp} {
		stepper := convect.New(b)
		for _, m := range metrics.Default(sc.Dx) {
			stepper.AddMetric(m)
		}

		result, err := stepper.Run(context.Background(), u0, sc)
		if err != nil {
			return err
		}

		finals[b.String()] = result.Final
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.6f\t%.6f\n",
			b,
			result.Metrics["mass"],
			result.Metrics["min"],
			result.Metrics["max"],
			result.Metrics["total_variation"],
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	maxDiff := 0.0
	wrap, clamp := finals["wrap"], finals["clamp"]
	for i := range wrap {
		if d := math.Abs(wrap[i] - clamp[i]); d > maxDiff {
			maxDiff = d
		}
	}
	fmt.Printf("\nmax |wrap - clamp| after %d steps: %.6f\n", cfg.Steps, maxDiff)

	return nil
}
