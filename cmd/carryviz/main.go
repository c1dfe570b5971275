package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/carryviz/internal/config"
	"github.com/san-kum/carryviz/internal/export"
	"github.com/san-kum/carryviz/internal/input"
	"github.com/san-kum/carryviz/internal/logging"
	"github.com/san-kum/carryviz/internal/playback"
	"github.com/san-kum/carryviz/internal/trace"
	"github.com/san-kum/carryviz/internal/tui"
)

var (
	l1Flag     string
	l2Flag     string
	example    string
	preset     string
	configFile string
	logLevel   string
	logFile    string
	journal    bool
	theme      string
	interval   time.Duration

	format  string
	outPath string
	stepIdx int
	width   int
	height  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "carryviz",
		Short:        "step through adding two numbers stored as digit lists",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&l1Flag, "l1", "", "first operand, least significant digit first (e.g. \"2,4,3\")")
	pf.StringVar(&l2Flag, "l2", "", "second operand, least significant digit first")
	pf.StringVar(&example, "example", "", "built-in example name")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")
	pf.BoolVar(&journal, "journal", false, "also log to the systemd journal")
	pf.StringVar(&theme, "theme", "", "color theme")
	pf.DurationVar(&interval, "interval", playback.DefaultInterval, "autoplay interval")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print every step of the trace",
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&format, "format", "text", "output format: text, json, csv")
	traceCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "autoplay the trace to stdout without the terminal UI",
		RunE:  runPlay,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "chart carry and result length per step",
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&width, "width", 80, "chart width")
	plotCmd.Flags().IntVar(&height, "height", 10, "chart height")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render one step as svg",
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&stepIdx, "step", -1, "step index (default last)")
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	codeCmd := &cobra.Command{
		Use:   "code",
		Short: "print the traced source listing",
		Run: func(cmd *cobra.Command, args []string) {
			for i, line := range trace.Source {
				fmt.Printf("%2d  %s\n", i+1, line)
			}
		},
	}

	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "list built-in examples and presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("examples:")
			for i, ex := range input.Examples {
				fmt.Printf("  %d %-8s l1=[%s] l2=[%s]  %s\n",
					i+1, ex.Name, input.Format(ex.First), input.Format(ex.Second), ex.Desc)
			}
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s example=%s interval=%v theme=%s\n", name, p.Example, p.Interval, p.Theme)
			}
		},
	}

	rootCmd.AddCommand(traceCmd, playCmd, plotCmd, svgCmd, codeCmd, examplesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, first, second, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// the terminal belongs to the UI, so only a file or the journal gets logs
	log, err := logging.New(logOptions(cfg, false))
	if err != nil {
		return err
	}
	defer log.Close()

	n := tui.NewNotifier()
	ctrl := playback.New(
		playback.WithInputs(first, second),
		playback.WithInterval(cfg.Interval),
		playback.WithLogger(log.Logger),
		playback.WithOnChange(n.Notify),
	)
	defer ctrl.Close()

	log.Info("starting player", "l1", first, "l2", second, "interval", cfg.Interval, "theme", cfg.Theme)
	return tui.Run(ctrl, n, tui.Options{Theme: cfg.Theme, Logger: log.Logger})
}

func runTrace(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	log, first, second, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	tr := trace.Generate(first, second)
	if err := export.WriteFile(outPath, f, tr); err != nil {
		log.Error("trace export failed", "format", f, "out", outPath, "error", err)
		return err
	}
	log.Debug("trace exported", "format", f, "out", outPath, "steps", tr.Len())
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, first, second, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(logOptions(cfg, true))
	if err != nil {
		return err
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	done := make(chan struct{})
	var once sync.Once
	ctrl := playback.New(
		playback.WithInputs(first, second),
		playback.WithInterval(cfg.Interval),
		playback.WithLogger(log.Logger),
		playback.WithOnChange(func(st playback.State) {
			printStep(st)
			if st.AtEnd() {
				once.Do(func() { close(done) })
			}
		}),
	)
	defer ctrl.Close()

	ctrl.TogglePlay()
	select {
	case <-done:
		fmt.Printf("result: [%s]\n", input.Format(ctrl.Trace().Result()))
		return nil
	case <-ctx.Done():
		log.Info("playback interrupted", "step", ctrl.Index())
		return context.Cause(ctx)
	}
}

func printStep(st playback.State) {
	s := st.Step
	fmt.Printf("[%2d/%d] line %2d  carry %d  %s\n", st.Index+1, st.Total, s.Line, s.Carry, s.Description)
}

func runPlot(cmd *cobra.Command, args []string) error {
	log, first, second, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	tr := trace.Generate(first, second)
	log.Debug("plotting trace", "steps", tr.Len(), "width", width, "height", height)
	fmt.Println(export.Plot(tr, width, height))
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	log, first, second, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	tr := trace.Generate(first, second)
	i := stepIdx
	if i < 0 || i >= tr.Len() {
		if cmd.Flags().Changed("step") {
			return fmt.Errorf("step %d out of range [0, %d]", i, tr.Len()-1)
		}
		i = tr.Len() - 1
	}
	svg := export.StepToSVG(tr.Step(i))
	log.Debug("rendering svg", "step", i, "out", outPath)
	if outPath == "" || outPath == "-" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outPath, []byte(svg), 0644)
}

// setup resolves the inputs for commands that log to stderr. The caller
// closes the returned logger.
func setup(cmd *cobra.Command) (*logging.Logger, []int, []int, error) {
	cfg, first, second, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logging.New(logOptions(cfg, true))
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debug("inputs resolved", "l1", first, "l2", second, "steps", trace.ExpectedSteps(first, second))
	return log, first, second, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, []int, []int, error) {
	cfg, err := resolve(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	first, second, err := cfg.Inputs()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, first, second, nil
}

func logOptions(cfg *config.Config, stderr bool) logging.Options {
	opts := logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Journal: cfg.Log.Journal,
	}
	if stderr {
		opts.Writer = os.Stderr
	}
	return opts
}
