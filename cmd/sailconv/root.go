package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/sailconv/internal/config"
	"github.com/hammamikhairi/sailconv/internal/display"
	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/engine"
	"github.com/hammamikhairi/sailconv/internal/host"
	"github.com/hammamikhairi/sailconv/internal/logger"
	"github.com/hammamikhairi/sailconv/internal/tone"
)

var (
	configPath string
	verbose    bool
	quiet      bool
	mute       bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "sailconv",
	Short: "Sailing unit converter watch face",
	Long: `sailconv converts boat speeds (m/s, km/h, knots, Beaufort) and distances
(km, nautical miles) the way a wrist watch face does: two buttons, a few pages,
one digit at a time. Without a subcommand it runs the watch in the terminal.`,
	RunE:          runWatch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML settings file (built-in defaults when empty)")
	pf.BoolVar(&verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "disable all logging")
	pf.BoolVar(&mute, "mute", false, "silence the buzzer")
	pf.StringVar(&logFile, "log-file", "", "file to write logs to (\"stderr\" logs to console; default from config)")

	rootCmd.AddCommand(convertCmd, unitsCmd, scriptCmd)
}

// loadSettings builds the effective configuration: defaults, file, .env,
// environment, then flags.
func loadSettings() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}

	applyFlags(cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// applyFlags lets command-line flags win over every other source.
func applyFlags(cfg *config.Config) {
	if verbose {
		cfg.Log.Level = logger.LevelVerbose.String()
	}
	if quiet {
		cfg.Log.Level = logger.LevelOff.String()
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if mute {
		cfg.Buzzer.Backend = tone.BackendNone
		cfg.Face.Sound = false
		cfg.Face.Jingle = false
	}
}

// openLog creates the logger. Logs go to a file by default so the terminal
// watch stays clean. The returned func closes the file.
func openLog(cfg *config.Config) (*logger.Logger, func(), error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {}
	var out io.Writer = os.Stderr
	if cfg.Log.File != "" && cfg.Log.File != "stderr" {
		if dir := filepath.Dir(cfg.Log.File); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("creating log dir: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.Log.File, err)
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	// Third-party libraries log through the standard package.
	stdlog.SetOutput(out)
	stdlog.SetFlags(stdlog.Ltime)

	return logger.New(level, out), closeFn, nil
}

// watch is a fully wired watch: display, host, face and its state.
type watch struct {
	lcd   *display.LCD
	mv    *host.Movement
	face  *engine.Face
	state *domain.State
}

func assemble(cfg *config.Config, buzzer domain.Buzzer, log *logger.Logger) (*watch, error) {
	kind, err := display.ParseKind(cfg.Host.LCD)
	if err != nil {
		return nil, err
	}

	lcd := display.NewLCD(kind)
	mv := host.New(lcd, log.With("host"),
		host.WithTimeout(cfg.Host.Timeout()),
		host.WithButtonSound(cfg.Face.Sound),
	)
	face := engine.New(lcd, buzzer, mv, log.With("face"),
		engine.WithTickFrequency(cfg.Face.TickHz),
		engine.WithActivationJingle(cfg.Face.Jingle),
	)
	st := face.Setup(cfg.Face.Slot)
	mv.Install(face, st)

	return &watch{lcd: lcd, mv: mv, face: face, state: st}, nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	log, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	buzzer, err := tone.Open(cfg.Buzzer.Backend, cfg.Buzzer.Volume, log.With("tone"))
	if err != nil {
		return err
	}
	if s, ok := buzzer.(*tone.Synth); ok {
		defer s.Stop()
	}

	w, err := assemble(cfg, buzzer, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprint(cmd.OutOrStdout(), display.RenderBanner(0))
	}

	w.mv.Start(ctx)
	defer w.mv.Stop()

	log.Info("watch running (lcd=%s, buzzer=%s)", cfg.Host.LCD, cfg.Buzzer.Backend)
	return display.NewWatch(w.lcd, w.mv, "sailconv").Run(ctx)
}
