package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/sailconv/internal/config"
	"github.com/hammamikhairi/sailconv/internal/domain"
	"github.com/hammamikhairi/sailconv/internal/input"
	"github.com/hammamikhairi/sailconv/internal/logger"
	"github.com/hammamikhairi/sailconv/internal/tone"
)

var scriptTrace bool

var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Press buttons from a script and print the display",
	Long: `Run the watch headless, one command per line, reading stdin when no file is
given. Commands: light, back, alarm, hold, release, mode, timeout, tick,
show, quit and "digits 0036". A trailing number repeats a command.
The buzzer is always silent.`,
	Example: `  printf 'light 3\ndigits 0036\nshow\n' | sailconv script`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening script: %w", err)
			}
			defer f.Close()
			in = f
		}

		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		log, closeLog, err := openLog(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		return runScript(in, cmd.OutOrStdout(), cfg, log, scriptTrace)
	},
}

func init() {
	scriptCmd.Flags().BoolVar(&scriptTrace, "trace", false, "print the display after every command")
}

func runScript(in io.Reader, out io.Writer, cfg *config.Config, log *logger.Logger, trace bool) error {
	w, err := assemble(cfg, tone.NewSilent(log.With("tone")), log)
	if err != nil {
		return err
	}
	parser := input.NewKeywordParser(log.With("input"))

	w.mv.Boot()

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		cmd, err := parser.Parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		switch cmd.Action {
		case input.ActionNone:
			continue
		case input.ActionQuit:
			return nil
		case input.ActionShow:
			fmt.Fprintln(out, w.lcd.Snapshot())
			continue
		case input.ActionTick:
			for i := 0; i < cmd.Count; i++ {
				w.mv.Tick()
			}
		case input.ActionPress:
			for i := 0; i < cmd.Count; i++ {
				for _, k := range cmd.Events {
					w.mv.Dispatch(domain.Event{Kind: k})
				}
			}
		}

		if trace {
			fmt.Fprintf(out, "%-16s %s\n", line, w.lcd.Snapshot())
		}
	}
	return scanner.Err()
}
