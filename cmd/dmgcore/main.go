// Command dmgcore runs a Game Boy cartridge ROM against this module's
// interpreter core until it terminates, erroring out, or (when --inspect
// is set) serves a websocket snapshot feed for an external viewer.
//
// Grounded on the oisee-z80-optimizer cmd/z80opt/main.go single-root-command
// cobra wiring (the only pack repo reaching for cobra directly), trimmed to
// spec.md §6's reduced contract: one positional ROM path, no subcommands.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/torphedo-core/dmgcore/internal/inspect"
	"github.com/torphedo-core/dmgcore/internal/loader"
	"github.com/torphedo-core/dmgcore/internal/machine"
	"github.com/torphedo-core/dmgcore/pkg/log"
)

func main() {
	var (
		silent      bool
		traceLines  int
		inspectAddr string
	)

	rootCmd := &cobra.Command{
		Use:   "dmgcore ROM",
		Short: "Run a Game Boy cartridge ROM against the dmgcore interpreter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], silent, traceLines, inspectAddr)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVar(&silent, "silent", false, "suppress logging")
	rootCmd.Flags().IntVar(&traceLines, "trace", 0, "on a fatal error, print the last N fetched instructions")
	rootCmd.Flags().StringVar(&inspectAddr, "inspect", "", "serve a read-only websocket state feed on this address, e.g. :6060")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(romPath string, silent bool, traceLines int, inspectAddr string) error {
	logger := log.New()
	if silent {
		logger = log.NewNullLogger()
	}

	rom, err := loader.Load(romPath)
	if err != nil {
		logger.Errorf("%v", err)
		return err
	}

	m, err := machine.New(rom, machine.Options{Logger: logger})
	if err != nil {
		logger.Errorf("%v", err)
		return err
	}

	var hub *inspect.Hub
	if inspectAddr != "" {
		hub = inspect.NewHub(logger)
		mux := http.NewServeMux()
		mux.HandleFunc("/state", hub.Serve)
		go func() {
			if err := http.ListenAndServe(inspectAddr, mux); err != nil {
				logger.Warnf("inspector: %v", err)
			}
		}()
		logger.Infof("inspector listening on %s (fingerprint %016x)", inspectAddr, inspect.ROMFingerprint(rom))
		defer hub.Close()
	}

	publishEvery := uint64(0)
	if hub != nil {
		publishEvery = 1 << 16
	}

	stop := func() bool {
		if hub != nil && publishEvery != 0 && m.Clock%publishEvery == 0 {
			hub.Publish(snapshotOf(m))
		}
		return false
	}

	runErr := m.Run(stop)
	if runErr != nil {
		logger.Errorf("%v", runErr)
		if traceLines > 0 {
			for _, line := range m.CPU.Recent(traceLines) {
				fmt.Fprintln(os.Stderr, line)
			}
		}
		return runErr
	}
	return nil
}

func snapshotOf(m *machine.Machine) inspect.Snapshot {
	return inspect.Snapshot{
		Clock: m.Clock,
		PC:    m.CPU.PC,
		SP:    m.CPU.SP,
		AF:    m.CPU.AF.Uint16(),
		BC:    m.CPU.BC.Uint16(),
		DE:    m.CPU.DE.Uint16(),
		HL:    m.CPU.HL.Uint16(),
		IME:   m.CPU.IME,
	}
}
