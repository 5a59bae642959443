// Package machine wires the bus, CPU and cartridge together and drives
// the tick loop. Grounded on the teacher's internal/gameboy/gameboy.go
// startup sequence (allocate state, parse the cartridge, validate before
// running) and cmd/goboy/main.go's top-level error reporting, generalized
// to spec.md §4.6's reduced startup contract.
package machine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/torphedo-core/dmgcore/internal/bus"
	"github.com/torphedo-core/dmgcore/internal/cartridge"
	"github.com/torphedo-core/dmgcore/internal/cpu"
	"github.com/torphedo-core/dmgcore/pkg/log"
)

// minROMSize is the smallest cartridge image this core accepts (spec.md
// §6): 32KiB, growing by powers of two.
const minROMSize = 32 * 1024

// Machine owns the bus, the CPU and the loaded cartridge for the
// lifetime of a run (spec.md §5: single-threaded, synchronous, no shared
// state across ticks).
type Machine struct {
	Bus       *bus.Bus
	CPU       *cpu.CPU
	Cartridge *cartridge.Cartridge

	Clock  uint64
	logger log.Logger
}

// Options configures a Machine beyond the ROM image itself.
type Options struct {
	Logger log.Logger
}

// New validates rom, parses its header, installs its controller and
// returns a Machine ready for Run. Every check it can still perform after
// an earlier one fails is aggregated into a single multierror (spec.md
// §7's "reported once, fatal" startup-error contract), so a user sees every
// problem with a ROM in one pass rather than one-at-a-time.
func New(rom []byte, opts Options) (*Machine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNullLogger()
	}

	var errs *multierror.Error
	if err := validateROMSize(len(rom)); err != nil {
		errs = multierror.Append(errs, err)
	}

	cart, err := cartridge.Load(rom, logger.Warnf)
	if err != nil {
		errs = multierror.Append(errs, &StartupError{Reason: err.Error()})
	}

	if errs.ErrorOrNil() != nil {
		return nil, errs
	}

	logger.Infof("loaded cartridge %s", cart)

	b := bus.New()
	b.LoadROM(rom)
	b.AttachController(cart.Controller)

	m := &Machine{
		Bus:       b,
		CPU:       cpu.New(b),
		Cartridge: cart,
		logger:    logger,
	}
	return m, nil
}

func validateROMSize(size int) error {
	if size < minROMSize {
		return &StartupError{Reason: fmt.Sprintf("ROM image is %d bytes, smaller than the %d-byte minimum", size, minROMSize)}
	}
	if size&(size-1) != 0 {
		return &StartupError{Reason: fmt.Sprintf("ROM image size %d is not a power of two", size)}
	}
	return nil
}

// Run drives the tick loop until the CPU reports failure (spec.md §4.6
// step 6): `clock++; ok <- tick(machine); if !ok break`. It returns nil on
// clean termination (which in this reduced core only happens when a
// non-nil shouldStop returns true before a tick) or an *ExecutionError
// wrapping the CPU's failure.
func (m *Machine) Run(shouldStop func() bool) error {
	for {
		if shouldStop != nil && shouldStop() {
			return nil
		}
		m.Clock++
		if err := m.CPU.Tick(); err != nil {
			m.logger.Errorf("execution failed at tick %d: %v", m.Clock, err)
			return &ExecutionError{Cause: err, Clock: m.Clock}
		}
	}
}
