package power

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cbodonnell/pocketpet/pkg/log"
)

// ExecShutdowner flushes the filesystems and halts the device.
// A failed flush is logged and the halt still runs.
type ExecShutdowner struct {
	flush [][]string
	halt  []string
}

func NewExecShutdowner() *ExecShutdowner {
	return &ExecShutdowner{
		flush: [][]string{{"sync"}},
		halt:  []string{"sudo", "shutdown", "-h", "now"},
	}
}

func (s *ExecShutdowner) Shutdown(ctx context.Context) error {
	for _, args := range s.flush {
		if err := run(ctx, args); err != nil {
			log.Error("Continuing to halt after flush failure: %v", err)
		}
	}
	return run(ctx, s.halt)
}

func run(ctx context.Context, args []string) error {
	log.Info("Running %s", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to run %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}
