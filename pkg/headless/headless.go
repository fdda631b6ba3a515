package headless

import (
	"bufio"
	"io"
	"strings"

	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/cbodonnell/pocketpet/pkg/queue"
)

// ReadTriggers enqueues one trigger per line ("feed", "play", ...) until r is exhausted.
// Reaching the end of input does not stop the pet.
func ReadTriggers(r io.Reader, q queue.Queue) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		trigger, err := types.ParseTrigger(line)
		if err != nil {
			log.Warn("Ignoring input %q: %v", line, err)
			continue
		}
		if err := q.Enqueue(trigger); err != nil {
			log.Warn("Dropped %s: %v", trigger, err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("Failed to read input: %v", err)
		return
	}
	log.Debug("Input closed")
}
