// Package clipboard copies text to the system clipboard, falling back to
// an OSC52 escape sequence when no clipboard utility is available (for
// example over SSH).
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-roster/logging"
)

// ErrUnavailable is returned when neither the system clipboard nor OSC52
// can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// system is swapped out in tests.
var system = struct {
	unsupported func() bool
	write       func(string) error
}{
	unsupported: func() bool { return clipboard.Unsupported },
	write:       clipboard.WriteAll,
}

// Copy puts text on the clipboard.
func Copy(text string) error {
	if !system.unsupported() {
		err := system.write(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes via system clipboard", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed, trying OSC52: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
