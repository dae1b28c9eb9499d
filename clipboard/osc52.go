package clipboard

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/andareed/siftly-roster/logging"
)

// terminal is where OSC52 sequences go.
var terminal = struct {
	out       io.Writer
	supported func() bool
}{
	out:       os.Stdout,
	supported: osc52Supported,
}

func copyOSC52(text string) error {
	if !terminal.supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errors.New("OSC52 unsupported by terminal")
	}

	if _, err := io.WriteString(terminal.out, osc52Sequence(text)); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Sequence(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(os.Stdout)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
