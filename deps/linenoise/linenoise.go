package linenoise

import (
	"bytes"
	"os"

	"github.com/peterh/liner"
)

// LineNoise wraps a liner state with file backed history.
type LineNoise struct {
	*liner.State
}

// New puts the terminal in raw mode. Callers must Close it.
func New() *LineNoise {
	ln := &LineNoise{liner.NewLiner()}
	ln.SetCtrlCAborts(true)
	return ln
}

func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

func (ln *LineNoise) HistorySave(filepath string) error {
	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}

// Completer completes the first word of a line against names, case insensitively.
func Completer(names []string) liner.Completer {
	return func(line string) []string {
		var out []string
		if bytes.ContainsRune([]byte(line), ' ') {
			return nil
		}
		for _, n := range names {
			if len(line) <= len(n) && bytes.EqualFold([]byte(n[:len(line)]), []byte(line)) {
				out = append(out, n)
			}
		}
		return out
	}
}
