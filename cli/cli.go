package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fzft/go-hashset/deps/linenoise"
	"github.com/fzft/go-hashset/hashset"
	"github.com/fzft/go-hashset/log"
	"github.com/fzft/go-hashset/resp"
	"go.uber.org/zap"
)

const (
	HistFileDefault = ".hashsetcli_history"
)

// ErrCommandFailed is returned by Run when a one-shot command replies
// with an error.
var ErrCommandFailed = errors.New("command failed")

type OutputMode uint8

const (
	OutputStandard OutputMode = iota
	OutputRaw
	OutputResp
)

// ResolveOutput picks the output mode the way redis-cli does: raw when
// stdout is not a terminal unless formatting is forced.
func ResolveOutput(raw, noRaw, stdoutTTY bool) OutputMode {
	if raw {
		return OutputRaw
	}
	if !noRaw && !stdoutTTY {
		return OutputRaw
	}
	return OutputStandard
}

type Config struct {
	Type        string
	Capacity    int
	MaxLoad     float64
	Output      OutputMode
	HistoryFile string
	Args        []string
}

type Cli struct {
	config *Config
	exec   Executor
	out    io.Writer
}

// New builds a shell over a fresh set of config.Type.
func New(config *Config, out io.Writer) (*Cli, error) {
	kind, err := hashset.ParseKind(config.Type)
	if err != nil {
		return nil, err
	}
	exec, err := NewExecutor(kind,
		hashset.WithCapacity(config.Capacity),
		hashset.WithMaxLoadFactor(config.MaxLoad))
	if err != nil {
		return nil, err
	}
	return &Cli{config: config, exec: exec, out: out}, nil
}

// Run executes config.Args once, or starts the interactive loop when no
// arguments were given.
func (cli *Cli) Run(interactive bool) error {
	if len(cli.config.Args) > 0 {
		if cli.Execute(cli.config.Args) {
			return fmt.Errorf("%s: %w", cli.config.Args[0], ErrCommandFailed)
		}
		return nil
	}
	cli.repl(interactive)
	return nil
}

func (cli *Cli) prompt() string {
	return fmt.Sprintf("hashset(%s)> ", cli.exec.Type())
}

func (cli *Cli) format(node resp.Node) string {
	switch cli.config.Output {
	case OutputRaw:
		return resp.FormatRaw(node)
	case OutputResp:
		return strings.TrimSuffix(string(resp.Encode(node)), resp.CRLF)
	default:
		return resp.Format(node)
	}
}

// Execute runs one command line, honouring a leading repeat count as in
// "3 ADD key". It reports whether any reply was an error.
func (cli *Cli) Execute(argv []string) (failed bool) {
	repeat, err := strconv.Atoi(argv[0])
	if len(argv) > 1 && err == nil {
		if repeat <= 0 {
			fmt.Fprintln(cli.out, "Invalid hashset-cli repeat command option value.")
			return true
		}
		argv = argv[1:]
	} else {
		repeat = 1
	}

	for i := 0; i < repeat; i++ {
		reply := cli.exec.Exec(argv)
		if _, ok := reply.(resp.Error); ok {
			failed = true
		}
		fmt.Fprintln(cli.out, cli.format(reply))
	}
	return failed
}

func (cli *Cli) repl(interactive bool) {
	line := linenoise.New()
	defer line.Close()
	line.SetCompleter(linenoise.Completer(cli.exec.Commands()))

	historyFile := ""
	if interactive {
		historyFile = cli.historyFile()
		if historyFile != "" {
			if err := line.HistoryLoad(historyFile); err != nil && !os.IsNotExist(err) {
				log.Logger.Warn("load history", zap.String("file", historyFile), zap.Error(err))
			}
		}
	}

	for {
		input, err := line.Prompt(cli.prompt())
		if err != nil {
			if err != io.EOF {
				log.Logger.Debug("prompt closed", zap.Error(err))
			}
			break
		}

		argv := strings.Fields(input)
		if len(argv) == 0 {
			continue
		}
		if interactive {
			line.AppendHistory(input)
			if historyFile != "" {
				if err := line.HistorySave(historyFile); err != nil {
					log.Logger.Warn("save history", zap.String("file", historyFile), zap.Error(err))
				}
			}
		}

		if strings.EqualFold(argv[0], "quit") || strings.EqualFold(argv[0], "exit") {
			break
		}
		cli.Execute(argv)
	}
}

// historyFile returns the configured history path, "" when history is
// disabled with /dev/null or no home directory can be found.
func (cli *Cli) historyFile() string {
	path := cli.config.HistoryFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(home, HistFileDefault)
	}
	if path == os.DevNull {
		return ""
	}
	return path
}
