package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fzft/go-hashset/cli"
	"github.com/fzft/go-hashset/log"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

var CLI struct {
	Type     string           `short:"t" help:"Key domain of the set (String or Integer)" default:"String"`
	Capacity int              `short:"c" help:"Initial number of buckets" default:"16"`
	MaxLoad  float64          `help:"Load factor that triggers a rehash, 0 keeps the bucket count fixed" default:"0.7"`
	Raw      bool             `help:"Use raw formatting for replies (default when STDOUT is not a tty)"`
	NoRaw    bool             `help:"Force formatted output even when STDOUT is not a tty"`
	Resp     bool             `help:"Print replies in the RESP2 wire format"`
	History  string           `help:"History file, /dev/null disables history" env:"HASHSET_CLI_HISTFILE" type:"path"`
	Verbose  bool             `short:"v" help:"Enable debug logging"`
	Version  kong.VersionFlag `help:"Output version and exit"`
	Args     []string         `arg:"" optional:"" passthrough:"" help:"Command to run once instead of starting the shell"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("hashset-cli"),
		kong.Description("Interactive shell over a single hash set."),
		kong.Vars{"version": cli.Version()})

	if err := log.InitLogger(CLI.Verbose); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Logger.Sync()

	output := cli.ResolveOutput(CLI.Raw, CLI.NoRaw, isatty.IsTerminal(os.Stdout.Fd()))
	if CLI.Resp {
		output = cli.OutputResp
	}

	c, err := cli.New(&cli.Config{
		Type:        CLI.Type,
		Capacity:    CLI.Capacity,
		MaxLoad:     CLI.MaxLoad,
		Output:      output,
		HistoryFile: CLI.History,
		Args:        CLI.Args,
	}, os.Stdout)
	if err != nil {
		log.Logger.Error("create shell", zap.Error(err))
		os.Exit(1)
	}
	log.Logger.Debug("shell ready", zap.String("type", CLI.Type), zap.Int("capacity", CLI.Capacity))

	if err := c.Run(isatty.IsTerminal(os.Stdin.Fd())); err != nil {
		if !errors.Is(err, cli.ErrCommandFailed) {
			log.Logger.Error("run", zap.Error(err))
		}
		log.Logger.Sync()
		os.Exit(1)
	}
}
