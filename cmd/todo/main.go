package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo-repl/internal/cli"
	"github.com/idilsaglam/todo-repl/internal/config"
	"github.com/idilsaglam/todo-repl/internal/logging"
	"github.com/idilsaglam/todo-repl/internal/store/linestore"
	"github.com/idilsaglam/todo-repl/internal/ui"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		dataFile   string
		theme      string
		logLevel   string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Interactive todo list",
		Long: `An interactive todo list. Reads one command per line from stdin and
saves the list to a text file on quit.

` + strings.Join(cli.HelpLines(), "\n"),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var o config.Overrides
			if cmd.Flags().Changed("file") {
				o.DataFile = &dataFile
			}
			if cmd.Flags().Changed("theme") {
				o.Theme = &theme
			}
			if cmd.Flags().Changed("log-level") {
				o.LogLevel = &logLevel
			}
			if cmd.Flags().Changed("no-color") {
				o.NoColor = &noColor
			}
			return run(configPath, o, in, out, errOut)
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (.toml or .yaml)")
	cmd.Flags().StringVarP(&dataFile, "file", "f", linestore.DefaultFileName, "todo data file")
	cmd.Flags().StringVar(&theme, "theme", "classic", "colour theme: "+strings.Join(ui.Themes, ", "))
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "diagnostic log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	return cmd
}

func run(configPath string, o config.Overrides, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath, o)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := config.Validate(cfg, ui.Themes); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(errOut, cfg.LogLevel)
	if cfg.Source != "" {
		logger.Debug("loaded config", "file", cfg.Source)
	}

	items, err := linestore.Load(cfg.DataFile)
	if err != nil {
		logger.Warn("could not read todo file, starting empty", "path", cfg.DataFile, "err", err)
		items = nil
	}
	logger.Debug("loaded todo file", "path", cfg.DataFile, "items", len(items))

	theme, _ := ui.ThemeByName(cfg.Theme)
	console := ui.NewConsole(out, theme, cfg.Color)
	session := cli.NewSession(in, console, logger, cli.Options{ShowProgress: cfg.ShowProgress})

	final, runErr := session.Run(items)
	if runErr != nil {
		logger.Error("input closed unexpectedly", "err", runErr)
	}

	if err := linestore.Save(cfg.DataFile, final); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logger.Debug("saved todo file", "path", cfg.DataFile, "items", len(final))
	return nil
}
