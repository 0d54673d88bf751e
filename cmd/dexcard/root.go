package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dexcard/dexcard/internal/config"
	"github.com/dexcard/dexcard/internal/logger"
	"github.com/dexcard/dexcard/internal/pokeapi"
	"github.com/dexcard/dexcard/internal/state"
	"github.com/dexcard/dexcard/internal/tui"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "dexcard",
		Short:         "Dexcard is a terminal Pokédex that renders searches as product cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newCollectionCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// appContext bundles the long-lived collaborators every command shares.
type appContext struct {
	cfg    config.Config
	log    *logger.Logger
	store  *state.Store
	client *pokeapi.Client
}

// newAppContext loads configuration and wires the store and API client.
func newAppContext(flags *rootFlags, logWriterStderr bool) (*appContext, func(), error) {
	path := flags.configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}

	var log *logger.Logger
	cleanup := func() {}
	if logWriterStderr {
		log, err = logger.New(logger.Options{Level: level, HumanReadable: true})
		if err != nil {
			return nil, nil, err
		}
	} else {
		// The TUI owns the terminal; logs go to a file in the state dir.
		if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
			return nil, nil, err
		}
		var closeLog func() error
		log, closeLog, err = logger.NewFileLogger(logFilePath(cfg.StateDir), level)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = closeLog() }
	}

	kv, err := state.NewFileStore(cfg.StateDir, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	store := state.NewStore(kv, log)
	if cfg.ReducedMotion {
		store.SetReducedMotion(true)
	}

	client := pokeapi.NewClient(log,
		pokeapi.WithBaseURL(cfg.APIBaseURL),
		pokeapi.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond}))

	return &appContext{cfg: cfg, log: log, store: store, client: client}, cleanup, nil
}

func runBrowser(flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("dexcard needs an interactive terminal; use `dexcard search <name>` in scripts")
	}

	app, cleanup, err := newAppContext(flags, false)
	if err != nil {
		return err
	}
	defer cleanup()

	app.log.Info("starting card browser")
	return tui.Run(app.store, app.client, app.log)
}
