package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"movie-catalog-cli/config"
	"movie-catalog-cli/logging"
	"movie-catalog-cli/service"
	"movie-catalog-cli/store"
	"movie-catalog-cli/tui"
)

type rootOptions struct {
	configPath string
}

// deps is everything a command needs once the config has been read.
type deps struct {
	cfg    config.Config
	logger hclog.Logger
	client *service.Client
	store  store.Store

	closers []io.Closer
}

func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func setup(opts *rootOptions) (*deps, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.New(config.AppName, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	d := &deps{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	s, err := store.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	d.store = s
	d.closers = append(d.closers, s)

	d.client = service.NewClient(
		&http.Client{Timeout: cfg.Timeout},
		service.WithBaseURL(cfg.APIURL),
		service.WithPageSize(cfg.PageSize),
		service.WithMaxAttempts(cfg.MaxAttempts),
		service.WithLogger(logger.Named("service")),
	)
	logger.Debug("configured", "api_url", cfg.APIURL, "store", cfg.Store, "store_path", cfg.StorePath)
	return d, nil
}

func newRootCmd(version string, commit string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Browse a paginated movie catalog from the terminal",
		Long:          `Browse, search, sort and favorite movies from the catalog API without leaving the terminal.`,
		Version:       versionString(version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(opts)
			if err != nil {
				return err
			}
			defer d.Close()

			model := tui.New(tui.Options{
				Client:       d.client,
				Store:        d.store,
				Logger:       d.logger.Named("tui"),
				ProbePosters: d.cfg.ProbePosters,
			})
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a config file (default is the user config dir)")

	root.AddCommand(
		newListCmd(opts),
		newFavoriteCmd(opts),
		newVersionCmd(version, commit),
	)
	return root
}

func newVersionCmd(version string, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(version, commit))
		},
	}
}

func versionString(version string, commit string) string {
	out := config.AppName + " " + version
	if commit != "none" && commit != "" {
		out += " (" + commit + ")"
	}
	return out
}

func Execute(ctx context.Context, version string, commit string) error {
	return newRootCmd(version, commit).ExecuteContext(ctx)
}
