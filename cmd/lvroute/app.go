package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/network"
	"github.com/katalvlaran/lvroute/records"
)

// errNoData is returned by commands that must write the records file back.
var errNoData = errors.New("no data file configured (use --data or the config file)")

// newDataFileMode is used when persist creates the data file.
const newDataFileMode os.FileMode = 0o644

// app carries the state shared by every subcommand of one invocation.
type app struct {
	stderr io.Writer

	dataFlag     string
	configFlag   string
	logLevelFlag string
	save         bool

	cfg Config
	log *zap.Logger
	net *network.Network
}

// setup merges config file and flags, builds the logger and loads the data file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configFlag)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data") {
		cfg.Data = a.dataFlag
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevelFlag
	}
	a.cfg = cfg

	if a.log, err = newLogger(cfg.LogLevel, a.stderr); err != nil {
		return err
	}
	a.net = network.New(
		network.WithLogger(a.log),
		network.WithSearchTimeout(cfg.SearchTimeout),
		network.WithMaxDepth(cfg.MaxDepth),
	)

	return a.load()
}

// load reads the data file, if any. Bad records are logged and skipped.
func (a *app) load() error {
	if a.cfg.Data == "" {
		return nil
	}
	f, err := os.Open(a.cfg.Data)
	if err != nil {
		return fmt.Errorf("open data: %w", err)
	}
	defer f.Close()

	sum, err := records.Read(f, a.net.Graph())
	for _, e := range multierr.Errors(err) {
		if errors.Is(e, records.ErrMalformed) || errors.Is(e, records.ErrRejected) {
			a.log.Warn("record skipped", zap.Error(e))
			continue
		}

		return fmt.Errorf("read data: %w", e)
	}
	a.log.Info("data loaded",
		zap.String("path", a.cfg.Data),
		zap.Int("vertices", sum.VerticesAdded),
		zap.Int("edges", sum.EdgesAdded),
		zap.Int("skipped", sum.Skipped),
	)

	return nil
}

// persist writes the graph back to the data file atomically, keeping the
// permissions of the file it replaces.
func (a *app) persist() error {
	if a.cfg.Data == "" {
		return errNoData
	}
	tmp, err := os.CreateTemp(filepath.Dir(a.cfg.Data), ".lvroute-*")
	if err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	defer os.Remove(tmp.Name())

	mode := newDataFileMode
	if fi, err := os.Stat(a.cfg.Data); err == nil {
		mode = fi.Mode().Perm()
	}
	err = multierr.Combine(tmp.Chmod(mode), records.Write(tmp, a.net.Graph()), tmp.Close())
	if err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	if err := os.Rename(tmp.Name(), a.cfg.Data); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	a.log.Debug("data saved", zap.String("path", a.cfg.Data))

	return nil
}

// persistIfAsked writes demand back after a query when --save is set.
func (a *app) persistIfAsked() error {
	if !a.save {
		return nil
	}

	return a.persist()
}

// criterion resolves --by against the configured default.
func (a *app) criterion(cmd *cobra.Command, by string) (core.Criterion, error) {
	name := a.cfg.Criterion
	if cmd.Flags().Changed("by") {
		name = by
	}

	return core.ParseCriterion(name)
}
