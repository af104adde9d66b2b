package main

import (
	"github.com/eaugeas/bstree/config"
	"github.com/eaugeas/bstree/export"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// TreeConfig selects the keys used to build and query the tree
type TreeConfig struct {
	Keys      []int
	Delete    []int
	Search    []int
	Successor []int
}

func (c *TreeConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.StringSlice("tree.keys", []string{"15", "6", "18", "3", "7", "17", "20", "2", "4", "13", "9"},
		"keys inserted in order into an empty tree")
	flags.StringSlice("tree.delete", nil, "keys deleted from the tree after all insertions")
	flags.StringSlice("tree.search", []string{"15", "9", "22"}, "keys searched in the tree")
	flags.StringSlice("tree.successor", []string{"2", "20", "15", "13", "9", "7", "22"},
		"keys whose successor is reported")
	return nil
}

func (c *TreeConfig) Configure(v *viper.Viper) error {
	var err error

	if c.Keys, err = config.GetInts(v, "tree.keys"); err != nil {
		return err
	}
	if c.Delete, err = config.GetInts(v, "tree.delete"); err != nil {
		return err
	}
	if c.Search, err = config.GetInts(v, "tree.search"); err != nil {
		return err
	}
	if c.Successor, err = config.GetInts(v, "tree.successor"); err != nil {
		return err
	}

	return nil
}

// ExportConfig selects where and how the final tree is exported
type ExportConfig struct {
	Output string
	Format string
}

func (c *ExportConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("export.output", "", "file the final tree is exported to. Nothing is exported if empty")
	flags.String("export.format", export.FormatDOT, "export format, either dot or text")
	return nil
}

func (c *ExportConfig) Configure(v *viper.Viper) error {
	c.Output = v.GetString("export.output")
	c.Format = v.GetString("export.format")

	switch c.Format {
	case export.FormatDOT, export.FormatText:
		return nil
	default:
		return errors.Wrapf(config.ErrInvalidValue, "export.format: %q", c.Format)
	}
}

// LogConfig configures the logger
type LogConfig struct {
	Level  logrus.Level
	Format string
}

func (c *LogConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("log.level", logrus.InfoLevel.String(), "minimum level of the log entries")
	flags.String("log.format", "text", "log format, either text or json")
	return nil
}

func (c *LogConfig) Configure(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return errors.Wrapf(config.ErrInvalidValue, "log.level: %s", err.Error())
	}

	c.Level = level
	c.Format = v.GetString("log.format")
	if c.Format != "text" && c.Format != "json" {
		return errors.Wrapf(config.ErrInvalidValue, "log.format: %q", c.Format)
	}

	return nil
}

// Config is the configuration of bstree
type Config struct {
	Tree   TreeConfig
	Export ExportConfig
	Log    LogConfig
}

func (c *Config) Use() string {
	return "bstree"
}

func (c *Config) EnvPrefix() string {
	return "bstree"
}

func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Tree, &c.Export, &c.Log}
}
