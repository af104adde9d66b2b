package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder registers a group of flags on a command and reads
// their values back once the command line has been parsed
type Binder interface {
	// Bind registers the flags on the command
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure sets the values of the binder from the parsed flags,
	// the environment and the configuration file
	Configure(v *viper.Viper) error
}

// ConfigFile is the binder for the optional configuration file. The
// file format is deduced from its extension
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to a yaml, json or toml configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return ErrReadConfigFile{Path: f.Path, Cause: err}
	}

	return nil
}

// GetInts reads a list of integers from v. The list can be given as
// separate values or as a single comma separated value
func GetInts(v *viper.Viper, key string) ([]int, error) {
	var ints []int

	for _, s := range v.GetStringSlice(key) {
		for _, field := range splitList(s) {
			i, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidValue, "%s: %q is not an integer", key, field)
			}
			ints = append(ints, i)
		}
	}

	return ints, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
