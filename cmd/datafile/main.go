// Package main provides the datafile command line tool: inspect, edit and
// convert INI-style datafiles without losing comments or ordering.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/0xalexb/datafile"
	"github.com/0xalexb/datafile/convert"
	"github.com/0xalexb/datafile/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "datafile",
		Short: "Edit INI-style datafiles while preserving comments and order",
		Long: `datafile reads, edits and writes INI-style configuration files.

Hand-written structure survives every edit: comments stay attached to their
section or key, entities keep their order, and files are only rewritten when
something actually changed.`,
		Version:       datafile.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger := logging.NewLogger(logging.LoggerConfig{
				Level:  logLevel,
				Format: logging.FormatText,
			}, os.Stderr)
			slog.SetDefault(logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"minimum log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newGetCmd(),
		newSetCmd(),
		newDelCmd(),
		newDelSectionCmd(),
		newSectionsCmd(),
		newKeysCmd(),
		newConvertCmd(),
	)

	return rootCmd
}

func newGetCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFile(args[0])
			if err != nil {
				return err
			}

			value, ok := df.GetValue(args[1], section)
			if !ok {
				return fmt.Errorf("%q in section %q: %w", args[1], section, datafile.ErrKeyNotFound)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)

			return nil
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "section to look in, empty for the global section")

	return cmd
}

func newSetCmd() *cobra.Command {
	var (
		section string
		comment string
	)

	cmd := &cobra.Command{
		Use:   "set <file> <key> <value>",
		Short: "Set the value of a key, creating the file when missing",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadOrCreate(args[0])
			if err != nil {
				return err
			}

			if err := df.SetString(args[1], args[2], comment, section); err != nil {
				return err
			}

			return df.Save()
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "section to write into, created when missing")
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "comment to attach to the key")

	return cmd
}

func newDelCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "del <file> <key>",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFile(args[0])
			if err != nil {
				return err
			}

			if err := df.DeleteKey(args[1], section); err != nil {
				return err
			}

			return df.Save()
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "section to delete from")

	return cmd
}

func newDelSectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del-section <file> <section>",
		Short: "Delete a section and all its keys",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			df, err := loadFile(args[0])
			if err != nil {
				return err
			}

			if err := df.DeleteSection(args[1]); err != nil {
				return err
			}

			return df.Save()
		},
	}
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections <file>",
		Short: "List sections and their key counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFile(args[0])
			if err != nil {
				return err
			}

			for _, section := range df.Sections() {
				name := section.Name
				if name == "" {
					name = "(global)"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, len(section.Keys))
			}

			return nil
		},
	}
}

func newKeysCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "keys <file>",
		Short: "List the keys of a section as key=value lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFile(args[0])
			if err != nil {
				return err
			}

			target, ok := df.Section(section)
			if !ok {
				return fmt.Errorf("%q: %w", section, datafile.ErrSectionNotFound)
			}

			for _, key := range target.Keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key.Name, key.Value)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "section to list, empty for the global section")

	return cmd
}

func newConvertCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a datafile to YAML on stdout, or back with --reverse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reverse {
				data, err := os.ReadFile(filepath.Clean(args[0])) // #nosec G304 -- user-supplied path is the point
				if err != nil {
					return fmt.Errorf("reading %q: %w", args[0], err)
				}

				df, err := convert.FromYAML(data)
				if err != nil {
					return err
				}

				_, err = df.WriteTo(cmd.OutOrStdout())

				return err
			}

			df, err := loadFile(args[0])
			if err != nil {
				return err
			}

			data, err := convert.ToYAML(df)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "treat the input as YAML and print a datafile")

	return cmd
}

func loadFile(path string) (*datafile.File, error) {
	df := datafile.New()
	if err := df.Load(path); err != nil {
		return nil, err
	}

	return df, nil
}

// loadOrCreate tolerates a missing file: edits then materialize it on Save.
func loadOrCreate(path string) (*datafile.File, error) {
	df := datafile.New()

	err := df.Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		df.SetFileName(path)
	}

	return df, nil
}
