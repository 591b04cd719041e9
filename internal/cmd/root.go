// Package cmd provides the entrypoint and CLI command configuration for the
// lazychart demo application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"runtime/pprof"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/kpumuk/lazychart/internal/demo"
	"github.com/kpumuk/lazychart/internal/demo/source"
)

func buildVersion(version, commit, date, builtBy string) string {
	result := version
	if commit != "" {
		result = fmt.Sprintf("%s\ncommit: %s", result, commit)
	}
	if date != "" {
		result = fmt.Sprintf("%s\nbuilt at: %s", result, date)
	}
	if builtBy != "" {
		result = fmt.Sprintf("%s\nbuilt by: %s", result, builtBy)
	}
	result = fmt.Sprintf("%s\ngoos: %s\ngoarch: %s", result, runtime.GOOS, runtime.GOARCH)
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
		result = fmt.Sprintf("%s\nmodule version: %s, checksum: %s", result, info.Main.Version, info.Main.Sum)
	}

	return result
}

// newSource builds the demo data source from CLI flags. A blank redis URL
// selects the built-in deterministic source.
func newSource(redisURL string, keys []string, seed uint64) (source.Source, func() error, error) {
	if redisURL == "" {
		return source.NewStatic(seed), func() error { return nil }, nil
	}

	src, err := source.NewRedis(redisURL, keys)
	if err != nil {
		return nil, nil, fmt.Errorf("create redis source: %w", err)
	}
	return src, src.Close, nil
}

// Execute initializes and runs the lazychart terminal application.
func Execute(version, commit, date, builtBy string) error {
	rootCmd := &cobra.Command{
		Use:   "lazychart",
		Short: "A terminal chart component gallery.",
		Long:  "A terminal chart component gallery.",
		Args:  cobra.NoArgs,
	}

	rootCmd.Version = buildVersion(version, commit, date, builtBy)
	rootCmd.SetVersionTemplate(`lazychart {{printf "version %s\n" .Version}}`)

	rootCmd.Flags().String(
		"cpuprofile",
		"",
		"write cpu profile to file",
	)

	rootCmd.Flags().BoolP(
		"help",
		"h",
		false,
		"help for lazychart",
	)

	rootCmd.Flags().String(
		"redis",
		"",
		"redis URL to read series from (empty: built-in demo data)",
	)
	rootCmd.Flags().StringSlice(
		"key",
		[]string{"lazychart:series"},
		"redis list keys, one series each",
	)
	rootCmd.Flags().Uint64(
		"seed",
		42,
		"seed for the built-in demo data",
	)

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cpuprofile, err := cmd.Flags().GetString("cpuprofile")
		if err != nil {
			return fmt.Errorf("parse cpuprofile flag: %w", err)
		}

		redisURL, err := cmd.Flags().GetString("redis")
		if err != nil {
			return fmt.Errorf("parse redis flag: %w", err)
		}
		keys, err := cmd.Flags().GetStringSlice("key")
		if err != nil {
			return fmt.Errorf("parse key flag: %w", err)
		}
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return fmt.Errorf("parse seed flag: %w", err)
		}

		src, closeSource, err := newSource(redisURL, keys, seed)
		if err != nil {
			return err
		}
		defer func() {
			_ = closeSource()
		}()

		var profileFile *os.File
		if cpuprofile != "" {
			file, err := os.Create(cpuprofile)
			if err != nil {
				return fmt.Errorf("create cpuprofile file: %w", err)
			}
			profileFile = file
			if err := pprof.StartCPUProfile(profileFile); err != nil {
				_ = profileFile.Close()
				return fmt.Errorf("start cpu profile: %w", err)
			}
			defer func() {
				pprof.StopCPUProfile()
				_ = profileFile.Close()
			}()
		}

		app := demo.New(src)
		p := tea.NewProgram(app)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run lazychart: %w", err)
		}

		return nil
	}

	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(rootCmd.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}
