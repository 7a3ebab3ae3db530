// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cybrota/avlkit/keyfile"
	"github.com/cybrota/avlkit/keyset"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

const asciiLogo = `
 █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗████████╗
██╔══██╗██║   ██║██║     ██║ ██╔╝██║╚══██╔══╝
███████║██║   ██║██║     █████╔╝ ██║   ██║
██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ██║   ██║
██║  ██║ ╚████╔╝ ███████╗██║  ██╗██║   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Self-balancing binary search trees, one rotation at a time [Version: %s%s%s]
`

// mustLoadConfig logs a broken config and carries on with the defaults.
func mustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func runVisualizer(config *Config, args []string) {
	session := NewSession(config)
	if len(args) > 0 {
		if _, err := session.Exec("insert " + strings.Join(args, " ")); err != nil {
			log.Fatalf("Error inserting keys: %v", err)
		}
	}
	if err := runBubbleTeaApp(session); err != nil {
		log.Fatalf("Error running visualizer: %v", err)
	}
}

// reportContains prints one membership line per query.
func reportContains(w io.Writer, set *keyset.Set, queries []int) {
	for _, q := range queries {
		found := set.Contains(q)
		color := Error
		if found {
			color = Green
		}
		fmt.Fprintf(w, "contains(%d) = %s%t%s\n", q, color, found, Reset)
	}
}

func newRootCmd() *cobra.Command {
	InitializeColors()
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)
	reader := keyfile.NewReader(appFs)

	// loaded once per invocation by the root's PersistentPreRun
	var config *Config
	visualize := func(cmd *cobra.Command, args []string) {
		runVisualizer(config, args)
	}

	var cmdRun = &cobra.Command{
		Use:   "run [keys...]",
		Short: "Launches the interactive AVL visualizer",
		Long:  fmt.Sprintf("%s\n%s", logo, `Run opens the visualizer, optionally seeded with keys`),
		Run:   visualize,
	}

	var cmdInsert = &cobra.Command{
		Use:   "insert [keys...]",
		Short: "Insert keys into a fresh tree and print it",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			if heights, _ := cmd.Flags().GetBool("heights"); heights {
				config.Display.ShowHeights = true
			}

			set, err := loadKeySet(reader, args, file, config, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTree(set.Tree(), config.Display))
			fmt.Fprintln(out, treeSummary(set.Tree()))
			return set.Tree().Check()
		},
	}
	cmdInsert.Flags().StringP("file", "f", "", "read keys from a file")
	cmdInsert.Flags().Bool("heights", false, "show stored node heights")

	var cmdContains = &cobra.Command{
		Use:   "contains QUERY...",
		Short: "Report whether each query key is in the tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			keys, _ := cmd.Flags().GetStringSlice("keys")

			queries, err := keyfile.ParseArgs(args)
			if err != nil {
				return err
			}
			set, err := loadKeySet(reader, keys, file, config, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			reportContains(cmd.OutOrStdout(), set, queries)
			return nil
		},
	}
	cmdContains.Flags().StringSliceP("keys", "k", nil, "keys to insert before querying")
	cmdContains.Flags().StringP("file", "f", "", "read keys to insert from a file")

	var cmdCheck = &cobra.Command{
		Use:   "check [keys...]",
		Short: "Verify ordering, balance and heights after inserting keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			set, err := loadKeySet(reader, args, file, config, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := set.Tree().Check(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%sOK%s %s\n", Green, Reset, treeSummary(set.Tree()))
			return nil
		},
	}
	cmdCheck.Flags().StringP("file", "f", "", "read keys from a file")

	var cmdWatch = &cobra.Command{
		Use:   "watch FILE",
		Short: "Insert keys as they are appended to FILE and reprint the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			kw := &keyWatcher{
				reader: reader,
				path:   args[0],
				set:    newKeySet(config),
				config: config,
				out:    cmd.OutOrStdout(),
			}
			return kw.watch(ctx)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the avlkit CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avlkit settings, creating the config file if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := getConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %v", err)
			}
			return displaySettings(cmd.OutOrStdout(), appFs, configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlkit",
		Version:       version,
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config = mustLoadConfig()
			InitializeColors()
			if !config.Display.Color {
				DisableANSIColors()
			}
		},
		// Default to run command when no subcommand is provided
		Run: visualize,
	}
	rootCmd.AddCommand(cmdRun, cmdInsert, cmdContains, cmdCheck, cmdWatch, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Error, Reset, err)
		os.Exit(1)
	}
}
