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
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// flags shared by every subcommand
var (
	configPath     string
	dictionaryPath string
	seed           int64
	debug          bool
)

// setup loads configuration, applies flag overrides and reads the dictionary.
func setup(cmd *cobra.Command) (*Game, *logrus.Logger) {
	logger := initLogger(debug)

	config, err := LoadConfig(configPath)
	if err != nil {
		logger.Warnf("Failed to load configuration: %v. Using default settings.", err)
	}
	if cmd.Flags().Changed("dictionary") {
		config.Dictionary.Path = dictionaryPath
	}
	if cmd.Flags().Changed("seed") {
		config.Search.Seed = seed
	}

	words, err := LoadWordListFile(config.Dictionary.Path, config.Dictionary.MaxWordLength, LoadOptions{
		ShowProgress: config.UI.ShowProgress,
	})
	if err != nil {
		logger.Fatalf("Error reading dictionary: %v", err)
	}

	return NewGame(words, config, logger), logger
}

func printReport(r *Report) {
	WriteReport(os.Stdout, r)
}

func main() {
	InitializeColors()

	asciiLogo := `
██╗      █████╗ ██████╗ ██████╗ ███████╗██████╗
██║     ██╔══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗
██║     ███████║██║  ██║██║  ██║█████╗  ██████╔╝
██║     ██╔══██║██║  ██║██║  ██║██╔══╝  ██╔══██╗
███████╗██║  ██║██████╔╝██████╔╝███████╗██║  ██║
╚══════╝╚═╝  ╚═╝╚═════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝
Word ladders, one letter at a time [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdSolve = &cobra.Command{
		Use:   "solve <start> <end>",
		Short: "Find a ladder between two words",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Solve runs both searches on a pair of words and compares them`),
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			game, _ := setup(cmd)
			report := game.Play(args[0], args[1])
			printReport(report)
			if report.Err != nil {
				os.Exit(1)
			}
		},
	}

	var cmdRandom = &cobra.Command{
		Use:   "random [length]",
		Short: "Solve a random pair of words",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Random picks two dictionary words of the given length (any length when omitted)`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			length := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					logrus.Fatalf("Invalid word length %q", args[0])
				}
				length = n
			}

			game, logger := setup(cmd)
			report, err := game.PlayRandom(length)
			if err != nil {
				logger.Fatalf("Error picking a random pair: %v", err)
			}
			printReport(report)
		},
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration pairs",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo solves a fixed set of pairs followed by random pairs of length 3 to 6`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			game, _ := setup(cmd)
			game.Demo(printReport)
		},
	}

	var cmdBatch = &cobra.Command{
		Use:   "batch <file>",
		Short: "Solve every pair listed in a file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Batch reads one "start end" pair per line; '#' starts a comment`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			game, logger := setup(cmd)

			file, err := os.Open(args[0])
			if err != nil {
				logger.Fatalf("Error opening batch file: %v", err)
			}
			defer file.Close()

			pairs, parseErr := ParsePairs(file)
			if parseErr != nil {
				logger.Warnf("Skipped malformed lines: %v", parseErr)
			}

			if err := RunBatch(game, pairs, printReport); err != nil {
				logger.Errorf("Some pairs were rejected: %v", err)
				os.Exit(1)
			}
		},
	}

	var cmdInteract = &cobra.Command{
		Use:   "interact",
		Short: "Launches the interactive ladder solver",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Interact opens a terminal UI to solve pairs one after another`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			game, logger := setup(cmd)
			if err := runBubbleTeaApp(game); err != nil {
				logger.Fatalf("Error running interactive mode: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the configuration, creating a default file when none exists`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout, configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Laddergame usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the laddergame CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Laddergame version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "laddergame",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to interactive mode when no subcommand is provided
			game, logger := setup(cmd)
			if err := runBubbleTeaApp(game); err != nil {
				logger.Fatalf("Error running interactive mode: %v", err)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.laddergame.yaml)")
	rootCmd.PersistentFlags().StringVar(&dictionaryPath, "dictionary", "", "word list to search, overrides dictionary.path")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "shuffle seed, overrides search.seed (0 uses the clock)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(cmdSolve, cmdRandom, cmdDemo, cmdBatch, cmdInteract, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
