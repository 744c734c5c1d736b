// Copyright 2025 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package main

import (
	"errors"
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thediveo/envoke"
	"golang.org/x/exp/slices"
)

const (
	fileFlag   = "file"
	expandFlag = "expand"
	dumpFlag   = "dump"
	formatFlag = "format"
	debugFlag  = "debug"
)

func buildInfo(info *debug.BuildInfo, key string) string {
	idx := slices.IndexFunc(info.Settings,
		func(setting debug.BuildSetting) bool {
			return setting.Key == key
		})
	if idx < 0 {
		return ""
	}
	return info.Settings[idx].Value
}

// newRootCmd returns the envoke command, ready for execution. The exit code
// of the command run by envoke gets reported through exitCode, as cobra
// only ever knows errors, but not exit codes.
func newRootCmd(exitCode *int) (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:          "envoke [flags] -- command [arg ...]",
		Short:        "envoke isn't a shell, but runs your command in a .env environment anyway",
		Version:      `":latest"`, // sorry :p
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debugit, _ := rootCmd.Flags().GetBool(debugFlag); debugit {
				log.SetLevel(log.DebugLevel)
			}
			log.Info("🗩  envoke ... isn't a shell")
			log.Info(fmt.Sprintf("   %s", rootCmd.Version))
			log.Info("⚖  Apache 2.0 License")

			files, _ := rootCmd.Flags().GetStringArray(fileFlag)
			expand, _ := rootCmd.Flags().GetBool(expandFlag)
			vars, err := envoke.Load(files, expand)
			if err != nil {
				return err
			}

			if dumpit, _ := rootCmd.Flags().GetBool(dumpFlag); dumpit {
				format, _ := rootCmd.Flags().GetString(formatFlag)
				return envoke.Dump(cmd.OutOrStdout(), vars, envoke.Format(format))
			}

			if len(args) == 0 {
				return errors.New("missing command to run (specify it after “--”)")
			}
			code, err := envoke.Run(cmd.Context(), args, vars)
			if err != nil {
				return err
			}
			*exitCode = code
			return nil
		},
	}
	// Anything after the first non-flag argument belongs to the command to
	// be run, so it must never be parsed as envoke's own flags.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().StringArrayP(fileFlag, "f", nil,
		"mandatory: definitions file to load; can be given multiple times")
	rootCmd.MarkFlagRequired(fileFlag)

	rootCmd.Flags().BoolP(expandFlag, "x", false,
		"expand $NAME and ${NAME} references in double-quoted values")

	rootCmd.Flags().Bool(dumpFlag, false,
		"dump the variables instead of running a command")

	rootCmd.Flags().String(formatFlag, string(envoke.EnvFormat),
		`dump format: "env", "json", or "yaml"`)

	rootCmd.Flags().Bool(debugFlag, false,
		"enable debug logging")

	if info, biok := debug.ReadBuildInfo(); biok {
		commit := buildInfo(info, "vcs.revision")
		if commit != "" {
			modified := ""
			if buildInfo(info, "vcs.modified") == "true" {
				modified = " (modified)"
			}
			rootCmd.Version = fmt.Sprintf("commit %s%s", commit[:8], modified)
		} else if modver := info.Main.Version; modver != "" {
			rootCmd.Version = modver
		}
	}

	return rootCmd
}
