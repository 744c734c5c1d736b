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

package envoke

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// Run launches the command specified in argv with the passed variables
// added to the environment of this process, inheriting stdin, stdout, and
// stderr, and waits for the command to finish. It returns the command's
// exit code; the variables override identically named variables of the
// process environment.
//
// A non-zero exit code isn't an error: errors signal that the command
// couldn't be properly run in the first place, such as when its binary
// cannot be found, or when ctx got cancelled. A command that died from a
// signal instead of exiting reports exit code 1.
func Run(ctx context.Context, argv []string, vars map[string]string) (int, error) {
	if len(argv) == 0 {
		return 0, errors.New("cannot run an unspecified command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// os/exec lets the last value win for duplicate keys, so appending our
	// variables after the process environment makes them override it.
	cmd.Env = append(os.Environ(), environ(vars)...)
	log.Info(fmt.Sprintf("🚀  running %q with %d additional variable(s)", argv[0], len(vars)))
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, fmt.Errorf("cannot spawn %q, reason: %w", argv[0], err)
		}
		code := exitErr.ExitCode()
		if code < 0 {
			// killed by a signal, so there never was any exit code; report
			// the plainest of failures instead.
			code = 1
		}
		log.Info(fmt.Sprintf("🏁  %q finished with exit code %d", argv[0], code))
		return code, nil
	}
	log.Info(fmt.Sprintf("🏁  %q finished with exit code 0", argv[0]))
	return 0, nil
}

// environ renders the variables into the “NAME=VALUE” form the process
// environment uses, sorted by name to keep child environments reproducible.
func environ(vars map[string]string) []string {
	env := make([]string, 0, len(vars))
	for _, name := range sortedNames(vars) {
		env = append(env, name+"="+vars[name])
	}
	return env
}
