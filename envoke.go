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
	"fmt"
	"os"

	"github.com/thediveo/envoke/dotenv"

	log "github.com/sirupsen/logrus"
)

// Load reads the definitions files specified by their paths, in order, and
// projects all their assignments into a single name→value mapping, as if
// the files were one concatenated definitions text. Later assignments
// override earlier assignments of the same key, across file boundaries.
//
// With expand set, $NAME and ${NAME} references inside double-quoted values
// get expanded, resolving first against the definitions themselves and then
// against the environment of this process; references resolving nowhere
// expand to the empty string. Load fails only for definitions files that
// cannot be read: the definitions themselves never are errors.
func Load(paths []string, expand bool) (map[string]string, error) {
	var assignments dotenv.Assignments
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read definitions file, reason: %w", err)
		}
		fileAssignments := dotenv.Parse(string(text))
		log.Info(fmt.Sprintf("🗒  read %d definition(s) from %q", len(fileAssignments), path))
		assignments = append(assignments, fileAssignments...)
	}
	if !expand {
		return assignments.Map(), nil
	}
	log.Info("🪄  expanding variable references")
	return assignments.Expand(os.LookupEnv), nil
}
