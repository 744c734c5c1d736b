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

package dotenv

import "strings"

// LookupFunc looks up the value of the named variable in some ambient
// environment, such as [os.LookupEnv] does in the environment of this
// process. It additionally reports whether the variable is present at all,
// so present-but-empty can be told apart from absent.
type LookupFunc func(name string) (string, bool)

// Assignments are the KEY=VALUE assignments of a definitions text, in their
// original order. The same key may appear multiple times; the projections
// Map and Expand then let the last assignment win.
type Assignments []KeyVal

// Parse classifies each line of the passed definitions text, returning only
// the assignment lines and keeping their original order. Parse cannot fail:
// blank, comment, and malformed lines are simply dropped.
func Parse(text string) Assignments {
	var assignments Assignments
	for _, line := range strings.Split(text, "\n") {
		// Definition texts from the DOS-descendent world come with CRLF
		// line endings; trimming classifies the stray CR away.
		if keyval, ok := Classify(line).(KeyVal); ok {
			assignments = append(assignments, keyval)
		}
	}
	return assignments
}

// Map projects the assignments into a plain name→value mapping, without any
// variable expansion whatsoever. Later assignments override earlier
// assignments of the same key.
func (assignments Assignments) Map() map[string]string {
	vars := make(map[string]string, len(assignments))
	for _, keyval := range assignments {
		vars[keyval.Key] = keyval.Value
	}
	return vars
}
