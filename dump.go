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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Format selects the textual rendering Dump uses for the variables.
type Format string

// The formats Dump renders variables in.
const (
	EnvFormat  Format = "env"  // KEY="VALUE" definitions lines
	JSONFormat Format = "json" // a single JSON object
	YAMLFormat Format = "yaml" // a single YAML mapping
)

// Dump writes the variables to w in the specified format, with the
// variables always sorted by name. The env format renders definitions lines
// with double-quoted values; as the definitions format doesn't have any
// escaping mechanism, such a dump round-trips through [Load] only for
// values without newlines. The json and yaml formats instead render a
// single (properly escaping) object or mapping.
func Dump(w io.Writer, vars map[string]string, format Format) error {
	switch format {
	case EnvFormat:
		return dumpEnv(w, vars)
	case JSONFormat:
		return dumpJSON(w, vars)
	case YAMLFormat:
		return dumpYAML(w, vars)
	}
	return fmt.Errorf("unknown dump format %q (expected %q, %q, or %q)",
		format, EnvFormat, JSONFormat, YAMLFormat)
}

func dumpEnv(w io.Writer, vars map[string]string) error {
	var text strings.Builder
	for _, name := range sortedNames(vars) {
		text.WriteString(name)
		text.WriteString(`="`)
		text.WriteString(vars[name])
		text.WriteString("\"\n")
	}
	if _, err := io.WriteString(w, text.String()); err != nil {
		return fmt.Errorf("cannot write definitions, reason: %w", err)
	}
	return nil
}

func dumpJSON(w io.Writer, vars map[string]string) error {
	// encoding/json emits object keys in sorted order all by itself.
	jsonText, err := json.MarshalIndent(vars, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot JSONize variables, reason: %w", err)
	}
	jsonText = append(jsonText, '\n')
	if _, err := w.Write(jsonText); err != nil {
		return fmt.Errorf("cannot write variables JSON, reason: %w", err)
	}
	return nil
}

func dumpYAML(w io.Writer, vars map[string]string) error {
	yamlText, err := yaml.Marshal(vars)
	if err != nil {
		return fmt.Errorf("cannot YAMLize variables, reason: %w", err)
	}
	if _, err := w.Write(yamlText); err != nil {
		return fmt.Errorf("cannot write variables YAML, reason: %w", err)
	}
	return nil
}

// sortedNames returns the names of the variables in lexicographic order.
func sortedNames(vars map[string]string) []string {
	names := maps.Keys(vars)
	slices.Sort(names)
	return names
}
