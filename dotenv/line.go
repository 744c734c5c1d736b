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

// Line is the classification outcome for a single line of a definitions
// text: either a usable KeyVal assignment, or an ignorable Blank, Comment,
// or Malformed line.
type Line interface {
	// Ignorable reports whether this line never contributes a variable.
	Ignorable() bool
}

// Blank is a line that is empty or consists of whitespace only.
type Blank struct{}

// Comment is a line whose first non-whitespace character is a “#”.
type Comment struct{}

// Malformed is a non-ignored line that doesn't contain any “=”, or that
// contains only whitespace before its first “=”. Malformed lines are
// skipped, they never are errors.
type Malformed struct{}

// KeyVal is a single KEY=VALUE assignment, with the key and value already
// trimmed and the value already unquoted. Quote tells which quoting style
// the value originally used, as only double-quoted values are subject to
// variable expansion later on.
type KeyVal struct {
	Key   string
	Value string
	Quote Quote
}

// Ignorable always returns true for blank lines.
func (Blank) Ignorable() bool { return true }

// Ignorable always returns true for comment lines.
func (Comment) Ignorable() bool { return true }

// Ignorable always returns true for malformed lines.
func (Malformed) Ignorable() bool { return true }

// Ignorable always returns false for assignments.
func (KeyVal) Ignorable() bool { return false }

// Quote is the quoting style of the value of a single assignment.
type Quote int

// The quoting styles of assignment values; the zero value is Unquoted.
const (
	Unquoted     Quote = iota // bare value, whitespace-trimmed
	SingleQuoted              // value was surrounded by a pair of “'” quotes
	DoubleQuoted              // value was surrounded by a pair of “"” quotes
)

// String returns the quoting style in clear text.
func (q Quote) String() string {
	switch q {
	case SingleQuoted:
		return "single-quoted"
	case DoubleQuoted:
		return "double-quoted"
	default:
		return "unquoted"
	}
}

// Classify classifies a single line of a definitions text. It cannot fail:
// anything that isn't usable as a KEY=VALUE assignment comes back as an
// ignorable Blank, Comment, or Malformed line instead.
func Classify(line string) Line {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Blank{}
	}
	if trimmed[0] == '#' {
		return Comment{}
	}
	// Keys cannot contain any “=”, so the first “=” always separates the key
	// from the value; the value is free to contain further “=”.
	rawkey, rawvalue, ok := strings.Cut(trimmed, "=")
	if !ok {
		return Malformed{}
	}
	key := strings.TrimSpace(rawkey)
	if key == "" {
		return Malformed{}
	}
	value, quote := unquote(strings.TrimSpace(rawvalue))
	return KeyVal{Key: key, Value: value, Quote: quote}
}

// unquote removes exactly one pair of surrounding double or single quotes,
// where present, reporting the detected quoting style. The text between the
// quotes is kept completely as-is, so it especially doesn't get trimmed. A
// lone quote character without its closing counterpart isn't a pair and the
// value then is unquoted.
func unquote(value string) (string, Quote) {
	if len(value) >= 2 {
		switch {
		case value[0] == '"' && value[len(value)-1] == '"':
			return value[1 : len(value)-1], DoubleQuoted
		case value[0] == '\'' && value[len(value)-1] == '\'':
			return value[1 : len(value)-1], SingleQuoted
		}
	}
	return value, Unquoted
}
