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

// Expand projects the assignments into a name→value mapping like Map does,
// but additionally rewrites the values of all double-quoted assignments,
// substituting their $NAME and ${NAME} variable references. Single-quoted
// and unquoted values are never rewritten.
//
// The double-quoted assignments are rewritten one after another in their
// original order, in a single pass: each rewritten value immediately
// replaces its key's value in the mapping, so later assignments referencing
// this key see the rewritten value, whereas earlier assignments saw the
// raw one. References resolve first against the mapping (where a
// present-but-empty value counts), then against the optional ambient
// lookup, and finally fall back to the empty string; expansion thus cannot
// fail.
// Passing a nil ambient [LookupFunc] expands without any ambient
// environment.
func (assignments Assignments) Expand(ambient LookupFunc) map[string]string {
	vars := assignments.Map()
	for _, keyval := range assignments {
		if keyval.Quote != DoubleQuoted {
			continue
		}
		vars[keyval.Key] = expandValue(keyval.Value, func(name string) string {
			return lookupOrEmpty(vars, ambient, name)
		})
	}
	return vars
}

// lookupOrEmpty resolves a single variable reference: the mapping built so
// far takes precedence, even when it maps the name to an empty value; next
// comes the ambient environment, and missing everywhere resolves to the
// empty string instead of an error.
func lookupOrEmpty(vars map[string]string, ambient LookupFunc, name string) string {
	if value, ok := vars[name]; ok {
		return value
	}
	if ambient != nil {
		if value, ok := ambient(name); ok {
			return value
		}
	}
	return ""
}

// expandValue rewrites a single double-quoted value, copying ordinary text
// verbatim and replacing each $NAME and ${NAME} reference with whatever
// resolve returns for it. Substitution is strictly single-shot: resolved
// values are copied to the output as-is, without rescanning them for
// further references.
func expandValue(value string, resolve func(name string) string) string {
	var text strings.Builder
	text.Grow(len(value))
	for idx := 0; idx < len(value); idx++ {
		if value[idx] != '$' {
			text.WriteByte(value[idx])
			continue
		}
		idx = substitute(value, idx, &text, resolve)
	}
	return text.String()
}

// substitute consumes a single reference, with dollar indexing the “$” that
// introduces it, appending the resolved replacement text to text. It
// returns the index of the last consumed character, so the caller continues
// scanning right after the reference.
func substitute(value string, dollar int, text *strings.Builder, resolve func(name string) string) int {
	idx := dollar + 1
	if idx >= len(value) {
		// A lone “$” at the very end is a reference with an empty name; such
		// a name won't resolve and the “$” thus silently vanishes.
		text.WriteString(resolve(""))
		return idx
	}
	if value[idx] == '{' {
		name, end := scanBracedName(value, idx+1)
		text.WriteString(resolve(name))
		return end
	}
	name, end := scanBareName(value, idx)
	text.WriteString(resolve(name))
	if end < len(value) {
		// The character terminating an unbraced name is ordinary text; in
		// particular, it never introduces another substitution, not even
		// when it is a “$”.
		text.WriteByte(value[end])
	}
	return end
}

// scanBareName returns the name of an unbraced reference beginning at
// start: the character at start (taken unconditionally, whatever it is)
// plus the longest run of name characters following it. end indexes the
// character that terminated the run, or is len(value) when the name runs to
// the end of the value.
func scanBareName(value string, start int) (name string, end int) {
	end = start + 1
	for end < len(value) && isNameChar(value[end]) {
		end++
	}
	return value[start:end], end
}

// scanBracedName returns the name of a braced reference, with start
// indexing right after the “${”. The name extends up to, but not
// including, the closing “}”, with end indexing that brace. Without a
// closing brace the name is simply the remainder of the value and end is
// len(value).
func scanBracedName(value string, start int) (name string, end int) {
	for end = start; end < len(value); end++ {
		if value[end] == '}' {
			return value[start:end], end
		}
	}
	return value[start:], len(value)
}

// isNameChar reports whether ch can be part of an unbraced reference name
// beyond its first character: ASCII letters, digits, and the underscore.
func isNameChar(ch byte) bool {
	if ch == '_' {
		return true
	}
	if ch >= 'a' && ch <= 'z' {
		return true
	}
	if ch >= 'A' && ch <= 'Z' {
		return true
	}
	return ch >= '0' && ch <= '9'
}
