/*
Package dotenv parses “.env”-style definitions texts into their individual
KEY=VALUE assignments and projects these assignments into plain name→value
mappings, on request expanding $NAME and ${NAME} references inside
double-quoted values.

There is no single authoritative “.env” format, only a loose convention
established by a host of dotenv tools across many ecosystems. This package
deliberately implements a small and lenient member of that family:

	# a comment line
	BASIC=basic
	TRIMMED =  also basic
	SINGLE='kept as-is'
	EXPANDED="${BASIC}_is_expanded"

# Line Classification

Each line of a definitions text is classified on its own, after trimming
leading and trailing whitespace:

  - empty (after trimming): a Blank line;
  - first character is “#”: a Comment line;
  - no “=” at all, or nothing but whitespace before the first “=”: a
    Malformed line;
  - otherwise: a KeyVal assignment, splitting at the first “=”.

Blank, Comment, and Malformed lines are ignorable: they never produce
variables and they never produce errors either. Keys and unquoted values are
whitespace-trimmed. A value that after trimming is surrounded by a pair of
double or single quotes gets exactly this one pair of quotes removed, with
the inner text then kept verbatim, untrimmed. Anything else, including a
value with only a leading or only a trailing quote, is an unquoted value.

# Expansion

Mappings come in two flavors: plain and expanded. The plain projection
simply maps each key to its (unquoted) value, later assignments of the same
key overriding earlier ones. The expanded projection additionally rewrites
the values of double-quoted assignments, substituting variable references in
Bash-like syntax:

	$NAME
	${NAME}

Single-quoted and unquoted values are never rewritten. References resolve
against the assignments seen so far in this projection (even when such a
value is empty), then against an ambient environment lookup, and finally to
the empty string. Unknown references thus silently vanish instead of
failing. Values are rewritten in a single pass in assignment order, so a
reference to a key assigned later in the text sees that key's raw, not yet
expanded value.

In the unbraced form, the name is the character immediately following the
“$” together with the longest run of ASCII letters, digits, and underscores
after it. The character that ends such a name run is ordinary text and in
particular never starts another substitution, even if it is a “$”. A braced
form without its closing “}” simply extends to the end of the value.

# Out of Scope

This package knows nothing about processes or their environments: it never
reads the real process environment on its own and it never modifies any
environment either. Callers instead inject an ambient lookup where needed,
such as [os.LookupEnv]. Escape sequences, multi-line values, “export”
prefixes, and the Compose-style ${NAME:-default} substitution operations are
not part of the format.
*/
package dotenv
