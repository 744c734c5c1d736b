/*
envoke isn't a shell, but runs your command in a .env environment anyway.

# Usage

	envoke [flags] -- command [arg ...]

The command's exit code becomes envoke's exit code. Flag parsing stops at
the first non-flag argument, so the command's own flags stay untouched;
the “--” is recommended, but not required.

# Flags

	    --debug               enable debug logging
	    --dump                dump the variables instead of running a command
	-x, --expand              expand $NAME and ${NAME} references in double-quoted values
	-f, --file stringArray    mandatory: definitions file to load; can be given multiple times
	    --format string       dump format: "env", "json", or "yaml" (default "env")
	-h, --help                help for envoke
	-v, --version             version for envoke

# Examples

Run a workload with the definitions from a “.env” file, expanding variable
references:

	envoke -x -f .env -- node index.js

Layer a local override file on top of the shared definitions:

	envoke -f .env -f .env.local -- terraform plan

Inspect what a workload would get to see, without running anything:

	envoke -x -f .env --dump --format json
*/
package main
