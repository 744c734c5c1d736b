/*
Package envoke loads variable definitions from “.env”-style files and then
runs a command inside the environment of this process extended by exactly
these variables.

“envoke isn't a shell.” It just brings along the one shell feature that
forever gets reinvented as shell one-liners of varying brokenness: sourcing
a file of KEY=VALUE definitions before launching the actual workload. In
contrast to such one-liners, envoke doesn't involve any shell quoting
pitfalls, works the same on any platform, and is easily “go install”-able,
including version pinning.

The definitions file format and the optional $NAME and ${NAME} expansion of
double-quoted values are implemented by the subordinate [dotenv] package;
this package glues the parsed definitions to the real process environment:

  - [Load] reads and projects one or more definitions files,
  - [Run] launches a command with the loaded variables added to its
    environment,
  - [Dump] instead renders the loaded variables in definitions, JSON, or
    YAML format.

[dotenv]: https://pkg.go.dev/github.com/thediveo/envoke/dotenv
*/
package envoke
