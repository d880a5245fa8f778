// Package pbkore implements the core of pbtool that everything else builds on:
// the execution environment [Env] for external tools, locating and running
// those tools ([LookTool], [Command]) and the [Trace] through which all steps
// report what they do. It uses plain Go error handling and knows nothing about
// plugin projects. The operations that deploy and package a plugin are
// provided by the [pbtool] package.
//
// [pbtool]: https://pkg.go.dev/git.fractalqb.de/fractalqb/pbtool
package pbkore
