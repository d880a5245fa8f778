// Package pbcfg reads the pb_tool.cfg project configuration of a plugin.
//
// The configuration is an INI file with the sections plugin, files and help
// and an optional tools section. Values are whitespace separated token lists.
// Lookups do not panic or exit when something is missing but return a
// [Value] with an explicit [State]; callers decide whether absence is fatal.
// [ParseProject] turns a [Config] into the typed [Project] used by the build
// and deploy operations.
package pbcfg
