// Package main hosts the foldersort CLI entrypoint and command graph.
//
// The root command organizes one directory. Subcommands preview
// classification, print the effective category table, and scaffold the
// configuration file. Configuration is resolved once per invocation and
// shared by every command through commandContext.
//
// Sorting logic lives in internal/organizer; keep this package to flag
// parsing, prompting, and rendering.
package main
