// Package logging assembles the slog loggers foldersort writes its run log
// with.
//
// It owns the timestamped console handler and the JSON handler, resolves
// output targets, and exposes context helpers so every line of one organize
// pass carries the same run identifier. A no-op logger is provided for tests
// and for wiring code that has no logger to hand.
//
// Build loggers through these constructors instead of configuring slog
// globally; components receive their logger explicitly.
package logging
