// Package fsutil holds the filesystem primitives the organizer builds on:
// moving a file with a copy fallback when rename crosses devices, and an
// advisory lock that keeps two runs off the same directory.
package fsutil
