//go:build !unix

package fsutil

// Non-unix renames surface device errors as plain failures.
func isEXDEV(error) bool {
	return false
}
