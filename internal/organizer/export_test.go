package organizer

import "foldersort/internal/fsutil"

// SetMoveFunc replaces the file mover for the duration of a test.
func SetMoveFunc(fn func(src, dst string) (fsutil.MoveResult, error)) (restore func()) {
	old := moveFile
	moveFile = fn
	return func() { moveFile = old }
}
