package organizer

import (
	"errors"
	"fmt"
	"strings"

	"foldersort/internal/fsutil"
)

var (
	// ErrDirectoryNotFound is returned when the target directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrNotDirectory is returned when the target path is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrConfiguration marks invalid categories, exclusions, or config files.
	ErrConfiguration = errors.New("configuration error")
	// ErrFilesystem marks run-level filesystem failures such as a category
	// folder that cannot be created.
	ErrFilesystem = errors.New("filesystem error")
	// ErrLocked is returned when another run holds the directory lock.
	ErrLocked = fsutil.ErrLocked
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for errors.Is checks. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrFilesystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
