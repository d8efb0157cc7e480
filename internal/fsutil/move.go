package fsutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Replaceable so tests can simulate EXDEV.
var renameFunc = os.Rename

// CrossDeviceError reports a rename that failed because source and
// destination live on different filesystems.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device rename %q -> %q: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err is or wraps a CrossDeviceError.
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

// Rename wraps os.Rename and tags EXDEV failures as CrossDeviceError.
func Rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

// MoveResult describes how Move relocated a file.
type MoveResult struct {
	Copied bool
}

// Move relocates src to dst. A cross-device rename falls back to a verified
// copy followed by removal of the source. A source that cannot be removed
// after a successful copy is reported as an error while the copy remains.
func Move(src, dst string) (MoveResult, error) {
	err := Rename(src, dst)
	if err == nil {
		return MoveResult{}, nil
	}
	if !IsCrossDevice(err) {
		return MoveResult{}, err
	}
	if err := CopyFile(src, dst); err != nil {
		return MoveResult{}, fmt.Errorf("copy across devices: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return MoveResult{Copied: true}, fmt.Errorf("remove source after copy: %w", err)
	}
	return MoveResult{Copied: true}, nil
}

// CopyFile copies src to dst and verifies size and content hash. The
// destination keeps the source permission bits. dst is removed on any
// verification failure.
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("copy source %q is not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	if written != srcInfo.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return errors.New("copy hash mismatch: file corrupted during copy")
	}
	_ = os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
	return nil
}
