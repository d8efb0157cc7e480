package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"foldersort/internal/category"
	"foldersort/internal/config"
	"foldersort/internal/fsutil"
	"foldersort/internal/logging"
)

// Replaceable so tests can inject move failures.
var moveFile = fsutil.Move

// Organizer sorts the top-level files of a single directory.
type Organizer struct {
	dir         string
	table       *category.Table
	logger      *slog.Logger
	exclude     []string
	sortEntries bool
	dryRun      bool
	lockDir     string
	selfName    string
}

// Option customizes an Organizer.
type Option func(*Organizer)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Organizer) { o.logger = logger }
}

// WithCategories replaces the built-in category table.
func WithCategories(table *category.Table) Option {
	return func(o *Organizer) {
		if table != nil {
			o.table = table
		}
	}
}

// WithExclusions leaves entries matching any of the given names or
// filepath.Match patterns in place.
func WithExclusions(patterns ...string) Option {
	return func(o *Organizer) { o.exclude = append(o.exclude, patterns...) }
}

// WithSortEntries controls whether entries are processed in name order.
func WithSortEntries(enabled bool) Option {
	return func(o *Organizer) { o.sortEntries = enabled }
}

// WithDryRun plans moves without touching the filesystem.
func WithDryRun(enabled bool) Option {
	return func(o *Organizer) { o.dryRun = enabled }
}

// WithLockDir holds a per-directory lock under dir for the duration of a
// pass. An empty dir disables locking.
func WithLockDir(dir string) Option {
	return func(o *Organizer) { o.lockDir = strings.TrimSpace(dir) }
}

// New validates dir and constructs an Organizer for it. A missing directory
// fails with ErrDirectoryNotFound before anything is touched.
func New(dir string, opts ...Option) (*Organizer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, Wrap(ErrDirectoryNotFound, "setup", "resolve directory", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Wrap(ErrDirectoryNotFound, "setup", "stat directory", fmt.Sprintf("directory %q not found", dir), err)
		}
		return nil, Wrap(ErrFilesystem, "setup", "stat directory", dir, err)
	}
	if !info.IsDir() {
		return nil, Wrap(ErrNotDirectory, "setup", "stat directory", fmt.Sprintf("%q is not a directory", dir), nil)
	}

	o := &Organizer{
		dir:         abs,
		table:       category.Default(),
		sortEntries: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = logging.NewComponentLogger(o.logger, "organizer")

	for _, pattern := range o.exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, Wrap(ErrConfiguration, "setup", "parse exclusions", fmt.Sprintf("invalid pattern %q", pattern), err)
		}
	}
	o.selfName = selfNameIn(abs)
	return o, nil
}

// NewFromConfig constructs an Organizer using the category table, exclusions,
// ordering, and lock directory from cfg. Extra options apply afterwards.
func NewFromConfig(dir string, cfg *config.Config, logger *slog.Logger, opts ...Option) (*Organizer, error) {
	if cfg == nil {
		return New(dir, append([]Option{WithLogger(logger)}, opts...)...)
	}
	table, err := cfg.CategoryTable()
	if err != nil {
		return nil, Wrap(ErrConfiguration, "setup", "build category table", "", err)
	}
	base := []Option{
		WithLogger(logger),
		WithCategories(table),
		WithExclusions(cfg.Organize.Exclude...),
		WithSortEntries(cfg.Organize.SortEntries),
		WithLockDir(cfg.Paths.LockDir),
	}
	return New(dir, append(base, opts...)...)
}

// Dir returns the absolute target directory.
func (o *Organizer) Dir() string {
	return o.dir
}

// Categories returns the table the organizer classifies with.
func (o *Organizer) Categories() *category.Table {
	return o.table
}

// Classify returns the category folder name for fileName.
func (o *Organizer) Classify(fileName string) string {
	return o.table.Classify(fileName)
}

// ResolveCollision returns destination unchanged when nothing exists there,
// otherwise the first free name_N.ext sibling with N counting from 1.
func (o *Organizer) ResolveCollision(destination string) (string, error) {
	return ResolveCollision(destination)
}

// Organize runs one pass over the directory. Per-file failures are logged and
// reported in the summary; the returned error covers only problems that stop
// the pass before any file is moved.
func (o *Organizer) Organize(ctx context.Context) (*Summary, error) {
	ctx, runID := logging.EnsureRunID(ctx)
	logger := logging.WithContext(ctx, o.logger)
	started := time.Now()

	if o.lockDir != "" {
		lock, err := fsutil.TryLock(o.lockDir, o.dir)
		if err != nil {
			if errors.Is(err, fsutil.ErrLocked) {
				return nil, err
			}
			return nil, Wrap(ErrFilesystem, "setup", "acquire lock", "", err)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("failed to release directory lock", logging.String("lock_path", lock.Path()), logging.Error(err))
			}
		}()
	}

	logger.Info(
		"starting organization",
		logging.String(logging.FieldDirectory, o.dir),
		logging.Bool("dry_run", o.dryRun),
	)

	if !o.dryRun {
		if err := o.ensureCategoryDirs(); err != nil {
			return nil, err
		}
	}

	entries, err := o.readEntries()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:     runID,
		Directory: o.dir,
		DryRun:    o.dryRun,
		StartedAt: started,
	}
	for _, name := range o.table.Names() {
		summary.ByCategory = append(summary.ByCategory, CategoryStats{Name: name})
	}

	claimed := make(map[string]struct{})
	for _, entry := range entries {
		res := o.processEntry(entry, claimed)
		o.logResult(logger, res)
		summary.record(res)
	}

	summary.Elapsed = time.Since(started)
	logger.Info(
		"organization completed",
		logging.Int("moved", summary.Moved),
		logging.Int("planned", summary.Planned),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", summary.Elapsed.Round(time.Millisecond)),
	)
	return summary, nil
}

func (o *Organizer) ensureCategoryDirs() error {
	for _, name := range o.table.Names() {
		path := filepath.Join(o.dir, name)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return Wrap(ErrFilesystem, "setup", "create category folder", name, err)
		}
	}
	return nil
}

func (o *Organizer) readEntries() ([]fs.DirEntry, error) {
	f, err := os.Open(o.dir)
	if err != nil {
		return nil, Wrap(ErrFilesystem, "scan", "open directory", o.dir, err)
	}
	defer f.Close()

	// File.ReadDir keeps the OS order; os.ReadDir would always sort.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, Wrap(ErrFilesystem, "scan", "list directory", o.dir, err)
	}
	if o.sortEntries {
		slices.SortFunc(entries, func(a, b fs.DirEntry) int {
			return strings.Compare(a.Name(), b.Name())
		})
	}
	return entries, nil
}

func (o *Organizer) processEntry(entry fs.DirEntry, claimed map[string]struct{}) Result {
	name := entry.Name()
	src := filepath.Join(o.dir, name)
	res := Result{Name: name}

	if reason, skip := o.skipReason(entry, src); skip {
		res.Status = StatusSkipped
		res.Reason = reason
		return res
	}

	if info, err := entry.Info(); err == nil {
		res.Size = info.Size()
	}

	res.Category = o.table.Classify(name)
	requested := filepath.Join(o.dir, res.Category, name)
	target, err := resolveCollision(requested, claimed)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("resolve destination: %w", err)
		return res
	}
	res.Destination = target
	res.Renamed = target != requested

	if o.dryRun {
		claimed[target] = struct{}{}
		res.Status = StatusPlanned
		return res
	}

	moved, err := moveFile(src, target)
	res.Copied = moved.Copied
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	res.Status = StatusMoved
	return res
}

func (o *Organizer) skipReason(entry fs.DirEntry, path string) (string, bool) {
	name := entry.Name()
	mode := entry.Type()
	switch {
	case entry.IsDir():
		return SkipDirectory, true
	case mode&fs.ModeSymlink != 0:
		// A link to a directory is treated like the directory.
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return SkipDirectory, true
		}
	case !mode.IsRegular():
		return SkipIrregular, true
	}
	if o.isExcluded(name) {
		return SkipExcluded, true
	}
	if o.selfName != "" && name == o.selfName {
		return SkipSelf, true
	}
	return "", false
}

func (o *Organizer) isExcluded(name string) bool {
	for _, pattern := range o.exclude {
		if pattern == name {
			return true
		}
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (o *Organizer) logResult(logger *slog.Logger, res Result) {
	switch res.Status {
	case StatusMoved:
		logger.Info("moved file",
			logging.String("name", res.Name),
			logging.String("destination", o.relative(res.Destination)),
			logging.Bool("renamed", res.Renamed),
		)
		if res.Copied {
			logger.Debug("moved across filesystems by copy", logging.String("name", res.Name))
		}
	case StatusPlanned:
		logger.Info("would move file",
			logging.String("name", res.Name),
			logging.String("destination", o.relative(res.Destination)),
			logging.Bool("renamed", res.Renamed),
		)
	case StatusSkipped:
		logger.Debug("skipped entry", logging.String("name", res.Name), logging.String("reason", res.Reason))
	case StatusFailed:
		logger.Error("failed to move file", logging.String("name", res.Name), logging.Error(res.Err))
	}
}

func (o *Organizer) relative(path string) string {
	if rel, err := filepath.Rel(o.dir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

// selfNameIn returns the executable's base name when the executable lives
// directly inside dir.
func selfNameIn(dir string) string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	target := dir
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		target = resolved
	}
	if filepath.Dir(exe) != target {
		return ""
	}
	return filepath.Base(exe)
}
