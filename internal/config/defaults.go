package config

import "foldersort/internal/category"

const (
	defaultConfigPath  = "~/.config/foldersort/config.toml"
	projectConfigName  = "foldersort.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultSortEntries = true
)

// Default returns a Config populated with repository defaults. Categories are
// left empty here so a [[categories]] list in a file replaces rather than
// extends them; normalize fills in the built-in table when none is given.
func Default() Config {
	return Config{
		Paths: Paths{
			LockDir: defaultLockDir(),
		},
		Organize: Organize{
			Fallback:    category.DefaultFallback,
			SortEntries: defaultSortEntries,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCategories() []Category {
	builtin := category.DefaultCategories()
	out := make([]Category, 0, len(builtin))
	for _, cat := range builtin {
		out = append(out, Category{Name: cat.Name, Extensions: cat.Extensions})
	}
	return out
}
