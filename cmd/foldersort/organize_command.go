package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"foldersort/internal/organizer"
)

const directoryPrompt = "Directory to organize (leave empty for current): "

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var noSort bool
	var showSummary bool
	var exclude []string

	cmd := &cobra.Command{
		Use:   "foldersort [dir]",
		Short: "Sort the files of a directory into category folders",
		Long: "Move every top-level file of a directory into a subfolder named after its\n" +
			"category (Images, Documents, Audio, Video, Archives, or Others).\n" +
			"Subdirectories are left alone and name clashes get a _N suffix.\n\n" +
			"Subcommand names take precedence over directory names: to organize a\n" +
			"directory called config, classify or categories, pass ./config.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDirectory(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			org, err := organizer.NewFromConfig(dir, cfg, logger,
				organizer.WithExclusions(exclude...),
				organizer.WithSortEntries(cfg.Organize.SortEntries && !noSort),
				organizer.WithDryRun(dryRun),
			)
			if err != nil {
				return err
			}

			summary, err := org.Organize(context.Background())
			if err != nil {
				if errors.Is(err, organizer.ErrLocked) {
					return fmt.Errorf("another foldersort run is working on %s: %w", org.Dir(), err)
				}
				return err
			}

			if showSummary {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out)
				fmt.Fprint(out, renderSummary(summary, shouldColorize(out)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show where files would go without moving anything")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "File name or glob pattern to leave in place (repeatable)")
	cmd.Flags().BoolVar(&noSort, "no-sort", false, "Process entries in filesystem order instead of name order")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "Print a per-category table after the run")
	return cmd
}

// targetDirectory returns the positional argument, or asks for one when
// stdin is a terminal. Anything else means the current directory.
func targetDirectory(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	in := cmd.InOrStdin()
	if !isTerminal(in) {
		return ".", nil
	}
	return promptDirectory(in, cmd.OutOrStdout())
}

func promptDirectory(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, directoryPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read directory: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return ".", nil
	}
	return line, nil
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
