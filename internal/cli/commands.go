package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/ren/internal/version"
	"github.com/arthur-debert/ren/pkg/config"
	"github.com/arthur-debert/ren/pkg/errors"
	"github.com/arthur-debert/ren/pkg/executor"
	"github.com/arthur-debert/ren/pkg/filesystem"
	"github.com/arthur-debert/ren/pkg/logging"
	"github.com/arthur-debert/ren/pkg/pattern"
	"github.com/arthur-debert/ren/pkg/planner"
	"github.com/arthur-debert/ren/pkg/template"
	"github.com/arthur-debert/ren/pkg/types"
	"github.com/arthur-debert/ren/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ren [flags] pattern replacement",
		Short: "Batch-rename files in the current directory",
		Long: `ren renames groups of files in the current directory. The pattern is a
shell-style wildcard by default: every * (any run of characters) and
? (exactly one character) becomes a numbered capture group. With --regex
the pattern is used as a regular expression instead. The replacement is
literal text with #k placeholders, where #1 is the first capture group
and #0 the whole name.

The full rename plan is validated before anything is touched: if two
files would end up with the same name, or a new name would overwrite an
unrelated existing file, nothing is renamed at all.`,
		Example: `  # Normalize jpg numbering
  ren -E '^img_([0-9]+)\.jpg$' 'image-#1.jpg'

  # Tidy screenshot names
  ren 'Screenshot from * ??-??-??.png' 'Screenshot_#1_(#2#3:#4#5:#6#7).png'

  # Preview without renaming anything
  ren -d '*.jpeg' '#1.jpg'`,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.Newf(errors.ErrUsage,
					"expected a pattern and a replacement, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().BoolP("dry-run", "d", false, "Print the rename plan without touching any file")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable verbose trace output")
	rootCmd.Flags().BoolP("regex", "E", false, "Treat pattern as a regular expression instead of a wildcard")
	rootCmd.Flags().BoolP("version", "V", false, "Print version information")

	rootCmd.SetVersionTemplate(fmt.Sprintf("ren {{.Version}} (commit %s, built %s)\n",
		version.Commit, version.Date))

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	return rootCmd
}

// run is the single code path behind the root command: resolve config,
// compile the pattern, plan over the directory listing, then execute.
func run(cmd *cobra.Command, patternArg, replacement string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, errors.ErrListDir, "cannot determine working directory")
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}

	// Flags beat config beats environment-free defaults
	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("regex") {
		cfg.Regex, _ = flags.GetBool("regex")
	}

	verbosity := 0
	if cfg.Debug {
		verbosity = 2
	}
	logging.SetupLogger(verbosity)

	log.Debug().
		Str("pattern", patternArg).
		Str("replacement", replacement).
		Bool("regex", cfg.Regex).
		Bool("dry_run", cfg.DryRun).
		Msg("Command started")

	mode := pattern.ModeWildcard
	if cfg.Regex {
		mode = pattern.ModeRegex
	}

	cp, err := pattern.Compile(patternArg, mode)
	if err != nil {
		return err
	}

	if max := template.MaxIndex(replacement); max > cp.Groups() {
		log.Warn().
			Int("placeholder", max).
			Int("groups", cp.Groups()).
			Msg("Replacement references a capture group the pattern does not define; the token is kept as literal text")
	}

	fsys := filesystem.NewOS()
	names, err := listRegularFiles(fsys, ".")
	if err != nil {
		return err
	}

	plan, err := planner.Build(names, cp, replacement)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if plan.Len() == 0 {
		fmt.Fprintln(out, "No files matched.")
		return nil
	}

	if cfg.DryRun {
		fmt.Fprintln(out, styles.GetStyle("Warning").Render("Dry run - no files will be renamed"))
	}

	results := executor.New(executor.Options{
		DryRun: cfg.DryRun,
		FS:     fsys,
		Out:    out,
	}).Execute(plan)

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
		}
	}
	if failed > 0 {
		return errors.Newf(errors.ErrRename, "%d of %d renames failed", failed, len(results))
	}
	return nil
}

// listRegularFiles returns the sorted regular-file names in dir.
// Directories, symlinks and other non-regular entries are excluded, and
// there is no recursion: ren operates on a single flat directory.
func listRegularFiles(fsys types.FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrListDir, "cannot read working directory")
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
