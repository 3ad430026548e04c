package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/evanschultz/folio/internal/browser"
	"github.com/evanschultz/folio/internal/config"
	"github.com/evanschultz/folio/internal/content"
	"github.com/evanschultz/folio/internal/domain"
	"github.com/evanschultz/folio/internal/platform"
	"github.com/evanschultz/folio/internal/tui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version stores a package-level helper value.
var version = "dev"

// program represents program data used by this package.
type program interface {
	Run() (tea.Model, error)
}

// programFactory stores a package-level helper value.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

// clipboardWriter returns the copy callback for the current terminal, or nil when unsupported.
var clipboardWriter = func() tui.CopyFunc {
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll
}

// main handles main.
func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds persistent flag values shared by every command.
type rootOptions struct {
	configPath  string
	contentPath string
	appName     string
	devMode     bool
}

// runtimeEnv holds resolved paths, config, and logging for one command run.
type runtimeEnv struct {
	opts            rootOptions
	paths           platform.Paths
	configPath      string
	cfg             config.Config
	contentPath     string
	contentExplicit bool
	sinks           *runtimeLogger
	logger          *runtimeLogger
}

// run runs the requested command flow.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return fang.Execute(ctx, root, fang.WithVersion(version))
}

// newRootCommand builds the folio command tree.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := rootOptions{appName: "folio", devMode: version == "dev"}
	if envDev, ok := parseBoolEnv("FOLIO_DEV_MODE"); ok {
		opts.devMode = envDev
	}
	if envApp := strings.TrimSpace(os.Getenv("FOLIO_APP_NAME")); envApp != "" {
		opts.appName = envApp
	}

	root := &cobra.Command{
		Use:   "folio",
		Short: "A terminal portfolio",
		Long:  "folio renders a personal portfolio as a scrollable terminal page.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts, stderr)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config TOML")
	flags.StringVar(&opts.contentPath, "content", "", "path to portfolio content (toml, yaml, or json)")
	flags.StringVar(&opts.appName, "app", opts.appName, "application name for config/data path resolution")
	flags.BoolVar(&opts.devMode, "dev", opts.devMode, "use dev mode paths (<app>-dev)")

	root.AddCommand(
		newPathsCommand(&opts, stdout, stderr),
		newInitCommand(&opts, stdout, stderr),
		newListCommand(&opts, stdout, stderr),
		newShowCommand(&opts, stdout, stderr),
		newExportCommand(&opts, stdout, stderr),
	)
	return root
}

// newPathsCommand builds the paths command.
func newPathsCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print resolved config, content, and log paths",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withEnv(*opts, stderr, "paths", func(env *runtimeEnv) error {
				return printPaths(env, stdout, time.Now())
			})
		},
	}
}

// printPaths reports the locations the runtime actually reads and writes.
func printPaths(env *runtimeEnv, stdout io.Writer, now time.Time) error {
	devLog := env.sinks.DevLogPath()
	if devLog == "" {
		resolved, err := devLogFilePath(env.cfg.Logging.DevFile.Dir, env.opts.appName, now.UTC())
		if err != nil {
			return err
		}
		devLog = resolved
	}
	devLogState := "disabled"
	if env.sinks.DevLogPath() != "" {
		devLogState = "enabled"
	}
	_, _ = fmt.Fprintf(stdout, "app: %s\n", env.opts.appName)
	_, _ = fmt.Fprintf(stdout, "dev_mode: %t\n", env.opts.devMode)
	_, _ = fmt.Fprintf(stdout, "config: %s\n", env.configPath)
	_, _ = fmt.Fprintf(stdout, "data_dir: %s\n", env.paths.DataDir)
	_, _ = fmt.Fprintf(stdout, "content: %s\n", env.contentPath)
	_, _ = fmt.Fprintf(stdout, "log_dir: %s\n", filepath.Dir(devLog))
	_, _ = fmt.Fprintf(stdout, "dev_log: %s\n", devLogState)
	return nil
}

// newInitCommand builds the init command.
func newInitCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config and seed the content file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withEnv(*opts, stderr, "init", func(env *runtimeEnv) error {
				return runInit(env, force, stdout)
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}

// newListCommand builds the list command.
func newListCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var (
		section  string
		category string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects or skill groups as a table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withEnv(*opts, stderr, "list", func(env *runtimeEnv) error {
				portfolio, err := env.loadPortfolio()
				if err != nil {
					return err
				}
				rendered, err := renderList(portfolio, section, category)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(stdout, rendered)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&section, "section", "projects", "section to list (projects|skills)")
	cmd.Flags().StringVar(&category, "category", browser.AllCategory, "category filter")
	return cmd
}

// newShowCommand builds the show command.
func newShowCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show <id|title>",
		Short: "Render one project's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withEnv(*opts, stderr, "show", func(env *runtimeEnv) error {
				portfolio, err := env.loadPortfolio()
				if err != nil {
					return err
				}
				project, ok := portfolio.ProjectByRef(args[0])
				if !ok {
					return fmt.Errorf("project %q not found", args[0])
				}
				mode := tui.ParseThemeMode(string(env.cfg.UI.Theme))
				_, err = fmt.Fprintln(stdout, tui.RenderMarkdown(projectMarkdown(project), width, mode))
				return err
			})
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "wrap width")
	return cmd
}

// newExportCommand builds the export command.
func newExportCommand(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var (
		rawFormat string
		outPath   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the portfolio content as toml, yaml, or json",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withEnv(*opts, stderr, "export", func(env *runtimeEnv) error {
				portfolio, err := env.loadPortfolio()
				if err != nil {
					return err
				}
				format, err := exportFormat(rawFormat, outPath)
				if err != nil {
					return err
				}
				return runExport(portfolio, format, outPath, stdout)
			})
		},
	}
	cmd.Flags().StringVar(&rawFormat, "format", "", "output format (toml|yaml|json); inferred from --out when empty")
	cmd.Flags().StringVar(&outPath, "out", "-", "output file path ('-' for stdout)")
	return cmd
}

// withEnv resolves the runtime environment, runs fn, and logs the command lifecycle.
func withEnv(opts rootOptions, stderr io.Writer, command string, fn func(*runtimeEnv) error) error {
	env, err := newRuntimeEnv(opts, stderr, command, true)
	if err != nil {
		return err
	}
	defer env.close(stderr)

	env.logger.Info("command flow start")
	if err := fn(env); err != nil {
		env.logger.Error("command flow failed", "err", err)
		return fmt.Errorf("run %s command: %w", command, err)
	}
	env.logger.Info("command flow complete")
	return nil
}

// runTUI launches the interactive portfolio.
func runTUI(_ context.Context, opts rootOptions, stderr io.Writer) error {
	// Keep TUI rendering clean: runtime logs stay in the dev-file sink while the page is active.
	env, err := newRuntimeEnv(opts, stderr, "tui", false)
	if err != nil {
		return err
	}
	defer env.close(stderr)

	env.logger.Info("command flow start")
	var loadErr error
	portfolio, err := env.loadPortfolio()
	if err != nil {
		// The page opens on an error screen so the file can be fixed and reloaded in place.
		env.logger.Error("content load failed", "content_path", env.contentPath, "err", err)
		loadErr = err
		if portfolio, err = content.Default(); err != nil {
			return err
		}
	}

	copyFn := clipboardWriter()
	if copyFn == nil {
		env.logger.Warn("clipboard unsupported; copy actions disabled")
	}
	m := tui.NewModel(portfolio, append(modelOptions(env.cfg),
		tui.WithLoadError(loadErr),
		tui.WithCopyCallback(copyFn),
		tui.WithReloadCallback(func() (domain.Portfolio, error) {
			env.logger.Info("content reload requested", "content_path", env.contentPath)
			reloaded, err := env.loadPortfolio()
			if err != nil {
				env.logger.Error("content reload failed", "content_path", env.contentPath, "err", err)
				return domain.Portfolio{}, err
			}
			env.logger.Info("content reload complete", "projects", len(reloaded.Projects))
			return reloaded, nil
		}),
	)...)

	env.logger.Info("starting tui program loop")
	if _, err := programFactory(m).Run(); err != nil {
		env.logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	env.logger.Info("command flow complete")
	return nil
}

// newRuntimeEnv resolves paths, config, and logging from flags and environment.
// Events logged through env.logger carry the command name.
func newRuntimeEnv(opts rootOptions, stderr io.Writer, command string, console bool) (*runtimeEnv, error) {
	paths, err := platform.DefaultPathsWithOptions(platform.Options{
		AppName: opts.appName,
		DevMode: opts.devMode,
	})
	if err != nil {
		return nil, err
	}

	configPath, _ := resolvePath(opts.configPath, "FOLIO_CONFIG", paths.ConfigPath)
	cfg, err := config.Load(configPath, config.Default(paths.ContentPath))
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", configPath, err)
	}
	contentPath, explicit := resolvePath(opts.contentPath, "FOLIO_CONTENT", cfg.Content.Path)
	if !explicit && contentPath != paths.ContentPath {
		explicit = true
	}

	sinks, err := newRuntimeLogger(stderr, opts.appName, opts.devMode, cfg.Logging, time.Now)
	if err != nil {
		return nil, fmt.Errorf("configure runtime logger: %w", err)
	}
	sinks.SetConsoleEnabled(console)
	logger := sinks.With("command", command)
	env := &runtimeEnv{
		opts:            opts,
		paths:           paths,
		configPath:      configPath,
		cfg:             cfg,
		contentPath:     contentPath,
		contentExplicit: explicit,
		sinks:           sinks,
		logger:          logger,
	}
	logger.Info("startup configuration resolved", "app", opts.appName, "dev_mode", opts.devMode)
	logger.Debug("runtime paths resolved", "config_path", configPath, "data_dir", paths.DataDir, "content_path", contentPath)
	logger.Info("configuration loaded", "config_path", configPath, "theme", cfg.UI.Theme, "log_level", cfg.Logging.Level)
	if devPath := logger.DevLogPath(); devPath != "" {
		logger.Info("dev file logging enabled", "path", devPath)
	}
	return env, nil
}

// close releases the runtime log sinks.
func (e *runtimeEnv) close(stderr io.Writer) {
	if closeErr := e.sinks.Close(); closeErr != nil && e.sinks.shouldLogToSink(e.sinks.consoleSink) {
		_, _ = fmt.Fprintf(stderr, "warning: close runtime log sink: %v\n", closeErr)
	}
}

// loadPortfolio reads the configured content, falling back to the embedded default
// when the default content path has not been created yet.
func (e *runtimeEnv) loadPortfolio() (domain.Portfolio, error) {
	path := e.contentPath
	if !e.contentExplicit {
		if !fileExists(path) {
			e.logger.Debug("content file missing; using embedded default", "content_path", path)
			path = ""
		}
	}
	portfolio, err := content.Load(path)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("load content: %w", err)
	}
	e.logger.Info("content loaded", "owner", portfolio.Owner.Name, "projects", len(portfolio.Projects), "skill_groups", len(portfolio.Skills))
	return portfolio, nil
}

// modelOptions maps persisted config values into model options.
func modelOptions(cfg config.Config) []tui.Option {
	policy, ok := browser.ParseDetailPolicy(string(cfg.Browser.DetailOnFilter))
	if !ok {
		policy = browser.DetailPolicyClose
	}
	return []tui.Option{
		tui.WithTheme(tui.ParseThemeMode(string(cfg.UI.Theme))),
		tui.WithDetailPolicy(policy),
		tui.WithSmoothScroll(cfg.UI.SmoothScroll),
		tui.WithRevealThreshold(cfg.Reveal.Threshold),
		tui.WithKeyConfig(tui.KeyConfig{
			ToggleTheme: cfg.Keys.ToggleTheme,
			Menu:        cfg.Keys.Menu,
			CopyLink:    cfg.Keys.CopyLink,
			Resume:      cfg.Keys.Resume,
		}),
	}
}

// renderList renders one browser's filtered view as a table.
func renderList(portfolio domain.Portfolio, section, category string) (string, error) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	switch strings.ToLower(strings.TrimSpace(section)) {
	case "", "projects":
		b := browser.New(portfolio.Projects)
		if err := b.SelectCategory(category); err != nil {
			return "", fmt.Errorf("category %q: %w", category, err)
		}
		t = t.Headers("ID", "Title", "Category", "Date", "Repository")
		for _, project := range b.FilteredView() {
			t = t.Row(shortID(project.ID), project.Title, project.Category, project.Date, linkText(project.Repository))
		}
	case "skills":
		b := browser.New(portfolio.Skills)
		if err := b.SelectCategory(category); err != nil {
			return "", fmt.Errorf("category %q: %w", category, err)
		}
		t = t.Headers("ID", "Group", "Skill", "Level")
		for _, group := range b.FilteredView() {
			for _, skill := range group.Skills {
				t = t.Row(shortID(group.ID), group.Name, skill.Name, strconv.Itoa(domain.ClampLevel(skill.Level))+"%")
			}
		}
	default:
		return "", fmt.Errorf("unknown section %q (want projects|skills)", section)
	}
	return t.Render(), nil
}

// projectMarkdown formats one project as a markdown document.
func projectMarkdown(project domain.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", project.Title)
	meta := project.Category
	if project.Date != "" {
		meta += " · " + project.Date
	}
	fmt.Fprintf(&b, "*%s*\n\n", meta)
	if body := project.LongDescription(); body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	if len(project.Features) > 0 {
		b.WriteString("## Key Features\n\n")
		for _, feature := range project.Features {
			fmt.Fprintf(&b, "- %s\n", feature)
		}
		b.WriteString("\n")
	}
	if len(project.Technologies) > 0 {
		fmt.Fprintf(&b, "## Technologies\n\n%s\n\n", strings.Join(project.Technologies, ", "))
	}
	if links := project.Links(); len(links) > 0 {
		b.WriteString("## Links\n\n")
		for _, link := range links {
			fmt.Fprintf(&b, "- %s: %s\n", link.Label, linkText(link))
		}
	}
	return b.String()
}

// runInit writes the default config and embedded content unless they already exist.
func runInit(env *runtimeEnv, force bool, stdout io.Writer) error {
	if force || !fileExists(env.configPath) {
		if err := config.Save(env.configPath, config.Default(env.contentPath)); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		env.logger.Info("config written", "config_path", env.configPath)
		_, _ = fmt.Fprintf(stdout, "wrote config: %s\n", env.configPath)
	} else {
		_, _ = fmt.Fprintf(stdout, "config exists: %s\n", env.configPath)
	}

	if !force && fileExists(env.contentPath) {
		_, _ = fmt.Fprintf(stdout, "content exists: %s\n", env.contentPath)
		return nil
	}
	format, err := content.FormatForPath(env.contentPath)
	if err != nil {
		return err
	}
	portfolio, err := content.Default()
	if err != nil {
		return err
	}
	if err := runExport(portfolio, format, env.contentPath, stdout); err != nil {
		return err
	}
	env.logger.Info("content seeded", "content_path", env.contentPath)
	_, _ = fmt.Fprintf(stdout, "wrote content: %s\n", env.contentPath)
	return nil
}

// exportFormat picks the export encoding from the flag or the output extension.
func exportFormat(raw, outPath string) (content.Format, error) {
	if strings.TrimSpace(raw) != "" {
		return content.ParseFormat(raw)
	}
	if outPath == "" || outPath == "-" {
		return content.FormatTOML, nil
	}
	return content.FormatForPath(outPath)
}

// runExport writes the encoded portfolio to stdout or a file.
func runExport(portfolio domain.Portfolio, format content.Format, outPath string, stdout io.Writer) error {
	if outPath == "" || outPath == "-" {
		if err := content.Encode(stdout, portfolio, format); err != nil {
			return fmt.Errorf("write content to stdout: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create export output dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := content.Encode(f, portfolio, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	return f.Close()
}

// resolvePath picks the flag value, then the environment variable, then the fallback.
// The second result reports whether the path came from the flag or environment.
func resolvePath(flagValue, envName, fallback string) (string, bool) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, true
	}
	if v := strings.TrimSpace(os.Getenv(envName)); v != "" {
		return v, true
	}
	return fallback, false
}

// linkText returns a printable link target.
func linkText(link domain.Link) string {
	if link.IsPlaceholder() {
		return "coming soon"
	}
	return link.URL
}

// shortID trims a uuid-style id for table display.
func shortID(id string) string {
	if len(id) > 8 && strings.Count(id, "-") == 4 {
		return id[:8]
	}
	return id
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// loadDotEnv loads KEY=VALUE pairs from path when the file exists.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseBoolEnv parses input into a normalized form.
func parseBoolEnv(name string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
