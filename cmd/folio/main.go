package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/huh"
	"github.com/fjanphilip/folio/internal/config"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/fjanphilip/folio/internal/ui"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

const defaultContentName = "portfolio.yaml"

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	renderWidth    int
	renderHeight   int
	rootCmd        = &cobra.Command{
		Use:   "folio",
		Short: "Terminal portfolio",
		Long:  `folio - A single page personal portfolio for the terminal`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about folio",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	checkCmd = &cobra.Command{
		Use:   "check [path]",
		Short: "Validate a portfolio file",
		Long:  "Validate a portfolio file, defaulting to the configured content_path",
		Args:  cobra.MaximumNArgs(1),
		RunE:  check,
	}

	renderCmd = &cobra.Command{
		Use:   "render [path]",
		Short: "Print the page to stdout",
		Long:  "Render the whole page once without the interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  render,
	}

	initCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Create a new portfolio file",
		Long:  "Interactively create a minimal portfolio file and point the config at it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initPortfolio,
	}
)

var (
	errApp    = errors.New("application error")
	errExists = errors.New("file already exists")
)

func main() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 100, "Page width in columns")
	renderCmd.Flags().IntVar(&renderHeight, "height", 30, "Banner height in rows")
	rootCmd.AddCommand(versionCmd, checkCmd, renderCmd, initCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("folio - Terminal Portfolio\n\n")     //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

// readConfig loads the user config without watching it.
func readConfig() (*config.Loader, config.Config, error) {
	loader := config.NewLoader(nil)
	conf, err := loader.Read()
	if err != nil {
		return nil, config.Config{}, errors.Join(err, errApp)
	}

	return loader, conf, nil
}

// contentArg picks the portfolio file named on the command line, falling back to the config.
func contentArg(args []string, conf config.Config) string {
	if len(args) > 0 {
		return args[0]
	}

	return conf.ContentPath
}

func check(cmd *cobra.Command, args []string) error {
	_, conf, err := readConfig()
	if err != nil {
		return err
	}

	contentPath := contentArg(args, conf)
	content, errLoad := portfolio.Load(contentPath)
	if errLoad != nil {
		return errLoad
	}

	name := contentPath
	if name == "" {
		name = "built-in content"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d skill groups, %d projects, %d certificates)\n",
		name, len(content.SkillGroups), len(content.Projects), len(content.Certificates))

	return nil
}

func render(cmd *cobra.Command, args []string) error {
	_, conf, err := readConfig()
	if err != nil {
		return err
	}

	content, errLoad := portfolio.Load(contentArg(args, conf))
	if errLoad != nil {
		return errLoad
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderStatic(content, conf, renderWidth, renderHeight))

	return nil
}

func initPortfolio(cmd *cobra.Command, args []string) error {
	loader, conf, err := readConfig()
	if err != nil {
		return err
	}

	target := config.Path(defaultContentName)
	if len(args) > 0 {
		target = args[0]
	}

	if _, errStat := os.Stat(target); errStat == nil {
		return fmt.Errorf("%w: %s", errExists, target)
	}

	var name, headline, email, githubURL string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&name).Validate(required),
		huh.NewInput().Title("Headline").Placeholder("Web - Desktop - IoT Developer").Value(&headline),
		huh.NewInput().Title("Email").Value(&email).Validate(required),
		huh.NewInput().Title("GitHub URL").Placeholder("https://github.com/you").Value(&githubURL),
	))

	if errForm := form.RunWithContext(cmd.Context()); errForm != nil {
		return errForm
	}

	body, errScaffold := portfolio.Scaffold(name, headline, email, githubURL)
	if errScaffold != nil {
		return errScaffold
	}

	if errDir := os.MkdirAll(path.Dir(target), 0o750); errDir != nil {
		return errors.Join(errDir, errApp)
	}

	if errWrite := os.WriteFile(target, body, 0o600); errWrite != nil {
		return errors.Join(errWrite, errApp)
	}

	conf.ContentPath = target
	if errConfig := loader.Write(conf); errConfig != nil {
		return errConfig
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s and set content_path in %s\n", target, loader.Path())

	return nil
}

func required(value string) error {
	if value == "" {
		return errors.New("required")
	}

	return nil
}

// run is the main entry point of folio.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	configLoader := config.NewLoader(configUpdates)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}
	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting folio", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	content, errContent := portfolio.Load(userConfig.ContentPath)
	if errContent != nil {
		return errors.Join(errContent, errApp)
	}

	configLoader.Watch()
	defer configLoader.Close()

	build := ui.BuildInfo{Version: BuildVersion, Date: BuildDate, Commit: BuildCommit}
	userInterface := ui.New(cmd.Context(), userConfig, content, build, configLoader.Path())

	if err := NewApp(userConfig, userInterface, configUpdates).Start(cmd.Context()); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
