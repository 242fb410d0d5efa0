// Package cmd provides the root command and CLI setup for promptgen.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"promptgen.dev/pkg/promptgen/internal/adapter"
	"promptgen.dev/pkg/promptgen/internal/controller"
	"promptgen.dev/pkg/promptgen/internal/domain"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

// workflow is built on first use so that commands such as init and version
// never open the settings store. Tests replace it with a mock.
var workflow domain.Workflow
var ui controller.UI

// closers are released once the root command returns.
var closers []io.Closer

var projectRootFlag string
var storePathFlag string
var excludePatterns []string
var verboseFlag bool

const referencesHelp = `References may be:
  - src/Foo.java                     a file (made absolute when it exists)
  - src/                             a directory, expanded recursively
  - lib/x.jar!/a/B.class             an entry inside an archive
  - classpath:com.example.Foo        a class looked up by qualified name`

const rootLongDescription = `Promptgen collects source files into two lists, project files and
additional context, and turns them into a single prompt for an AI assistant.
Selections, prompt texts and named templates are stored per project.

` + referencesHelp

const addLongDescription = `Resolve references and add them to a selection list.

Compiled classes are replaced by their source when one can be found.

` + referencesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promptgen",
		Short: "Build AI prompts from selected source files",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return configErr
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&projectRootFlag, projectFlagName, defaultProjectRoot, "project root directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectRootKey)

	cmd.PersistentFlags().StringVar(&storePathFlag, storeFlagName, defaultStorePath, "settings file, relative to the project root")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(storeFlagName), storePathKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	closeResources()

	if err != nil {
		os.Exit(1)
	}
}

// currentWorkflow returns the shared workflow, building it from the
// configuration on first use.
func currentWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	w, err := buildWorkflow(cmd)
	if err != nil {
		return nil, err
	}

	workflow = w

	return workflow, nil
}

func buildWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	projectRoot := viper.GetString(projectRootKey)
	sourceExts := viper.GetStringSlice(sourceExtensionsKey)
	compiledExts := viper.GetStringSlice(compiledExtensionsKey)

	logPath := viper.GetString(logFilenameKey)
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	storePath := storeLocation(projectRoot)

	excludes := append(viper.GetStringSlice(excludeConfigKey), logBackupPattern(logPath))

	fsAdapter, err := adapter.NewLocalSourceFSAdapter(excludes...)
	if err != nil {
		return nil, err
	}

	fsAdapter.Ignore(stateFiles(storePath, logPath)...)

	index, err := adapter.NewLocalCandidateIndex(adapter.IndexConfig{
		ProjectRoot:        projectRoot,
		Roots:              viper.GetStringSlice(indexRootsKey),
		SourceExtensions:   sourceExts,
		CompiledExtensions: compiledExts,
		ArchiveExtensions:  viper.GetStringSlice(archiveExtensionsKey),
		CacheSize:          viper.GetInt(indexCacheSizeKey),
	}, fsAdapter)
	if err != nil {
		return nil, fmt.Errorf("create candidate index: %w", err)
	}

	closers = append(closers, index)

	store, err := adapter.OpenSettingsStore(viper.GetString(storeDriverKey), storePath)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}

	closers = append(closers, store)

	resolver := domain.NewResolver(
		index,
		domain.NewMarkerRanker(viper.GetStringSlice(priorityMarkersKey)...),
		domain.ResolverConfig{SourceExtensions: sourceExts, CompiledExtensions: compiledExts},
	)

	parallel := viper.GetInt(resolveParallelKey)
	classExts := append(append([]string{}, sourceExts...), compiledExts...)

	project := domain.NewPanel(domain.PanelConfig{
		ID:              m.ProjectPanel,
		Parallel:        parallel,
		ClassExtensions: classExts,
		ScopeRoot:       projectRoot,
	}, fsAdapter, resolver, store)

	additional := domain.NewPanel(domain.PanelConfig{
		ID:              m.AdditionalPanel,
		Parallel:        parallel,
		ClassExtensions: classExts,
	}, fsAdapter, resolver, store)

	ui = controller.NewUI(cmd, controller.IsTTY(os.Stdout))

	slog.Debug("Workflow configured",
		"project", projectRoot,
		"store", viper.GetString(storeDriverKey),
		"parallel", parallel,
	)

	return domain.NewWorkflow(
		store,
		adapter.NewSystemClipboard(),
		ui,
		domain.NewTemplateStore(store),
		domain.NewAssembler(viper.GetString(emptyProjectKey), viper.GetString(emptyAdditionalKey)),
		project,
		additional,
	), nil
}

// storeLocation resolves a relative store path against the project root.
func storeLocation(projectRoot string) string {
	path := viper.GetString(storePathKey)
	if path == "" {
		path = defaultStorePath
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(projectRoot, path)
}

// stateFiles lists the files promptgen itself writes, so that adding a
// directory never selects them.
func stateFiles(storePath, logPath string) []string {
	files := []string{logPath, storePath}
	for _, suffix := range []string{"-journal", "-wal", "-shm"} {
		files = append(files, storePath+suffix)
	}

	return files
}

// logBackupPattern matches the rotated copies lumberjack keeps next to logPath.
func logBackupPattern(logPath string) string {
	base := filepath.Base(logPath)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext)

	return `(^|/)` + regexp.QuoteMeta(prefix) + `-\d{4}-\d{2}-\d{2}T[^/]*` + regexp.QuoteMeta(ext) + `(\.gz)?$`
}

func closeResources() {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			slog.Warn("Failed to release resource", "error", err)
		}
	}

	closers = nil
}

func panelFor(additional bool) m.PanelID {
	if additional {
		return m.AdditionalPanel
	}

	return m.ProjectPanel
}
