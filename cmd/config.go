package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "promptgen"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	projectFlagName    = "project"
	storeFlagName      = "store"
	excludeFlagName    = "exclude"
	verboseFlagName    = "verbose"
	additionalFlagName = "additional"

	projectRootKey        = "project.root"
	indexRootsKey         = "index.roots"
	sourceExtensionsKey   = "index.source_extensions"
	compiledExtensionsKey = "index.compiled_extensions"
	archiveExtensionsKey  = "index.archive_extensions"
	indexCacheSizeKey     = "index.cache_size"
	excludeConfigKey      = "paths.exclude"
	priorityMarkersKey    = "resolve.priority_markers"
	resolveParallelKey    = "resolve.parallel"
	storeDriverKey        = "store.driver"
	storePathKey          = "store.path"
	emptyProjectKey       = "prompt.empty_project"
	emptyAdditionalKey    = "prompt.empty_additional"

	defaultProjectRoot     = "."
	defaultIndexCacheSize  = 256
	defaultResolveParallel = 4
	defaultStoreDriver     = "yaml"
	defaultStorePath       = ".promptgen/settings.yaml"

	envPrefix = "PROMPTGEN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".promptgen.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultSourceExtensions   = []string{".java", ".kt", ".scala", ".groovy", ".go"}
	defaultCompiledExtensions = []string{".class"}
	defaultArchiveExtensions  = []string{".jar", ".zip"}
	defaultPriorityMarkers    = []string{"loom", "mappings"}
)

var globalLogger *slog.Logger

// configErr holds a failure to parse the config file; commands refuse to run with it.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(projectRootKey, defaultProjectRoot)
	viper.SetDefault(indexRootsKey, []string{})
	viper.SetDefault(sourceExtensionsKey, defaultSourceExtensions)
	viper.SetDefault(compiledExtensionsKey, defaultCompiledExtensions)
	viper.SetDefault(archiveExtensionsKey, defaultArchiveExtensions)
	viper.SetDefault(indexCacheSizeKey, defaultIndexCacheSize)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(priorityMarkersKey, defaultPriorityMarkers)
	viper.SetDefault(resolveParallelKey, defaultResolveParallel)
	viper.SetDefault(storeDriverKey, defaultStoreDriver)
	viper.SetDefault(storePathKey, defaultStorePath)
	viper.SetDefault(emptyProjectKey, "")
	viper.SetDefault(emptyAdditionalKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configErr = readConfig()
}

// readConfig loads promptgen.yaml. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", viper.ConfigFileUsed(), err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
