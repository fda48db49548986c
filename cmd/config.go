package cmd

import (
	"errors"
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

	configBaseName   = "repattern"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName            = "output"
	excludeFlagName           = "exclude"
	verboseFlagName           = "verbose"
	logFileFlagName           = "log-file"
	detectParallelFlagName    = "parallel"
	parallelDetectorsFlagName = "parallel-detectors"
	familyFlagName            = "family"
	metricsFileFlagName       = "metrics-file"
	shardFlagName             = "shard"

	detectParallelConfigKey    = "detect.parallel"
	parallelDetectorsConfigKey = "detect.parallel_detectors"
	familiesConfigKey          = "detect.families"
	excludeConfigKey           = "paths.exclude"
	metricsFileConfigKey       = "metrics.file"

	defaultReportsDir        = ".repattern-reports"
	defaultDetectParallel    = 1
	defaultParallelDetectors = false
	defaultMetricsFile       = ""
	envPrefix                = "REPATTERN"
	logFilenameKey           = "log.filename"
	logLevelKey              = "log.level"
	logVerboseKey            = "log.verbose"
	logMaxSizeKey            = "log.max_size"
	logMaxBackupsKey         = "log.max_backups"
	logMaxAgeKey             = "log.max_age"
	logCompressKey           = "log.compress"
	defaultLogFilename       = ".repattern.log"
	defaultLogLevel          = int(slog.LevelInfo)
	defaultLogVerbose        = false
	defaultLogMaxSize        = 10
	defaultLogMaxBackups     = 3
	defaultLogMaxAge         = 28
	defaultLogCompress       = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(detectParallelConfigKey, defaultDetectParallel)
	viper.SetDefault(parallelDetectorsConfigKey, defaultParallelDetectors)
	viper.SetDefault(familiesConfigKey, []string{})
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(metricsFileConfigKey, defaultMetricsFile)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
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
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
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
