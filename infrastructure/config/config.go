package config

import (
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/viacoin/viautil/infrastructure/logger"
)

const (
	defaultLogLevel       = "info"
	defaultLogFilename    = "viautil.log"
	defaultErrLogFilename = "viautil_err.log"
)

// Flags defines the configuration options that can be passed on the
// command line.
type Flags struct {
	LogLevel string `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir   string `long:"logdir" description:"Directory to log output. Logs go to stdout only when empty"`
	NetworkFlags
}

// Config defines the configuration options of tools built on this module.
type Config struct {
	*Flags
}

// LoadConfig parses args into a Config. Arguments that aren't options are
// returned as is.
func LoadConfig(args []string) (*Config, []string, error) {
	cfgFlags := &Flags{
		LogLevel: defaultLogLevel,
	}

	parser := flags.NewParser(cfgFlags, flags.HelpFlag|flags.PassDoubleDash)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	err = cfgFlags.ResolveNetwork(parser)
	if err != nil {
		return nil, nil, err
	}

	err = validateLogLevel(cfgFlags.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	if cfgFlags.LogDir != "" {
		cfgFlags.LogDir = filepath.Join(filepath.Clean(cfgFlags.LogDir), cfgFlags.NetParams().Name)
	}

	return &Config{Flags: cfgFlags}, remainingArgs, nil
}

// InitLogging applies the configured log levels and, when a log directory
// is configured, starts writing rotated log files into it.
func (cfg *Config) InitLogging() error {
	if cfg.LogDir != "" {
		err := logger.InitLog(filepath.Join(cfg.LogDir, defaultLogFilename),
			filepath.Join(cfg.LogDir, defaultErrLogFilename))
		if err != nil {
			return err
		}
	}
	return logger.ParseAndSetLogLevels(cfg.LogLevel)
}

// validateLogLevel checks the syntax of a log level setting without applying
// it. Subsystem names are checked by InitLogging since subsystems register
// themselves lazily.
func validateLogLevel(logLevel string) error {
	if !strings.Contains(logLevel, ",") && !strings.Contains(logLevel, "=") {
		if _, ok := logger.LevelFromString(logLevel); !ok {
			return errors.Errorf("the specified log level [%s] is invalid", logLevel)
		}
		return nil
	}

	for _, logLevelPair := range strings.Split(logLevel, ",") {
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 || fields[0] == "" {
			return errors.Errorf("the specified log level contains an invalid "+
				"subsystem/level pair [%s]", logLevelPair)
		}
		if _, ok := logger.LevelFromString(fields[1]); !ok {
			return errors.Errorf("the specified log level [%s] is invalid", fields[1])
		}
	}
	return nil
}
