package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemLoggersMutex sync.Mutex
	subsystemLoggers      = make(map[string]*Logger)
)

// RegisterSubSystem returns the logger of the given subsystem, creating it
// on first use.
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	logger, exists := subsystemLoggers[subsystem]
	if !exists {
		logger = BackendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

// InitLog attaches a rotated log file and a rotated error log file to the
// backend, echoes everything to stdout and starts the backend.
func InitLog(logFile, errLogFile string) error {
	err := BackendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		return errors.Wrapf(err, "error adding log file %s as log rotator for level %s", logFile, LevelTrace)
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		return errors.Wrapf(err, "error adding log file %s as log rotator for level %s", errLogFile, LevelWarn)
	}
	err = BackendLog.AddLogWriter(os.Stdout, LevelInfo)
	if err != nil {
		return errors.Wrap(err, "error adding stdout to the logger")
	}
	return BackendLog.Run()
}

// SetLogLevel sets the logging level for provided subsystem. Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, _ := LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) {
	subsystemLoggersMutex.Lock()
	ids := make([]string, 0, len(subsystemLoggers))
	for subsystemID := range subsystemLoggers {
		ids = append(ids, subsystemID)
	}
	subsystemLoggersMutex.Unlock()

	for _, subsystemID := range ids {
		SetLogLevel(subsystemID, logLevel)
	}
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// ParseAndSetLogLevels attempts to parse the specified debug level and set
// the levels accordingly. Either a single level applied to every subsystem
// or a comma separated list of <subsystem>=<level> pairs is accepted.
func ParseAndSetLogLevels(logLevel string) error {
	if !strings.Contains(logLevel, ",") && !strings.Contains(logLevel, "=") {
		if _, ok := LevelFromString(logLevel); !ok {
			return errors.Errorf("the specified log level [%s] is invalid", logLevel)
		}
		SetLogLevels(logLevel)
		return nil
	}

	for _, logLevelPair := range strings.Split(logLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified log level contains an invalid "+
				"subsystem/level pair [%s]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, levelStr := fields[0], fields[1]

		subsystemLoggersMutex.Lock()
		_, exists := subsystemLoggers[subsysID]
		subsystemLoggersMutex.Unlock()
		if !exists {
			return errors.Errorf("the specified subsystem [%s] is invalid -- "+
				"supported subsystems %s", subsysID, strings.Join(SupportedSubsystems(), ", "))
		}
		if _, ok := LevelFromString(levelStr); !ok {
			return errors.Errorf("the specified log level [%s] is invalid", levelStr)
		}
		SetLogLevel(subsysID, levelStr)
	}
	return nil
}

// LogClosure is a closure that can be printed with %s to be used to
// generate expensive-to-create data for a detailed log level and avoid doing
// the work if the data isn't printed.
type LogClosure func() string

func (c LogClosure) String() string {
	return c()
}

// NewLogClosure casts a function to a LogClosure.
func NewLogClosure(c func() string) LogClosure {
	return c
}

var _ fmt.Stringer = LogClosure(nil)
