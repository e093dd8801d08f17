package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/mitchellh/go-homedir"
)

var (
	mu      sync.Mutex
	logger  *log.Logger // log file, nil until Setup
	_logger *log.Logger
	logFile io.Closer
)

// prefix
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

const FileName = "collections.log"

func init() {
	_logger = log.New(os.Stderr, "", log.LstdFlags|log.LUTC)
}

// DefaultDir is ~/.collections/debug.
func DefaultDir() (string, error) {
	dir, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".collections", "debug"), nil
}

// Setup additionally appends every entry to dir/collections.log. An empty
// dir selects DefaultDir.
func Setup(dir string) error {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	file, err := os.OpenFile(filepath.Join(dir, FileName), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	logger = log.New(file, "", log.LstdFlags|log.LUTC)
	return nil
}

// SetOutput redirects the console logger, stderr by default.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	_logger.SetOutput(w)
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
		logger = nil
	}
}

func Debug(v ...any) {
	_log(DEBUG, v)
}
func Error(v ...any) {
	_log(ERROR, v)
}
func Info(v ...any) {
	_log(INFO, v)
}
func Warn(v ...any) {
	_log(WARN, v)
}
func _log(prefix string, v []any) {
	mu.Lock()
	defer mu.Unlock()
	setPrefix(prefix)
	if logger != nil {
		logger.Println(v...)
	}
	_logger.Println(v...)
}
func setPrefix(logType string) {
	_, file, line, ok := runtime.Caller(3)
	var logPrefix string
	if ok {
		logPrefix = fmt.Sprintf("[%s][%s:%d] ", logType, filepath.Base(file), line)
	} else {
		logPrefix = fmt.Sprintf("[%s] ", logType)
	}
	if logger != nil {
		logger.SetPrefix(logPrefix)
	}
	_logger.SetPrefix(logPrefix)
}
