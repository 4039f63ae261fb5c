package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	debugLog *log.Logger
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	logMutex sync.Mutex
)

func init() {
	// Sane defaults until Init is called with real settings, so tests and
	// early startup code can log without a config file.
	debugLog = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime)
	infoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
}

// Init wires the leveled loggers to stdout plus rotating files under logDir.
func Init(logDir string, maxSizeMB, maxBackups, maxAgeDays int) {
	if logDir == "" {
		logDir = "logs"
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}

	rotating := func(name string) io.Writer {
		return &lumberjack.Logger{
			Filename:   filepath.Join(logDir, name),
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
	}

	logMutex.Lock()
	defer logMutex.Unlock()

	infoWriter := io.MultiWriter(os.Stdout, rotating("info.log"))
	warnWriter := io.MultiWriter(os.Stdout, rotating("warn.log"))
	errorWriter := io.MultiWriter(os.Stderr, rotating("error.log"))

	debugLog = log.New(infoWriter, "DEBUG: ", log.Ldate|log.Ltime)
	infoLog = log.New(infoWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(warnWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime)

	// Redirect Go's default logger as well.
	log.SetOutput(infoWriter)
}

func callerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	return filepath.Base(runtime.FuncForPC(pc).Name())
}

func output(l *log.Logger, format string, v ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()
	l.Printf("[%s] %s", callerInfo(), fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	output(debugLog, format, v...)
}

func Info(format string, v ...interface{}) {
	output(infoLog, format, v...)
}

func Warn(format string, v ...interface{}) {
	output(warnLog, format, v...)
}

func Error(format string, v ...interface{}) {
	output(errorLog, format, v...)
}
