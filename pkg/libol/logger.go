package libol

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	PRINT = 01
	DEBUG = 10
	CMD   = 15
	INFO  = 20
	WARN  = 30
	ERROR = 40
	FATAL = 99
)

var levels = map[int]string{
	PRINT: "PRINT",
	DEBUG: "DEBUG",
	CMD:   "CMD",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

type logger struct {
	Level    int
	FileName string
	FileLog  *log.Logger
	Std      *log.Logger
	Lock     sync.Mutex
}

func (l *logger) Write(level int, format string, v ...interface{}) {
	str, ok := levels[level]
	if !ok {
		str = "NULL"
	}
	l.Lock.Lock()
	defer l.Lock.Unlock()
	if level >= l.Level {
		l.Std.Printf(fmt.Sprintf("%s|%s", str, format), v...)
	}
	if level >= INFO && l.FileLog != nil {
		l.FileLog.Printf("%s|%s\n", str, fmt.Sprintf(format, v...))
	}
}

var Logger = &logger{
	Level: INFO,
	Std:   log.New(os.Stderr, "", log.LstdFlags),
}

// SetLogger sets the console level and, when file is given, keeps a rotated
// copy of INFO and above in that file.
func SetLogger(file string, level int) {
	Logger.Level = level
	if file == "" || Logger.FileName == file {
		return
	}
	Logger.FileName = file
	Logger.FileLog = log.New(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}, "", log.LstdFlags)
}

func SetOutput(w io.Writer) {
	Logger.Std.SetOutput(w)
}

func SetLevel(level int) {
	Logger.Level = level
}

type SubLogger struct {
	*logger
	Prefix string
}

func NewSubLogger(prefix string) *SubLogger {
	return &SubLogger{
		logger: Logger,
		Prefix: prefix,
	}
}

var rLogger = NewSubLogger("root")

func Print(format string, v ...interface{}) {
	rLogger.Print(format, v...)
}

func Debug(format string, v ...interface{}) {
	rLogger.Debug(format, v...)
}

func Cmd(format string, v ...interface{}) {
	rLogger.Cmd(format, v...)
}

func Info(format string, v ...interface{}) {
	rLogger.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	rLogger.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	rLogger.Error(format, v...)
}

func Fatal(format string, v ...interface{}) {
	rLogger.Fatal(format, v...)
}

func (s *SubLogger) Has(level int) bool {
	if level >= s.Level {
		return true
	}
	return false
}

func (s *SubLogger) Fmt(format string) string {
	return s.Prefix + "|" + format
}

func (s *SubLogger) Print(format string, v ...interface{}) {
	s.logger.Write(PRINT, s.Fmt(format), v...)
}

func (s *SubLogger) Debug(format string, v ...interface{}) {
	s.logger.Write(DEBUG, s.Fmt(format), v...)
}

func (s *SubLogger) Cmd(format string, v ...interface{}) {
	s.logger.Write(CMD, s.Fmt(format), v...)
}

func (s *SubLogger) Info(format string, v ...interface{}) {
	s.logger.Write(INFO, s.Fmt(format), v...)
}

func (s *SubLogger) Warn(format string, v ...interface{}) {
	s.logger.Write(WARN, s.Fmt(format), v...)
}

func (s *SubLogger) Error(format string, v ...interface{}) {
	s.logger.Write(ERROR, s.Fmt(format), v...)
}

func (s *SubLogger) Fatal(format string, v ...interface{}) {
	s.logger.Write(FATAL, s.Fmt(format), v...)
}
