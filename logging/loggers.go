package logging

import (
	"bytes"
	"os"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)
const (
	//PANIC log level
	PANIC uint32 = iota
	//FATAL has list msg
	FATAL
	//ERROR has list msg
	ERROR
	//WARN only log
	WARN
	//INFO only log
	INFO
	//DEBUG only log
	DEBUG
	//TRACE only log
	TRACE
)
const (
	//MsgFormatSingle use info
	MsgFormatSingle uint32 = iota
	//MsgFormatMulti use show all func call relation
	MsgFormatMulti
)

// LogFormat is to log format
type LogFormat = map[string]interface{}

type emptyWriter struct{}

func (ew emptyWriter) Write(p []byte) (int, error) {
	return 0, nil
}

type Logger struct {
	*logrus.Logger
	//CallRelation to show stack list
	CallRelation uint32
}

func NewLogger() *Logger {
	return &Logger{
		Logger: logrus.New(),
	}
}

// SetCallRelation to set CallRelation
func (logger *Logger) SetCallRelation(button uint32) {
	logger.CallRelation = button
}

// logger pointer must be initialized, else would panic.
var clog *Logger
var vlog *Logger

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	case TraceLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// Init loggers
func Init(path, filename string, level string, age uint32, disableCPrint bool) {
	fileHooker := NewFileRotateHooker(path, filename, age, nil)

	vlog = NewLogger()
	LoadFunctionHooker(vlog)
	vlog.Hooks.Add(fileHooker)
	vlog.Out = &emptyWriter{}
	vlog.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	vlog.Level = convertLevel(level)

	if !disableCPrint {
		clog = NewLogger()
		LoadFunctionHooker(clog)
		clog.Hooks.Add(fileHooker)
		clog.Out = os.Stderr
		clog.Formatter = &logrus.TextFormatter{FullTimestamp: true}
		clog.Level = convertLevel(level)
	} else {
		clog = vlog
	}

	vlog.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
}

// GetGID return gid
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// CPrint into stderr + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	if clog == nil {
		Init("/tmp", "tmp-sha1sum.log", "info", 0, false)
	}
	logTo(clog, level, msg, formats...)
}

// VPrint into log only
func VPrint(level uint32, msg string, formats ...LogFormat) {
	if vlog == nil {
		Init("/tmp", "tmp-sha1sum.log", "info", 0, false)
	}
	logTo(vlog, level, msg, formats...)
}

func logTo(logger *Logger, level uint32, msg string, formats ...LogFormat) {
	data := mergeLogFormats(formats...)
	switch level {
	case PANIC:
		logger.SetCallRelation(MsgFormatMulti)
		logger.WithFields(data).Panic(msg)
	case FATAL:
		logger.SetCallRelation(MsgFormatMulti)
		logger.WithFields(data).Fatal(msg)
	case ERROR:
		logger.SetCallRelation(MsgFormatMulti)
		logger.WithFields(data).Error(msg)
	case WARN:
		logger.SetCallRelation(MsgFormatSingle)
		logger.WithFields(data).Warn(msg)
	case INFO:
		logger.SetCallRelation(MsgFormatSingle)
		logger.WithFields(data).Info(msg)
	case DEBUG:
		logger.SetCallRelation(MsgFormatSingle)
		logger.WithFields(data).Debug(msg)
	case TRACE:
		logger.SetCallRelation(MsgFormatSingle)
		logger.WithFields(data).Trace(msg)
	default:
		logger.SetCallRelation(MsgFormatMulti)
		logger.WithFields(data).Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		if data == nil {
			continue
		}
		for k, v := range data {
			vv := v
			format[k] = vv
		}
	}
	format["tid"] = GetGID()
	return format
}
