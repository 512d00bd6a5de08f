package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type callerHooker struct {
	innerLogger *Logger
}

func trimFuncName(fname string) string {
	if strings.Contains(fname, "/") {
		index := strings.LastIndex(fname, "/")
		return fname[index+1:]
	}
	return fname
}

func (h *callerHooker) fire(entry *logrus.Entry) {
	pc, _, _, ok := runtime.Caller(7) // TODO: need match logrus
	if !ok {
		return
	}

	f := runtime.FuncForPC(pc)
	file, line := f.FileLine(pc)
	entry.Data["func"] = trimFuncName(f.Name())
	entry.Data["line"] = line
	entry.Data["file"] = filepath.Base(file)
}

func (h *callerHooker) fires(entry *logrus.Entry) {
	for i := 7; i < 10; i++ {
		pc, _, _, ok := runtime.Caller(i) // TODO: need match logrus
		if !ok {
			break
		}
		f := runtime.FuncForPC(pc)
		file, line := f.FileLine(pc)
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(file), trimFuncName(f.Name()), line)
	}
}

func (h *callerHooker) Fire(entry *logrus.Entry) error {
	if h.innerLogger.CallRelation == MsgFormatMulti {
		h.fires(entry)
	} else if h.innerLogger.CallRelation == MsgFormatSingle {
		h.fire(entry)
	}
	return nil
}

func (h *callerHooker) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
		logrus.TraceLevel,
	}
}

// LoadFunctionHooker loads a caller-annotation hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	inst := &callerHooker{
		innerLogger: logger,
	}
	logger.Hooks.Add(inst)
}
