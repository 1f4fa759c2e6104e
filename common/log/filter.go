package log

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// logFilter drops entries above the level configured for their module
// before they reach the console. Entries are still copied to the file
// writer if one is set.
type logFilter struct {
	lock         sync.RWMutex
	formatter    logrus.Formatter
	defaultLevel Level
	moduleLevels map[string]Level

	fileWriter io.Writer
}

func newLogFilter(formatter logrus.Formatter) *logFilter {
	return &logFilter{
		formatter:    formatter,
		defaultLevel: TraceLevel,
		moduleLevels: make(map[string]Level, 6),
	}
}

func moduleOf(e *logrus.Entry) string {
	if value, ok := e.Data[FieldKeyModule]; ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	if e.HasCaller() {
		return getPackageName(e.Caller.Function)
	}
	return ""
}

func (f *logFilter) Format(e *logrus.Entry) ([]byte, error) {
	f.lock.RLock()
	level := f.defaultLevel
	if module := moduleOf(e); len(module) > 0 {
		if lv, ok := f.moduleLevels[module]; ok {
			level = lv
		}
	}
	fw := f.fileWriter
	f.lock.RUnlock()

	if e.Level > logrus.Level(level) && fw == nil {
		return nil, nil
	}
	buf, err := f.formatter.Format(e)
	if fw != nil && len(buf) > 0 {
		_, _ = fw.Write(buf)
	}
	if e.Level > logrus.Level(level) {
		return nil, nil
	}
	return buf, err
}

func (f *logFilter) SetModuleLevel(module string, level Level) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.moduleLevels[module] = level
}

func (f *logFilter) GetModuleLevel(module string) Level {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if lv, ok := f.moduleLevels[module]; ok {
		return lv
	} else {
		return f.defaultLevel
	}
}

func (f *logFilter) SetDefaultLevel(level Level) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.defaultLevel = level
}

func (f *logFilter) GetDefaultLevel() Level {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.defaultLevel
}

func (f *logFilter) SetFileWriter(writer io.Writer) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.fileWriter = writer
}
