package logger

import "sync"

var (
	globalLogger Logger
	mu           sync.RWMutex
	once         sync.Once
)

// Init installs the process logger once; later calls are ignored.
func Init(cfg Config) {
	once.Do(func() {
		SetGlobal(New(cfg))
	})
}

// SetGlobal replaces the process logger and returns the previous one.
func SetGlobal(l Logger) Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := globalLogger
	globalLogger = l
	return prev
}

// Get returns the process logger, falling back to a redacting console
// logger when Init was never called.
func Get() Logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger = New(Config{Level: InfoLevel, Console: true, Redact: true})
	}
	return globalLogger
}

func I(msg string, fields ...Fields) {
	Get().Info(msg, fields...)
}

func W(msg string, fields ...Fields) {
	Get().Warn(msg, fields...)
}

func E(err error, fields ...Fields) {
	Get().Error(err, fields...)
}
