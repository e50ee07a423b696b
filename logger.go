package vector

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the package logger. It is a no-op logger unless SetLogger
// installed another one.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the package logger. A nil logger restores the no-op one.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func logReallocate(op string, oldCap, newCap, size int, move bool) {
	if ce := Logger().Check(zap.DebugLevel, "vector: reallocated"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("old_capacity", oldCap),
			zap.Int("new_capacity", newCap),
			zap.Int("size", size),
			zap.String("strategy", strategyName(move)),
		)
	}
}

func logRollback(op string, newCap int, err error) {
	if ce := Logger().Check(zap.DebugLevel, "vector: rolled back"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("discarded_capacity", newCap),
			zap.Error(err),
		)
	}
}

func strategyName(move bool) string {
	if move {
		return "move"
	}
	return "copy"
}
