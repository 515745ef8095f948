package cecs

import "go.uber.org/zap"

// newNopLogger returns the dispatcher's default logger: one that discards
// everything. DispatcherBuilder.Logger overrides it for callers who want
// scheduling decisions on the wire.
func newNopLogger() *zap.Logger {
	return zap.NewNop()
}
