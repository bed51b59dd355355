/*
Package tracing is a thin convenience wrapper around the schuko tracing
framework. Packages of this module trace to a single tracer, which by
default is the schuko core tracer. Tests may redirect it to the test's
log with SetTestingLog.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// tracer returns the tracer all packages of this module log to.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// P traces with a key/value parameter attached.
func P(key string, val interface{}) tracing.Trace {
	return tracer().P(key, val)
}

// Debugf traces at debug level.
func Debugf(format string, args ...interface{}) {
	tracer().Debugf(format, args...)
}

// Infof traces at info level.
func Infof(format string, args ...interface{}) {
	tracer().Infof(format, args...)
}

// Errorf traces at error level.
func Errorf(format string, args ...interface{}) {
	tracer().Errorf(format, args...)
}

// SetTestingLog redirects tracing output to the log of t.
// Tests should call this before anything else traces.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
}
