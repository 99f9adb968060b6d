package qrcode

import (
	"sync"

	clog "unknwon.dev/clog/v2"
)

var clogConsoleOnce sync.Once

// ClogTraceFunc adapts unknwon.dev/clog/v2's console logger into a
// TraceFunc suitable for WithTrace, the same logging package the rest of
// this codebase's lineage wires up for operational logs. The console sink
// is initialized at most once, lazily, on first use, since a library
// package must not force logging setup on callers who never ask for it.
func ClogTraceFunc() TraceFunc {
	clogConsoleOnce.Do(func() {
		_ = clog.NewConsole()
	})
	return func(stage, detail string) {
		clog.Trace("qrcode decode [%s]: %s", stage, detail)
	}
}
