package logging

import (
	"log/slog"
	"sync"
)

var startupOnce sync.Once

// AnnounceStartup logs the "loaded" banner once per process. It returns true
// only for the call that actually wrote it.
func AnnounceStartup(name string) bool {
	first := false
	startupOnce.Do(func() {
		slog.Info("--------------------------------------")
		slog.Info(name + " loaded")
		first = true
	})
	return first
}
