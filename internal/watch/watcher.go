// Package watch re-reads a plan file when it changes on disk.
//
// A Watcher is owned by whoever draws the plan (one per chart/study). It only
// replaces its plan after a fully successful load; a bad edit leaves the last
// valid plan in place and is reported through LastError.
package watch

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/jwtly10/planview/internal/logging"
	"github.com/jwtly10/planview/internal/plan"
)

var watchLog = logging.New("watch")

type Watcher struct {
	mu sync.Mutex

	path    string
	modTime time.Time
	size    int64
	seen    bool

	plan       *plan.StudyPlan
	lastErr    error
	generation uint64
}

func New(path string) *Watcher {
	return &Watcher{path: path}
}

func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// SetPath points the watcher at another file. The current plan is dropped
// because it belongs to the old file; the next Poll loads the new one.
func (w *Watcher) SetPath(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path == w.path {
		return
	}
	watchLog.Info("Plan path changed", "from", w.path, "to", path)
	w.path = path
	w.seen = false
	w.plan = nil
	w.lastErr = nil
}

// Poll checks the file's modification time and size and reloads when either
// changed. changed is true only when a new plan replaced the current one.
func (w *Watcher) Poll() (changed bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	info, statErr := os.Stat(w.path)
	if statErr != nil {
		// Let plan.Load classify the failure so messages stay consistent.
		_, err = plan.Load(w.path)
		w.seen = false
		return false, w.fail(err)
	}

	if w.seen && info.ModTime().Equal(w.modTime) && info.Size() == w.size {
		return false, nil
	}

	p, err := plan.Load(w.path)
	if err != nil {
		// Read failures are retried on the next poll; bad content waits for an edit.
		if errors.Is(err, plan.ErrOpen) || errors.Is(err, plan.ErrNotFound) {
			w.seen = false
		} else {
			w.modTime, w.size, w.seen = info.ModTime(), info.Size(), true
		}
		return false, w.fail(err)
	}
	w.modTime, w.size, w.seen = info.ModTime(), info.Size(), true

	w.plan = p
	w.lastErr = nil
	w.generation++
	watchLog.Info("Plan loaded", "path", w.path, "version", p.Version, "instruments", len(p.Instruments), "generation", w.generation)
	return true, nil
}

func (w *Watcher) fail(err error) error {
	if err == nil {
		return nil
	}
	if w.lastErr == nil || w.lastErr.Error() != err.Error() {
		watchLog.Warn("Plan load failed, keeping last valid plan", "path", w.path, "error", err, "hasPlan", w.plan != nil)
	}
	w.lastErr = err
	return err
}

// Plan returns the last successfully loaded plan.
func (w *Watcher) Plan() (*plan.StudyPlan, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.plan, w.plan != nil
}

// LastError is the error of the most recent failed load, or nil after a
// successful one.
func (w *Watcher) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Generation counts successful loads; callers compare it to spot new plans.
func (w *Watcher) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generation
}
