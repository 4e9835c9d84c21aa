// Package reload watches the running binary and restarts on recompilation.
package reload

import (
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// Watcher polls the executable's modification time and reports when a newer
// build appears on disk. Used during development to restart into a fresh
// binary without losing the editing flow.
type Watcher struct {
	execPath string
	baseline time.Time
	interval time.Duration
	stopCh   chan struct{}
	onUpdate func()
}

// NewWatcher creates a watcher for the current executable.
// Returns nil if the executable path cannot be determined.
func NewWatcher(interval time.Duration) *Watcher {
	execPath, err := os.Executable()
	if err != nil {
		return nil
	}

	// go build may swap the file behind a symlink, so resolve it first
	if realPath, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = realPath
	}

	info, err := os.Stat(execPath)
	if err != nil {
		return nil
	}

	return &Watcher{
		execPath: execPath,
		baseline: info.ModTime(),
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// OnUpdate sets the callback invoked when a newer binary is detected.
// The callback runs on a background goroutine.
func (w *Watcher) OnUpdate(callback func()) {
	w.onUpdate = callback
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.stopCh = make(chan struct{})
	go w.watchLoop()
}

// Stop stops the watcher goroutine.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) watchLoop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if w.updated() && w.onUpdate != nil {
				w.onUpdate()
				return
			}
		}
	}
}

// updated returns true when the binary on disk is newer than the baseline.
func (w *Watcher) updated() bool {
	info, err := os.Stat(w.execPath)
	if err != nil {
		return false
	}
	return info.ModTime().After(w.baseline)
}

// ExecPath returns the path to the watched executable.
func (w *Watcher) ExecPath() string {
	return w.execPath
}

// Restart replaces the current process with a new instance of the binary,
// preserving arguments and environment. Does not return on success.
func (w *Watcher) Restart() error {
	return syscall.Exec(w.execPath, os.Args, os.Environ())
}
