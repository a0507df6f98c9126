// Package fsnotify watches the data directory for JSON document edits
// and invokes a reload callback. This lets a long-running chat session
// pick up changes made by an external editor or a second terminal
// without restarting. Events are debounced so one editor save (often a
// write plus a rename) triggers one reload.
package fsnotify

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow batches bursts of events into a single callback.
const debounceWindow = 200 * time.Millisecond

// Watcher watches one directory for *.json changes.
type Watcher struct {
	fw       *fsnotify.Watcher
	onChange func()

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// Watch starts watching dir and calls onChange after each settled burst
// of JSON document changes. The callback runs on the watcher goroutine.
func Watch(dir string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:       fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if relevant(ev) {
				w.bump()
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient on the platforms we care
			// about; keep watching.
		}
	}
}

// relevant filters for settled JSON document changes. Temp files from
// atomic saves are ignored; the rename onto the real name is what fires.
func relevant(ev fsnotify.Event) bool {
	name := filepath.Base(ev.Name)
	if strings.HasSuffix(name, ".tmp") {
		return false
	}
	if filepath.Ext(name) != ".json" {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceWindow, w.onChange)
}

// Close stops watching. Pending debounced callbacks are cancelled.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fw.Close()
	<-w.done
	return err
}
