package catalog

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the catalog file when it changes on disk, so a demo stand
// can tweak prices or textures without restarting the server. Reload failures
// keep the last good catalog.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	onReload func(*Catalog)

	done chan struct{}
	wg   sync.WaitGroup
}

// Watch starts watching path and invokes onReload with each successfully
// loaded catalog. The watch is on the containing directory because editors
// replace files rather than writing them in place.
func Watch(path string, onReload func(*Catalog)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fw:       fw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			c, err := Load(w.path)
			if err != nil {
				log.Printf("catalog reload skipped: %v", err)
				continue
			}
			w.onReload(c)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("catalog watcher: %v", err)
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fw.Close()
	w.wg.Wait()
	return err
}
