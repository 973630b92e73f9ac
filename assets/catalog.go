// Package assets lists the texture images available to the shapes and keeps
// the list current while the program runs.
package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Catalog is a sorted list of texture files in one directory.
type Catalog struct {
	dir string
	log *zap.SugaredLogger

	mu    sync.RWMutex
	files []string

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

func IsTexture(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// NewCatalog scans dir once.
func NewCatalog(dir string, log *zap.SugaredLogger) (*Catalog, error) {
	c := &Catalog{dir: dir, log: log}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh rescans the directory.
func (c *Catalog) Refresh() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && IsTexture(e.Name()) {
			files = append(files, filepath.Join(c.dir, e.Name()))
		}
	}
	sort.Strings(files)
	c.mu.Lock()
	c.files = files
	c.mu.Unlock()
	return nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.files)
}

// Path returns the file at index i, wrapping past the end back to the
// first entry. It returns "" for an empty catalog.
func (c *Catalog) Path(i int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.files) == 0 {
		return ""
	}
	return c.files[Wrap(i, len(c.files))]
}

// Next returns the index after i, wrapping at the end of the catalog.
func (c *Catalog) Next(i int) int {
	n := c.Len()
	if n == 0 {
		return 0
	}
	return Wrap(i+1, n)
}

func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Watch refreshes the catalog when files are created, removed or renamed
// and then calls onChange from the watcher goroutine.
func (c *Catalog) Watch(onChange func()) error {
	if c.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(c.dir); err != nil {
		w.Close()
		return err
	}
	c.watcher = w
	c.done = make(chan struct{})
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-c.done:
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if !IsTexture(event.Name) {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if err := c.Refresh(); err != nil {
					c.log.Warnw("texture catalog refresh failed", "dir", c.dir, "err", err)
					continue
				}
				c.log.Infow("texture catalog changed", "file", event.Name, "count", c.Len())
				if onChange != nil {
					onChange()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				c.log.Warnw("texture watcher", "err", err)
			}
		}
	}()
	return nil
}

// Close stops watching.
func (c *Catalog) Close() error {
	if c.watcher == nil {
		return nil
	}
	close(c.done)
	err := c.watcher.Close()
	c.wg.Wait()
	c.watcher = nil
	return err
}
