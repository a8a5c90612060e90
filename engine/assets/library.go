package assets

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/meshforge/engine/core"
	"golang.org/x/exp/slices"
)

type DocumentInfo struct {
	Path       string
	LastLoaded time.Time
	Document   *Document
	// Err is the last load error; Document keeps the last good version.
	Err error
}

// Change is reported for every document created, rewritten or removed
// under a watched directory.
type Change struct {
	Path    string
	Op      fsnotify.Op
	Info    DocumentInfo
	Removed bool
}

// ShapeLibrary indexes the shape documents below a directory and keeps the
// index current while the files change.
type ShapeLibrary struct {
	documents map[string]DocumentInfo

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
	changes  chan Change
	errors   chan error
}

const changeBuffer = 64

func NewShapeLibrary() (*ShapeLibrary, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ShapeLibrary{
		documents: make(map[string]DocumentInfo),
		fsnotify:  fsWatch,
		changes:   make(chan Change, changeBuffer),
		errors:    make(chan error, changeBuffer),
		done:      make(chan struct{}),
	}, nil
}

/**
 * @brief Loads every document below dir and starts watching it, including
 * sub-directories created later.
 * @param dir The directory holding the shape documents.
 */
func (sl *ShapeLibrary) Initialize(dir string) error {
	if err := sl.addRecursive(dir); err != nil {
		return err
	}
	sl.mutex.Lock()
	defer sl.mutex.Unlock()
	if !sl.started {
		sl.started = true
		go sl.start()
	}
	return nil
}

func (sl *ShapeLibrary) addRecursive(name string) error {
	sl.mutex.RLock()
	closed := sl.isClosed
	sl.mutex.RUnlock()
	if closed {
		return core.ErrLibraryClosed
	}
	return sl.watchRecursive(name)
}

// Documents returns a snapshot of the index sorted by path.
func (sl *ShapeLibrary) Documents() []DocumentInfo {
	sl.mutex.RLock()
	defer sl.mutex.RUnlock()

	out := make([]DocumentInfo, 0, len(sl.documents))
	for _, info := range sl.documents {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b DocumentInfo) int { return strings.Compare(a.Path, b.Path) })
	return out
}

// Get returns the indexed document at path.
func (sl *ShapeLibrary) Get(path string) (DocumentInfo, bool) {
	sl.mutex.RLock()
	defer sl.mutex.RUnlock()
	info, ok := sl.documents[filepath.Clean(path)]
	return info, ok
}

// Changes delivers document updates. Updates are dropped, with a warning,
// while the buffer is full.
func (sl *ShapeLibrary) Changes() <-chan Change {
	return sl.changes
}

func (sl *ShapeLibrary) Errors() <-chan error {
	return sl.errors
}

// Close stops watching. The Changes and Errors channels are closed.
func (sl *ShapeLibrary) Close() error {
	sl.mutex.Lock()
	if sl.isClosed {
		sl.mutex.Unlock()
		return core.ErrLibraryClosed
	}
	sl.isClosed = true
	started := sl.started
	sl.mutex.Unlock()
	if !started {
		close(sl.changes)
		close(sl.errors)
		return sl.fsnotify.Close()
	}
	close(sl.done)
	return nil
}

func (sl *ShapeLibrary) start() {
	for {
		select {
		case e, ok := <-sl.fsnotify.Events:
			if !ok {
				return
			}
			sl.handleEvent(e)

		case e, ok := <-sl.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(e.Error())
			select {
			case sl.errors <- e:
			default:
			}

		case <-sl.done:
			sl.fsnotify.Close()
			close(sl.changes)
			close(sl.errors)
			return
		}
	}
}

func (sl *ShapeLibrary) handleEvent(e fsnotify.Event) {
	s, err := os.Stat(e.Name)
	if err == nil && s.IsDir() {
		if e.Op&fsnotify.Create != 0 {
			if err := sl.watchRecursive(e.Name); err != nil {
				core.LogWarn("cannot watch %s: %s", e.Name, err)
			}
		}
		return
	}

	switch {
	case e.Op&(fsnotify.Create|fsnotify.Write) != 0:
		if info, ok := sl.loadDocument(e.Name); ok {
			sl.publish(Change{Path: info.Path, Op: e.Op, Info: info})
		}
	case e.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		// A removed path cannot be stat'ed; it may have been a directory.
		_ = sl.fsnotify.Remove(e.Name)
		if info, ok := sl.removeDocument(e.Name); ok {
			sl.publish(Change{Path: info.Path, Op: e.Op, Info: info, Removed: true})
		}
	}
}

func (sl *ShapeLibrary) publish(c Change) {
	select {
	case sl.changes <- c:
	default:
		core.LogWarn("change buffer full, dropping update for %s", c.Path)
	}
}

// watchRecursive adds every directory below path and loads the documents
// found on the way.
func (sl *ShapeLibrary) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return sl.fsnotify.Add(walkPath)
		}
		sl.loadDocument(walkPath)
		return nil
	})
}

// loadDocument (re)loads a document into the index. Files without a
// registered loader are ignored.
func (sl *ShapeLibrary) loadDocument(path string) (DocumentInfo, bool) {
	if !IsDocument(path) {
		return DocumentInfo{}, false
	}
	path = filepath.Clean(path)
	doc, err := LoadFile(path)
	if err == nil {
		_, err = doc.Resolve()
	}

	sl.mutex.Lock()
	defer sl.mutex.Unlock()

	info := sl.documents[path]
	info.Path = path
	info.LastLoaded = time.Now()
	info.Err = err
	if err != nil {
		core.LogWarn("cannot load %s: %s", path, err)
	} else {
		info.Document = doc
	}
	sl.documents[path] = info
	return info, true
}

// removeDocument drops a deleted document from the index.
func (sl *ShapeLibrary) removeDocument(path string) (DocumentInfo, bool) {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()

	path = filepath.Clean(path)
	info, ok := sl.documents[path]
	delete(sl.documents, path)
	return info, ok
}
