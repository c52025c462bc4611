package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// FileWatcher reports changes to a set of files inside one directory. The directory is watched
// rather than the files so that atomic temp-file-and-rename saves are seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
	names   map[string]bool
	events  chan model.FileEvent
}

// NewFileWatcher watches dir for changes to files with the given base names. No names means
// every file in dir.
func NewFileWatcher(dir string, names ...string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fw := &FileWatcher{
		watcher: watcher,
		dir:     dir,
		names:   make(map[string]bool, len(names)),
		events:  make(chan model.FileEvent, 100),
	}
	for _, name := range names {
		fw.names[name] = true
	}

	go fw.processEvents()

	util.LogDebugf("Watching %s for %v", dir, names)
	return fw, nil
}

func (fw *FileWatcher) matches(event fsnotify.Event) bool {
	if event.Op&relevantOps == 0 {
		return false
	}
	if len(fw.names) == 0 {
		return true
	}
	return fw.names[filepath.Base(event.Name)]
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.matches(event) {
				continue
			}

			select {
			case fw.events <- model.FileEvent{Path: event.Name, Operation: event.Op.String()}:
			default:
				util.LogDebugf("Dropping file event for %s, consumer is behind", event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

// Events returns the channel of matching file events. It is closed after Close.
func (fw *FileWatcher) Events() <-chan model.FileEvent {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
