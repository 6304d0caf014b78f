package shaders

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/lgl-dev/lgl/logging"
)

// HotReloader recompiles tracked shader programs when their files change on disk.
//
// File events arrive on the fsnotify goroutine and are queued. The programs themselves are
// only touched in Update, which must be called on the thread that owns the OpenGL context.
type HotReloader struct {
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]struct{}

	// progs is only accessed from the render thread
	progs map[string][]*ShaderProgram
	// watchedDirs counts the tracked files per directory
	watchedDirs map[string]int

	reload func(sp *ShaderProgram) error
	done   chan struct{}
}

// DefaultReloader is used by scenes to register their shaders. Nil disables hot reloading,
// and all methods are safe to call on a nil *HotReloader.
var DefaultReloader *HotReloader

func NewHotReloader() (*HotReloader, error) {

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	hr := &HotReloader{
		watcher:     w,
		pending:     make(map[string]struct{}),
		progs:       make(map[string][]*ShaderProgram),
		watchedDirs: make(map[string]int),
		reload:      (*ShaderProgram).Reload,
		done:        make(chan struct{}),
	}

	go hr.watchLoop()
	return hr, nil
}

func (hr *HotReloader) watchLoop() {

	defer close(hr.done)

	for {
		select {
		case event, ok := <-hr.watcher.Events:
			if !ok {
				return
			}

			// Editors often save by writing a temp file and renaming it over the original
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			hr.mu.Lock()
			hr.pending[filepath.Clean(event.Name)] = struct{}{}
			hr.mu.Unlock()

		case err, ok := <-hr.watcher.Errors:
			if !ok {
				return
			}
			logging.ErrLog.Println("Shader watcher error: ", err)
		}
	}
}

// Track starts watching the file of sp. Programs without a path are ignored.
func (hr *HotReloader) Track(sp *ShaderProgram) {

	if hr == nil || sp.Path == "" {
		return
	}

	path := filepath.Clean(sp.Path)
	dir := filepath.Dir(path)

	// Directories are watched instead of files so replaced files keep being tracked
	if hr.watchedDirs[dir] == 0 {
		if err := hr.watcher.Add(dir); err != nil {
			logging.ErrLog.Printf("Failed to watch shader directory '%s'. Err: %v\n", dir, err)
			return
		}
	}

	hr.watchedDirs[dir]++
	hr.progs[path] = append(hr.progs[path], sp)
}

func (hr *HotReloader) Untrack(sp *ShaderProgram) {

	if hr == nil || sp.Path == "" {
		return
	}

	path := filepath.Clean(sp.Path)
	progs := hr.progs[path]
	for i := 0; i < len(progs); i++ {

		if progs[i] != sp {
			continue
		}

		hr.progs[path] = append(progs[:i], progs[i+1:]...)
		if len(hr.progs[path]) == 0 {
			delete(hr.progs, path)
		}

		dir := filepath.Dir(path)
		hr.watchedDirs[dir]--
		if hr.watchedDirs[dir] <= 0 {
			delete(hr.watchedDirs, dir)
			hr.watcher.Remove(dir)
		}

		return
	}
}

// Update reloads all tracked programs whose files changed since the last call,
// and returns how many programs were reloaded successfully
func (hr *HotReloader) Update() int {

	if hr == nil {
		return 0
	}

	hr.mu.Lock()
	if len(hr.pending) == 0 {
		hr.mu.Unlock()
		return 0
	}

	changed := make([]string, 0, len(hr.pending))
	for p := range hr.pending {
		changed = append(changed, p)
	}
	clear(hr.pending)
	hr.mu.Unlock()

	reloaded := 0
	for _, path := range changed {

		for _, sp := range hr.progs[path] {

			if err := hr.reload(sp); err != nil {
				logging.ErrLog.Printf("Failed to reload shader '%s', keeping the old one. Err: %v\n", path, err)
				continue
			}

			reloaded++
		}
	}

	return reloaded
}

func (hr *HotReloader) Close() error {

	if hr == nil {
		return nil
	}

	err := hr.watcher.Close()
	<-hr.done
	return err
}
