package blogbuild

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 300 * time.Millisecond

const rebuildOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher rebuilds a site when a post or template changes. Bursts of events
// are collapsed into one rebuild; rebuilds never overlap.
type Watcher struct {
	builder   *Builder
	fsw       *fsnotify.Watcher
	postsDir  string
	templates map[string]struct{}
	debounce  time.Duration
	log       *slog.Logger
}

// NewWatcher watches the posts directory and the directories holding the
// two templates. Directories are watched rather than files so editors that
// replace files on save are still seen.
func NewWatcher(b *Builder) (*Watcher, error) {
	postsDir, err := filepath.Abs(b.Config.PostsDir)
	if err != nil {
		return nil, err
	}
	templates := make(map[string]struct{}, 2)
	dirs := []string{postsDir}
	for _, t := range []string{b.Config.TemplateFile, b.Config.IndexTemplateFile} {
		abs, err := filepath.Abs(t)
		if err != nil {
			return nil, err
		}
		templates[abs] = struct{}{}
		dirs = append(dirs, filepath.Dir(abs))
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		if seen[d] {
			continue
		}
		seen[d] = true
		if err := fsw.Add(d); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", d, err)
		}
	}

	return &Watcher{
		builder:   b,
		fsw:       fsw,
		postsDir:  postsDir,
		templates: templates,
		debounce:  watchDebounce,
		log:       b.log,
	}, nil
}

// relevant reports whether ev touches a post source or a template.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&rebuildOps == 0 {
		return false
	}
	name := filepath.Clean(ev.Name)
	if filepath.Dir(name) == w.postsDir && filepath.Ext(name) == ".md" {
		return true
	}
	_, ok := w.templates[name]
	return ok
}

// Run processes events until ctx is done. It closes the underlying watcher
// on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("Source changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("Watcher error", "error", err)
		case <-fire:
			fire = nil
			if _, err := w.builder.Build(); err != nil {
				w.log.Error("Rebuild failed", "error", err)
				continue
			}
			w.log.Info("Site rebuilt")
		}
	}
}
