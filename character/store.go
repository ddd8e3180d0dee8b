/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package character

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Store holds the current dataset. Loads are tagged with a generation taken
// before the load starts, and only a newer generation may replace the
// current dataset, so a slow load that finishes late never clobbers a newer
// one.
type Store struct {
	mu      sync.RWMutex
	current *Dataset
	applied uint64
	next    atomic.Uint64
}

func NewStore(ds *Dataset) *Store {
	return &Store{current: ds}
}

// Dataset returns the current dataset.
func (s *Store) Dataset() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Begin reserves a generation for a load that is about to start.
func (s *Store) Begin() uint64 {
	return s.next.Add(1)
}

// Replace installs ds if gen is newer than the last applied generation.
// It reports whether ds was installed.
func (s *Store) Replace(gen uint64, ds *Dataset) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.applied {
		return false
	}

	s.applied = gen
	s.current = ds

	return true
}

// Reload loads path and installs the result unless a newer load won first.
func (s *Store) Reload(path string) (*Dataset, bool, error) {
	gen := s.Begin()

	ds, err := Load(path)
	if err != nil {
		return nil, false, err
	}

	return ds, s.Replace(gen, ds), nil
}

// Watch reloads path whenever it is written or recreated, until ctx is done.
// Events are debounced so an editor's write-rename-chmod burst causes one
// reload. onLoad is called after every reload attempt.
func (s *Store) Watch(ctx context.Context, path string, debounce time.Duration, onLoad func(*Dataset, bool, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch dataset: %w", err)
	}

	// Watch the directory rather than the file so atomic replaces are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch dataset: %w", err)
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		fire := make(chan struct{}, 1)

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			case <-fire:
				ds, applied, err := s.Reload(path)
				if onLoad != nil {
					onLoad(ds, applied, err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onLoad != nil {
					onLoad(nil, false, fmt.Errorf("watch dataset: %w", err))
				}
			}
		}
	}()

	return nil
}
