package config

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the settings file and reloads the global settings when
// it changes. It returns a stop function that releases the watcher.
//
// Editors often replace files on save, so Remove/Rename events re-add
// the path to the watcher before reloading.
func Watch(path string, onReload func(*Settings)) (func(), error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	done := make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					// File replaced on save; watch the new inode
					if err := watcher.Add(path); err != nil {
						log.Printf("settings watch: lost %s: %v", path, err)
						continue
					}
				} else if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				if err := Reload(); err != nil {
					log.Printf("settings watch: reload failed: %v", err)
					continue
				}

				log.Printf("settings watch: reloaded %s", path)
				if onReload != nil {
					onReload(Get())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("settings watch: %v", err)
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = watcher.Close()
	}
	return stop, nil
}
