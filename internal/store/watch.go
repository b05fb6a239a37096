// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ChangeOp describes what happened to a key.
type ChangeOp int

const (
	// KeyWritten indicates the key was created or overwritten.
	KeyWritten ChangeOp = iota
	// KeyCleared indicates the key was removed.
	KeyCleared
)

// Change is emitted when another process (or this one) mutates a stored key.
// This is the equivalent of the browser "storage" event: a second open
// window sees writes made by the first.
type Change struct {
	Key string
	Op  ChangeOp
}

// Watcher watches a FileStore's directory and reports key changes.
// Notifications are best-effort; nothing depends on them for correctness.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan Change
	done    chan struct{}
}

// NewWatcher starts watching the store's data directory.
func NewWatcher(s *FileStore) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(s.BaseDir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan Change, 16),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes returns the channel of key change notifications.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops the watcher and closes the Changes channel.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			key, ok := keyForPath(event.Name)
			if !ok {
				continue
			}
			var op ChangeOp
			switch {
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename):
				// Atomic saves surface as a rename onto the target path.
				op = KeyWritten
			case event.Has(fsnotify.Remove):
				op = KeyCleared
			default:
				continue
			}
			select {
			case w.changes <- Change{Key: key, Op: op}:
			default:
				// Drop rather than block; consumers re-read on next event.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("STORE_WATCH: %v", err)
		}
	}
}

// keyForPath maps a watched file path back to its store key.
// Temp files from in-flight atomic writes are ignored.
func keyForPath(path string) (string, bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".tmp-") {
		return "", false
	}
	if !strings.HasSuffix(name, ".json") {
		return "", false
	}
	return strings.TrimSuffix(name, ".json"), true
}
