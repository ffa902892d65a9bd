// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/uniquewords/fault"
)

// FileWatcher - signal changes to a single file
type FileWatcher interface {
	Start() error
	Stop()
}

const (
	FileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcherData - fsnotify based watcher
type FileWatcherData struct {
	log      *logger.L
	channels WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	running  bool
	done     chan struct{}
}

// WatcherChannel - buffered channels, one pending event each
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !ensureFileExists(filePath) {
		return nil, fmt.Errorf("%w: %q", fault.ErrCorpusFileMissing, filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcherData{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin watching in a background goroutine
func (w *FileWatcherData) Start() error {
	if w.running {
		return fault.ErrWatcherAlreadyRunning
	}

	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	w.running = true

	go w.loop()

	return nil
}

// Stop - close the watcher and wait for the background goroutine
func (w *FileWatcherData) Stop() {
	w.watcher.Close()
	if w.running {
		<-w.done
		w.running = false
	}
}

func (w *FileWatcherData) loop() {
	defer close(w.done)

	name := filepath.Base(w.filePath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Errorf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

			if filepath.Base(event.Name) != name {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending change event…")
				w.sendEvent(w.channels.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *FileWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
