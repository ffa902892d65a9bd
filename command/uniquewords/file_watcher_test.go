// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/uniquewords/fault"
)

const watchTimeout = 5 * time.Second

func setupTestFileWatcher(t *testing.T) (FileWatcher, WatcherChannel, string) {
	dir := makeTestDirectory(t)
	fileName := writeTestFile(t, dir, "book.txt", "first version\n")

	channels := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New("test"), channels)
	if nil != err {
		t.Fatalf("new file watcher error: %s", err)
	}
	return w, channels, fileName
}

func TestFileWatcherChange(t *testing.T) {
	w, channels, fileName := setupTestFileWatcher(t)

	err := w.Start()
	assert.Nil(t, err, "start error")
	defer w.Stop()

	assert.Equal(t, fault.ErrWatcherAlreadyRunning, w.Start(), "second start")

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_APPEND, 0600)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	_, _ = f.WriteString("second version\n")
	f.Close()

	select {
	case <-channels.change:
	case <-channels.remove:
		t.Fatal("unexpected remove event")
	case <-time.After(watchTimeout):
		t.Fatal("timeout waiting for change event")
	}
}

func TestFileWatcherRemove(t *testing.T) {
	w, channels, fileName := setupTestFileWatcher(t)

	err := w.Start()
	assert.Nil(t, err, "start error")
	defer w.Stop()

	_ = os.Remove(fileName)

	timeout := time.After(watchTimeout)
	for {
		select {
		case <-channels.change: // attribute change may precede removal
			continue
		case <-channels.remove:
			return
		case <-timeout:
			t.Fatal("timeout waiting for remove event")
		}
	}
}

func TestNewFileWatcherMissingFile(t *testing.T) {
	dir := makeTestDirectory(t)
	channels := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	_, err := newFileWatcher(filepath.Join(dir, "missing.txt"), logger.New("test"), channels)
	assert.True(t, fault.IsErrNotFound(err), "missing file: %v", err)
}

func TestWatcherEvents(t *testing.T) {
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "", Op: fsnotify.Write}), "empty name")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")

	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}), "chmod")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Create}), "create")
}

func TestSendEventDiscardsWhenFull(t *testing.T) {
	w := &FileWatcherData{log: logger.New("test")}
	ch := make(chan struct{}, 1)
	w.sendEvent(ch, "test")
	w.sendEvent(ch, "test")
	assert.Equal(t, 1, len(ch), "pending events")
}
