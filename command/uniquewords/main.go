// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uniquewords/benchmark"
	"github.com/bitmark-inc/uniquewords/fault"
	"github.com/bitmark-inc/uniquewords/words"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "mode", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'm'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--mode=balanced|naive|both] [--watch] [--print] [corpus-file]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	// command line settings override the configuration file
	if len(arguments) > 1 {
		exitwithstatus.Message("%s: only one corpus file is allowed, %d were given", program, len(arguments))
	}
	if len(options["mode"]) > 1 {
		exitwithstatus.Message("%s: only one mode option is allowed, %d were detected", program, len(options["mode"]))
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if err := applyOverrides(masterConfiguration, options, arguments); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	if err := process(log, masterConfiguration, os.Stdout); nil != err {
		log.Criticalf("corpus: %q  error: %s", masterConfiguration.Corpus, err)
		exitwithstatus.Message("%s: corpus: %q  error: %s", program, masterConfiguration.Corpus, err)
	}

	if !masterConfiguration.Watch {
		return
	}

	watcherChannel := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(masterConfiguration.Corpus, logger.New(FileWatcherLoggerPrefix), watcherChannel)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	log.Infof("watching: %q", masterConfiguration.Corpus)

wait_loop:
	for {
		select {
		case <-watcherChannel.change:
			if err := process(log, masterConfiguration, os.Stdout); nil != err {
				log.Errorf("corpus: %q  error: %s", masterConfiguration.Corpus, err)
			}
		case <-watcherChannel.remove:
			log.Warnf("corpus: %q removed", masterConfiguration.Corpus)
			break wait_loop
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break wait_loop
		}
	}
}

// apply command line options on top of the configuration
func applyOverrides(masterConfiguration *Configuration, options map[string][]string, arguments []string) error {
	if 1 == len(arguments) {
		wd, err := os.Getwd()
		if nil != err {
			return err
		}
		masterConfiguration.Corpus = ensureAbsolute(wd, arguments[0])
	}
	if 1 == len(options["mode"]) {
		masterConfiguration.Mode = strings.ToLower(options["mode"][0])
	}
	if len(options["watch"]) > 0 {
		masterConfiguration.Watch = true
	}
	if len(options["print"]) > 0 {
		masterConfiguration.PrintTree = true
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	if "" == masterConfiguration.Corpus {
		return fault.ErrMissingCorpus
	}
	if !validMode(masterConfiguration.Mode) {
		return fmt.Errorf("%w: %q", fault.ErrInvalidMode, masterConfiguration.Mode)
	}
	return nil
}

// read the corpus and run each configured tree
func process(log *logger.L, masterConfiguration *Configuration, w io.Writer) error {

	book, err := words.ReadFile(masterConfiguration.Corpus, words.Options{
		FoldCase:      masterConfiguration.FoldCase,
		MinimumLength: masterConfiguration.MinimumLength,
	})
	if nil != err {
		return err
	}
	log.Infof("corpus: %q  words: %d", book.Name, book.Count())

	for _, balanced := range masterConfiguration.trees() {
		result := benchmark.Run(log, book, balanced)

		if err := result.Tree.Check(); nil != err {
			log.Errorf("balanced: %v  tree check: %s", balanced, err)
			return err
		}

		fmt.Fprint(w, result)
		if masterConfiguration.PrintTree {
			result.Tree.Print(w)
		}
	}
	return nil
}
