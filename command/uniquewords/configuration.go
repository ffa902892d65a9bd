// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uniquewords/configuration"
	"github.com/bitmark-inc/uniquewords/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "uniquewords.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// tree modes
const (
	modeBalanced = "balanced"
	modeNaive    = "naive"
	modeBoth     = "both"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - settings from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Corpus        string               `gluamapper:"corpus" json:"corpus"`
	Mode          string               `gluamapper:"mode" json:"mode"`
	FoldCase      bool                 `gluamapper:"fold_case" json:"fold_case"`
	MinimumLength int                  `gluamapper:"minimum_length" json:"minimum_length"`
	PrintTree     bool                 `gluamapper:"print_tree" json:"print_tree"`
	Watch         bool                 `gluamapper:"watch" json:"watch"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Corpus:        "",
		Mode:          modeBalanced,
		FoldCase:      false,
		MinimumLength: 0,
		PrintTree:     false,
		Watch:         false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels,
		},
	}

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !ensureFileExists(configurationFileName) {
			return nil, fmt.Errorf("%w: %q", fault.ErrConfigurationFileMissing, configurationFileName)
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	if err := options.validate(baseDirectory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// check values and expand all paths to absolute
func (options *Configuration) validate(baseDirectory string) error {

	options.Mode = strings.ToLower(options.Mode)
	if !validMode(options.Mode) {
		return fmt.Errorf("%w: %q", fault.ErrInvalidMode, options.Mode)
	}

	if options.MinimumLength < 0 {
		return fault.ErrInvalidMinimumLength
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	}
	options.DataDirectory = ensureAbsolute(baseDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.Corpus {
		options.Corpus = ensureAbsolute(options.DataDirectory, options.Corpus)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("%w: %q", fault.ErrNotPlainFileName, options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}

// the trees to build for a mode
func (options *Configuration) trees() []bool {
	switch options.Mode {
	case modeNaive:
		return []bool{false}
	case modeBoth:
		return []bool{true, false}
	default:
		return []bool{true}
	}
}

func validMode(mode string) bool {
	switch mode {
	case modeBalanced, modeNaive, modeBoth:
		return true
	}
	return false
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// check if file exists
func ensureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
