// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrBalanceMismatch          = ProcessError("cached balance factor is incorrect")
	ErrConfigurationFileMissing = NotFoundError("configuration file is not found")
	ErrCorpusFileMissing        = NotFoundError("corpus file is not found")
	ErrCorpusFileRemoved        = NotFoundError("corpus file was removed")
	ErrCountMismatch            = ProcessError("node count is incorrect")
	ErrHeightMismatch           = ProcessError("cached height is incorrect")
	ErrInvalidConfiguration     = InvalidError("invalid configuration")
	ErrInvalidMinimumLength     = InvalidError("invalid minimum word length")
	ErrInvalidMode              = InvalidError("invalid mode")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrMissingCorpus            = InvalidError("corpus file is required")
	ErrNotADirectory            = InvalidError("not a directory")
	ErrNotPlainFileName         = InvalidError("file name must not contain a path")
	ErrOrderViolation           = ProcessError("items are out of order")
	ErrPoolCorrupt              = ProcessError("node pool is corrupt")
	ErrUnbalanced               = ProcessError("node is unbalanced")
	ErrWatcherAlreadyRunning    = ExistsError("watcher is already running")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
