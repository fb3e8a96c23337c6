// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type PreconditionError GenericError

// common errors - keep in alphabetic order
var (
	ErrDeleteMinFromEmptyTree = PreconditionError("delete minimum from empty tree")
	ErrNilKey                 = InvalidError("key item is nil")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string      { return string(e) }
func (e PreconditionError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrPrecondition(e error) bool { _, ok := e.(PreconditionError); return ok }
