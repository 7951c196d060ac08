/*
 * errors.go, part of rdkit.
 *
 * Copyright 2025 Clara Blanes <cblanes{at}gmxDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. Each Decorate call
// normally adds the name of the function passing the error up.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete, general-purpose error of the library.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

// Decorate adds dec to the decoration slice of the error, unless dec is
// empty, and returns the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ParseError signals a syntactic or structural problem in the content of a
// molfile. Line is the number of the physical line where the problem was
// found, counting from the beginning of the stream handed to the parser.
type ParseError struct {
	Line int
	msg  string
	deco []string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", err.Line, err.msg)
}

// Decorate adds dec to the decoration slice of the error, unless dec is
// empty, and returns the resulting slice.
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func parseErrorf(line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, msg: fmt.Sprintf(format, args...)}
}

// errDecorate asserts that err implements chem.Error and decorates it with
// the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// PanicMsg is the type used for the text of panics raised by the library,
// even though it does satisfy the error interface. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

// logger emits the non-fatal diagnostics of the library: records that the
// parsers warn about and skip, deprecated constructs, and the like.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("lib", "rdkit").Logger()

// SetLogger replaces the logger used for parse warnings. It is not
// protected by a lock so it should be called before any parsing starts.
func SetLogger(l zerolog.Logger) {
	logger = l
}
