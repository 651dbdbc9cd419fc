// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-multierror"
)

// ErrNilArgument is matched (via errors.Is) by every PreconditionError.
var ErrNilArgument = errors.New("nil argument")

// PreconditionError is panicked by combinators and checked calls that are
// handed a nil unit. It is raised before any wrapped callable runs.
type PreconditionError struct {
	// Op is the operation that rejected its arguments, e.g. "Function.AndThen".
	Op string
	// Args names every nil argument, in declaration order.
	Args []string

	err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: nil %s", e.Op, strings.Join(e.Args, ", "))
}

// Unwrap returns the aggregated per-argument errors.
func (e *PreconditionError) Unwrap() error {
	return e.err
}

// NewPreconditionError builds the error for op rejecting the named nil
// arguments. Packages layered on top of functional use it to report nil
// inputs the same way the core does.
func NewPreconditionError(op string, args ...string) *PreconditionError {
	var result *multierror.Error
	for _, name := range args {
		result = multierror.Append(result, errwrap.Wrapf(fmt.Sprintf("argument %q: {{err}}", name), ErrNilArgument))
	}
	return &PreconditionError{
		Op:   op,
		Args: args,
		err:  result.ErrorOrNil(),
	}
}

type arg struct {
	name  string
	isNil bool
}

func named(name string, isNil bool) arg {
	return arg{name: name, isNil: isNil}
}

// checkArgs panics with a *PreconditionError naming every nil argument.
func checkArgs(op string, args ...arg) {
	var names []string
	for _, a := range args {
		if a.isNil {
			names = append(names, a.name)
		}
	}
	if len(names) == 0 {
		return
	}
	panic(NewPreconditionError(op, names...))
}
