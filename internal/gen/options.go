// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package gen

import (
	"fmt"
	"go/token"

	"github.com/hashicorp/go-hclog"
)

// DefaultPackage is the package generated files are declared in.
const DefaultPackage = "functional"

// DefaultHeader is emitted at the top of every generated file.
const DefaultHeader = `// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0`

// getOpts - iterate the inbound Options and return a struct
func getOpts(opt ...Option) (*options, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			if err := o(&opts); err != nil {
				return nil, err
			}
		}
	}
	return &opts, nil
}

// Option - how Options are passed as arguments
type Option func(*options) error

// options = how options are represented
type options struct {
	withPackage string
	withHeader  string
	withLogger  hclog.Logger
}

func getDefaultOptions() options {
	return options{
		withPackage: DefaultPackage,
		withHeader:  DefaultHeader,
		withLogger:  hclog.NewNullLogger(),
	}
}

// WithPackage sets the package clause of the generated files.
func WithPackage(name string) Option {
	return func(o *options) error {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("invalid package name %q", name)
		}
		o.withPackage = name
		return nil
	}
}

// WithHeader replaces the comment emitted above the generated marker. An
// empty header omits it.
func WithHeader(header string) Option {
	return func(o *options) error {
		o.withHeader = header
		return nil
	}
}

// WithLogger provides a logger for rendering progress
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.withLogger = logger
		}
		return nil
	}
}
