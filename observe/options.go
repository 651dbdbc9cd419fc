// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package observe

import (
	"errors"

	metrics "github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
)

// DefaultPrefix leads every metric key unless WithPrefix overrides it.
const DefaultPrefix = "functional"

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
	withLogger  hclog.Logger
	withMetrics *metrics.Metrics
	withPrefix  string
	withLabels  []metrics.Label
}

func getDefaultOptions() options {
	return options{
		withLogger: hclog.NewNullLogger(),
		withPrefix: DefaultPrefix,
	}
}

// WithLogger provides the logger invocations are traced to
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		o.withLogger = logger
		return nil
	}
}

// WithMetrics provides the metrics instance to emit to. When unset the
// global instance returned by metrics.Default is used.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) error {
		if m == nil {
			return errors.New("nil metrics")
		}
		o.withMetrics = m
		return nil
	}
}

// WithPrefix sets the first element of every metric key. An empty prefix
// drops it.
func WithPrefix(prefix string) Option {
	return func(o *options) error {
		o.withPrefix = prefix
		return nil
	}
}

// WithLabels attaches labels to every metric emitted.
func WithLabels(labels ...metrics.Label) Option {
	return func(o *options) error {
		o.withLabels = append(o.withLabels, labels...)
		return nil
	}
}
