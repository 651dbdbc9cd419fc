// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package observe decorates functional units with logging and metrics.
//
// A decorated unit behaves exactly like the unit it wraps: it returns the
// same values and errors, and panics raised by the wrapped unit propagate
// unchanged. Each invocation increments the counter [prefix, name, "calls"]
// and records its duration under [prefix, name, "duration"]. Errorable units
// additionally count failures under [prefix, name, "errors"].
package observe

import (
	"errors"
	"time"

	metrics "github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-secure-stdlib/functional"
)

// ErrEmptyName is returned when a unit is decorated without a name.
var ErrEmptyName = errors.New("observe: empty unit name")

type observer struct {
	metrics *metrics.Metrics
	logger  hclog.Logger
	prefix  []string
	labels  []metrics.Label
}

func newObserver(op, name, unit string, isNil bool, opt ...Option) (*observer, error) {
	if isNil {
		return nil, functional.NewPreconditionError(op, unit)
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}

	o := &observer{
		metrics: opts.withMetrics,
		logger:  opts.withLogger.With("unit", name),
		labels:  opts.withLabels,
	}
	if o.metrics == nil {
		o.metrics = metrics.Default()
	}
	if opts.withPrefix != "" {
		o.prefix = append(o.prefix, opts.withPrefix)
	}
	o.prefix = append(o.prefix, name)
	return o, nil
}

func (o *observer) key(suffix string) []string {
	k := make([]string, 0, len(o.prefix)+1)
	k = append(k, o.prefix...)
	return append(k, suffix)
}

// begin counts a call and returns its start time; pair it with a deferred
// end so the duration is recorded even when the unit panics.
func (o *observer) begin() time.Time {
	o.metrics.IncrCounterWithLabels(o.key("calls"), 1, o.labels)
	return time.Now()
}

func (o *observer) end(start time.Time) {
	o.metrics.MeasureSinceWithLabels(o.key("duration"), start, o.labels)
}

func (o *observer) result(v any) {
	if o.logger.IsTrace() {
		o.logger.Trace("unit returned", "result", v)
	}
}

func (o *observer) failed(err error) {
	o.metrics.IncrCounterWithLabels(o.key("errors"), 1, o.labels)
	o.logger.Debug("unit failed", "error", err)
}

// Supplier returns an observed version of f.
func Supplier[V any](name string, f functional.Supplier[V], opt ...Option) (functional.Supplier[V], error) {
	o, err := newObserver("observe.Supplier", name, "f", f == nil, opt...)
	if err != nil {
		return nil, err
	}
	return func() V {
		defer o.end(o.begin())
		v := f()
		o.result(v)
		return v
	}, nil
}

// Function returns an observed version of f.
func Function[A, V any](name string, f functional.Function[A, V], opt ...Option) (functional.Function[A, V], error) {
	o, err := newObserver("observe.Function", name, "f", f == nil, opt...)
	if err != nil {
		return nil, err
	}
	return func(a A) V {
		defer o.end(o.begin())
		v := f(a)
		o.result(v)
		return v
	}, nil
}

// BiFunction returns an observed version of f.
func BiFunction[A, B, V any](name string, f functional.BiFunction[A, B, V], opt ...Option) (functional.BiFunction[A, B, V], error) {
	o, err := newObserver("observe.BiFunction", name, "f", f == nil, opt...)
	if err != nil {
		return nil, err
	}
	return func(a A, b B) V {
		defer o.end(o.begin())
		v := f(a, b)
		o.result(v)
		return v
	}, nil
}

// Predicate returns an observed version of p.
func Predicate[A any](name string, p functional.Predicate[A], opt ...Option) (functional.Predicate[A], error) {
	o, err := newObserver("observe.Predicate", name, "p", p == nil, opt...)
	if err != nil {
		return nil, err
	}
	return func(a A) bool {
		defer o.end(o.begin())
		v := p(a)
		o.result(v)
		return v
	}, nil
}

// ErrorableFunction returns an observed version of f. Errors are counted
// and logged, then returned as is.
func ErrorableFunction[A, V any](name string, f functional.ErrorableFunction[A, V], opt ...Option) (functional.ErrorableFunction[A, V], error) {
	o, err := newObserver("observe.ErrorableFunction", name, "f", f == nil, opt...)
	if err != nil {
		return nil, err
	}
	return func(a A) (V, error) {
		defer o.end(o.begin())
		v, err := f(a)
		if err != nil {
			o.failed(err)
			return v, err
		}
		o.result(v)
		return v, nil
	}, nil
}
