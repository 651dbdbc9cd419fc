// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package observe

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
	"time"

	metrics "github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-secure-stdlib/functional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetrics(t *testing.T) (*metrics.InmemSink, *metrics.Metrics) {
	t.Helper()
	sink := metrics.NewInmemSink(time.Hour, time.Hour)
	cfg := metrics.DefaultConfig("")
	cfg.EnableHostname = false
	cfg.EnableRuntimeMetrics = false
	m, err := metrics.New(cfg, sink)
	require.NoError(t, err)
	return sink, m
}

func counter(sink *metrics.InmemSink, key string) int {
	total := 0
	for _, interval := range sink.Data() {
		if v, ok := interval.Counters[key]; ok {
			total += v.Count
		}
	}
	return total
}

func samples(sink *metrics.InmemSink, key string) int {
	total := 0
	for _, interval := range sink.Data() {
		if v, ok := interval.Samples[key]; ok {
			total += v.Count
		}
	}
	return total
}

func Test_GetOpts(t *testing.T) {
	t.Parallel()
	t.Run("defaults", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		opts, err := getOpts(nil)
		require.NoError(err)
		assert.Equal(DefaultPrefix, opts.withPrefix)
		assert.NotNil(opts.withLogger)
		assert.Nil(opts.withMetrics)
		assert.Empty(opts.withLabels)
	})
	t.Run("with-logger", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		logger := hclog.Default()
		opts, err := getOpts(WithLogger(logger))
		require.NoError(err)
		assert.Equal(logger, opts.withLogger)
		_, err = getOpts(WithLogger(nil))
		assert.Error(err)
	})
	t.Run("with-metrics", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		_, m := testMetrics(t)
		opts, err := getOpts(WithMetrics(m))
		require.NoError(err)
		assert.Same(m, opts.withMetrics)
		_, err = getOpts(WithMetrics(nil))
		assert.Error(err)
	})
	t.Run("with-prefix-and-labels", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		opts, err := getOpts(
			WithPrefix("app"),
			WithLabels(metrics.Label{Name: "a", Value: "1"}),
			WithLabels(metrics.Label{Name: "b", Value: "2"}),
		)
		require.NoError(err)
		assert.Equal("app", opts.withPrefix)
		assert.Len(opts.withLabels, 2)
	})
}

func TestFunction(t *testing.T) {
	assert, require := assert.New(t), require.New(t)
	sink, m := testMetrics(t)
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Trace})

	addOne := functional.FunctionOf(func(i int) int { return i + 1 })
	f, err := Function("add_one", addOne, WithMetrics(m), WithLogger(logger))
	require.NoError(err)

	assert.Equal(42, f(41))
	assert.Equal(8, f.AndThen(addOne)(6))
	assert.Equal(1, f.Arity())

	assert.Equal(2, counter(sink, "functional.add_one.calls"))
	assert.Equal(2, samples(sink, "functional.add_one.duration"))
	assert.Contains(buf.String(), "unit returned")
	assert.Contains(buf.String(), "unit=add_one")
	assert.Contains(buf.String(), "result=42")
}

func TestSupplierAndBiFunction(t *testing.T) {
	assert, require := assert.New(t), require.New(t)
	sink, m := testMetrics(t)

	s, err := Supplier("answer", functional.Constant(42), WithMetrics(m), WithPrefix(""))
	require.NoError(err)
	assert.Equal(42, s())
	assert.Equal(1, counter(sink, "answer.calls"))

	mul, err := BiFunction("mul", functional.BiFunctionOf(func(a, b int) int { return a * b }), WithMetrics(m),
		WithLabels(metrics.Label{Name: "env", Value: "test"}))
	require.NoError(err)
	assert.Equal(12, mul.Partial(3)(4))
	assert.Equal(1, counter(sink, "functional.mul.calls;env=test"))
}

func TestPredicate(t *testing.T) {
	assert, require := assert.New(t), require.New(t)
	sink, m := testMetrics(t)

	even, err := Predicate("even", functional.PredicateOf(func(i int) bool { return i%2 == 0 }), WithMetrics(m))
	require.NoError(err)
	assert.True(even(2))
	assert.False(even.Negate()(2))
	assert.Equal(2, counter(sink, "functional.even.calls"))
}

func TestErrorableFunction(t *testing.T) {
	assert, require := assert.New(t), require.New(t)
	sink, m := testMetrics(t)
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Debug})

	f, err := ErrorableFunction("atoi", functional.ErrorableFunctionOf(strconv.Atoi), WithMetrics(m), WithLogger(logger))
	require.NoError(err)

	v, err := f("7")
	require.NoError(err)
	assert.Equal(7, v)

	_, err = f("seven")
	require.Error(err)
	var numErr *strconv.NumError
	assert.True(errors.As(err, &numErr))
	assert.Equal("seven", numErr.Num)

	assert.Equal(2, counter(sink, "functional.atoi.calls"))
	assert.Equal(1, counter(sink, "functional.atoi.errors"))
	assert.Contains(buf.String(), "unit failed")
	assert.NotContains(buf.String(), "unit returned")
}

func TestErrorableFunction_ErrorIdentity(t *testing.T) {
	sentinel := errors.New("boom")
	_, m := testMetrics(t)
	f, err := ErrorableFunction("boom", functional.ErrorableFunctionOf(func(int) (int, error) {
		return -1, sentinel
	}), WithMetrics(m))
	require.NoError(t, err)

	v, err := f(1)
	assert.Equal(t, -1, v)
	assert.Same(t, sentinel, err)
}

func TestPanicPropagates(t *testing.T) {
	assert, require := assert.New(t), require.New(t)
	sink, m := testMetrics(t)

	f, err := Function("explode", functional.FunctionOf(func(int) int { panic("explode") }), WithMetrics(m))
	require.NoError(err)

	assert.PanicsWithValue("explode", func() { f(1) })
	assert.Equal(1, counter(sink, "functional.explode.calls"))
	assert.Equal(1, samples(sink, "functional.explode.duration"))
}

func TestDecorate_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Function[int, int]("nil", nil)
	require.Error(t, err)
	assert.ErrorIs(err, functional.ErrNilArgument)
	var perr *functional.PreconditionError
	require.True(t, errors.As(err, &perr))
	assert.Equal("observe.Function", perr.Op)

	_, err = Predicate[int]("nil", nil)
	require.True(t, errors.As(err, &perr))
	assert.Equal([]string{"p"}, perr.Args)

	_, err = Supplier("", functional.Constant(1))
	assert.ErrorIs(err, ErrEmptyName)

	_, err = Function("bad-option", functional.Identity[int](), WithLogger(nil))
	assert.Error(err)
}

func TestDefaultMetrics(t *testing.T) {
	f, err := Function("global", functional.Identity[string]())
	require.NoError(t, err)
	assert.Equal(t, "x", f("x"))
}
