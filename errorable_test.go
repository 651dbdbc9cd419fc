// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failing[A, V any](calls *int) ErrorableFunction[A, V] {
	return func(A) (V, error) {
		*calls++
		var zero V
		return zero, errBoom
	}
}

func counting[A any](calls *int) ErrorableFunction[A, A] {
	return func(a A) (A, error) {
		*calls++
		return a, nil
	}
}

func TestErrorable_Success(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	atoi := ErrorableFunctionOf(strconv.Atoi)
	v, err := ErrorableAndThen(atoi, addOne.Errorable())("41")
	require.NoError(err)
	assert.Equal(42, v)

	s, err := ErrorableCompose(ErrorableFunctionOf(func(i int) (string, error) {
		return strconv.Itoa(i), nil
	}), atoi)("7")
	require.NoError(err)
	assert.Equal("7", s)

	v, err = ErrorableSupplierAndThen(ErrorableSupplierOf(func() (string, error) { return "5", nil }), atoi)()
	require.NoError(err)
	assert.Equal(5, v)

	v, err = ErrorableBiAndThen(mul.Errorable(), addOne.Errorable())(3, 4)
	require.NoError(err)
	assert.Equal(13, v)

	v, err = ErrorableTriAndThen(sum3.Errorable(), addOne.Errorable())(1, 2, 3)
	require.NoError(err)
	assert.Equal(7, v)

	v, err = mul.Errorable().Partial(6)(7)
	require.NoError(err)
	assert.Equal(42, v)

	v, err = sum3.Errorable().Partial2(1, 2).Partial(3)()
	require.NoError(err)
	assert.Equal(6, v)

	v, err = sum3.Errorable().Partial(1).Apply(2, 3)
	require.NoError(err)
	assert.Equal(6, v)

	v, err = Constant(1).Errorable().AndThen(addOne.Errorable()).Get()
	require.NoError(err)
	assert.Equal(2, v)
	assert.Equal(0, Constant(1).Errorable().Arity())
}

func TestErrorable_ErrorIdentityAndShortCircuit(t *testing.T) {
	t.Run("and-then", func(t *testing.T) {
		assert := assert.New(t)
		var first, second int
		v, err := ErrorableAndThen(failing[int, int](&first), counting[int](&second))(1)
		assert.Same(errBoom, err)
		assert.Zero(v)
		assert.Equal(1, first)
		assert.Zero(second)
	})
	t.Run("compose", func(t *testing.T) {
		assert := assert.New(t)
		var before, f int
		_, err := counting[int](&f).Compose(failing[int, int](&before))(1)
		assert.Same(errBoom, err)
		assert.Equal(1, before)
		assert.Zero(f)
	})
	t.Run("supplier", func(t *testing.T) {
		assert := assert.New(t)
		var after int
		s := ErrorableSupplierOf(func() (int, error) { return 0, errBoom })
		_, err := s.AndThen(counting[int](&after)).Get()
		assert.Same(errBoom, err)
		assert.Zero(after)
	})
	t.Run("bifunction-compose", func(t *testing.T) {
		assert := assert.New(t)
		var b1, b2, f int
		g := ErrorableBiFunctionOf(func(a, b int) (int, error) {
			f++
			return a + b, nil
		})
		_, err := g.Compose(counting[int](&b1), failing[int, int](&b2))(1, 2)
		assert.Same(errBoom, err)
		assert.Equal(1, b1)
		assert.Equal(1, b2)
		assert.Zero(f)
	})
	t.Run("trifunction-compose", func(t *testing.T) {
		assert := assert.New(t)
		var b1, b2, b3 int
		_, err := sum3.Errorable().Compose(failing[int, int](&b1), counting[int](&b2), counting[int](&b3))(1, 2, 3)
		assert.Same(errBoom, err)
		assert.Equal(1, b1)
		assert.Zero(b2)
		assert.Zero(b3)
	})
	t.Run("bi-and-then", func(t *testing.T) {
		assert := assert.New(t)
		var after int
		g := ErrorableBiFunctionOf(func(int, int) (int, error) { return 0, errBoom })
		_, err := g.AndThen(counting[int](&after)).Apply(1, 2)
		assert.Same(errBoom, err)
		assert.Zero(after)
	})
	t.Run("tri-and-then", func(t *testing.T) {
		assert := assert.New(t)
		var after int
		g := ErrorableTriFunctionOf(func(int, int, int) (int, error) { return 0, errBoom })
		_, err := g.AndThen(counting[int](&after)).Apply(1, 2, 3)
		assert.Same(errBoom, err)
		assert.Zero(after)
	})
	t.Run("consume", func(t *testing.T) {
		assert := assert.New(t)
		var consumed []int
		sink := ConsumerOf(func(i int) { consumed = append(consumed, i) })

		assert.NoError(addOne.Errorable().Consume(sink)(1))
		assert.NoError(Constant(7).Errorable().Consume(sink)(nil))
		assert.NoError(mul.Errorable().Consume(sink)(2, 3))
		assert.NoError(sum3.Errorable().Consume(sink)(1, 1, 1))
		assert.Same(errBoom, failing[int, int](new(int)).Consume(sink)(1))
		assert.Equal([]int{2, 7, 6, 3}, consumed)
	})
}

func TestErrorable_Boxed(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	v, err := Constant(42).Errorable().Boxed()()
	require.NoError(err)
	assert.Equal(any(42), v)

	v, err = ErrorableFunctionOf(strconv.Atoi).Boxed()("41")
	require.NoError(err)
	assert.Equal(any(41), v)

	v, err = mul.Errorable().Boxed()(3, 4)
	require.NoError(err)
	assert.Equal(any(12), v)

	v, err = sum3.Errorable().Boxed()(1, 2, 3)
	require.NoError(err)
	assert.Equal(any(6), v)

	v, err = failing[int, int](new(int)).Boxed()(1)
	assert.Same(errBoom, err)
	assert.Nil(v)

	_, err = ErrorableSupplierOf(func() (int, error) { return 0, errBoom }).Boxed()()
	assert.Same(errBoom, err)

	assert.Panics(func() {
		_, _ = addOne.Errorable().Boxed()("one")
	})
}

func TestErrorableConsumer(t *testing.T) {
	assert := assert.New(t)

	var consumed []int
	sink := ConsumerOf(func(i int) { consumed = append(consumed, i) })

	c := addOne.Errorable().Consume(sink)
	assert.Equal(1, c.Arity())
	assert.NoError(c.Accept(1))
	assert.NoError(c.Boxed()(2))

	bc := mul.Errorable().Consume(sink)
	assert.Equal(2, bc.Arity())
	assert.NoError(bc.Accept(2, 3))
	assert.NoError(bc.Boxed()(1, 4))

	tc := sum3.Errorable().Consume(sink)
	assert.Equal(3, tc.Arity())
	assert.NoError(tc.Accept(1, 1, 1))
	assert.NoError(tc.Boxed()(1, 2, 3))

	sc := Constant(9).Errorable().Consume(sink)
	assert.Equal(1, sc.Arity())
	assert.NoError(sc.Accept("ignored"))
	assert.Equal([]int{2, 3, 6, 4, 3, 6, 9}, consumed)

	checkPositive := ErrorableConsumerOf(func(i int) error {
		if i <= 0 {
			return errBoom
		}
		return nil
	})
	assert.Same(errBoom, checkPositive.Accept(0))
	assert.Same(errBoom, checkPositive.Boxed()(-1))
	assert.NoError(ErrorableBiConsumerOf(func(int, string) error { return nil }).Accept(1, "a"))
	assert.Same(errBoom, ErrorableTriConsumerOf(func(int, int, int) error { return errBoom }).Boxed()(1, 2, 3))
}

func TestErrorable_PanicsPropagate(t *testing.T) {
	explode := ErrorableFunctionOf(func(int) (int, error) { panic("explode") })
	assert.PanicsWithValue(t, "explode", func() {
		_, _ = ErrorableAndThen(addOne.Errorable(), explode)(1)
	})
	assert.PanicsWithValue(t, "explode", func() {
		_, _ = explode.Compose(addOne.Errorable())(1)
	})
}
