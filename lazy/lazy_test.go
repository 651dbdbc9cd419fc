// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lazy

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-secure-stdlib/functional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyFunctions(t *testing.T) {
	t.Run("supplier", func(t *testing.T) {
		r := require.New(t)
		i := 5
		l := FromSupplier(func() int {
			return i
		})
		r.Equal(5, l())
		i = 1
		r.Equal(5, l())
	})
	t.Run("errorable-supplier", func(t *testing.T) {
		r := require.New(t)
		i := 5
		l := FromErrorableSupplier(func() (int, error) {
			return i, nil
		})
		v, err := l()
		r.Equal(5, v)
		r.NoError(err)
		i = 1
		v, err = l()
		r.Equal(5, v)
		r.NoError(err)

		pErr := errors.New("always")
		l = FromErrorableSupplier(func() (int, error) {
			return 1, pErr
		})
		v, err = l()
		r.Equal(0, v)
		r.ErrorIs(err, pErr)
		pErr = nil
		v, err = l()
		r.Equal(0, v)
		r.Error(err)
	})
	t.Run("function", func(t *testing.T) {
		r := require.New(t)
		calls := 0
		l := FromFunction(func(s string) int {
			calls++
			if s == "one" {
				return 1
			}
			return 0
		})
		r.Equal(1, l("one"))
		r.Equal(0, l("zero"))
		r.Equal(1, l("one"))
		r.Equal(2, calls)
	})
	t.Run("errorable-function", func(t *testing.T) {
		r := require.New(t)
		pErr := errors.New("odd")
		calls := 0
		l := FromErrorableFunction(func(n int) (int, error) {
			calls++
			if n%2 != 0 {
				return n, pErr
			}
			return n / 2, nil
		})
		v, err := l(4)
		r.Equal(2, v)
		r.NoError(err)
		v, err = l(3)
		r.Equal(0, v)
		r.ErrorIs(err, pErr)
		_, err = l(3)
		r.ErrorIs(err, pErr)
		r.Equal(2, calls)
	})
	t.Run("bifunction", func(t *testing.T) {
		r := require.New(t)
		calls := 0
		l := FromBiFunction(func(a, b int) int {
			calls++
			return a * b
		})
		r.Equal(12, l(3, 4))
		r.Equal(12, l(4, 3))
		r.Equal(12, l(3, 4))
		r.Equal(2, calls)
	})
	t.Run("errorable-bifunction", func(t *testing.T) {
		r := require.New(t)
		pErr := errors.New("mismatch")
		l := FromErrorableBiFunction(func(s, t string) (int, error) {
			if s == t {
				return 5, nil
			}
			return 2, pErr
		})
		v, err := l("foo", "foo")
		r.Equal(5, v)
		r.NoError(err)
		v, err = l("foo", "bar")
		r.Equal(0, v)
		r.ErrorIs(err, pErr)
	})
}

func TestFromFunction_Concurrent(t *testing.T) {
	var calls atomic.Int32
	l := FromFunction(func(n int) int {
		calls.Add(1)
		return n * n
	})

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.Equal(t, (i%4)*(i%4), l(i%4))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int32(4), calls.Load())
}

func TestFromFunction_KeyRules(t *testing.T) {
	t.Run("uncomparable-dynamic-value", func(t *testing.T) {
		l := FromFunction(func(v any) int {
			return 1
		})
		assert.Equal(t, 1, l(3))
		assert.Panics(t, func() {
			l([]int{1, 2})
		})
	})
	t.Run("nan-is-never-cached", func(t *testing.T) {
		calls := 0
		l := FromFunction(func(f float64) bool {
			calls++
			return math.IsNaN(f)
		})
		for i := 0; i < 5; i++ {
			assert.True(t, l(math.NaN()))
		}
		assert.Equal(t, 5, calls)

		l(1.5)
		l(1.5)
		assert.Equal(t, 6, calls)
	})
	t.Run("bifunction-pair", func(t *testing.T) {
		calls := 0
		l := FromBiFunction(func(a any, b string) string {
			calls++
			return b
		})
		assert.Equal(t, "x", l(1, "x"))
		assert.Equal(t, "x", l(1, "x"))
		assert.Equal(t, 1, calls)
		assert.Panics(t, func() {
			l(map[string]int{}, "x")
		})
	})
}

func TestLazy_NilInput(t *testing.T) {
	tests := map[string]func(){
		"supplier":             func() { FromSupplier[int](nil) },
		"errorable-supplier":   func() { FromErrorableSupplier[int](nil) },
		"function":             func() { FromFunction[int, int](nil) },
		"errorable-function":   func() { FromErrorableFunction[int, int](nil) },
		"bifunction":           func() { FromBiFunction[int, int, int](nil) },
		"errorable-bifunction": func() { FromErrorableBiFunction[int, int, int](nil) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(*functional.PreconditionError)
				require.True(t, ok)
				assert.ErrorIs(t, err, functional.ErrNilArgument)
				assert.Equal(t, []string{"f"}, err.Args)
			}()
			fn()
		})
	}
}
