// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package gen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallMatrix = `
kind "Int" {
  type = "int"
  doc  = "Int aliases."
}

unit "Function" {
  receiver = "f"
  inputs   = ["A"]
  helper   = "andThen"
}
`

func Test_GetOpts(t *testing.T) {
	t.Parallel()
	t.Run("defaults", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		opts, err := getOpts(nil)
		require.NoError(err)
		assert.Equal(DefaultPackage, opts.withPackage)
		assert.Equal(DefaultHeader, opts.withHeader)
		assert.NotNil(opts.withLogger)
	})
	t.Run("with-package", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		opts, err := getOpts(WithPackage("fn"))
		require.NoError(err)
		assert.Equal("fn", opts.withPackage)
		_, err = getOpts(WithPackage("not a package"))
		assert.Error(err)
	})
	t.Run("with-header", func(t *testing.T) {
		opts, err := getOpts(WithHeader(""))
		require.NoError(t, err)
		assert.Empty(t, opts.withHeader)
	})
	t.Run("with-logger", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		logger := hclog.Default()
		opts, err := getOpts(WithLogger(logger))
		require.NoError(err)
		assert.Equal(logger, opts.withLogger)
	})
}

func TestRender(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	m, err := ParseMatrix(smallMatrix)
	require.NoError(err)

	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Debug})
	files, err := Render(m, WithPackage("fn"), WithHeader("// header"), WithLogger(logger))
	require.NoError(err)
	require.Len(files, 2)

	assert.Equal(`// header

// Code generated by funcgen. DO NOT EDIT.

package fn

// AndThenToInt returns a Function that feeds the result of f into after.
func (f Function[A, V]) AndThenToInt(after Function[V, int]) Function[A, int] {
	return andThen("Function.AndThenToInt", f, after)
}
`, string(files["andthen_gen.go"]))

	assert.Equal(`// header

// Code generated by funcgen. DO NOT EDIT.

package fn

// Int aliases.
type IntSupplier = Supplier[int]
type IntUnaryOperator = Function[int, int]
type IntBinaryOperator = BiFunction[int, int, int]
type IntTernaryOperator = TriFunction[int, int, int, int]
type IntPredicate = Predicate[int]
type IntBiPredicate = BiPredicate[int, int]
type IntConsumer = Consumer[int]
type IntBiConsumer = BiConsumer[int, int]
`, string(files["kinds_gen.go"]))

	assert.Contains(buf.String(), "rendered file")
}

func TestRender_NoHeader(t *testing.T) {
	m, err := ParseMatrix(smallMatrix)
	require.NoError(t, err)
	files, err := Render(m, WithHeader(""))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(files["kinds_gen.go"], []byte("// Code generated by funcgen. DO NOT EDIT.\n\npackage functional\n")))
}

func TestRender_NilMatrix(t *testing.T) {
	_, err := Render(nil)
	require.Error(t, err)
}

func TestWriteAndCheck(t *testing.T) {
	assert, require := assert.New(t), require.New(t)
	dir := t.TempDir()

	m, err := ParseMatrix(smallMatrix)
	require.NoError(err)

	err = Check(m, dir)
	require.Error(err)
	var merr *multierror.Error
	require.True(errors.As(err, &merr))
	assert.Len(merr.Errors, 2)
	assert.Contains(err.Error(), "is missing")

	files, err := Render(m)
	require.NoError(err)
	require.NoError(Write(files, dir))
	require.NoError(Check(m, dir))

	path := filepath.Join(dir, "kinds_gen.go")
	stale := bytes.Replace(files["kinds_gen.go"], []byte("Predicate[int]"), []byte("Predicate[int64]"), 1)
	require.NoError(os.WriteFile(path, stale, 0o644))

	err = Check(m, dir)
	require.Error(err)
	var drift *DriftError
	require.True(errors.As(err, &drift))
	assert.Equal(path, drift.Path)
	assert.Contains(drift.Diff, "IntPredicate")
	assert.Contains(drift.Diff, "64")
	assert.Contains(err.Error(), "out of date")
}

// The checked-in sources of the root package must match the default
// matrix; run go generate in the module root when this fails.
func TestCheck_DefaultMatrixInSync(t *testing.T) {
	m, err := ParseMatrix(DefaultMatrix)
	require.NoError(t, err)
	require.NoError(t, Check(m, filepath.Join("..", "..")))
}
