// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package functional provides single-method callable types, from suppliers
// to three-argument functions, predicates and consumers, together with the
// combinators that build new units out of existing ones.
//
// Units are plain func types, so any func literal of the right shape can be
// converted to one. Combinators (AndThen, Compose, Negate, And, Or, Xor,
// Partial, Consume, Boxed) check their arguments for nil when they are
// called and panic with a *PreconditionError before any unit runs. Panics
// and errors raised by wrapped units pass through composed units untouched.
//
// Per-kind aliases such as Int32UnaryOperator and the AndThenTo family of
// methods are generated from internal/gen/matrix.hcl.
package functional

//go:generate go run ./cmd/funcgen generate -out .
