// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// Supplier produces a value without input.
type Supplier[V any] func() V

// Function maps one input to a value.
type Function[A, V any] func(A) V

// BiFunction maps two inputs to a value.
type BiFunction[A, B, V any] func(A, B) V

// TriFunction maps three inputs to a value.
type TriFunction[A, B, C, V any] func(A, B, C) V

// Condition is a boolean Supplier.
type Condition func() bool

// Predicate tests one input.
type Predicate[A any] func(A) bool

// BiPredicate tests two inputs.
type BiPredicate[A, B any] func(A, B) bool

// TriPredicate tests three inputs.
type TriPredicate[A, B, C any] func(A, B, C) bool

// Runnable performs a side effect without input.
type Runnable func()

// Consumer accepts one input and returns nothing.
type Consumer[A any] func(A)

// BiConsumer accepts two inputs and returns nothing.
type BiConsumer[A, B any] func(A, B)

// TriConsumer accepts three inputs and returns nothing.
type TriConsumer[A, B, C any] func(A, B, C)

type (
	ErrorableSupplier[V any]             func() (V, error)
	ErrorableFunction[A, V any]          func(A) (V, error)
	ErrorableBiFunction[A, B, V any]     func(A, B) (V, error)
	ErrorableTriFunction[A, B, C, V any] func(A, B, C) (V, error)

	ErrorableConsumer[A any]          func(A) error
	ErrorableBiConsumer[A, B any]     func(A, B) error
	ErrorableTriConsumer[A, B, C any] func(A, B, C) error
)
