// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-secure-stdlib/functional"
)

func ExampleFunction_AndThenToString() {
	addOne := functional.IntUnaryOperator(func(i int) int { return i + 1 })
	fmt.Println(addOne.AndThenToString(strconv.Itoa)(41))
	// Output: 42
}

func ExampleBiFunction_Partial() {
	mul := functional.IntBinaryOperator(func(a, b int) int { return a * b })
	triple := mul.Partial(3)
	fmt.Println(triple(4), triple.Arity())
	// Output: 12 1
}

func ExamplePredicate_And() {
	positive := functional.IntPredicate(func(i int) bool { return i > 0 })
	even := functional.IntPredicate(func(i int) bool { return i%2 == 0 })
	check := positive.And(even)
	fmt.Println(check(4), check(-4), check(3))
	// Output: true false false
}

func ExampleErrorableAndThen() {
	parse := functional.ErrorableFunctionOf(strconv.Atoi)
	half := functional.ErrorableFunctionOf(func(i int) (int, error) {
		if i%2 != 0 {
			return 0, fmt.Errorf("%d is odd", i)
		}
		return i / 2, nil
	})
	f := functional.ErrorableAndThen(parse, half)

	fmt.Println(f("84"))
	fmt.Println(f("7"))
	// Output:
	// 42 <nil>
	// 0 7 is odd
}

func ExamplePreconditionError() {
	defer func() {
		err := recover().(*functional.PreconditionError)
		fmt.Println(err)
		fmt.Println(errors.Is(err, functional.ErrNilArgument))
	}()
	functional.IntUnaryOperator(nil).AndThen(nil)
	// Output:
	// Function.AndThen: precondition violated: nil f, after
	// true
}
