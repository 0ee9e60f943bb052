package fn_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-underscore-utils/fn"
)

func ExampleCurry3() {
	add := func(a, b, c int) int { return a + b + c }
	g := fn.Curry3(add)

	fmt.Println(g(1)(2)(3))
	fmt.Println(g(10)(20)(30))
	// Output:
	// 6
	// 60
}

func ExamplePipe() {
	slug := fn.Pipe(strings.TrimSpace, strings.ToLower)
	fmt.Println(slug("  Hello World  "))
	// Output:
	// hello world
}

func ExampleThread() {
	double := func(n int) int { return n * 2 }
	increment := func(n int) int { return n + 1 }

	fmt.Println(fn.Thread(3, double, increment))
	// Output:
	// 7
}

func ExampleMemoize() {
	calls := 0
	square := fn.Memoize(func(n int) int {
		calls++
		return n * n
	})

	fmt.Println(square(12), square(12), calls)
	// Output:
	// 144 144 1
}

func ExampleOnce() {
	greet := fn.Once(func(name string) string {
		return "hello " + name
	})

	fmt.Println(greet("moe"))
	fmt.Println(greet("curly"))
	// Output:
	// hello moe
	// hello moe
}

func ExampleBindArgs() {
	hello := func(args ...any) any {
		return fmt.Sprint("hello: ", args[0], " ", args[1])
	}
	greet := fn.BindArgs(hello, fn.Arg, "!")

	fmt.Println(greet("moe"))
	// Output:
	// hello: moe !
}
