// Package workloads holds the sample computations batches are built from.
// They are plain callers of the pool: the pool itself treats them as opaque.
package workloads

import (
	"fmt"
	"sync"
	"time"

	srvErrors "github.com/antonioclim/taskpool/pkg/errors"
	"github.com/antonioclim/taskpool/pkg/pool"
)

const (
	NameFactorial = "factorial"
	NameFibonacci = "fibonacci"
	NameSleeper   = "sleeper"
	NameFlaky     = "flaky"
)

// Names lists the registered workloads in display order.
func Names() []string {
	return []string{NameFactorial, NameFibonacci, NameSleeper, NameFlaky}
}

// Lookup resolves a workload by name. The flaky workload is built fresh so
// every batch starts with a clean failure history.
func Lookup(name string) (pool.Func[int, int64], error) {
	switch name {
	case NameFactorial:
		return Factorial, nil
	case NameFibonacci:
		return Fibonacci, nil
	case NameSleeper:
		return Sleeper, nil
	case NameFlaky:
		return NewFlaky(1), nil
	default:
		return nil, srvErrors.NewUnknownWorkloadError(name)
	}
}

// Factorial computes n! for 0 <= n <= 20; larger inputs overflow int64.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial undefined for %d", n)
	}
	if n > 20 {
		return 0, fmt.Errorf("factorial(%d) overflows int64", n)
	}
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result, nil
}

// Fibonacci computes the n-th Fibonacci number for 0 <= n <= 92.
func Fibonacci(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("fibonacci undefined for %d", n)
	}
	if n > 92 {
		return 0, fmt.Errorf("fibonacci(%d) overflows int64", n)
	}
	var a, b int64 = 0, 1
	for range n {
		a, b = b, a+b
	}
	return a, nil
}

// Sleeper sleeps for n milliseconds and returns n. It stands in for slow,
// uninterruptible work in timeout and cancellation exercises.
func Sleeper(n int) (int64, error) {
	time.Sleep(time.Duration(n) * time.Millisecond)
	return int64(n), nil
}

// NewFlaky returns a workload that fails the first failures attempts for
// each distinct argument and succeeds from then on. It exists to exercise
// the resubmit-on-error policy.
func NewFlaky(failures int) pool.Func[int, int64] {
	var mu sync.Mutex
	attempts := make(map[int]int)

	return func(n int) (int64, error) {
		mu.Lock()
		attempts[n]++
		attempt := attempts[n]
		mu.Unlock()

		if attempt <= failures {
			return 0, fmt.Errorf("flaky(%d): attempt %d failed", n, attempt)
		}
		return int64(n), nil
	}
}
