package typekit

import (
	"context"
	"errors"
	"fmt"
)

// ErrExpectedString is returned by ProcessString when the awaited value is not
// a string. It is terminal: retrying the same future cannot fix it.
var ErrExpectedString = errors.New("expected result to be a string")

// Future produces a value asynchronously.
type Future func(ctx context.Context) (any, error)

type futureResult struct {
	value any
	err   error
}

// ProcessString awaits future and returns its value when it is a string. The
// future's own error and context cancellation are returned unchanged.
func ProcessString(ctx context.Context, future Future) (string, error) {
	if future == nil {
		return "", errors.New("nil future")
	}

	done := make(chan futureResult, 1)

	go func() {
		value, err := future(ctx)
		done <- futureResult{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}

		s, ok := res.value.(string)
		if !ok {
			return "", fmt.Errorf("%w, got %s", ErrExpectedString, RuntimeTypeName(res.value))
		}

		return s, nil
	}
}
