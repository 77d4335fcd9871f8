// Package assert has small generic helpers for tests. They report through
// the testing type passed to them, so failures point at the caller.
package assert

import "fmt"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . TestingErrf

// TestingErrf reports non-fatal errors. testing.T and testing.B satisfy it.
type TestingErrf interface {
	Errorf(format string, args ...any)
	Helper()
}

//counterfeiter:generate . TestingFatalf

// TestingFatalf reports fatal errors. testing.T and testing.B satisfy it.
type TestingFatalf interface {
	Fatalf(format string, args ...any)
	Helper()
}

// fromMsgAndArgs formats the optional message of a helper. The first value
// must be a format string.
func fromMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	fmtStr, ok := msgAndArgs[0].(string)
	if !ok {
		panic("the first of msgAndArgs must be a format string")
	}

	return fmt.Sprintf(" ("+fmtStr+")", msgAndArgs[1:]...)
}
