package assert

import "slices"

// Equal fails the test when expected and actual differ.
func Equal[V comparable](t TestingErrf, expected, actual V, msgAndArgs ...any) {
	t.Helper()

	if expected == actual {
		return
	}

	t.Errorf("not equal: expected `%#v` but got `%#v`%s",
		expected, actual, fromMsgAndArgs(msgAndArgs...),
	)
}

// EqualSlices fails the test when the two slices do not have the same
// elements in the same order. A nil and an empty slice are equal.
func EqualSlices[V comparable](t TestingErrf, expected, actual []V, msgAndArgs ...any) {
	t.Helper()

	if slices.Equal(expected, actual) {
		return
	}

	t.Errorf("slices differ: expected `%#v` but got `%#v`%s",
		expected, actual, fromMsgAndArgs(msgAndArgs...),
	)
}
