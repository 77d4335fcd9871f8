package assert

// NilErr stops the test when err is not nil.
func NilErr(t TestingFatalf, err error, msgAndArgs ...any) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("expected no error but got `%s`%s", err, fromMsgAndArgs(msgAndArgs...))
}

// NotNilErr stops the test when err is nil.
func NotNilErr(t TestingFatalf, err error, msgAndArgs ...any) {
	t.Helper()

	if err != nil {
		return
	}

	t.Fatalf("expected an error but got nil%s", fromMsgAndArgs(msgAndArgs...))
}
