package testutil

import "errors"

// ErrNotConfigured is returned by mocks whose behaviour was not set by the test.
var ErrNotConfigured = errors.New("mock behaviour not configured")
