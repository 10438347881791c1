// Package test contains helper functions to remove common boilerplate from
// test functions.
package test

import "testing"

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests the value of v for a success condition. A success is
// true for bool values and nil for error values.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}
	case error:
		t.Errorf("expected success (error: %v)", v)
		return false
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}
	return true
}

// ExpectFailure tests the value of v for a failure condition. A failure is
// false for bool values and a non-nil value for error values.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}
	case error:
	case nil:
		t.Errorf("expected failure (nil)")
		return false
	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}
	return true
}
