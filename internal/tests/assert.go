package tests

import (
	"reflect"
	"strings"
	"testing"
)

func AssertEqual(t *testing.T, e, g interface{}) {
	t.Helper()
	if !reflect.DeepEqual(e, g) {
		t.Errorf("Expected [%+v], got [%+v]", e, g)
	}
}

func AssertNotNil(t *testing.T, v interface{}) {
	t.Helper()
	if isNil(v) {
		t.Fatalf("[%v] was expected to be non-nil", v)
	}
}

func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Error occurred [%v]", err)
	}
}

func AssertErrorContains(t *testing.T, err error, s string) {
	t.Helper()
	if err == nil {
		t.Error("err is nil")
		return
	}
	if !strings.Contains(err.Error(), s) {
		t.Errorf("%q is not included in error %q", s, err.Error())
	}
}

func AssertContains(t *testing.T, s, substr string, shouldContain bool) {
	t.Helper()
	s = strings.ToLower(s)
	isContain := strings.Contains(s, substr)
	if shouldContain && !isContain {
		t.Errorf("%q is not included in %q", substr, s)
	} else if !shouldContain && isContain {
		t.Errorf("%q is included in %q", substr, s)
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	kind := rv.Kind()
	return kind >= reflect.Chan && kind <= reflect.Slice && rv.IsNil()
}
