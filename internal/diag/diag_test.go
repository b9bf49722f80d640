package diag

import "testing"

func TestCatchRecoversFatalf(t *testing.T) {
	err := Catch(func() {
		Fatalf(7, "bad token: %s", "@")
	})
	if err == nil {
		t.Fatal("expected a non-nil *Error")
	}
	if err.Line != 7 {
		t.Errorf("Line = %d, want 7", err.Line)
	}
	want := "error in line 7: bad token: @"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCatchReturnsNilOnSuccess(t *testing.T) {
	err := Catch(func() {})
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestCatchRepropagatesOtherPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected the non-diagnostic panic to propagate")
		}
	}()
	Catch(func() {
		panic("not a diagnostic")
	})
}
