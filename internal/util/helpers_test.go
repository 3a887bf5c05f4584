package util

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestPtrDeref(t *testing.T) {
	p := Ptr(7)
	if *p != 7 {
		t.Fatalf("expected 7, got %d", *p)
	}
	if got := Deref(p); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	var nilPtr *int
	if got := Deref(nilPtr); got != 0 {
		t.Fatalf("expected zero value for nil, got %d", got)
	}
}
