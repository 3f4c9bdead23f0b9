package telegram

import (
	"testing"
)

func TestOpt_ZeroValueIsUnset(t *testing.T) {
	var o Opt[bool]

	if o.IsSet() {
		t.Error("zero Opt must be unset")
	}
	if _, ok := o.Value(); ok {
		t.Error("Value() on unset Opt must report false")
	}
}

func TestOpt_SomeOfZeroIsSet(t *testing.T) {
	o := Some(false)

	if !o.IsSet() {
		t.Error("Some(false) must be set")
	}
	v, ok := o.Value()
	if !ok || v != false {
		t.Errorf("Value() = (%v, %v), want (false, true)", v, ok)
	}
}

func TestOpt_Or(t *testing.T) {
	if got := None[int]().Or(7); got != 7 {
		t.Errorf("None.Or(7) = %d, want 7", got)
	}
	if got := Some(3).Or(7); got != 3 {
		t.Errorf("Some(3).Or(7) = %d, want 3", got)
	}
}
