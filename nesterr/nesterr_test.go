package nesterr

import (
	"errors"
	"testing"
)

func TestWrapPreservesKind(t *testing.T) {
	err := Wrap(BooleanOpFailed, "union of %d paths", 3)
	if !errors.Is(err, BooleanOpFailed) {
		t.Fatalf("errors.Is(%v, BooleanOpFailed) = false", err)
	}
	if errors.Is(err, NfpSanity) {
		t.Fatalf("errors.Is(%v, NfpSanity) = true, want false", err)
	}
}
