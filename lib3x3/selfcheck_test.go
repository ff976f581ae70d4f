package lib3x3_test

import (
	"testing"

	"github.com/gridlock-systems/go3x3/lib3x3"
)

func TestSelfCheck(t *testing.T) {
	if err := lib3x3.SelfCheck(); err != nil {
		t.Fatal(err)
	}
}
