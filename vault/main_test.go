package vault

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// The production work factor makes every unlock take a noticeable
	// fraction of a second; tests that need it set it explicitly.
	kdfIterations = 1000
	os.Exit(m.Run())
}

func testKey(fill byte) Key {
	var k Key
	for i := range k {
		k[i] = fill
	}
	return k
}
