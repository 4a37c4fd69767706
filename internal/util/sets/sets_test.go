package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AddNew(t *testing.T) {
	s := New("swift")
	assert.False(t, s.AddNew("swift"))
	assert.True(t, s.AddNew("dart"))
	assert.True(t, s.Has("dart"))
}

func TestDedupe_PreservesFirstSeenOrder(t *testing.T) {
	got := Dedupe([]string{"swift", "tdd", "swift", "architecture", "tdd"})
	assert.Equal(t, []string{"swift", "tdd", "architecture"}, got)
	assert.Empty(t, Dedupe[string](nil))
}
