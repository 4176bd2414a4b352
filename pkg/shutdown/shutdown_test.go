package shutdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGraceful_StopsInTime(t *testing.T) {
	forced := false
	ok := Graceful(time.Second, func() {}, func() { forced = true })

	assert.True(t, ok)
	assert.False(t, forced)
}

func TestGraceful_ForcesAfterTimeout(t *testing.T) {
	release := make(chan struct{})
	forced := false

	ok := Graceful(10*time.Millisecond,
		func() { <-release },
		func() {
			forced = true
			close(release)
		},
	)

	assert.False(t, ok)
	assert.True(t, forced)
}

func TestWithSignals_ParentCancel(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithSignals(parent)
	defer cancel()

	cancelParent()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled with parent")
	}
}
