package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGormSink_AppendNeverPanics(t *testing.T) {
	// A nil DB makes the insert goroutine panic; recover() must contain it
	// and the caller must return immediately either way.
	s := NewGormSink(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Append("advanced_search", map[string]any{"criteria_count": 2})
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Append blocked the caller")
	}
	// Let the background goroutine hit its panic path and recover.
	time.Sleep(50 * time.Millisecond)
}

func TestGormSink_UnmarshalableDataIsDropped(t *testing.T) {
	s := NewGormSink(nil)
	assert.NotPanics(t, func() {
		s.Append("radius_search", map[string]any{"bad": make(chan int)})
	})
}

func TestNoopSink(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopSink{}.Append("anything", nil)
	})
}
