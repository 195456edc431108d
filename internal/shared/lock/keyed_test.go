package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyed_SerializesSameKey(t *testing.T) {
	k := NewKeyed()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("cr1")
			defer k.Unlock("cr1")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyed_DifferentKeysDoNotBlock(t *testing.T) {
	k := NewKeyed()

	k.Lock("cr1")
	done := make(chan struct{})
	go func() {
		k.Lock("cr2")
		k.Unlock("cr2")
		close(done)
	}()
	<-done
	k.Unlock("cr1")
}

func TestKeyed_EntryDroppedWhenUnused(t *testing.T) {
	k := NewKeyed()

	k.Lock("cr1")
	k.Unlock("cr1")

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks)
}
