// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run() error {
	m.runCount.Add(1)
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(0, w1, w2, w3)
	require.NoError(t, ws.Run())

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New(0)

	assert.NoError(t, ws.Run())
	assert.Zero(t, ws.Len())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	assert.NoError(t, ws.Run())
}

func TestWorkers_Run_FailureDoesNotStopSiblings(t *testing.T) {
	boom := errors.New("boom")
	failing := &mockWorker{err: boom}
	slow := &mockWorker{}

	var finished atomic.Bool
	ws := New(0, failing, WorkerFunc(func() error {
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
		return slow.Run()
	}))

	err := ws.Run()

	require.ErrorIs(t, err, boom)
	assert.True(t, finished.Load(), "Run must wait for every worker")
	assert.Equal(t, int32(1), slow.runCount.Load())
}

func TestWorkers_Run_RespectsLimit(t *testing.T) {
	const limit = 2

	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	track := WorkerFunc(func() error {
		mu.Lock()
		running++
		peak = max(peak, running)
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()
		return nil
	})

	ws := New(limit)
	for range 6 {
		ws.Add(track)
	}

	require.NoError(t, ws.Run())
	assert.Equal(t, 6, ws.Len())
	assert.LessOrEqual(t, peak, limit)
}

func TestWorkers_Run_CalledOnce(t *testing.T) {
	w := &mockWorker{}
	ws := New(1, w)

	require.NoError(t, ws.Run())

	assert.Equal(t, int32(1), w.runCount.Load())
}

func TestWorkerFunc_Run(t *testing.T) {
	want := errors.New("from func")
	var w Worker = WorkerFunc(func() error { return want })

	assert.ErrorIs(t, w.Run(), want)
}
