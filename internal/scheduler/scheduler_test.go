package scheduler

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcilerStub struct {
	mu    sync.Mutex
	calls []time.Time
	err   error
}

func (r *reconcilerStub) ReconcilePredictions(ctx context.Context, asOf time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, asOf)
	return 1, r.err
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	_, err := NewScheduler(&reconcilerStub{}, "every tuesday", testLogger())
	assert.ErrorContains(t, err, "invalid reconcile schedule")
}

func TestRunOnce(t *testing.T) {
	stub := &reconcilerStub{err: errors.New("db down")}
	s, err := NewScheduler(stub, "@daily", testLogger())
	require.NoError(t, err)

	before := time.Now().UTC()
	s.RunOnce()
	s.RunOnce()

	require.Len(t, stub.calls, 2)
	assert.False(t, stub.calls[0].Before(before))
	assert.Equal(t, time.UTC, stub.calls[0].Location())
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(&reconcilerStub{}, "0 3 * * *", testLogger())
	require.NoError(t, err)
	s.Start()
	s.Stop()
}
