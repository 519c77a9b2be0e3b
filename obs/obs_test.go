// SPDX-License-Identifier: MIT
// Package obs_test: nil-safety and collector wiring anchors.

package obs_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbrankov/sparserel/obs"
)

func TestNilLoggerAndMetricsAreNoOps(t *testing.T) {
	var l *obs.Logger
	var m *obs.Metrics

	// Must not panic.
	l.Debug("ignored", "k", 1)
	assert.Nil(t, l.With("k", 1))
	m.ObserveSync(time.Millisecond)
	m.IncMutation()
	m.ObserveEraseFanout(3)
}

func TestLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	l := obs.NewLogger(&buf).With("component", "test")
	l.Debug("hello", "n", 42)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "component=test")
}

func TestMetricsRegisterAndCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := obs.NewMetrics(reg, "sparserel")

	m.IncMutation()
	m.IncMutation()
	assert.EqualValues(t, 2, testutil.ToFloat64(m.MutationsTotal))

	m.ObserveSync(5 * time.Millisecond)
	m.ObserveEraseFanout(7)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}
