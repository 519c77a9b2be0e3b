// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options configuring an M2M at construction.

package m2m

import "github.com/vbrankov/sparserel/obs"

// Option configures an M2M at construction time.
type Option func(*M2M)

// WithLogger attaches a debug logger; sync, batch enter/leave, and
// ClearAll are traced at debug level with the container id as a
// correlation field. Other mutations are not logged. Nil restores the default no-op logger.
func WithLogger(l *obs.Logger) Option {
	return func(m *M2M) { m.log = l }
}

// WithMetrics attaches a metrics sink for sync and mutation counters.
// Nil restores the default no-op sink.
func WithMetrics(mt *obs.Metrics) Option {
	return func(m *M2M) { m.met = mt }
}
