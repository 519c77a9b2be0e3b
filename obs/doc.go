// SPDX-License-Identifier: MIT

// Package obs carries the observability seams shared by m2m and
// typedmatrix: a structured debug logger and a set of Prometheus
// collectors.
//
// Both types are nil-safe: a nil *Logger or nil *Metrics is a valid
// no-op instance, so instrumentation stays optional at every call site
// without branching. Containers accept them through functional options
// (m2m.WithLogger, typedmatrix.WithMetrics, ...) and default to nil.
package obs
