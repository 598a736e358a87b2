// Package report composes reading reports from saju and face results.
//
// The composed report carries a summary, per-topic sections, recommended
// actions and a disclaimer. When a database is configured, each composed
// report is persisted and retrievable by record id; without one the service
// still composes, it just stores nothing.
//
// # HTTP Endpoints
//
//   - POST /v1/report/compose : compose a report (X-Report-ID header when stored).
//   - GET  /v1/report/{id}    : fetch a stored report.
package report
