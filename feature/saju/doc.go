// Package saju computes four-pillars (사주) charts.
//
// The computation is the demo analysis: a fixed chart with a strength score
// derived from the element balance, yongshin candidates chosen by strength,
// and a luck timeline anchored at the birth year. Only the birth timestamp
// influences the output; unparseable timestamps fall back to 1990.
//
// # HTTP Endpoints
//
//   - POST /v1/saju/compute : compute a chart from a birth specification.
package saju
