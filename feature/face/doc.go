// Package face extracts face-reading (관상) features from submitted images.
//
// The reading is the demo analysis: a quality score derived from the payload
// size and fixed feature, region and trait scores. When object storage is
// enabled, the decoded image is archived to the configured bucket; archive
// failures never fail the request.
//
// # HTTP Endpoints
//
//   - POST /v1/face/extract : extract features from a base64 image.
package face
