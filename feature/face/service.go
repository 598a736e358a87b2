package face

import (
	"bytes"
	"context"
	"encoding/base64"

	"github.com/oaseass/oaseass-saju/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// qualityThreshold is the payload size above which an image is considered
// high quality.
const qualityThreshold = 1000

// Service extracts face-reading features from submitted images.
type Service struct {
	store  storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new face service. store may be nil, in which case no
// images are archived.
func NewService(store storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{store: store, bucket: bucket, logger: logger}
}

// Extract scores the submitted image and returns the fixed demo reading.
// When an archive store is configured the decoded image is uploaded under
// faces/<uuid>; archive failures are logged and never fail the extraction.
func (s *Service) Extract(ctx context.Context, in Input) Result {
	quality := 0.6
	if len(in.ImageBase64) > qualityThreshold {
		quality = 0.95
	}

	if s.store != nil {
		s.archive(ctx, in.ImageBase64)
	}

	return Result{
		Quality: quality,
		Features: map[string]float64{
			"brow_len": 0.62, "nose_len": 0.58, "jaw_angle": 0.73,
		},
		Regions: map[string]float64{
			"forehead": 0.6, "brow": 0.7, "eyes": 0.62, "nose": 0.74,
			"philtrum": 0.55, "mouth": 0.68, "jaw": 0.71, "cheek": 0.63, "ear": 0.59,
		},
		Traits: map[string]float64{
			"stability": 0.72, "determination": 0.69, "sociality": 0.61,
			"resilience": 0.66, "clarity": 0.58,
		},
	}
}

// archive uploads the decoded image to the configured bucket.
func (s *Service) archive(ctx context.Context, imageBase64 string) {
	data, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		s.logger.Warn("Skipping face archive, image is not valid base64", zap.Error(err))
		return
	}

	key := "faces/" + uuid.NewString()
	_, err = s.store.PutObject(ctx, s.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		s.logger.Warn("Face archive upload failed",
			zap.String("key", key),
			zap.Error(err))
		return
	}

	s.logger.Info("Archived face image", zap.String("key", key), zap.Int("bytes", len(data)))
}
