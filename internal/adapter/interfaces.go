package adapter

import (
	"context"

	"github.com/MKhiriev/go-face-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/oracle_mock.go -package=mock

// EmbeddingOracle turns a captured frame into face embeddings.
//
// An empty result with a nil error means the frame was processed and holds
// no face. Any error means the frame could not be processed at all.
type EmbeddingOracle interface {
	// DetectFaces returns every face the oracle found in frame. It must honor
	// ctx cancellation.
	DetectFaces(ctx context.Context, frame models.Frame) ([]models.FaceDetection, error)
}
