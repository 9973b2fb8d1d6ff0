// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Frame is a single captured image handed to the embedding oracle.
type Frame struct {
	// Data holds the encoded image bytes (JPEG, PNG, WebP).
	Data []byte

	// ContentType is the MIME type of Data. Empty means "detect".
	ContentType string
}

// IsEmpty reports whether the frame carries no image data.
func (f Frame) IsEmpty() bool {
	return len(f.Data) == 0
}

// FaceDetection is one face found by the embedding oracle in a frame.
type FaceDetection struct {
	Index     int       `json:"face_index"`
	Embedding []float32 `json:"embedding"`
	BBox      []float64 `json:"bbox"` // [x1, y1, x2, y2]
	Score     float64   `json:"det_score"`
}
