// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/utils"
	"github.com/MKhiriev/go-face-keeper/models"
	"github.com/gabriel-vasile/mimetype"
)

const faceEndpoint = "/embed/face"

type httpEmbeddingOracle struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// faceResponse is the body returned by POST /embed/face.
type faceResponse struct {
	FacesCount int `json:"faces_count"`
	Faces      []struct {
		FaceIndex int       `json:"face_index"`
		Dim       int       `json:"dim"`
		Embedding []float32 `json:"embedding"`
		BBox      []float64 `json:"bbox"`
		DetScore  float64   `json:"det_score"`
	} `json:"faces"`
	Model string `json:"model"`
}

// NewHTTPEmbeddingOracle constructs an [EmbeddingOracle] talking to a face
// embedding server over HTTP. The base URL comes from cfg.OracleURL; a missing
// scheme defaults to http.
//
// Returns an error if cfg.OracleURL is empty or cannot be parsed.
func NewHTTPEmbeddingOracle(cfg config.Adapter, logger *logger.Logger) (EmbeddingOracle, error) {
	baseURL, err := normalizeBaseURL(cfg.OracleURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOracleURL, err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpEmbeddingOracle{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// DetectFaces implements [EmbeddingOracle]. It posts the frame as the
// multipart "file" field to POST /embed/face.
func (o *httpEmbeddingOracle) DetectFaces(ctx context.Context, frame models.Frame) ([]models.FaceDetection, error) {
	if frame.IsEmpty() {
		return nil, ErrEmptyFrame
	}

	contentType := frame.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(frame.Data).String()
	}

	started := time.Now()
	resp, err := o.client.R().
		SetContext(ctx).
		SetMultipartField("file", "frame", contentType, bytes.NewReader(frame.Data)).
		Post(faceEndpoint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("embed face request: %w", ctxErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var fr faceResponse
	if err = json.Unmarshal(resp.Body(), &fr); err != nil {
		return nil, fmt.Errorf("%w: decode face response: %w", ErrUnexpectedResponse, err)
	}

	detections := make([]models.FaceDetection, 0, len(fr.Faces))
	for _, f := range fr.Faces {
		if len(f.Embedding) == 0 {
			return nil, fmt.Errorf("%w: face %d has no embedding", ErrUnexpectedResponse, f.FaceIndex)
		}
		if f.Dim != 0 && f.Dim != len(f.Embedding) {
			return nil, fmt.Errorf("%w: face %d reports dim %d but carries %d values",
				ErrUnexpectedResponse, f.FaceIndex, f.Dim, len(f.Embedding))
		}
		detections = append(detections, models.FaceDetection{
			Index:     f.FaceIndex,
			Embedding: f.Embedding,
			BBox:      f.BBox,
			Score:     f.DetScore,
		})
	}

	o.logger.Debug().
		Int("faces", len(detections)).
		Str("model", fr.Model).
		Dur("took", time.Since(started)).
		Msg("embedding oracle responded")

	return detections, nil
}
