package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/utils"
	"github.com/MKhiriev/go-face-keeper/models"
)

const (
	enrollPath = "/api/face/enroll"
	verifyPath = "/api/face/verify"
	statusPath = "/api/face/status"
)

type httpFaceAPI struct {
	client *utils.HTTPClient
}

// NewHTTPFaceAPI returns a [FaceAPI] calling the server at cfg.ServerURL
// with cfg.Token as the bearer token.
func NewHTTPFaceAPI(cfg config.ClientConfig) FaceAPI {
	client := utils.NewHTTPClient()
	client.SetBaseURL(strings.TrimRight(cfg.ServerURL, "/"))
	client.SetAuthToken(cfg.Token)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &httpFaceAPI{client: client}
}

func (a *httpFaceAPI) Enroll(ctx context.Context, frame models.Frame) (models.VerificationResult, error) {
	return a.postFrame(ctx, enrollPath, frame)
}

func (a *httpFaceAPI) Verify(ctx context.Context, frame models.Frame) (models.VerificationResult, error) {
	return a.postFrame(ctx, verifyPath, frame)
}

// postFrame sends the frame and decodes the tagged result. Every result
// kind comes back as JSON whatever the status code, so only non-JSON replies
// are errors.
func (a *httpFaceAPI) postFrame(ctx context.Context, path string, frame models.Frame) (models.VerificationResult, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FaceRequest{
			Frame:       base64.StdEncoding.EncodeToString(frame.Data),
			ContentType: frame.ContentType,
		}).
		Post(path)
	if err != nil {
		return models.VerificationResult{}, fmt.Errorf("POST %s: %w", path, err)
	}

	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
		return models.VerificationResult{}, fmt.Errorf("%w: %s: %s", ErrUnexpectedReply, resp.Status(), strings.TrimSpace(resp.String()))
	}

	var result models.VerificationResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.VerificationResult{}, fmt.Errorf("%w: %w", ErrUnexpectedReply, err)
	}
	return result, nil
}

func (a *httpFaceAPI) Status(ctx context.Context) (models.AccountStatus, error) {
	var status models.AccountStatus

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get(statusPath)
	if err != nil {
		return models.AccountStatus{}, fmt.Errorf("GET %s: %w", statusPath, err)
	}
	if resp.IsError() {
		return models.AccountStatus{}, fmt.Errorf("%w: %s: %s", ErrUnexpectedReply, resp.Status(), strings.TrimSpace(resp.String()))
	}
	return status, nil
}
