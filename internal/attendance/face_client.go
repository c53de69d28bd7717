package attendance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FaceMatch is the face service's best candidate for an image. The service
// answers 404 or an empty employee_id when nobody matched.
type FaceMatch struct {
	Matched    bool    `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Confidence float64 `json:"confidence"`
}

//go:generate mockgen -source=face_client.go -destination=mock/face_client_mock.go -package=mock
type FaceClient interface {
	Identify(ctx context.Context, image io.Reader, filename string) (FaceMatch, error)
}

type httpFaceClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPFaceClient posts images to {baseURL}/identify as multipart form
// field "image".
func NewHTTPFaceClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) FaceClient {
	l := zap.L().Named("attendance.face_client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.face_client")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpFaceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  l,
	}
}

func (c *httpFaceClient) Identify(ctx context.Context, image io.Reader, filename string) (FaceMatch, error) {
	if c.baseURL == "" {
		return FaceMatch{}, fmt.Errorf("face service url is not configured")
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return FaceMatch{}, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return FaceMatch{}, err
	}
	if err := form.Close(); err != nil {
		return FaceMatch{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/identify", &body)
	if err != nil {
		return FaceMatch{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return FaceMatch{}, err
	}
	defer resp.Body.Close()

	c.logger.Debug("face service responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return FaceMatch{Matched: false}, nil
	case resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return FaceMatch{}, fmt.Errorf("face service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var match FaceMatch
	if err := json.NewDecoder(resp.Body).Decode(&match); err != nil {
		return FaceMatch{}, fmt.Errorf("decode face service response: %w", err)
	}
	match.Matched = match.EmployeeID != ""
	return match, nil
}
