package processing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	apperrors "toolvision/internal/errors"
	"toolvision/internal/logger"
	"toolvision/internal/models"
	"toolvision/processing/capture"
)

const (
	PathAnalyze      = "/tools/analyze"
	PathAnalyzeBatch = "/tools/analyze-batch"
	PathImages       = "/tools/images/"

	msgAnalyzeFailed = "Ошибка при анализе изображения"
	msgBatchFailed   = "Ошибка при анализе архива"
	msgUnreachable   = "Не удалось связаться с сервером анализа"
	msgBadResponse   = "Сервер вернул некорректный ответ"
)

// RemoteDetector is the HTTP gateway to the detection backend.
type RemoteDetector struct {
	baseURL string
	client  *http.Client
	images  *imageCache
}

func NewRemoteDetector(baseURL string) *RemoteDetector {
	return &RemoteDetector{
		baseURL: baseURL,
		// Analyze calls run to completion: no client-side timeout.
		client: &http.Client{},
		images: newImageCache(5*time.Minute, 64),
	}
}

func (d *RemoteDetector) BaseURL() string {
	return d.baseURL
}

func (d *RemoteDetector) AnalyzeOne(ctx context.Context, file *capture.File, p models.Params) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := d.upload(ctx, PathAnalyze, file, p, msgAnalyzeFailed, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (d *RemoteDetector) AnalyzeBatch(ctx context.Context, file *capture.File, p models.Params) (*models.BatchResult, error) {
	var result models.BatchResult
	if err := d.upload(ctx, PathAnalyzeBatch, file, p, msgBatchFailed, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (d *RemoteDetector) upload(ctx context.Context, path string, file *capture.File, p models.Params, fallback string, out any) error {
	body, contentType, err := multipartBody(file)
	if err != nil {
		return apperrors.NewInternalError(fallback, err)
	}

	q := url.Values{}
	q.Set("confidence", strconv.FormatFloat(p.Confidence, 'f', -1, 64))
	q.Set("iou", strconv.FormatFloat(p.IoU, 'f', -1, 64))
	endpoint := d.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return apperrors.NewInternalError(fallback, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"endpoint":   path,
		"file":       file.Name,
		"size":       file.Size,
		"confidence": p.Confidence,
		"iou":        p.IoU,
	})
	log.Info("Sending analyze request")

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Analyze request failed")
		return apperrors.NewNetworkError(msgUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Failed to read analyze response")
		return apperrors.NewNetworkError(msgUnreachable, err)
	}

	log = log.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := errorDetail(raw, fallback)
		log.WithField("detail", detail).Warn("Backend rejected analyze request")
		return apperrors.NewBackendError(resp.StatusCode, detail)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.WithError(err).Error("Failed to decode analyze response")
		return apperrors.NewDecodeError(msgBadResponse, err)
	}

	log.Info("Analyze request completed")
	return nil
}

func multipartBody(file *capture.File) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	contentType := file.MIME
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// errorDetail pulls FastAPI's "detail": a plain string, or a list of
// validation errors of which the first message is used.
func errorDetail(body []byte, fallback string) string {
	detail := gjson.GetBytes(body, "detail")
	switch {
	case !detail.Exists():
		return fallback
	case detail.IsArray():
		if msg := detail.Get("0.msg").String(); msg != "" {
			return msg
		}
		return fallback
	case detail.Type == gjson.String:
		if s := detail.String(); s != "" {
			return s
		}
		return fallback
	default:
		return fallback
	}
}
