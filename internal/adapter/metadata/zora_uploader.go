package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"coin-launch-gateway/config"
	"coin-launch-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ErrUploaderDisabled is returned when no metadata host API key is configured.
var ErrUploaderDisabled = errors.New("metadata uploader disabled: no api key configured")

const (
	apiKeyHeader  = "x-api-key"
	creatorHeader = "x-creator-address"
	maxErrorBody  = 512
)

// ZoraUploader publishes files to the metadata host's IPFS upload endpoint.
type ZoraUploader struct {
	client  *http.Client
	url     string
	apiKey  string
	limiter *rate.Limiter
	log     zerolog.Logger
}

type uploadResponse struct {
	CID  string `json:"cid"`
	Hash string `json:"Hash"`
}

// NewZoraUploader creates the uploader. Outbound calls are throttled to
// cfg.RequestsPerSecond with cfg.Burst.
func NewZoraUploader(cfg config.MetadataConfig, log zerolog.Logger) *ZoraUploader {
	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &ZoraUploader{
		client:  &http.Client{Timeout: cfg.Timeout},
		url:     cfg.UploadURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
	}
}

// Enabled reports whether uploads can be attempted.
func (u *ZoraUploader) Enabled() bool {
	return u.apiKey != ""
}

// UploadImage uploads the logo and returns its ipfs:// URI.
func (u *ZoraUploader) UploadImage(ctx context.Context, logo *domain.LogoImage, creator string) (string, error) {
	filename := logo.Filename
	if filename == "" {
		filename = "token.png"
	}
	return u.upload(ctx, filename, logo.ContentType, logo.Data, creator)
}

// UploadJSON uploads the metadata document and returns its ipfs:// URI.
func (u *ZoraUploader) UploadJSON(ctx context.Context, document []byte, creator string) (string, error) {
	return u.upload(ctx, "metadata.json", "application/json", document, creator)
}

func (u *ZoraUploader) upload(ctx context.Context, filename, contentType string, data []byte, creator string) (string, error) {
	if !u.Enabled() {
		return "", ErrUploaderDisabled
	}
	if err := u.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for upload slot: %w", err)
	}

	body, formType, err := multipartBody(filename, contentType, data)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.url, body)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", formType)
	req.Header.Set(apiKeyHeader, u.apiKey)
	req.Header.Set(creatorHeader, creator)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("uploading %s: status %d: %s", filename, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}
	cid := out.CID
	if cid == "" {
		cid = out.Hash
	}
	if cid == "" {
		return "", errors.New("upload response carried no cid")
	}

	u.log.Debug().
		Str("file", filename).
		Int("bytes", len(data)).
		Str("cid", cid).
		Msg("uploaded to metadata host")

	return domain.RemoteURIPrefix + cid, nil
}

func multipartBody(filename, contentType string, data []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating multipart part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("writing multipart part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
