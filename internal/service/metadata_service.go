package service

import (
	"context"
	"errors"
	"fmt"

	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/pkg/apperror"
	"coin-launch-gateway/pkg/metrics"

	"github.com/rs/zerolog"
)

// MetadataServiceImpl assembles token metadata and publishes it, falling back
// to an inline data: URI when the metadata host is unavailable.
type MetadataServiceImpl struct {
	uploader ports.MetadataUploader
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// NewMetadataService creates a metadata service. A nil uploader always
// produces inline metadata.
func NewMetadataService(uploader ports.MetadataUploader, m *metrics.Metrics, log zerolog.Logger) *MetadataServiceImpl {
	return &MetadataServiceImpl{uploader: uploader, metrics: m, log: log}
}

// Build attaches the logo, publishes the document and returns the record
// with exactly one URI. A logo that cannot be attached is a terminal error.
func (s *MetadataServiceImpl) Build(ctx context.Context, name, symbol, description string, logo *domain.LogoImage, creator string) (*domain.MetadataRecord, error) {
	if logo == nil {
		return nil, apperror.ErrMissingImage()
	}
	if len(logo.Data) == 0 {
		return nil, apperror.ErrImageAttach(errors.New("image is empty"))
	}
	if !logo.IsImage() {
		return nil, apperror.ErrImageAttach(fmt.Errorf("content type %q is not an image", logo.ContentType))
	}

	rec := &domain.MetadataRecord{
		Name:        name,
		Symbol:      symbol,
		Description: description,
	}

	uri, err := s.publish(ctx, rec, logo, creator)
	if err == nil {
		rec.URI = uri
		return rec, nil
	}

	s.log.Warn().
		Err(err).
		Str("symbol", symbol).
		Msg("metadata upload failed, using inline metadata")

	if rec.Image == "" {
		rec.Image = domain.PlaceholderImage
	}
	inline, ierr := rec.InlineURI()
	if ierr != nil {
		return nil, apperror.InternalError(ierr)
	}
	rec.URI = inline
	s.metrics.RecordMetadataFallback()
	return rec, nil
}

// publish uploads the image, then the JSON document referencing it.
// On a failed document upload rec.Image keeps the hosted image URI.
func (s *MetadataServiceImpl) publish(ctx context.Context, rec *domain.MetadataRecord, logo *domain.LogoImage, creator string) (string, error) {
	if s.uploader == nil {
		return "", errors.New("no metadata uploader configured")
	}

	imageURI, err := s.uploader.UploadImage(ctx, logo, creator)
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}
	rec.Image = imageURI

	doc, err := rec.Document()
	if err != nil {
		return "", err
	}
	uri, err := s.uploader.UploadJSON(ctx, doc, creator)
	if err != nil {
		return "", fmt.Errorf("uploading metadata document: %w", err)
	}

	s.log.Info().
		Str("symbol", rec.Symbol).
		Str("image", imageURI).
		Str("uri", uri).
		Msg("metadata uploaded")

	return uri, nil
}
