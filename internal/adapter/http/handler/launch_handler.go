package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"coin-launch-gateway/internal/adapter/http/dto"
	"coin-launch-gateway/internal/adapter/http/middleware"
	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/pkg/apperror"
	"coin-launch-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LaunchHandler handles coin launch requests.
type LaunchHandler struct {
	launcher       ports.LaunchService
	maxUploadBytes int64
	log            zerolog.Logger
}

// NewLaunchHandler creates a new LaunchHandler.
func NewLaunchHandler(launcher ports.LaunchService, maxUploadBytes int64, log zerolog.Logger) *LaunchHandler {
	return &LaunchHandler{launcher: launcher, maxUploadBytes: maxUploadBytes, log: log}
}

// Launch handles POST /api/launch.
func (h *LaunchHandler) Launch(c *gin.Context) {
	var form dto.LaunchForm
	if err := c.ShouldBind(&form); err != nil {
		if middleware.IsBodyTooLarge(err) {
			response.Error(c, apperror.ErrPayloadTooLarge())
			return
		}
		h.log.Debug().Err(err).Str("content_type", c.ContentType()).Msg("malformed launch form")
		response.Error(c, apperror.ErrMalformedForm(err))
		return
	}
	dto.SanitizeStruct(&form)

	var logo *domain.LogoImage
	if form.Logo != nil {
		var err error
		if logo, err = h.readLogo(form.Logo); err != nil {
			response.Error(c, err)
			return
		}
	}

	out, err := h.launcher.Launch(c.Request.Context(), domain.LaunchRequest{
		Name:        form.Name,
		Symbol:      form.Symbol,
		Description: form.Description,
		Supply:      form.Supply,
		Recipient:   form.Recipient,
		Logo:        logo,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if out.Skipped {
		response.OK(c, dto.SkipChainResponse{
			MetadataURI: out.MetadataURI,
			Message:     dto.MsgChainSkipped,
		})
		return
	}

	response.OK(c, dto.NewLaunchResponse(out.Result))
}

// readLogo loads the uploaded file into memory, capped at maxUploadBytes.
// The declared content type wins; octet-stream or a missing type is sniffed.
func (h *LaunchHandler) readLogo(fh *multipart.FileHeader) (*domain.LogoImage, error) {
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return nil, apperror.ErrPayloadTooLarge()
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperror.ErrMalformedForm(fmt.Errorf("opening logo: %w", err))
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxUploadBytes > 0 {
		r = io.LimitReader(f, h.maxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperror.ErrMalformedForm(fmt.Errorf("reading logo: %w", err))
	}
	if h.maxUploadBytes > 0 && int64(len(data)) > h.maxUploadBytes {
		return nil, apperror.ErrPayloadTooLarge()
	}

	contentType := strings.TrimSpace(fh.Header.Get("Content-Type"))
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return &domain.LogoImage{
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
