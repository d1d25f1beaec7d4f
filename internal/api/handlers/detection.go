package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sonavox/voiceguard/internal/api/models"
	"github.com/sonavox/voiceguard/internal/logging"
	"github.com/sonavox/voiceguard/pkg/audio/common"
	"github.com/sonavox/voiceguard/pkg/audio/detector"
)

var supportedFormats = map[string]bool{"mp3": true, "wav": true}

// DetectionHandler serves the voice detection endpoint. In-flight
// detections are bounded by a semaphore: feature extraction is
// CPU-bound and must not be allowed to pile up without limit.
type DetectionHandler struct {
	detector  *detector.Detector
	languages map[string]bool
	ordered   []string
	sem       chan struct{}
	logger    logging.Logger
}

// NewDetectionHandler creates a detection handler.
func NewDetectionHandler(d *detector.Detector, languages []string, maxConcurrent int) *DetectionHandler {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	set := make(map[string]bool, len(languages))
	for _, l := range languages {
		set[l] = true
	}
	return &DetectionHandler{
		detector:  d,
		languages: set,
		ordered:   languages,
		sem:       make(chan struct{}, maxConcurrent),
		logger: logging.WithFields(logging.Fields{
			"component": "detection_handler",
		}),
	}
}

// Detect classifies a base64-encoded audio payload as AI-generated or
// human speech.
func (h *DetectionHandler) Detect(c *gin.Context) {
	var req models.VoiceDetectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Status:  "error",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	lang := canonicalLanguage(req.Language)
	if !h.languages[lang] {
		c.JSON(http.StatusOK, models.VoiceDetectionResponse{
			Status:  "error",
			Message: fmt.Sprintf("Unsupported language. Supported languages: %s", strings.Join(h.ordered, ", ")),
		})
		return
	}

	format := strings.ToLower(strings.TrimSpace(req.AudioFormat))
	if !supportedFormats[format] {
		c.JSON(http.StatusOK, models.VoiceDetectionResponse{
			Status:  "error",
			Message: "Unsupported audio format. Only MP3 and WAV are supported.",
		})
		return
	}

	select {
	case h.sem <- struct{}{}:
		defer func() { <-h.sem }()
	case <-c.Request.Context().Done():
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Status:  "error",
			Message: "Request cancelled while waiting for capacity",
		})
		return
	}

	result, err := h.detector.DetectBase64(req.AudioBase64, format)
	if err != nil {
		h.logger.Error(err, "Detection failed", logging.Fields{
			"request_id": c.GetString("request_id"),
			"language":   lang,
			"format":     format,
		})
		c.JSON(http.StatusOK, models.VoiceDetectionResponse{
			Status:  "error",
			Message: detectionErrorMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.VoiceDetectionResponse{
		Status:          "success",
		Language:        lang,
		Classification:  string(result.Label),
		ConfidenceScore: result.Confidence,
		Explanation:     result.Explanation,
	})
}

// canonicalLanguage title-cases a submitted language name so "tamil"
// and "TAMIL" match the configured list.
func canonicalLanguage(lang string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(lang)))
}

// detectionErrorMessage maps pipeline errors to client-facing messages.
func detectionErrorMessage(err error) string {
	if common.IsInvalidAudio(err) {
		return "Error processing audio: " + err.Error()
	}

	var audioErr *common.AudioError
	if errors.As(err, &audioErr) {
		switch audioErr.Code {
		case common.ErrCodeEncoding:
			return "Invalid audio data: " + audioErr.Message
		case common.ErrCodeOversized:
			return "Audio file too large: " + audioErr.Message
		default:
			return "Error processing audio: " + audioErr.Message
		}
	}

	return "Unexpected error processing audio"
}
