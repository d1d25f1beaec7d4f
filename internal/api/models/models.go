package models

// VoiceDetectionRequest is the request body of POST /api/voice-detection.
type VoiceDetectionRequest struct {
	Language    string `json:"language" binding:"required"`
	AudioFormat string `json:"audioFormat" binding:"required"`
	AudioBase64 string `json:"audioBase64" binding:"required"`
}

// VoiceDetectionResponse is the response envelope of the detection
// endpoint. On success Status is "success" and the classification
// fields are set; on failure Status is "error" and Message explains.
type VoiceDetectionResponse struct {
	Status          string  `json:"status"`
	Language        string  `json:"language,omitempty"`
	Classification  string  `json:"classification,omitempty"`
	ConfidenceScore float64 `json:"confidenceScore,omitempty"`
	Explanation     string  `json:"explanation,omitempty"`
	Message         string  `json:"message,omitempty"`
}

// ErrorResponse is the envelope for auth and transport-level errors.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// InfoResponse describes the service on GET /.
type InfoResponse struct {
	Message            string   `json:"message"`
	Version            string   `json:"version"`
	SupportedLanguages []string `json:"supported_languages"`
}
