package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sonavox/voiceguard/internal/api/models"
	"github.com/sonavox/voiceguard/pkg/audio/detector"
)

// DetectionHandlerTestSuite contains all detection endpoint tests
type DetectionHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *DetectionHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	handler := NewDetectionHandler(detector.NewDefault(),
		[]string{"Tamil", "English", "Hindi", "Malayalam", "Telugu"}, 2)

	s.router = gin.New()
	s.router.POST("/api/voice-detection", handler.Detect)
}

// wavBase64 synthesizes a sine tone WAV payload and base64-encodes it.
func wavBase64(freq float64, sampleRate int, duration float64) string {
	n := int(duration * float64(sampleRate))

	var pcm bytes.Buffer
	for i := range n {
		v := 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		binary.Write(&pcm, binary.LittleEndian, int16(v*32767))
	}

	dataSize := pcm.Len()
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(pcm.Bytes())

	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func (s *DetectionHandlerTestSuite) post(body any) (*httptest.ResponseRecorder, models.VoiceDetectionResponse) {
	payload, err := json.Marshal(body)
	require.NoError(s.T(), err)

	req := httptest.NewRequest(http.MethodPost, "/api/voice-detection", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp models.VoiceDetectionResponse
	if w.Code == http.StatusOK {
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (s *DetectionHandlerTestSuite) TestSuccessfulDetection() {
	w, resp := s.post(models.VoiceDetectionRequest{
		Language:    "English",
		AudioFormat: "wav",
		AudioBase64: wavBase64(220, 16000, 2.0),
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("success", resp.Status)
	s.Equal("English", resp.Language)
	s.Contains([]string{"AI_GENERATED", "HUMAN"}, resp.Classification)
	s.GreaterOrEqual(resp.ConfidenceScore, 0.55)
	s.LessOrEqual(resp.ConfidenceScore, 0.95)
	s.NotEmpty(resp.Explanation)
}

func (s *DetectionHandlerTestSuite) TestLanguageCaseInsensitive() {
	w, resp := s.post(models.VoiceDetectionRequest{
		Language:    "tAmIl",
		AudioFormat: "wav",
		AudioBase64: wavBase64(220, 16000, 1.0),
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("success", resp.Status)
	s.Equal("Tamil", resp.Language)
}

func (s *DetectionHandlerTestSuite) TestUnsupportedLanguage() {
	w, resp := s.post(models.VoiceDetectionRequest{
		Language:    "Klingon",
		AudioFormat: "wav",
		AudioBase64: wavBase64(220, 16000, 1.0),
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("error", resp.Status)
	s.Contains(resp.Message, "Unsupported language")
}

func (s *DetectionHandlerTestSuite) TestUnsupportedFormat() {
	w, resp := s.post(models.VoiceDetectionRequest{
		Language:    "English",
		AudioFormat: "ogg",
		AudioBase64: wavBase64(220, 16000, 1.0),
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("error", resp.Status)
	s.Contains(resp.Message, "Only MP3 and WAV are supported")
}

func (s *DetectionHandlerTestSuite) TestMissingFields() {
	w, _ := s.post(map[string]string{"language": "English"})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *DetectionHandlerTestSuite) TestInvalidBase64() {
	w, resp := s.post(models.VoiceDetectionRequest{
		Language:    "English",
		AudioFormat: "wav",
		AudioBase64: "!!!not base64!!!",
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("error", resp.Status)
	s.Contains(resp.Message, "Invalid audio data")
}

func (s *DetectionHandlerTestSuite) TestSilentAudioRejected() {
	n := 16000
	samples := bytes.Repeat([]byte{0, 0}, n)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint32(16000))
	binary.Write(&buf, binary.LittleEndian, uint32(32000))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)

	w, resp := s.post(models.VoiceDetectionRequest{
		Language:    "English",
		AudioFormat: "wav",
		AudioBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("error", resp.Status)
	s.Contains(resp.Message, "Error processing audio")
}

func TestDetectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DetectionHandlerTestSuite))
}

func TestCanonicalLanguage(t *testing.T) {
	cases := map[string]string{
		"tamil":     "Tamil",
		"ENGLISH":   "English",
		" hindi ":   "Hindi",
		"Malayalam": "Malayalam",
		"tElUgU":    "Telugu",
	}
	for in, want := range cases {
		if got := canonicalLanguage(in); got != want {
			t.Errorf("canonicalLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}
