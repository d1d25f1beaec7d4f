package loader

import (
	"bytes"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/sonavox/voiceguard/pkg/audio/common"
)

// decodeMP3 decodes an MP3 payload to mono float64 samples in [-1, 1].
// The decoder always emits 16-bit little-endian stereo PCM, upmixing
// mono sources, so the source channel count is not recoverable.
func decodeMP3(data []byte) ([]float64, int, int, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, common.NewAudioError("mp3", common.ErrCodeDecoding, "failed to decode mp3", err)
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, 0, 0, common.NewAudioError("mp3", common.ErrCodeDecoding, "failed to read mp3 stream", err)
	}

	const channels = 2
	frameCount := len(raw) / 4
	samples := make([]float64, frameCount)
	for i := range frameCount {
		left := int16(raw[i*4]) | int16(raw[i*4+1])<<8
		right := int16(raw[i*4+2]) | int16(raw[i*4+3])<<8
		samples[i] = (float64(left) + float64(right)) / 2.0 / 32768.0
	}

	return samples, decoder.SampleRate(), channels, nil
}
