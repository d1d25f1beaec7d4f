package loader

import (
	"bytes"

	"github.com/go-audio/wav"

	"github.com/sonavox/voiceguard/pkg/audio/common"
)

// decodeWAV decodes a WAV payload to mono float64 samples in [-1, 1].
func decodeWAV(data []byte) ([]float64, int, int, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, 0, 0, common.NewAudioError("wav", common.ErrCodeInvalidFormat, "not a valid wav file", nil)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, common.NewAudioError("wav", common.ErrCodeDecoding, "failed to decode wav", err)
	}
	if buf == nil || buf.Format == nil || len(buf.Data) == 0 {
		return nil, 0, 0, common.NewAudioError("wav", common.ErrCodeDecoding, "wav file contains no samples", nil)
	}

	bitDepth := int(decoder.BitDepth)
	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	interleaved := make([]float64, len(buf.Data))
	for i, s := range buf.Data {
		interleaved[i] = float64(s) / scale
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}

	return downmixMono(interleaved, channels), buf.Format.SampleRate, channels, nil
}
