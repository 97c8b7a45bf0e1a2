package statistic

import (
	"crmdigest/internal/statistic/interfaces"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompression packs cached CRM payloads and the run-state file.
type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	once    sync.Once
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	out, err := z.decoder.DecodeAll(val, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}

// Close releases the encoder and decoder. Calls after the first are no-ops.
func (z *ZstdCompression) Close() {
	z.once.Do(func() {
		_ = z.encoder.Close()
		z.decoder.Close()
	})
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}
