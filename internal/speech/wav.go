package speech

import (
	"bytes"
	"encoding/binary"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

const bitsPerSample = 16

// EncodeWAV wraps 16-bit PCM in a canonical 44-byte RIFF/WAVE header.
func EncodeWAV(audio *entity.Audio) []byte {
	dataSize := uint32(len(audio.PCM))
	blockAlign := uint16(audio.Channels * bitsPerSample / 8)
	byteRate := uint32(audio.SampleRate) * uint32(blockAlign)

	buf := bytes.NewBuffer(make([]byte, 0, 44+len(audio.PCM)))
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16)) // PCM chunk size
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	_ = binary.Write(buf, binary.LittleEndian, uint16(audio.Channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(audio.SampleRate))
	_ = binary.Write(buf, binary.LittleEndian, byteRate)
	_ = binary.Write(buf, binary.LittleEndian, blockAlign)
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(audio.PCM)

	return buf.Bytes()
}
