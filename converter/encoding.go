package converter

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding selects how the raw input bytes are turned into text.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	// EncodingLatin1 maps every byte to one character so fields that are not
	// valid UTF-8 survive the round trip.
	EncodingLatin1
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingLatin1:
		return "latin1"
	default:
		return "unknown"
	}
}

// Decode converts raw input into a UTF-8 string.
func (e Encoding) Decode(raw []byte) (string, error) {
	switch e {
	case EncodingUTF8:
		return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
	case EncodingLatin1:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decode latin1 input: %w", err)
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("unsupported input encoding %d", int(e))
	}
}
