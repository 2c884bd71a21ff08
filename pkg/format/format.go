// package format handles the textual encodings used for keys and
// signatures: base58, hex, base64 and the Solana JSON byte-array
// literal. It provides the authoritative decoders, the corresponding
// encoders, and cheap pre-flight validators for callers that want to
// classify an input before committing to a parse.
package format

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/solsign/solsign-go/pkg/base58"
)

type Format int

const (
	Base58 Format = iota
	Hex
	Base64
	JSONArray
)

// ParseFormat maps a format name, as given on a command line, to a
// Format value.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "base58":
		return Base58, nil
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	case "json":
		return JSONArray, nil
	default:
		return 0, fmt.Errorf("unknown format %q, must be one of 'base58', 'hex', 'base64', 'json'", name)
	}
}

func (f Format) String() string {
	switch f {
	case Base58:
		return "base58"
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	case JSONArray:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Encode renders raw bytes in the given format.
func Encode(buf []byte, f Format) string {
	switch f {
	case Hex:
		return hex.EncodeToString(buf)
	case Base64:
		return base64.StdEncoding.EncodeToString(buf)
	case JSONArray:
		return encodeJSONArray(buf)
	default:
		return base58.Encode(buf)
	}
}

func encodeJSONArray(buf []byte) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range buf {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(']')
	return b.String()
}

// DecodeJSONArray parses a JSON array of integers in [0,255] into raw
// bytes. Any other JSON value, and any element outside byte range, is
// an error. Length is not constrained here.
func DecodeJSONArray(s string) ([]byte, error) {
	if !strings.HasPrefix(strings.TrimSpace(s), "[") {
		return nil, fmt.Errorf("not a JSON array")
	}
	var vals []int
	if err := json.Unmarshal([]byte(s), &vals); err != nil {
		return nil, err
	}
	buf := make([]byte, len(vals))
	for i, v := range vals {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("element %d out of byte range: %d", i, v)
		}
		buf[i] = byte(v)
	}
	return buf, nil
}
