package format

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/solsign/solsign-go/pkg/base58"
	"github.com/solsign/solsign-go/pkg/crypto"
	"github.com/solsign/solsign-go/pkg/log"
)

var (
	// ErrInvalidKeyFormat means no candidate encoding matched a
	// private-key string.
	ErrInvalidKeyFormat = errors.New("private key matches no supported format")
	// ErrInvalidSignatureFormat means a signature string failed to
	// decode under its stated format, or decoded to the wrong size.
	ErrInvalidSignatureFormat = errors.New("invalid signature encoding")
	// ErrInvalidPublicKey means a public-key string is not valid
	// base58, or decoded to the wrong size.
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// A keyDecoder is one candidate interpretation of a private-key
// string.
type keyDecoder struct {
	name   string
	decode func(string) ([]byte, error)
}

// Candidate interpretations in precedence order. The first decoder
// that parses wins; a string that is, say, both valid base58 and
// valid hex is taken as base58.
var keyDecoders = []keyDecoder{
	{"base58", base58.Decode},
	{"hex", hex.DecodeString},
	{"base64", base64.StdEncoding.DecodeString},
	{"JSON array", DecodeJSONArray},
}

// DecodePrivateKey resolves a private-key string to raw bytes, trying
// base58, hex, base64 and JSON byte array in that order. Individual
// candidate failures are dropped; if nothing matches the combined
// failure is ErrInvalidKeyFormat. Byte-length constraints are the
// caller's concern.
func DecodePrivateKey(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidKeyFormat)
	}
	for _, d := range keyDecoders {
		b, err := d.decode(s)
		if err != nil {
			log.Debug("private key is not %s: %v\n", d.name, err)
			continue
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: tried base58, hex, base64 and JSON array", ErrInvalidKeyFormat)
}

// DecodeSignature decodes a signature string under an explicitly
// stated format. Unlike private keys, signatures are never
// format-sniffed.
func DecodeSignature(s string, f Format) (crypto.Signature, error) {
	var sig crypto.Signature
	var raw []byte
	var err error
	switch f {
	case Base58:
		raw, err = base58.Decode(s)
	case Hex:
		raw, err = hex.DecodeString(s)
	case Base64:
		raw, err = base64.StdEncoding.DecodeString(s)
	case JSONArray:
		raw, err = DecodeJSONArray(s)
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return sig, fmt.Errorf("%w: %v", ErrInvalidSignatureFormat, err)
	}
	if len(raw) != crypto.SignatureSize {
		return sig, fmt.Errorf("%w: got %d bytes, expected %d",
			ErrInvalidSignatureFormat, len(raw), crypto.SignatureSize)
	}
	copy(sig[:], raw)
	return sig, nil
}

// DecodePublicKey decodes a base58 public-key string.
func DecodePublicKey(s string) (crypto.PublicKey, error) {
	var pub crypto.PublicKey
	raw, err := base58.Decode(s)
	if err != nil {
		return pub, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(raw) != crypto.PublicKeySize {
		return pub, fmt.Errorf("%w: got %d bytes, expected %d",
			ErrInvalidPublicKey, len(raw), crypto.PublicKeySize)
	}
	copy(pub[:], raw)
	return pub, nil
}

// EncodeSignature renders a signature in the given format.
func EncodeSignature(sig *crypto.Signature, f Format) string {
	return Encode(sig[:], f)
}

// EncodePublicKey renders a public key in the given format.
func EncodePublicKey(pub *crypto.PublicKey, f Format) string {
	return Encode(pub[:], f)
}
