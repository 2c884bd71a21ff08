package format

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/solsign/solsign-go/pkg/base58"
	"github.com/solsign/solsign-go/pkg/crypto"
)

// Pre-flight validators. These classify a string as plausibly being
// key or signature material without decoding authority; callers use
// them for early feedback, while the decoders above have the final
// say.

// LooksLikeBase58 reports whether s is entirely base58 alphabet
// characters, and long enough to plausibly hold key material.
func LooksLikeBase58(s string) bool {
	if len(s) < 32 {
		return false
	}
	_, err := base58.Decode(s)
	return err == nil
}

// LooksLikeHex reports whether s is an even-length hex string of at
// least 64 digits.
func LooksLikeHex(s string) bool {
	if len(s) < 64 || len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// LooksLikeBase64 reports whether s is canonical standard base64:
// it must decode, and re-encoding the result must reproduce s
// exactly. Alternate paddings that still decode are deliberately
// classified as not base64.
func LooksLikeBase64(s string) bool {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(decoded) == s
}

// LooksLikePublicKey reports whether s has the typical shape of a
// base58 32-byte public key. The 44-character length is an
// approximation: leading zero bytes shorten the rendering.
func LooksLikePublicKey(s string) bool {
	return LooksLikeBase58(s) && len(s) == 44
}

// LooksLikeSignature reports whether s has the plausible shape of a
// 64-byte signature in the given format. The base58 bound is
// approximate for the same leading-zero reason as above.
func LooksLikeSignature(s string, f Format) bool {
	switch f {
	case Base58:
		if len(s) < 87 || len(s) > 88 {
			return false
		}
		_, err := base58.Decode(s)
		return err == nil
	case Hex:
		if len(s) != 2*crypto.SignatureSize {
			return false
		}
		_, err := hex.DecodeString(s)
		return err == nil
	case Base64:
		return len(s) == 88 && LooksLikeBase64(s)
	case JSONArray:
		b, err := DecodeJSONArray(s)
		return err == nil && len(b) == crypto.SignatureSize
	default:
		return false
	}
}
