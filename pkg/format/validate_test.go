package format

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/solsign/solsign-go/pkg/base58"
	"github.com/solsign/solsign-go/pkg/crypto"
)

func TestLooksLikeBase58(t *testing.T) {
	for _, table := range []struct {
		in  string
		out bool
	}{
		{"", false},
		{"z", false},
		{strings.Repeat("1", 31), false},
		{strings.Repeat("1", 32), true},
		{strings.Repeat("2", 44), true},
		{strings.Repeat("2", 31) + "0", false},
		{strings.Repeat("2", 31) + "l", false},
		{base58.Encode(incBytes(32)), true},
	} {
		if got := LooksLikeBase58(table.in); got != table.out {
			t.Errorf("input %q: got %v, want %v", table.in, got, table.out)
		}
	}
}

func TestLooksLikeHex(t *testing.T) {
	long := hex.EncodeToString(incBytes(32))
	for _, table := range []struct {
		in  string
		out bool
	}{
		{"", false},
		{"abcd", false},
		{long[:63], false},
		{long, true},
		{strings.ToUpper(long), true},
		{long + "00", true},
		{long[:62] + "zz", false},
	} {
		if got := LooksLikeHex(table.in); got != table.out {
			t.Errorf("input %q: got %v, want %v", table.in, got, table.out)
		}
	}
}

func TestLooksLikeBase64(t *testing.T) {
	for _, table := range []struct {
		in  string
		out bool
	}{
		{"", true},
		{"AAEC", true},
		{"AA==", true},
		{"AAECA", false},
		{"====", false},
		// Decodes under StdEncoding, but is not the canonical
		// encoding of its own decoding.
		{"AB==", false},
		{base64.StdEncoding.EncodeToString(incBytes(64)), true},
	} {
		if got := LooksLikeBase64(table.in); got != table.out {
			t.Errorf("input %q: got %v, want %v", table.in, got, table.out)
		}
	}
}

func TestLooksLikePublicKey(t *testing.T) {
	for _, table := range []struct {
		in  string
		out bool
	}{
		{"", false},
		{strings.Repeat("2", 43), false},
		{strings.Repeat("2", 44), true},
		{strings.Repeat("2", 45), false},
		{strings.Repeat("2", 43) + "0", false},
	} {
		if got := LooksLikePublicKey(table.in); got != table.out {
			t.Errorf("input %q: got %v, want %v", table.in, got, table.out)
		}
	}
}

func TestLooksLikeSignature(t *testing.T) {
	hexSig := hex.EncodeToString(incBytes(crypto.SignatureSize))
	b64Sig := base64.StdEncoding.EncodeToString(incBytes(crypto.SignatureSize))
	for _, table := range []struct {
		in  string
		f   Format
		out bool
	}{
		{strings.Repeat("2", 87), Base58, true},
		{strings.Repeat("2", 88), Base58, true},
		{strings.Repeat("2", 86), Base58, false},
		{strings.Repeat("2", 89), Base58, false},
		{strings.Repeat("2", 87) + "0", Base58, false},
		{hexSig, Hex, true},
		{hexSig[:126], Hex, false},
		{hexSig + "00", Hex, false},
		{b64Sig, Base64, true},
		{b64Sig[:84], Base64, false},
		{jsonArray(incBytes(64)), JSONArray, true},
		{jsonArray(incBytes(63)), JSONArray, false},
		{"[256]", JSONArray, false},
	} {
		if got := LooksLikeSignature(table.in, table.f); got != table.out {
			t.Errorf("input %q as %v: got %v, want %v", table.in, table.f, got, table.out)
		}
	}
}
