// package crypto provides the lowest-level crypto types and primitives
// used by solsign: Ed25519 keypairs, detached signatures and
// verification.
package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

const (
	SignatureSize = ed25519.SignatureSize
	PublicKeySize = ed25519.PublicKeySize
	// KeypairSize is the Solana 64-byte layout: 32-byte seed
	// followed by the 32-byte public key.
	KeypairSize = ed25519.PrivateKeySize
	SeedSize    = ed25519.SeedSize
)

type (
	Signature [SignatureSize]byte
	PublicKey [PublicKeySize]byte
)

// Keypair holds a complete Ed25519 private key. The public half is
// always the one derived from the seed; a 64-byte input whose trailing
// 32 bytes disagree is accepted, and the derived key wins.
type Keypair struct {
	private ed25519.PrivateKey
}

// KeypairFromBytes constructs a keypair from either a 32-byte seed or
// a 64-byte seed plus public key. Any other length is rejected.
func KeypairFromBytes(b []byte) (*Keypair, error) {
	switch len(b) {
	case SeedSize, KeypairSize:
		return &Keypair{private: ed25519.NewKeyFromSeed(b[:SeedSize])}, nil
	default:
		return nil, fmt.Errorf("invalid private key size %d, expected %d or %d",
			len(b), SeedSize, KeypairSize)
	}
}

// NewKeypair generates a fresh keypair from crypto/rand.
func NewKeypair() (*Keypair, error) {
	_, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Keypair{private: private}, nil
}

// Public returns the keypair's public key.
func (kp *Keypair) Public() (pub PublicKey) {
	copy(pub[:], kp.private.Public().(ed25519.PublicKey))
	return
}

// Bytes returns the canonical 64-byte seed||public layout.
func (kp *Keypair) Bytes() [KeypairSize]byte {
	var buf [KeypairSize]byte
	copy(buf[:], kp.private)
	return buf
}

// Sign produces a deterministic detached signature over msg.
func (kp *Keypair) Sign(msg []byte) (Signature, error) {
	var sig Signature
	copy(sig[:], ed25519.Sign(kp.private, msg))
	return sig, nil
}

// Verify returns true iff sig is a valid signature of msg under pub.
// A well-formed but wrong signature is a false result, not an error.
func Verify(pub *PublicKey, msg []byte, sig *Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig[:])
}
