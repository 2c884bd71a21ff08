package crypto

import (
	"bytes"
	"testing"
)

func incBytes(n int) []byte {
	b := make([]byte, n)
	for i := 0; i < len(b); i++ {
		b[i] = byte(i)
	}
	return b
}

func TestKeypairFromBytes(t *testing.T) {
	for _, n := range []int{SeedSize, KeypairSize} {
		if _, err := KeypairFromBytes(incBytes(n)); err != nil {
			t.Errorf("rejected valid %d-byte input: %v", n, err)
		}
	}
	for _, n := range []int{0, 1, 31, 33, 63, 65, 128} {
		if _, err := KeypairFromBytes(incBytes(n)); err == nil {
			t.Errorf("no error for %d-byte input", n)
		}
	}
}

// A 64-byte buffer whose trailing half is not the true public key is
// accepted; the seed decides.
func TestKeypairDerivesPublic(t *testing.T) {
	fromSeed, err := KeypairFromBytes(incBytes(SeedSize))
	if err != nil {
		t.Fatal(err)
	}
	fromFull, err := KeypairFromBytes(incBytes(KeypairSize))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fromFull.Public(), fromSeed.Public(); got != want {
		t.Errorf("public key mismatch: got %x, want %x", got, want)
	}
	buf := fromFull.Bytes()
	if !bytes.Equal(buf[:SeedSize], incBytes(SeedSize)) {
		t.Errorf("seed not preserved: %x", buf[:SeedSize])
	}
	pub := fromFull.Public()
	if !bytes.Equal(buf[SeedSize:], pub[:]) {
		t.Errorf("trailing half %x is not the derived public key %x",
			buf[SeedSize:], pub)
	}
}

func TestSignVerify(t *testing.T) {
	kp, err := KeypairFromBytes(incBytes(KeypairSize))
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("Hello, Solana!")
	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	pub := kp.Public()
	if !Verify(&pub, msg, &sig) {
		t.Errorf("signature of %q does not verify", msg)
	}
	if Verify(&pub, []byte("Wrong message"), &sig) {
		t.Errorf("signature verifies under a different message")
	}
	tampered := sig
	tampered[0] ^= 1
	if Verify(&pub, msg, &tampered) {
		t.Errorf("tampered signature verifies")
	}
	wrongKey := PublicKey{1}
	if Verify(&wrongKey, msg, &sig) {
		t.Errorf("signature verifies under the wrong key")
	}
}

func TestSignDeterministic(t *testing.T) {
	kp, err := KeypairFromBytes(incBytes(SeedSize))
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("some message")
	first, err := kp.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := kp.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("signing is not deterministic: %x != %x", first, second)
	}
}

func TestNewKeypair(t *testing.T) {
	first, err := NewKeypair()
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewKeypair()
	if err != nil {
		t.Fatal(err)
	}
	if first.Public() == second.Public() {
		t.Errorf("two generated keypairs share the public key %x", first.Public())
	}
}
