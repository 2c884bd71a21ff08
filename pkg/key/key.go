// package key reads and writes Solana-compatible keypair files: a
// JSON array of exactly 64 integers in [0,255], bytes 0-31 the
// private key material and bytes 32-63 the public key. This layout is
// a compatibility contract with the wider Solana tooling (e.g.
// solana-keygen) and is preserved bit-for-bit.
package key

import (
	"errors"
	"fmt"
	"os"

	"github.com/dchest/safefile"

	"github.com/solsign/solsign-go/pkg/crypto"
	"github.com/solsign/solsign-go/pkg/format"
)

// ErrInvalidKeypairFile means the contents are not a JSON array of
// exactly 64 bytes.
var ErrInvalidKeypairFile = errors.New("invalid keypair file")

// ParseKeypair parses keypair-file contents.
func ParseKeypair(contents string) (*crypto.Keypair, error) {
	raw, err := format.DecodeJSONArray(contents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeypairFile, err)
	}
	if len(raw) != crypto.KeypairSize {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d",
			ErrInvalidKeypairFile, len(raw), crypto.KeypairSize)
	}
	return crypto.KeypairFromBytes(raw)
}

// ReadKeypairFile reads and parses a keypair file.
func ReadKeypairFile(fileName string) (*crypto.Keypair, error) {
	contents, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	kp, err := ParseKeypair(string(contents))
	if err != nil {
		return nil, fmt.Errorf("parsing keypair file %q failed: %w", fileName, err)
	}
	return kp, nil
}

// WriteKeypairFile stores a keypair in the canonical file layout,
// atomically replacing any previous file.
func WriteKeypairFile(fileName string, kp *crypto.Keypair) error {
	buf := kp.Bytes()
	f, err := safefile.Create(fileName, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write([]byte(format.Encode(buf[:], format.JSONArray))); err != nil {
		return err
	}
	// Atomically replace old file with new.
	return f.Commit()
}
