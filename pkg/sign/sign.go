// package sign implements the operations behind the solsign tool:
// signing a message with a keypair file or a raw private key,
// verifying a detached signature, and generating keypairs.
package sign

import (
	"fmt"

	"github.com/solsign/solsign-go/pkg/crypto"
	"github.com/solsign/solsign-go/pkg/format"
	"github.com/solsign/solsign-go/pkg/key"
)

// A Signer can produce detached signatures and report its public key.
// *crypto.Keypair is the production implementation.
type Signer interface {
	Sign(msg []byte) (crypto.Signature, error)
	Public() crypto.PublicKey
}

// Result carries the textual outputs of a signing operation. The
// signature uses the requested format; the public key is always
// base58, the rendering the rest of the Solana ecosystem expects.
type Result struct {
	Signature string
	PublicKey string
}

// SignMessage signs message with an arbitrary Signer and renders the
// outputs.
func SignMessage(signer Signer, message string, f format.Format) (Result, error) {
	sig, err := signer.Sign([]byte(message))
	if err != nil {
		return Result{}, fmt.Errorf("signing failed: %w", err)
	}
	pub := signer.Public()
	return Result{
		Signature: format.EncodeSignature(&sig, f),
		PublicKey: format.EncodePublicKey(&pub, format.Base58),
	}, nil
}

// SignWithKeypairFile signs message with the keypair stored at path.
func SignWithKeypairFile(message, path string, f format.Format) (Result, error) {
	kp, err := key.ReadKeypairFile(path)
	if err != nil {
		return Result{}, err
	}
	return SignMessage(kp, message, f)
}

// SignWithPrivateKey signs message with a private key given as a
// string in any supported encoding. The decoded key must be a 32-byte
// seed or a 64-byte keypair.
func SignWithPrivateKey(message, privateKey string, f format.Format) (Result, error) {
	raw, err := format.DecodePrivateKey(privateKey)
	if err != nil {
		return Result{}, err
	}
	kp, err := crypto.KeypairFromBytes(raw)
	if err != nil {
		return Result{}, err
	}
	return SignMessage(kp, message, f)
}

// VerifySignature checks a detached signature over message. The
// public key is base58; the signature is decoded under the stated
// format. A well-formed but wrong signature is (false, nil); only
// malformed inputs produce an error.
func VerifySignature(message, signature, publicKey string, f format.Format) (bool, error) {
	pub, err := format.DecodePublicKey(publicKey)
	if err != nil {
		return false, err
	}
	sig, err := format.DecodeSignature(signature, f)
	if err != nil {
		return false, err
	}
	return crypto.Verify(&pub, []byte(message), &sig), nil
}

// GenerateKeypair produces a fresh random keypair.
func GenerateKeypair() (*crypto.Keypair, error) {
	return crypto.NewKeypair()
}
