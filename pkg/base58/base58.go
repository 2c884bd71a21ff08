// package base58 implements the Bitcoin/Solana base58 encoding.
package base58

import (
	"fmt"
	"math/big"
)

// The alphabet excludes the visually ambiguous characters 0, O, I and l.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var decodeMap [256]int8

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = int8(i)
	}
}

var radix = big.NewInt(58)

// Encode serializes a buffer as base58. The buffer is interpreted as
// a big-endian unsigned integer; each leading zero byte becomes a
// leading '1' in the output.
func Encode(buf []byte) string {
	zeros := 0
	for zeros < len(buf) && buf[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(buf)
	mod := new(big.Int)
	// Worst case one output character per 5.8 input bits.
	out := make([]byte, 0, zeros+(len(buf)-zeros)*2)
	for num.Sign() > 0 {
		num.DivMod(num, radix, mod)
		out = append(out, alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet[0])
	}
	// Digits were produced least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode tries to deserialize a base58 string. Each leading '1' is
// restored as a leading zero byte, so that Decode(Encode(buf))
// reproduces buf exactly.
func Decode(str string) ([]byte, error) {
	zeros := 0
	for zeros < len(str) && str[zeros] == alphabet[0] {
		zeros++
	}

	num := new(big.Int)
	for i := 0; i < len(str); i++ {
		digit := decodeMap[str[i]]
		if digit < 0 {
			return nil, fmt.Errorf("base58: invalid character %q at index %d", str[i], i)
		}
		num.Mul(num, radix)
		num.Add(num, big.NewInt(int64(digit)))
	}

	digits := num.Bytes()
	buf := make([]byte, zeros+len(digits))
	copy(buf[zeros:], digits)
	return buf, nil
}
