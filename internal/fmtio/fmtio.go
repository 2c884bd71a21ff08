// package fmtio provides basic utilities to read tool input
package fmtio

import (
	"bytes"
	"io"
	"os"
)

// StringFromStdin reads all of stdin, parsing it as a string without
// leading and trailing white space
func StringFromStdin() (string, error) {
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(b)), nil
}

// StringFromFile reads a whole file, trimming surrounding white space
func StringFromFile(fileName string) (string, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(b)), nil
}
