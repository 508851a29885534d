// Package main generates a random vault secret suitable for
// GADGETKEEPER_SECRET, printing it to stdout or writing it to a file.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
)

func main() {
	n := flag.Int("bytes", 32, "secret length in bytes before encoding")
	out := flag.String("out", "", "write the secret to this file instead of stdout")
	flag.Parse()

	secret, err := generateSecret(*n)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to generate secret:", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Println(secret)
		return
	}
	if err := writeSecret(*out, secret); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write secret:", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Secret written to %s\n", *out)
}

// generateSecret returns n random bytes hex-encoded, so the result is safe
// to paste into an environment file.
func generateSecret(n int) (string, error) {
	if n < 16 {
		return "", fmt.Errorf("secret length %d too short, need at least 16 bytes", n)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// writeSecret stores the secret with owner-only permissions.
func writeSecret(path, secret string) error {
	return os.WriteFile(path, []byte(secret+"\n"), 0o600)
}
