package types

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// HexBinary is binary data carried as a hex string.
type HexBinary []byte

func (h HexBinary) String() string { return hex.EncodeToString(h) }

// MarshalText renders lowercase hex.
func (h HexBinary) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes hex in either case.
func (h *HexBinary) UnmarshalText(b []byte) error {
	out := make([]byte, hex.DecodedLen(len(b)))
	if _, err := hex.Decode(out, b); err != nil {
		return fmt.Errorf("invalid hexBinary: %w", err)
	}
	*h = out
	return nil
}

// Base64 is binary data carried as standard base64.
type Base64 []byte

func (b Base64) String() string { return base64.StdEncoding.EncodeToString(b) }

// MarshalText renders padded standard base64.
func (b Base64) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes padded standard base64.
func (b *Base64) UnmarshalText(text []byte) error {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(out, text)
	if err != nil {
		return fmt.Errorf("invalid base64: %w", err)
	}
	*b = out[:n]
	return nil
}
