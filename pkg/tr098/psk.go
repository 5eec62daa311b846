package tr098

import (
	"crypto/sha1"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/types"
)

// WPA personal mode key parameters (IEEE 802.11i, H.4).
const (
	MinPassphraseLength = 8
	MaxPassphraseLength = 63
	PreSharedKeyLength  = 32

	pskIterations = 4096
)

// Key derivation errors.
var (
	ErrPassphraseLength = errors.New("passphrase must be 8 to 63 characters")
	ErrPassphraseASCII  = errors.New("passphrase must be printable ASCII")
	ErrSSIDEmpty        = errors.New("SSID is empty")
	ErrNoKey            = errors.New("neither PreSharedKey nor KeyPassphrase is set")
)

// DerivePreSharedKey computes the 256-bit WPA pre-shared key for a network
// from its passphrase, as PBKDF2-HMAC-SHA1(passphrase, ssid, 4096, 32).
func DerivePreSharedKey(passphrase, ssid string) (types.HexBinary, error) {
	if len(passphrase) < MinPassphraseLength || len(passphrase) > MaxPassphraseLength {
		return nil, ErrPassphraseLength
	}
	for i := 0; i < len(passphrase); i++ {
		if c := passphrase[i]; c < 0x20 || c > 0x7e {
			return nil, ErrPassphraseASCII
		}
	}
	if ssid == "" {
		return nil, ErrSSIDEmpty
	}
	key := pbkdf2.Key([]byte(passphrase), []byte(ssid), pskIterations, PreSharedKeyLength, sha1.New)
	return types.HexBinary(key), nil
}

// Key returns the key in effect for ssid: PreSharedKey when set, otherwise
// the key derived from KeyPassphrase.
func (p *PreSharedKey) Key(ssid string) (types.HexBinary, error) {
	if len(p.PreSharedKey) > 0 {
		return p.PreSharedKey, nil
	}
	if p.KeyPassphrase == "" {
		return nil, ErrNoKey
	}
	return DerivePreSharedKey(p.KeyPassphrase, ssid)
}

// Check reports a PreSharedKey entry carrying both a key and a passphrase.
// The result of setting both is undefined on the CPE.
func (p *PreSharedKey) Check() error {
	if len(p.PreSharedKey) > 0 && p.KeyPassphrase != "" {
		return fmt.Errorf("%w: PreSharedKey and KeyPassphrase", model.ErrExclusiveParams)
	}
	return nil
}
