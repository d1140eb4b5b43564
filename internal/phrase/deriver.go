package phrase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// entropyBytes is 128 bits, which bip39 expands to a 12-word mnemonic.
const entropyBytes = 16

// Deriver maps a wallet address to a deterministic recovery phrase. The
// derivation is keyed with a server-side secret so the phrase cannot be
// recomputed from the public address alone. The secret must stay stable for
// the lifetime of a deployment; stored rows remain authoritative regardless.
type Deriver struct {
	secret []byte
}

func NewDeriver(secret string) *Deriver {
	return &Deriver{secret: []byte(secret)}
}

// Derive returns the 12-word phrase for an address. Same address in, same
// phrase out, across restarts and hosts. The address is lower-cased and
// trimmed before hashing so checksummed and plain forms derive identically.
func (d *Deriver) Derive(address string) string {
	addr := strings.ToLower(strings.TrimSpace(address))

	mac := hmac.New(sha256.New, d.secret)
	mac.Write([]byte(addr))
	sum := mac.Sum(nil)

	// NewMnemonic only fails on invalid entropy sizes; 16 bytes is valid.
	mnemonic, _ := bip39.NewMnemonic(sum[:entropyBytes])
	return mnemonic
}

// Normalize brings a user-submitted phrase into canonical form: lower-case,
// single spaces, no surrounding whitespace. All phrase comparisons and
// fingerprints go through this.
func Normalize(p string) string {
	return strings.Join(strings.Fields(strings.ToLower(p)), " ")
}

// Fingerprint returns the hex SHA-256 of the normalized phrase. It is stored
// alongside each credential row so recovery-by-phrase is a single indexed
// lookup instead of a table scan.
func Fingerprint(p string) string {
	sum := sha256.Sum256([]byte(Normalize(p)))
	return hex.EncodeToString(sum[:])
}

// Equal reports whether two phrases match after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
