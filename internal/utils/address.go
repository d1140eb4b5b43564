package utils

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeAddress validates a hex chain address and returns its canonical
// lower-cased form, the unique key used by both tables.
func NormalizeAddress(address string) (string, error) {
	addr := strings.TrimSpace(address)
	if !common.IsHexAddress(addr) {
		return "", fmt.Errorf("invalid wallet address %q", MaskAddress(addr))
	}
	return strings.ToLower(common.HexToAddress(addr).Hex()), nil
}

// MaskAddress shortens an address for logs: 0x1234…abcd.
func MaskAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
