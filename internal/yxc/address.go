package yxc

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateAddress checks that addr is a dotted-quad IPv4 address.
// Each of the four octets must be a plain decimal number in 0-255.
// Hostnames and IPv6 are rejected; no DNS lookup is ever performed.
// The input is returned unchanged on success.
func ValidateAddress(addr string) (string, error) {
	octets := strings.Split(addr, ".")
	if len(octets) != 4 {
		return "", NewValidationError(fmt.Sprintf("invalid IPv4 address %q: expected 4 octets, got %d", addr, len(octets)))
	}

	for i, octet := range octets {
		if !isDigits(octet) {
			return "", NewValidationError(fmt.Sprintf("invalid IPv4 address %q: octet %d (%q) is not a decimal number", addr, i+1, octet))
		}
		value, err := strconv.Atoi(octet)
		if len(octet) > 3 || err != nil || value > 255 {
			return "", NewValidationError(fmt.Sprintf("invalid IPv4 address %q: octet %d (%s) out of range 0-255", addr, i+1, octet))
		}
	}

	return addr, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
