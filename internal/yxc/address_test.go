package yxc

import (
	"strings"
	"testing"
)

func TestValidateAddress_Valid(t *testing.T) {
	tests := []string{
		"192.168.1.50",
		"0.0.0.0",
		"255.255.255.255",
		"10.0.0.1",
		"172.16.254.3",
		"010.001.000.009",
	}

	for _, addr := range tests {
		t.Run(addr, func(t *testing.T) {
			got, err := ValidateAddress(addr)
			if err != nil {
				t.Fatalf("ValidateAddress(%q) error = %v, want nil", addr, err)
			}
			if got != addr {
				t.Errorf("ValidateAddress(%q) = %q, want input unchanged", addr, got)
			}
		})
	}
}

func TestValidateAddress_Invalid(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"octet above 255", "192.168.1.256"},
		{"large octet", "999.1.1.1"},
		{"four digit octet", "1.1.1.0255"},
		{"three octets", "192.168.1"},
		{"five octets", "192.168.1.50.1"},
		{"non-numeric octet", "192.168.one.50"},
		{"hostname", "receiver.local"},
		{"empty octet", "192..1.50"},
		{"trailing dot", "192.168.1.50."},
		{"leading whitespace", " 192.168.1.50"},
		{"trailing whitespace", "192.168.1.50\n"},
		{"trailing garbage", "192.168.1.50abc"},
		{"port suffix", "192.168.1.50:80"},
		{"negative octet", "192.168.-1.50"},
		{"plus sign", "192.168.+1.50"},
		{"ipv6", "::1"},
		{"unicode digit", "192.168.1.５"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAddress(tt.addr)
			if err == nil {
				t.Fatalf("ValidateAddress(%q) should fail", tt.addr)
			}
			if !IsValidationError(err) {
				t.Errorf("ValidateAddress(%q) error type = %T, want validation error", tt.addr, err)
			}
		})
	}
}

func TestValidateAddress_ErrorNamesInput(t *testing.T) {
	_, err := ValidateAddress("300.1.1.1")
	if err == nil {
		t.Fatal("expected error")
	}

	if !strings.Contains(err.Error(), "300.1.1.1") {
		t.Errorf("error %q should name the invalid input", err.Error())
	}
}
