package amount

import (
	"encoding/hex"
	"strings"
)

// NormalizeCurrencyCode maps a wire currency code to a display code.
// 3-character codes pass through unchanged. 160-bit hex codes decode as an
// ISO-style code when they use the legacy layout (code at bytes 12..14,
// zeroes elsewhere), otherwise as packed ASCII when every non-zero byte is
// printable. Codes that decode to nothing printable are returned as-is:
// normalization never fabricates a label.
func NormalizeCurrencyCode(code string) string {
	if len(code) != 40 {
		return code
	}
	raw, err := hex.DecodeString(code)
	if err != nil {
		return code
	}

	allZero := true
	for _, b := range raw {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return NativeCurrency
	}

	if iso, ok := decodeISOLayout(raw); ok {
		return iso
	}

	trimmed := strings.TrimRight(string(raw), "\x00")
	if isPrintableASCII(trimmed) {
		return trimmed
	}
	return code
}

// decodeISOLayout extracts a 3-character code from the standard currency
// layout: 12 zero bytes, the code, then 5 zero bytes.
func decodeISOLayout(raw []byte) (string, bool) {
	for i, b := range raw {
		if (i < 12 || i > 14) && b != 0 {
			return "", false
		}
	}
	iso := string(raw[12:15])
	if !isPrintableASCII(iso) {
		return "", false
	}
	return iso, true
}

func isPrintableASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
