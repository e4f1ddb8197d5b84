// Package units holds small, stateless conversion helpers: seconds to a
// human duration string, IPv4 dotted-quad to integer packing, and
// percent-encoding wrappers.
package units

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

// Duration renders a second count as a compact d/h/m/s string, skipping zero
// components: 90061 seconds is "1d 1h 1m 1s", 3600 is "1h". Zero renders as
// "0s"; negative counts keep a leading minus.
func Duration(seconds int64) string {
	if seconds == 0 {
		return "0s"
	}
	negative := seconds < 0
	if negative {
		seconds = -seconds
	}

	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}

	out := strings.Join(parts, " ")
	if negative {
		return "-" + out
	}
	return out
}

// IPv4ToUint32 packs a dotted-quad address into its big-endian integer form.
func IPv4ToUint32(addr string) (uint32, error) {
	parsed, err := netip.ParseAddr(addr)
	if err != nil {
		return 0, fmt.Errorf("units: parse %q: %w", addr, err)
	}
	if !parsed.Is4() {
		return 0, fmt.Errorf("units: %q is not an IPv4 address", addr)
	}
	b := parsed.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// Uint32ToIPv4 is the inverse of IPv4ToUint32.
func Uint32ToIPv4(packed uint32) string {
	return netip.AddrFrom4([4]byte{
		byte(packed >> 24),
		byte(packed >> 16),
		byte(packed >> 8),
		byte(packed),
	}).String()
}

// EncodeQuery percent-encodes a string for use inside a query component.
func EncodeQuery(raw string) string {
	return url.QueryEscape(raw)
}

// EncodePath percent-encodes a string for use inside a path segment.
func EncodePath(raw string) string {
	return url.PathEscape(raw)
}
