// Package whatsapp builds wa.me composer links and renders the studio's
// outbound message templates. Dispatch is fire-and-forget: the service hands
// out links, the external composer owns delivery.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultCountryCode is prefixed to numbers that do not already carry one.
const DefaultCountryCode = "91"

// Normalize strips whitespace, hyphens and plus signs from a phone number and
// prefixes the country code when missing.
func Normalize(phone, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	clean := strings.NewReplacer(" ", "", "-", "", "+", "", "(", "", ")", "").Replace(phone)
	if strings.HasPrefix(clean, countryCode) {
		return clean
	}
	return countryCode + clean
}

// ComposerURL returns the wa.me link that opens the external composer with the
// message prefilled. An empty message opens a bare chat.
func ComposerURL(number, message string) string {
	if message == "" {
		return fmt.Sprintf("https://wa.me/%s", number)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
