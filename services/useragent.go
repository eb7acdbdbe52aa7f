package services

import "strings"

const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"

	BrowserChrome  = "Chrome"
	BrowserFirefox = "Firefox"
	BrowserSafari  = "Safari"
	BrowserOther   = "Other"
)

// DetectDevice classifies a user-agent string. Matches are ordered and the
// first one wins; anything unrecognized counts as desktop.
func DetectDevice(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Mobile"):
		return DeviceMobile
	case strings.Contains(userAgent, "Tablet"):
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}

// DetectBrowser classifies a user-agent string. Chrome is checked before
// Safari because Chrome UAs also carry the "Safari" token.
func DetectBrowser(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Chrome"):
		return BrowserChrome
	case strings.Contains(userAgent, "Firefox"):
		return BrowserFirefox
	case strings.Contains(userAgent, "Safari"):
		return BrowserSafari
	default:
		return BrowserOther
	}
}
