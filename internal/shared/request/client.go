package request

import "strings"

type ClientType string

const (
	ClientWeb     ClientType = "WEB"
	ClientMobile  ClientType = "MOBILE"
	ClientKiosk   ClientType = "KIOSK"
	ClientUnknown ClientType = "UNKNOWN"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls back
// to sniffing the user agent. Browsers get cookies, everything else gets
// tokens in the body only.
func ResolveClientType(header, userAgent string) ClientType {
	switch ClientType(strings.ToUpper(strings.TrimSpace(header))) {
	case ClientWeb:
		return ClientWeb
	case ClientMobile:
		return ClientMobile
	case ClientKiosk:
		return ClientKiosk
	}

	ua := strings.ToLower(userAgent)
	switch {
	case ua == "":
		return ClientUnknown
	case strings.Contains(ua, "okhttp"), strings.Contains(ua, "dart"), strings.Contains(ua, "cfnetwork"):
		return ClientMobile
	case strings.Contains(ua, "mozilla"):
		return ClientWeb
	}
	return ClientUnknown
}

func IsWebClient(ct ClientType) bool {
	return ct == ClientWeb
}
