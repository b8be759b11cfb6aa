package renderer

import (
	"net/url"
	"regexp"
	"strings"
)

var javascriptScheme = regexp.MustCompile(`(?i)^javascript:`)

// TransformURL applies the link/image URL policy used when rendering posts.
//
//	javascript: -> ""          (링크 비활성화)
//	#fragment   -> unchanged
//	/path       -> percent-encoded
//	absolute    -> normalized through net/url
//	anything else is percent-encoded rather than dropped
func TransformURL(raw string) string {
	in := strings.TrimSpace(raw)
	switch {
	case in == "":
		return ""
	case javascriptScheme.MatchString(in):
		return ""
	case strings.HasPrefix(in, "#"):
		return in
	case strings.HasPrefix(in, "/"):
		return encodeURI(in)
	}

	u, err := url.Parse(in)
	if err != nil || u.Scheme == "" {
		return encodeURI(in)
	}
	return u.String()
}

const uriKeep = "-_.!~*'();,/?:@&=+$#"

// encodeURI escapes every byte outside the URI reserved and unreserved sets.
// Existing %XX escapes are kept so already-encoded links are not double encoded.
func encodeURI(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(uriKeep, c) >= 0:
			b.WriteByte(c)
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
