package helpers

import "unicode/utf8"

const hexChars = "0123456789ABCDEF"
const firstASCII = 0x20
const lastASCII = 0x7E
const firstHighSurrogate = 0xD800
const firstLowSurrogate = 0xDC00
const lastLowSurrogate = 0xDFFF

func canPrintWithoutEscape(c rune) bool {
	if c <= lastASCII {
		return c >= firstASCII && c != '\\' && c != '"'
	}
	return c != 0xFEFF && (c < firstHighSurrogate || c > lastLowSurrogate)
}

// QuoteRuleName double-quotes and JSON-escapes name for the "unknown rule
// ..." diagnostics oxcconfig.ApplyFilters emits when a config file's
// plugin/rule filter doesn't match anything in the registry. Non-ASCII rule
// names (unlikely but not forbidden) are left unescaped rather than forced
// through \uXXXX, matching how the rest of this repo renders Atoms.
func QuoteRuleName(name string) string {
	// Estimate the required length
	lenEstimate := 2
	for _, c := range name {
		if canPrintWithoutEscape(c) {
			lenEstimate += utf8.RuneLen(c)
		} else {
			switch c {
			case '\b', '\f', '\n', '\r', '\t', '\\', '"':
				lenEstimate += 2
			default:
				if c <= 0xFFFF {
					lenEstimate += 6
				} else {
					lenEstimate += 12
				}
			}
		}
	}

	bytes := make([]byte, 0, lenEstimate)
	i := 0
	n := len(name)
	bytes = append(bytes, '"')

	for i < n {
		c, width := DecodeWTF8Rune(name[i:])

		// Fast path: a run of characters that don't need escaping
		if canPrintWithoutEscape(c) {
			start := i
			i += width
			for i < n {
				c, width = DecodeWTF8Rune(name[i:])
				if !canPrintWithoutEscape(c) {
					break
				}
				i += width
			}
			bytes = append(bytes, name[start:i]...)
			continue
		}

		switch c {
		case '\b':
			bytes = append(bytes, "\\b"...)
			i++
		case '\f':
			bytes = append(bytes, "\\f"...)
			i++
		case '\n':
			bytes = append(bytes, "\\n"...)
			i++
		case '\r':
			bytes = append(bytes, "\\r"...)
			i++
		case '\t':
			bytes = append(bytes, "\\t"...)
			i++
		case '\\':
			bytes = append(bytes, "\\\\"...)
			i++
		case '"':
			bytes = append(bytes, "\\\""...)
			i++
		default:
			i += width
			if c <= 0xFFFF {
				bytes = append(
					bytes,
					'\\', 'u', hexChars[c>>12], hexChars[(c>>8)&15], hexChars[(c>>4)&15], hexChars[c&15],
				)
			} else {
				c -= 0x10000
				lo := firstHighSurrogate + ((c >> 10) & 0x3FF)
				hi := firstLowSurrogate + (c & 0x3FF)
				bytes = append(
					bytes,
					'\\', 'u', hexChars[lo>>12], hexChars[(lo>>8)&15], hexChars[(lo>>4)&15], hexChars[lo&15],
					'\\', 'u', hexChars[hi>>12], hexChars[(hi>>8)&15], hexChars[(hi>>4)&15], hexChars[hi&15],
				)
			}
		}
	}

	return string(append(bytes, '"'))
}
