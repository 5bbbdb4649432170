package encoding

import "bytes"

// asciiWhitespace holds the HTML5-defined ASCII whitespace bytes.
var asciiWhitespace = map[byte]bool{
	0x09: true, // TAB
	0x0A: true, // LF
	0x0C: true, // FF
	0x0D: true, // CR
	0x20: true, // SPACE
}

func isASCIIWhitespace(b byte) bool {
	return asciiWhitespace[b]
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}

func skipASCIIWhitespace(data []byte, i int) int {
	n := len(data)
	for i < n && isASCIIWhitespace(data[i]) {
		i++
	}
	return i
}

func stripASCIIWhitespace(value []byte) []byte {
	start := 0
	end := len(value)
	for start < end && isASCIIWhitespace(value[start]) {
		start++
	}
	for end > start && isASCIIWhitespace(value[end-1]) {
		end--
	}
	return value[start:end]
}

// extractCharsetFromContent extracts a charset value from a Content-Type meta content attribute.
func extractCharsetFromContent(contentBytes []byte) []byte {
	if len(contentBytes) == 0 {
		return nil
	}

	// Normalize whitespace to spaces and convert to lowercase
	b := make([]byte, len(contentBytes))
	for i, ch := range contentBytes {
		if isASCIIWhitespace(ch) {
			b[i] = ' '
		} else {
			b[i] = asciiLower(ch)
		}
	}

	idx := bytes.Index(b, []byte("charset"))
	if idx == -1 {
		return nil
	}

	i := idx + len("charset")
	n := len(b)

	for i < n && b[i] == ' ' {
		i++
	}

	if i >= n || b[i] != '=' {
		return nil
	}
	i++

	for i < n && b[i] == ' ' {
		i++
	}

	if i >= n {
		return nil
	}

	var quote byte
	if b[i] == '"' || b[i] == '\'' {
		quote = b[i]
		i++
	}

	start := i
	for i < n {
		ch := b[i]
		if quote != 0 {
			if ch == quote {
				break
			}
		} else {
			if ch == ' ' || ch == ';' {
				break
			}
		}
		i++
	}

	if quote != 0 && (i >= n || b[i] != quote) {
		return nil
	}

	return b[start:i]
}

// skipTag advances past a tag body starting at k, respecting quoted
// attribute values, stopping at the closing '>'. It returns the position
// just after '>' (or the scan limit, if the tag never closes) and the
// number of non-comment bytes consumed.
func skipTag(data []byte, k, limit, nonComment, nonCommentCap int) (newK, newNonComment int) {
	n := len(data)
	var quote byte
	for k < n && k < limit && nonComment < nonCommentCap {
		ch := data[k]
		if quote == 0 {
			if ch == '"' || ch == '\'' {
				quote = ch
			} else if ch == '>' {
				k++
				nonComment++
				break
			}
		} else if ch == quote {
			quote = 0
		}
		k++
		nonComment++
	}
	return k, nonComment
}

// metaAttrs holds the three attributes prescanForMetaCharset cares about
// from a single <meta> tag.
type metaAttrs struct {
	charset   []byte
	httpEquiv []byte
	content   []byte
}

// encoding reports the encoding this meta tag declares, following the
// charset-attribute-first, then http-equiv/content-fallback rule order.
func (m metaAttrs) encoding() *Encoding {
	if m.charset != nil {
		if enc := normalizeMetaDeclaredEncoding(m.charset); enc != nil {
			return enc
		}
	}
	if m.httpEquiv != nil && bytes.Equal(bytes.ToLower(m.httpEquiv), []byte("content-type")) && m.content != nil {
		if extracted := extractCharsetFromContent(m.content); extracted != nil {
			if enc := normalizeMetaDeclaredEncoding(extracted); enc != nil {
				return enc
			}
		}
	}
	return nil
}

// prescanForMetaCharset scans the first 1024 bytes of non-comment content
// for a meta charset declaration per HTML5 spec.
//
//nolint:gocognit,gocyclo,nestif,cyclop,funlen,maintidx // Complexity required by HTML5 spec algorithm
func prescanForMetaCharset(data []byte) *Encoding {
	// Scan up to 1024 bytes of non-comment input, but allow skipping
	// arbitrarily large comments (bounded by a hard cap).
	const maxNonComment = 1024
	const maxTotalScan = 65536

	n := len(data)
	i := 0
	nonComment := 0

	for i < n && i < maxTotalScan && nonComment < maxNonComment {
		if data[i] != '<' {
			i++
			nonComment++
			continue
		}

		if i+3 < n && data[i+1] == '!' && data[i+2] == '-' && data[i+3] == '-' {
			end := bytes.Index(data[i+4:], []byte("-->"))
			if end == -1 {
				return nil
			}
			i = i + 4 + end + 3
			continue
		}

		j := i + 1
		if j < n && data[j] == '/' {
			i, nonComment = skipTag(data, i, maxTotalScan, nonComment, maxNonComment)
			continue
		}

		if j >= n || !isASCIIAlpha(data[j]) {
			i++
			nonComment++
			continue
		}

		nameStart := j
		for j < n && isASCIIAlpha(data[j]) {
			j++
		}

		tagName := data[nameStart:j]
		if !bytes.Equal(bytes.ToLower(tagName), []byte("meta")) {
			i, nonComment = skipTag(data, i, maxTotalScan, nonComment, maxNonComment)
			continue
		}

		var attrs metaAttrs
		k := j
		sawGT := false
		startI := i

		for k < n && k < maxTotalScan {
			ch := data[k]

			if ch == '>' {
				sawGT = true
				k++
				break
			}
			if ch == '<' {
				break
			}
			if isASCIIWhitespace(ch) || ch == '/' {
				k++
				continue
			}

			attrStart := k
			for k < n {
				ch = data[k]
				if isASCIIWhitespace(ch) || ch == '=' || ch == '>' || ch == '/' || ch == '<' {
					break
				}
				k++
			}
			attrName := bytes.ToLower(data[attrStart:k])
			k = skipASCIIWhitespace(data, k)

			var value []byte
			if k < n && data[k] == '=' {
				k++
				k = skipASCIIWhitespace(data, k)
				if k >= n {
					break
				}

				var quote byte
				if data[k] == '"' || data[k] == '\'' {
					quote = data[k]
					k++
					valStart := k
					endQuote := bytes.IndexByte(data[k:], quote)
					if endQuote == -1 {
						// Unclosed quote: ignore this meta.
						i++
						nonComment++
						attrs = metaAttrs{}
						sawGT = false
						break
					}
					value = data[valStart : k+endQuote]
					k = k + endQuote + 1
				} else {
					valStart := k
					for k < n {
						ch = data[k]
						if isASCIIWhitespace(ch) || ch == '>' || ch == '<' {
							break
						}
						k++
					}
					value = data[valStart:k]
				}
			}

			switch {
			case bytes.Equal(attrName, []byte("charset")):
				attrs.charset = stripASCIIWhitespace(value)
			case bytes.Equal(attrName, []byte("http-equiv")):
				attrs.httpEquiv = value
			case bytes.Equal(attrName, []byte("content")):
				attrs.content = value
			}
		}

		if sawGT {
			if enc := attrs.encoding(); enc != nil {
				return enc
			}
			i = k
			nonComment += i - startI
		} else {
			i++
			nonComment++
		}
	}

	return nil
}
