package segment

// isASCIISpace reports whether b is one of the ASCII whitespace bytes
// trimmed from the edges of input before a split.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// normalizeInput trims leading/trailing ASCII whitespace and lower-cases
// ASCII letters in place. Every other byte — punctuation outside the
// break-character set, digits, and non-ASCII UTF-8 sequences alike — passes
// through unchanged; the pre-segmenters and the dictionary index are the
// ones responsible for deciding what to do with anything exotic.
func normalizeInput(input string) string {
	start := 0
	for start < len(input) && isASCIISpace(input[start]) {
		start++
	}
	end := len(input)
	for end > start && isASCIISpace(input[end-1]) {
		end--
	}
	trimmed := input[start:end]

	out := []byte(trimmed)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}
