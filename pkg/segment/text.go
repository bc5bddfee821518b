package segment

import "strconv"

// breakChars are the punctuation/symbol characters that force a segment to
// be split apart when it hasn't otherwise matched a dictionary term.
var breakChars = []byte(" -_.!?@$&*,[](){};:%^~")

// hasDigit reports whether s contains at least one ASCII digit.
func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

// hasAlpha reports whether s contains at least one ASCII letter.
func hasAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

// isInteger reports whether s parses cleanly as a base-10 integer.
func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// indexAnyByte returns the index of the first occurrence in s of any byte
// in chars, or -1 if none occur.
func indexAnyByte(s string, chars []byte) int {
	for i := 0; i < len(s); i++ {
		for _, c := range chars {
			if s[i] == c {
				return i
			}
		}
	}
	return -1
}

// containsAnyByte reports whether s contains any byte in chars.
func containsAnyByte(s string, chars []byte) bool {
	return indexAnyByte(s, chars) != -1
}

