package segment

// presegment holds the three pre-segmentation transforms. Each takes the
// current pass pool and appends new passes derived from existing ones;
// originals are retained so the search can explore both. They run once, in
// this order, before candidate-term enumeration.

// splitOnNumbers finds runs of digits in each pass's display text, protects
// any "special number" substring (e.g. "3d", "80s") from being treated as
// numeric, merges ordinal suffixes onto the preceding digit run, and emits a
// new pass with one split per resulting segment.
func splitOnNumbers(passes []*Pass, dict *Dictionary) []*Pass {
	var added []*Pass
	for _, pass := range passes {
		text := pass.DisplayText()
		if text == "" || len(text) == 1 {
			continue
		}
		if !hasDigit(text) {
			continue
		}

		isNumber := make([]bool, len(text))
		for i := 0; i < len(text); i++ {
			isNumber[i] = text[i] >= '0' && text[i] <= '9'
		}

		for _, special := range dict.SpecialNumbers() {
			idx := indexOf(text, special.Compressed())
			if idx == -1 {
				continue
			}
			for i := idx; i < idx+len(special.Compressed()); i++ {
				isNumber[i] = false
			}
		}

		segments, numeric := splitIntoSegments(text, isNumber)
		mergeOrdinalSuffixes(segments, numeric)

		var splits []Split
		for i, seg := range segments {
			if seg == "" {
				continue
			}
			if numeric[i] {
				if term, ok := dict.FindTerm(seg); ok {
					splits = append(splits, SplitFromTerm(term))
				} else {
					splits = append(splits, Split{Text: seg, Frequency: defaultFrequency, Multiplier: 1.0, Matched: true, Sources: SourceSet{}})
				}
			} else {
				splits = append(splits, NewSplit(seg))
			}
		}
		added = append(added, NewPassWithSplits(pass.DisplayText(), splits))
	}
	return append(passes, added...)
}

// indexOf is a tiny substring search, kept local so presegment.go has no
// dependency beyond the standard library primitives it actually needs.
func indexOf(haystack, needle string) int {
	if needle == "" || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// splitIntoSegments collapses consecutive equal-classification characters
// (digit vs. non-digit) into segments, reporting which segments are numeric.
func splitIntoSegments(text string, isNumber []bool) ([]string, []bool) {
	var segments []string
	var numeric []bool

	start := 0
	current := isNumber[0]
	for i := 1; i < len(text); i++ {
		if isNumber[i] != current {
			segments = append(segments, text[start:i])
			numeric = append(numeric, current)
			start = i
			current = isNumber[i]
		}
	}
	segments = append(segments, text[start:])
	numeric = append(numeric, current)
	return segments, numeric
}

// mergeOrdinalSuffixes attaches a two-character ordinal suffix ("st", "nd",
// "rd", "th") to the preceding numeric segment when the following segment
// starts with it, mutating segments in place.
func mergeOrdinalSuffixes(segments []string, numeric []bool) {
	for i := 0; i < len(segments)-1; i++ {
		if !numeric[i] {
			continue
		}
		seg := segments[i]
		lastDigit := seg[len(seg)-1]
		var lastTwo string
		if len(seg) > 1 {
			lastTwo = seg[len(seg)-2:]
		}

		ext := ""
		switch lastDigit {
		case '4', '5', '6', '7', '8', '9', '0':
			ext = "th"
		case '1':
			ext = "st"
		case '2':
			ext = "nd"
		case '3':
			ext = "rd"
		}
		if lastTwo == "11" || lastTwo == "12" || lastTwo == "13" {
			ext = "th"
		}

		if ext != "" && len(segments[i+1]) >= 2 && segments[i+1][:len(ext)] == ext {
			segments[i] = seg + segments[i+1][:2]
			segments[i+1] = segments[i+1][2:]
		}
	}
}

// preserveA1 combines a leading "<alpha>-" split with a following numeric
// split into a single unit (so "a-1steakhouse" keeps "a-1" intact instead of
// being torn apart by numeric splitting).
func preserveA1(passes []*Pass, dict *Dictionary) []*Pass {
	var added []*Pass
	for _, pass := range passes {
		if len(pass.Splits) < 2 {
			continue
		}
		first := pass.Splits[0].Text
		second := pass.Splits[1].Text
		if len(first) != 2 || !hasAlpha(first[:1]) || first[1] != '-' || !hasDigit(second) {
			continue
		}

		text := first + second
		var splits []Split
		if term, ok := dict.FindTerm(text); ok {
			splits = append(splits, SplitFromTerm(term))
		} else {
			splits = append(splits, Split{Text: text, Frequency: defaultFrequency, Multiplier: 1.0, Matched: true, Sources: SourceSet{}})
		}
		splits = append(splits, pass.Splits[2:]...)
		added = append(added, NewPassWithSplits(pass.Input, splits))
	}
	return append(passes, added...)
}

// splitOnBreakChars replaces any unmatched split containing a break
// character (space, dash, underscore, and the usual run of punctuation) with
// the sequence of non-empty tokens obtained by turning every break char into
// a space and splitting on spaces. Matched splits and break-free unmatched
// splits pass through unchanged.
func splitOnBreakChars(passes []*Pass) []*Pass {
	var added []*Pass
	for _, pass := range passes {
		needsSplit := false
		for _, s := range pass.Splits {
			if !s.Matched && containsAnyByte(s.Text, breakChars) {
				needsSplit = true
				break
			}
		}
		if !needsSplit {
			continue
		}

		var splits []Split
		for _, s := range pass.Splits {
			if s.Matched || !containsAnyByte(s.Text, breakChars) {
				splits = append(splits, s)
				continue
			}
			tokens := tokenizeOnBreakChars(s.Text)
			for _, tok := range tokens {
				if tok != "" {
					splits = append(splits, NewSplit(tok))
				}
			}
		}
		added = append(added, NewPassWithSplits(pass.Input, splits))
	}
	return append(passes, added...)
}

// tokenizeOnBreakChars replaces every break char with a space and splits on
// spaces, dropping empty tokens produced by adjacent break chars.
func tokenizeOnBreakChars(text string) []string {
	buf := []byte(text)
	for i, c := range buf {
		for _, b := range breakChars {
			if c == b {
				buf[i] = ' '
				break
			}
		}
	}
	var tokens []string
	start := -1
	for i := 0; i <= len(buf); i++ {
		if i < len(buf) && buf[i] != ' ' {
			if start == -1 {
				start = i
			}
		} else {
			if start != -1 {
				tokens = append(tokens, string(buf[start:i]))
				start = -1
			}
		}
	}
	return tokens
}
