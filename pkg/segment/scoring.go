package segment

import (
	"math"
	"strings"
)

// wordValue computes the relative ranking value of a term. The rules below
// depress the influence of very common short bigrams unless the term is
// explicitly whitelisted as supplemental vocabulary; they come from empirical
// tuning against the reference dictionary and must be reproduced
// bit-identically, not "improved."
func wordValue(term string, frequency, multiplier float64, sources SourceSet) float64 {
	if sources == nil {
		sources = SourceSet{}
	}
	if frequency <= 0 {
		frequency = 1e-8
	}

	hasSpace := strings.Contains(term, " ")
	supplemental := sources.Has(SourceSupplemental)

	if ((len(term) <= 3) || (hasSpace && len(term) <= 4)) && frequency > 1e-3 && !supplemental {
		frequency = 1e-6
	}
	if len(term) <= 7 && frequency > 1e-3 && hasSpace && !supplemental {
		frequency = 1e-6
	}
	if len(term) <= 7 && hasSpace && !supplemental {
		frequency *= 1e-3
	}

	value := math.Log(frequency*1e8) * multiplier
	value *= float64(len(term))
	return value
}
