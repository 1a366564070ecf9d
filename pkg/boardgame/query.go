// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package boardgame

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// QueryParamCategory is the query parameter filtering GET /boardgames.
const QueryParamCategory = "category"

// maxExactID bounds ids parsed from decimal notation to the range float64
// represents exactly.
const maxExactID = 1 << 53

// Query holds the parsed parameters of a collection request.
type Query struct {
	// Category filters by case-folded category when non-nil.
	Category *string
}

// ParseQuery extracts the optional category filter from r.
// An absent or empty category leaves Category nil.
func ParseQuery(r *http.Request) *Query {
	q := &Query{}
	if category := r.URL.Query().Get(QueryParamCategory); category != "" {
		q.Category = &category
	}
	return q
}

// ParseID coerces a raw path parameter into an ID.
//
// Accepted forms: optional surrounding whitespace, an optional sign, decimal
// notation with fraction or exponent as long as the value is integral
// ("12", "+12", "1.2e1", "12.0"), and unsigned 0x, 0o or 0b prefixed integers.
// Whitespace alone parses as 0. Anything else, including NaN, infinities
// and non-integral values, reports false.
func ParseID(raw string) (ID, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}

	if base, digits, ok := splitPrefix(s); ok {
		n, err := strconv.ParseUint(digits, base, 64)
		if err != nil || n > maxExactID {
			return 0, false
		}
		return ID(n), true
	}

	if !isDecimal(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) || math.Abs(f) > maxExactID {
		return 0, false
	}
	return ID(int64(f)), true
}

// splitPrefix recognizes 0x, 0o and 0b integer literals.
func splitPrefix(s string) (base int, digits string, ok bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}

// isDecimal reports whether s only uses characters of decimal notation,
// excluding the inf/nan words and hex floats strconv would otherwise accept.
func isDecimal(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '+', r == '-', r == '.', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}
