package pack

import (
	"math"
	"strconv"
	"strings"
)

// Quality values carry at most three decimal places, so they are kept
// in thousandths and compared exactly. 1000 means q=1.
const defaultQuality = 1000

// acceptedEncoding is one parsed Accept-Encoding list item.
type acceptedEncoding struct {
	token   string
	quality int
}

// parseAcceptEncoding parses an Accept-Encoding header value per
// RFC 7231 section 5.3.4. Parsing is forgiving: a missing q-value
// defaults to 1, out-of-range values are clamped, and an item whose
// q-value is not a number is dropped.
func parseAcceptEncoding(value string) []acceptedEncoding {
	var items []acceptedEncoding
	for _, field := range strings.Split(value, ",") {
		token, params, hasParams := strings.Cut(field, ";")
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		quality := defaultQuality
		if hasParams {
			q, ok := parseQuality(params)
			if !ok {
				continue
			}
			quality = q
		}
		items = append(items, acceptedEncoding{token: token, quality: quality})
	}
	return items
}

// parseQuality extracts the q parameter from the parameter section of
// an Accept-Encoding item and converts it to thousandths, clamped to
// [0, 1000]. Parameters other than q are ignored.
func parseQuality(params string) (int, bool) {
	for _, param := range strings.Split(params, ";") {
		param = strings.TrimSpace(param)
		after, found := strings.CutPrefix(param, "q=")
		if !found {
			after, found = strings.CutPrefix(param, "Q=")
		}
		if !found {
			continue
		}
		f, err := strconv.ParseFloat(after, 64)
		if err != nil {
			return 0, false
		}
		if f < 0 {
			f = 0
		} else if f > 1 {
			f = 1
		}
		return int(math.Round(f * 1000)), true
	}
	return defaultQuality, true
}
