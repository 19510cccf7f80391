// Package validation provides input validation for API parameters.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/apperrors"
)

var (
	nonAlpha      = regexp.MustCompile(`[^A-Za-z]`)
	tickerPattern = regexp.MustCompile(`^[A-Z]{1,10}$`)
)

// NormalizeTicker strips everything non-alphabetic from a raw ticker input
// and uppercases the remainder, mirroring what users paste into the search
// box ("tsly ", "$NVDY").
func NormalizeTicker(raw string) string {
	return strings.TrimSpace(strings.ToUpper(nonAlpha.ReplaceAllString(raw, "")))
}

// ValidateTicker checks that a normalized ticker is 1-10 uppercase letters.
func ValidateTicker(ticker string) error {
	if !tickerPattern.MatchString(ticker) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidTicker, ticker)
	}
	return nil
}
