package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/qrcontacts/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// tokenExpiry reads the "exp" claim, in seconds since the epoch, from the
// payload segment of a JWT-like token. The signature is never checked: the
// token is opaque to the client and only the expiry is of interest. ok is
// false when the claim is absent or zero. A payload that cannot be decoded
// yields ErrMalformedToken.
//
// The claim stays a float64. Converting it to a time.Time overflows for
// values past the int64 range of seconds.
func tokenExpiry(token string) (exp float64, ok bool, err error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return 0, false, fmt.Errorf("%w: expected at least two segments", common.ErrMalformedToken)
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", common.ErrMalformedToken, err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return 0, false, fmt.Errorf("%w: %v", common.ErrMalformedToken, err)
	}

	// type check only; the parsed time is not used
	if _, err := claims.GetExpirationTime(); err != nil {
		return 0, false, fmt.Errorf("%w: %v", common.ErrMalformedToken, err)
	}
	switch v := claims["exp"].(type) {
	case float64:
		exp = v
	case json.Number:
		exp, err = v.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("%w: %v", common.ErrMalformedToken, err)
		}
	}
	if exp == 0 {
		return 0, false, nil
	}
	return exp, true, nil
}

// expired reports whether exp (seconds) is at or before now. The comparison
// is done in milliseconds as float64 so any finite exp is ordered correctly.
func expired(exp float64, now time.Time) bool {
	return exp*1000 <= float64(now.UnixMilli())
}

// decodeSegment accepts base64url (the JWT alphabet) and falls back to the
// standard alphabet some issuers use.
func decodeSegment(seg string) ([]byte, error) {
	b, err := segmentParser.DecodeSegment(seg)
	if err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(seg, "="))
}
