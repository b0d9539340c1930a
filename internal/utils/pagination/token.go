// Package pagination encodes keyset cursors for list endpoints.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// ErrInvalidToken is returned for a cursor that was not produced by this package.
var ErrInvalidToken = errors.New("invalid pagination token")

// EncodeHeaderToken creates a cursor positioned after the header with the given
// date and id. Headers are listed by date, then id.
func EncodeHeaderToken(date time.Time, id int64) string {
	return EncodeMultiFieldToken(date.Format(dateFormat), strconv.FormatInt(id, 10))
}

// DecodeHeaderToken parses a cursor created by EncodeHeaderToken.
func DecodeHeaderToken(token string) (time.Time, int64, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return time.Time{}, 0, err
	}
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("%w: expected 2 fields, got %d", ErrInvalidToken, len(parts))
	}
	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: date: %v", ErrInvalidToken, err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: id: %v", ErrInvalidToken, err)
	}
	return date, id, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decoded, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return strings.Split(string(decoded), "|"), nil
}

// After reports whether a header with the given date and id sorts after the cursor.
func After(date time.Time, id int64, cursorDate time.Time, cursorID int64) bool {
	d, c := date.Format(dateFormat), cursorDate.Format(dateFormat)
	if d != c {
		return d > c
	}
	return id > cursorID
}
