package lambdaversions

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	lambdaLastModifiedLayoutConstant        = "2006-01-02T15:04:05.000-0700"
	lambdaLastModifiedSecondsLayoutConstant = "2006-01-02T15:04:05-0700"
	invalidLastModifiedErrorMessageConstant = "invalid last modified timestamp"
	emptyLastModifiedErrorTemplateConstant  = "%w: value is empty"
	unparsableLastModifiedTemplateConstant  = "%w: %q"
)

// ErrInvalidLastModified reports a provider timestamp that cannot be interpreted.
var ErrInvalidLastModified = errors.New(invalidLastModifiedErrorMessageConstant)

var lastModifiedLayouts = []string{
	lambdaLastModifiedLayoutConstant,
	lambdaLastModifiedSecondsLayoutConstant,
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseLastModified converts the provider's LastModified value to UTC.
func ParseLastModified(value string) (time.Time, error) {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return time.Time{}, fmt.Errorf(emptyLastModifiedErrorTemplateConstant, ErrInvalidLastModified)
	}

	for _, layout := range lastModifiedLayouts {
		if parsed, parseError := time.Parse(layout, trimmedValue); parseError == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf(unparsableLastModifiedTemplateConstant, ErrInvalidLastModified, trimmedValue)
}
