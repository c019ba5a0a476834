package service

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"mindconnect/internal/domain"
	"mindconnect/internal/types"

	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool { return emailPattern.MatchString(s) }

// eventDateLayouts are tried in order; dates without a zone are UTC.
var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// requiredText returns the trimmed string value or false when the field is
// absent, not a string, or blank.
func requiredText(o types.Optional) (string, bool) {
	s, ok := o.Text()
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// optionalText maps an optional text field to a column value: nil for
// absent, null or blank, otherwise the trimmed string.
func optionalText(field string, o types.Optional) (*string, error) {
	if !o.Present() || o.Null() {
		return nil, nil
	}
	s, ok := o.Text()
	if !ok {
		return nil, domain.Validation(domain.CodeInvalidBody, field+" must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// setOptionalText records a nullable text column in fields when the key was
// present in the request.
func setOptionalText(fields map[string]any, column, field string, o types.Optional) error {
	if !o.Present() {
		return nil
	}
	v, err := optionalText(field, o)
	if err != nil {
		return err
	}
	if v == nil {
		fields[column] = nil
	} else {
		fields[column] = *v
	}
	return nil
}

// storeErr maps repository errors to domain errors. Anything unrecognised is
// returned unchanged and ends up as a 500.
func storeErr(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFound(domain.CodeNotFound, notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.Conflict(domain.CodeDuplicateRecord, "Record already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.Conflict(domain.CodeReferenced, "Record is referenced by other records", err)
	}
	return err
}
