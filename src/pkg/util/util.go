package util

import (
    "strings"
    "time"
)

// reviewDateLayout is DD-MM-YYYY, the format stored in the reviewDate attribute.
const reviewDateLayout = "02-01-2006"

func GetFormattedDate(t time.Time) string {
    return t.Format(reviewDateLayout)
}

func IsEmptyString(s string) bool {
    return len(strings.TrimSpace(s)) == 0
}

func IsEmptyStringPtr(s *string) bool {
    return s == nil || len(strings.TrimSpace(*s)) == 0
}
