package utils

import (
	"encoding/json"
	"fmt"
)

// ConvertString renders any value for log meta fields.
func ConvertString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

// FormatDuration turns minutes into "1 hour 5 mins" style text.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d mins", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	unit := "hour"
	if hours > 1 {
		unit = "hours"
	}
	if rest == 0 {
		return fmt.Sprintf("%d %s", hours, unit)
	}
	return fmt.Sprintf("%d %s %d mins", hours, unit, rest)
}
