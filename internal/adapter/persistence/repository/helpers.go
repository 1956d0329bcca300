package repository

import "time"

const itemTimeLayout = time.RFC3339Nano

func formatItemTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(itemTimeLayout)
}

func parseItemTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(itemTimeLayout, s)
	return t
}
