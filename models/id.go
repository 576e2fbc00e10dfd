package models

import (
	"strconv"
	"strings"
	"time"
)

// TimeID returns the millisecond-epoch decimal token used as record id.
// Tokens are only time-ordered-unique; stores re-generate on collision
// against the existing collection.
func TimeID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// SplitTags turns a comma-separated tag string into a trimmed list.
// Empty entries are kept: content edits always supply a full replacement
// list.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// SplitAppTags behaves like SplitTags but drops empty entries, matching the
// app upload form handling.
func SplitAppTags(s string) []string {
	tags := make([]string, 0, 4)
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
