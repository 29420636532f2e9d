package actions

import (
	"path"
	"strings"
	"time"

	"github.com/johnquangdev/client-meetings/pkg/config"
)

// stampLayout is the fixed-width meeting stamp; its length is 15
const stampLayout = "20060102_150405"

const (
	unknownClientFolder = "unknown-client"
	defaultTypeSlug     = "meeting"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ResolveClientFolder maps a client id to its folder name. Ids missing from
// the mapping fall back to Slugify(id), or unknown-client when nothing of
// the id survives.
func ResolveClientFolder(folders config.ClientFolders, clientID string) string {
	if name, ok := folders[clientID]; ok && name != "" {
		return name
	}
	if slug := Slugify(clientID); slug != "" {
		return slug
	}
	return unknownClientFolder
}

// Slugify lower-cases s and collapses every run of characters outside
// [a-z0-9] into one hyphen, trimming hyphens at both ends. The result is a
// single path segment: separators and dots never survive.
func Slugify(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// Stamp formats a meeting date as a 15 character UTC stamp. Dates that do not
// parse keep their ASCII letters and digits, truncated to the same width.
func Stamp(meetingDate string) string {
	raw := strings.TrimSpace(meetingDate)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(stampLayout)
		}
	}

	var b strings.Builder
	for i := 0; i < len(raw) && b.Len() < len(stampLayout); i++ {
		c := raw[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// MeetingFolder is the per-meeting directory name: stamp, hyphen, type slug.
// A type with no usable characters becomes "meeting".
func MeetingFolder(meetingDate, meetingType string) string {
	slug := Slugify(meetingType)
	if slug == "" {
		slug = defaultTypeSlug
	}
	return Stamp(meetingDate) + "-" + slug
}

// MeetingDir is the directory of one meeting relative to the data folder
func MeetingDir(folders config.ClientFolders, clientID, meetingDate, meetingType string) string {
	return path.Join(ResolveClientFolder(folders, clientID), MeetingFolder(meetingDate, meetingType))
}
