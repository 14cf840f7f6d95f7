package commit

import "time"

// TimestampLayout is the fixed human-readable format of commit dates,
// e.g. "Thu Oct 08 09:41:07 2026 -0700".
const TimestampLayout = "Mon Jan 02 15:04:05 2006 -0700"

// InitialMessage is the message of every repository's root commit.
const InitialMessage = "initial commit"

// EpochTimestamp is the date carried by every initial commit. It is kept
// verbatim, with an unpadded day, so root commit ids stay stable.
const EpochTimestamp = "Thu Jan 1 00:00:00 1970 +0000"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
