package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID    = "run_id"
	KeyPath     = "path"
	KeyRoot     = "root"
	KeySection  = "section"
	KeySkill    = "skill"
	KeyMatcher  = "matcher"
	KeyCount    = "count"
	KeyOutcome  = "outcome"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Root(r string) slog.Attr         { return slog.String(KeyRoot, r) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Skill(name string) slog.Attr     { return slog.String(KeySkill, name) }
func Matcher(name string) slog.Attr   { return slog.String(KeyMatcher, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Outcome(o string) slog.Attr      { return slog.String(KeyOutcome, o) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDuration, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
