// Package validate holds the pure sanitization and validation rules for
// thread tags, summaries, chat URLs and file paths.
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

const (
	MaxTagLen     = 64
	MaxSummaryLen = 500
	MaxPathLen    = 4096

	SlugMaxWords = 3
	SlugMaxChars = 25
)

// ErrInvalid marks validation failures so callers can render them as user
// messages instead of fatal errors.
var ErrInvalid = errors.New("invalid input")

// AllowedDomains restricts chat URL hosts when non-empty. It ships empty:
// any domain is accepted once the scheme check passes.
var AllowedDomains []string

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

// tagDisallowed rejects markup/control injection in thread tags.
const tagDisallowed = "<>\"'&\n\r\x00"

// slugFallback is used when the summary yields no word characters.
const slugFallback = "unnamed"

var wordRe = regexp.MustCompile(`\w+`)

// SanitizeText strips non-printable control characters (tab and newline
// excepted), truncates to max runes when max is positive, and trims
// surrounding whitespace. Empty stays empty; JSON escaping is left to the
// marshaller.
func SanitizeText(s string, max int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			continue
		}
		b.WriteRune(r)
	}
	out := []rune(b.String())
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return strings.TrimSpace(string(out))
}

// Tag validates a thread tag and returns its sanitized form.
func Tag(tag string) (string, error) {
	if strings.TrimSpace(tag) == "" {
		return "", fmt.Errorf("%w: tag is empty", ErrInvalid)
	}
	if len([]rune(tag)) > MaxTagLen {
		return "", fmt.Errorf("%w: tag exceeds %d characters", ErrInvalid, MaxTagLen)
	}
	if i := strings.IndexAny(tag, tagDisallowed); i >= 0 {
		return "", fmt.Errorf("%w: tag contains disallowed character %q", ErrInvalid, tag[i])
	}
	clean := SanitizeText(tag, MaxTagLen)
	if clean == "" {
		return "", fmt.Errorf("%w: tag is empty after sanitization", ErrInvalid)
	}
	return clean, nil
}

// URL validates a chat URL. Empty input passes through unchanged; anything
// else must parse as an http(s) URL and is returned re-serialized.
func URL(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !allowedSchemes[u.Scheme] {
		return "", fmt.Errorf("%w: url scheme %q not allowed (use http or https)", ErrInvalid, u.Scheme)
	}
	if len(AllowedDomains) > 0 {
		ok := false
		for _, d := range AllowedDomains {
			if strings.EqualFold(u.Hostname(), d) {
				ok = true
				break
			}
		}
		if !ok {
			return "", fmt.Errorf("%w: url domain %q not allowed", ErrInvalid, u.Hostname())
		}
	}
	return u.String(), nil
}

// FilePath expands user-home shorthand and resolves path to absolute form.
// The returned warning is non-empty when the path lands outside both the
// user's home and the working directory, or under a system directory; the
// resolved path is still usable in that case.
func FilePath(path string) (resolved, warning string, err error) {
	if strings.TrimSpace(path) == "" {
		return "", "", fmt.Errorf("%w: file path is empty", ErrInvalid)
	}
	if len(path) > MaxPathLen {
		return "", "", fmt.Errorf("%w: file path exceeds %d characters", ErrInvalid, MaxPathLen)
	}

	p := path
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", "", fmt.Errorf("expand home: %w", herr)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", "", fmt.Errorf("resolve path: %w", err)
	}
	return abs, pathWarning(abs), nil
}

var systemDirs = []string{"/etc", "/usr", "/bin", "/sbin", "/boot", "/sys", "/proc", "/dev"}

func pathWarning(abs string) string {
	for _, d := range systemDirs {
		if inside(abs, d) {
			return fmt.Sprintf("path %s targets a system directory", abs)
		}
	}
	if home, err := os.UserHomeDir(); err == nil && inside(abs, home) {
		return ""
	}
	if cwd, err := os.Getwd(); err == nil && inside(abs, cwd) {
		return ""
	}
	return fmt.Sprintf("path %s is outside your home and working directories", abs)
}

func inside(path, root string) bool {
	return root != "" && (path == root || strings.HasPrefix(path, root+string(filepath.Separator)))
}

// Slugify derives an identifier-safe slug: lowercased word characters
// joined by underscores, capped at maxWords words and maxChars characters.
// Input with no word characters yields a fixed fallback token.
func Slugify(text string, maxWords, maxChars int) string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	slug := strings.Join(words, "_")
	if len(slug) > maxChars {
		slug = slug[:maxChars]
	}
	if slug == "" {
		return slugFallback
	}
	return slug
}
