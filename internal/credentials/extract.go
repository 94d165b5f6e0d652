// Where: internal/credentials/extract.go
// What: Line-oriented field extraction from credentials files.
// Why: The source file is only loosely JSON-like; pattern matching tolerates
//      malformed surroundings where a structured parser would reject the file.
package credentials

import (
	"regexp"
	"strings"
	"sync"
)

// fieldPatterns caches one compiled pattern per required key.
var (
	fieldPatternsOnce sync.Once
	fieldPatterns     map[string]*regexp.Regexp
)

// fieldPattern matches a single `"key": "value"` line: optional leading
// whitespace, the quoted key immediately followed by a colon, the quoted
// value without embedded quotes, an optional trailing comma, and nothing else
// before end of line. Values never span lines; a multi-line value simply does
// not match and the field reads as absent. Matching is case-insensitive, as it
// was for the launcher scripts this replaces.
func fieldPattern(key string) *regexp.Regexp {
	fieldPatternsOnce.Do(func() {
		fieldPatterns = make(map[string]*regexp.Regexp, len(requiredFields))
		for _, name := range requiredFields {
			fieldPatterns[name] = regexp.MustCompile(
				`(?mi)^[ \t]*"` + regexp.QuoteMeta(name) + `":[ \t]*"([^"\r\n]*)"[ \t]*,?[ \t]*\r?$`,
			)
		}
	})
	return fieldPatterns[key]
}

// ExtractField returns the trimmed value of the first line carrying the given
// key, or an empty string when no line matches. Unknown keys always yield "".
func ExtractField(text, key string) string {
	pattern := fieldPattern(key)
	if pattern == nil {
		return ""
	}
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// Parse extracts all four required fields from the file text. Missing fields
// stay empty; Validate decides whether the result is usable.
func Parse(text string) Record {
	return Record{
		AccountID:       ExtractField(text, "account_id"),
		BucketName:      ExtractField(text, "bucket_name"),
		AccessKeyID:     ExtractField(text, "access_key_id"),
		SecretAccessKey: ExtractField(text, "secret_access_key"),
	}
}
