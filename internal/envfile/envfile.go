// Package envfile reads .env files that carry overrides for the wizard config.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/template-wizard/internal/messages"
)

// Prefix is the namespace honored for overrides.
const Prefix = "TW_"

// Parse reads .env content into a key-value map.
// Later assignments of the same key win.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if ok {
			env[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return env, nil
}

// Load reads and parses the file at path. A missing file yields an empty map.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return Parse(string(data))
}

// Overrides returns the TW_-prefixed values from file, with the process
// environment (looked up through lookup) taking precedence.
func Overrides(file map[string]string, lookup func(string) (string, bool)) map[string]string {
	out := make(map[string]string)
	for key, value := range file {
		if strings.HasPrefix(key, Prefix) {
			out[key] = value
		}
	}
	if lookup == nil {
		return out
	}
	for _, key := range Keys() {
		if value, ok := lookup(key); ok {
			out[key] = value
		}
	}
	return out
}

// Keys lists the override variables read from the process environment.
func Keys() []string {
	return []string{KeyCatalogPath, KeyOutputFormat, KeyLogLevel}
}

// Override variable names.
const (
	KeyCatalogPath  = Prefix + "CATALOG_PATH"
	KeyOutputFormat = Prefix + "OUTPUT_FORMAT"
	KeyLogLevel     = Prefix + "LOG_LEVEL"
)

// parseLine returns the key and value of one line; ok is false for blanks and comments.
func parseLine(line string) (key, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))

	rawKey, rawValue, found := strings.Cut(trimmed, "=")
	key = strings.TrimSpace(rawKey)
	if !found || key == "" {
		return "", "", false, errors.New(messages.EnvfileExpectedKeyValue)
	}

	value = strings.TrimSpace(rawValue)
	switch {
	case strings.HasPrefix(value, `"`):
		value, err = unquote(value, '"')
	case strings.HasPrefix(value, `'`):
		value, err = unquote(value, '\'')
	default:
		value = stripInlineComment(value)
	}
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

// unquote returns the payload of a quoted value. Double-quoted payloads
// honor \\, \", \n and \r escapes; single-quoted payloads are literal.
func unquote(value string, quote byte) (string, error) {
	var b strings.Builder
	for i := 1; i < len(value); i++ {
		c := value[i]
		if c == quote {
			rest := strings.TrimSpace(value[i+1:])
			if rest != "" && !strings.HasPrefix(rest, "#") {
				return "", errors.New(messages.EnvfileInvalidQuotedSuffix)
			}
			return b.String(), nil
		}
		if quote == '"' && c == '\\' && i+1 < len(value) {
			switch value[i+1] {
			case '\\', '"':
				b.WriteByte(value[i+1])
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return "", errors.New(messages.EnvfileUnterminatedQuotedValue)
}

// stripInlineComment drops a " #" comment from an unquoted value.
func stripInlineComment(value string) string {
	if idx := strings.Index(value, " #"); idx >= 0 {
		return strings.TrimSpace(value[:idx])
	}
	return value
}
