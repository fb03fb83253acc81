package selection

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/template-wizard/internal/messages"
)

// Format names an output encoding for a selection.
type Format string

// Supported output formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat normalizes a user-provided format name. Empty input selects TOML.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatTOML:
		return FormatTOML, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf(messages.SelectionUnknownFormatFmt, raw)
	}
}

// Encode writes sel to w in the requested format.
func Encode(w io.Writer, format Format, sel UserSelection) error {
	doc := sel.Document()
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	default:
		return fmt.Errorf(messages.SelectionUnknownFormatFmt, string(format))
	}
	if err != nil {
		return fmt.Errorf(messages.SelectionEncodeFailedFmt, format, err)
	}
	return nil
}
