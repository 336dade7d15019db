package present

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// Format selects an output representation.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Formats lists the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatHTML)}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatHTML:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: unknown format %q (want text, json or html)", domain.ErrInvalidInput, s)
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return nil
}
