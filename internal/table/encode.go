package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for format names Encode cannot write.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat normalizes a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// Encode writes t to w in the given format.
func Encode(w io.Writer, f Format, t Table) error {
	switch f {
	case FormatText:
		return encodeText(w, t)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		data, err := toml.Marshal(t)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

func encodeText(w io.Writer, t Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCANCODE\tKEY\tCODE\tASCII")
	for _, r := range t.Keys {
		code := r.Code
		if code == "" {
			code = "-"
		}
		codes := "-"
		if len(r.ASCII) > 0 {
			parts := make([]string, len(r.ASCII))
			for i, a := range r.ASCII {
				parts[i] = strconv.Itoa(a)
			}
			codes = strings.Join(parts, ",")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Scancode, r.Key, code, codes)
	}
	return tw.Flush()
}
