package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/househarmony/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// CheckFormat rejects formats other than table and json.
func CheckFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, use 'table' or 'json'", format)
	}
}

var title = cases.Title(language.English)

// header renders column names as a title-cased header row with underlines.
func header(w io.Writer, columns ...string) {
	names := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		names[i] = title.String(c)
		rules[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(w, strings.Join(names, "\t"))
	fmt.Fprintln(w, strings.Join(rules, "\t"))
}

// Profiles writes profiles in the given format.
func Profiles(w io.Writer, format string, profiles []domain.Profile) error {
	if format == FormatJSON {
		return writeJSON(w, struct {
			Profiles []domain.Profile `json:"profiles"`
			Count    int              `json:"count"`
		}{Profiles: profiles, Count: len(profiles)})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header(tw, "id", "name", "icon")
	if len(profiles) == 0 {
		fmt.Fprintln(tw, "No profiles found")
	}
	for _, p := range profiles {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, truncateString(p.Name, 40), iconLabel(p.Icon))
	}
	return tw.Flush()
}

// Profile writes a single profile in the given format.
func Profile(w io.Writer, format string, p domain.Profile) error {
	if format == FormatJSON {
		return writeJSON(w, p)
	}
	return Profiles(w, format, []domain.Profile{p})
}

// Icons writes the available icon options.
func Icons(w io.Writer, format string) error {
	if format == FormatJSON {
		type icon struct {
			Src   string `json:"src"`
			Label string `json:"label"`
		}
		icons := make([]icon, len(domain.IconOptions))
		for i, opt := range domain.IconOptions {
			icons[i] = icon{Src: opt.Src, Label: opt.Label}
		}
		return writeJSON(w, icons)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header(tw, "label", "src")
	for _, opt := range domain.IconOptions {
		fmt.Fprintf(tw, "%s\t%s\n", opt.Label, opt.Src)
	}
	return tw.Flush()
}

// iconLabel shows the option label for known icons and the raw src otherwise.
func iconLabel(src string) string {
	for _, opt := range domain.IconOptions {
		if opt.Src == src {
			return opt.Label
		}
	}
	return truncateString(src, 40)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
