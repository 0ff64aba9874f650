package teams

import "github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"

// TeamMeta is the upstream metadata for one school.
type TeamMeta struct {
	School         string   `json:"school"`
	Abbreviation   string   `json:"abbreviation"`
	AlternateNames []string `json:"alternateNames"`
	Conference     string   `json:"conference"`
	Logos          []string `json:"logos"`
	Mascot         string   `json:"mascot,omitempty"`
}

// Entry is the lightweight directory value derived from a TeamMeta.
type Entry struct {
	School         string   `json:"school"`
	Abbreviation   string   `json:"abbreviation"`
	AlternateNames []string `json:"alternateNames"`
	Conference     string   `json:"conference"`
	PrimaryLogo    *string  `json:"primaryLogo"`
}

var (
	schoolField       = raw.FirstOf(raw.StringAt("school"), raw.StringAt("name"))
	abbreviationField = raw.FirstOf(raw.StringAt("abbreviation"), raw.StringAt("abbr"))
	conferenceField   = raw.StringAt("conference")
	mascotField       = raw.StringAt("mascot")
	alternateLists    = raw.FirstOf(raw.ListAt("alternateNames"), raw.ListAt("alternate_names"), raw.ListAt("alt_names"))
	alternateFields   = []raw.Extractor[string]{
		raw.FirstOf(raw.StringAt("alt_name1"), raw.StringAt("altName1")),
		raw.FirstOf(raw.StringAt("alt_name2"), raw.StringAt("altName2")),
		raw.FirstOf(raw.StringAt("alt_name3"), raw.StringAt("altName3")),
	}
)

// MetaFromRecord reads a TeamMeta from an upstream team object.
// Alternate names come from a list field when one is present, otherwise from numbered fields.
func MetaFromRecord(r raw.Record) TeamMeta {
	meta := TeamMeta{
		School:       raw.String(r, schoolField),
		Abbreviation: raw.String(r, abbreviationField),
		Conference:   raw.String(r, conferenceField),
		Mascot:       raw.String(r, mascotField),
	}

	if list, ok := alternateLists(r); ok {
		meta.AlternateNames = stringsOf(list)
	} else {
		for _, field := range alternateFields {
			if name, ok := field(r); ok && name != "" {
				meta.AlternateNames = append(meta.AlternateNames, name)
			}
		}
	}

	if logos, ok := raw.ListAt("logos")(r); ok {
		meta.Logos = stringsOf(logos)
	}
	return meta
}

// MetasFromRecords maps every upstream team object.
func MetasFromRecords(records []raw.Record) []TeamMeta {
	out := make([]TeamMeta, 0, len(records))
	for _, r := range records {
		out = append(out, MetaFromRecord(r))
	}
	return out
}

// PrimaryLogo returns the first logo, or nil when there is none.
func (m TeamMeta) PrimaryLogo() *string {
	if len(m.Logos) == 0 {
		return nil
	}
	logo := m.Logos[0]
	return &logo
}

func stringsOf(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
