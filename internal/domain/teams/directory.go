package teams

// Directory indexes team entries by normalized school, abbreviation and alternate name.
// It is built per request and never shared.
type Directory struct {
	BySchool       map[NormalizedKey]Entry
	ByAbbreviation map[NormalizedKey]Entry
	ByAlternate    map[NormalizedKey]Entry
	// entries keeps every indexed team in input order, collisions included.
	entries []Entry
}

// BuildDirectory indexes metas. When two teams normalize to the same key the later one wins.
func BuildDirectory(metas []TeamMeta) Directory {
	dir := Directory{
		BySchool:       make(map[NormalizedKey]Entry, len(metas)),
		ByAbbreviation: make(map[NormalizedKey]Entry, len(metas)),
		ByAlternate:    make(map[NormalizedKey]Entry, len(metas)*2),
		entries:        make([]Entry, 0, len(metas)),
	}

	for _, meta := range metas {
		entry := Entry{
			School:         meta.School,
			Abbreviation:   meta.Abbreviation,
			AlternateNames: meta.AlternateNames,
			Conference:     meta.Conference,
			PrimaryLogo:    meta.PrimaryLogo(),
		}

		put(dir.BySchool, meta.School, entry)
		put(dir.ByAbbreviation, meta.Abbreviation, entry)
		for _, alt := range meta.AlternateNames {
			put(dir.ByAlternate, alt, entry)
		}
		if meta.Mascot != "" {
			put(dir.ByAlternate, meta.School+" "+meta.Mascot, entry)
		}
		if meta.School != "" {
			dir.entries = append(dir.entries, entry)
		}
	}
	return dir
}

// Schools returns the canonical school names in the order they were indexed.
func (d Directory) Schools() []string {
	out := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.School)
	}
	return out
}

// Lookup resolves a raw name to its directory entry using the same chain as ResolveLogo.
func (d Directory) Lookup(rawName string) (Entry, bool) {
	for _, strategy := range lookupChain {
		if entry, ok := strategy(d, rawName); ok {
			return entry, true
		}
	}
	return Entry{}, false
}

// FBSSet returns the normalized keys of every indexed school.
func (d Directory) FBSSet() map[NormalizedKey]struct{} {
	set := make(map[NormalizedKey]struct{}, len(d.BySchool))
	for key := range d.BySchool {
		set[key] = struct{}{}
	}
	return set
}

func put(index map[NormalizedKey]Entry, name string, entry Entry) {
	key := Normalize(name)
	if key == "" {
		return
	}
	index[key] = entry
}
