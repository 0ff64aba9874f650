package teams

// LogoMap maps a raw team name to its logo URL. A present key with a nil value
// means the name was looked up and has no logo.
type LogoMap map[string]*string

type lookupStrategy func(d Directory, rawName string) (Entry, bool)

// lookupChain is tried in order; the first hit wins.
var lookupChain = []lookupStrategy{
	func(d Directory, rawName string) (Entry, bool) {
		e, ok := d.BySchool[Normalize(rawName)]
		return e, ok
	},
	func(d Directory, rawName string) (Entry, bool) {
		e, ok := d.ByAlternate[Normalize(rawName)]
		return e, ok
	},
	func(d Directory, rawName string) (Entry, bool) {
		e, ok := d.BySchool[Normalize(stripParenSuffix(rawName))]
		return e, ok
	},
	func(d Directory, rawName string) (Entry, bool) {
		e, ok := d.ByAbbreviation[Normalize(rawName)]
		return e, ok
	},
}

// ResolveLogo returns the primary logo for rawName, or nil when nothing matches
// or the matched team has no logo.
func ResolveLogo(rawName string, dir Directory) *string {
	entry, ok := dir.Lookup(rawName)
	if !ok {
		return nil
	}
	return entry.PrimaryLogo
}

// BuildLogoMap resolves every name, then adds each canonical school that is not
// already a key so views can look logos up by school name too.
func BuildLogoMap(names []string, dir Directory) LogoMap {
	logos := make(LogoMap, len(names)+len(dir.entries))
	for _, name := range names {
		if _, seen := logos[name]; seen {
			continue
		}
		logos[name] = ResolveLogo(name, dir)
	}
	for _, entry := range dir.entries {
		if _, seen := logos[entry.School]; seen {
			continue
		}
		logos[entry.School] = entry.PrimaryLogo
	}
	return logos
}
