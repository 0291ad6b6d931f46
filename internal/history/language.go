package history

// Language lists the field labels tf prints in one UI language. Each field
// accepts several spellings because client versions differ.
type Language struct {
	Name        string
	User        []string
	Changeset   []string
	Date        []string
	Items       []string
	Comment     []string
	CheckedInBy []string
}

// English is the label set of the English tf client.
var English = Language{
	Name:        "en",
	User:        []string{"User"},
	Changeset:   []string{"Changeset"},
	Date:        []string{"Date"},
	Items:       []string{"Items"},
	Comment:     []string{"Comment"},
	CheckedInBy: []string{"Checked in by"},
}

// German is the label set of the German tf client.
var German = Language{
	Name:        "de",
	User:        []string{"Benutzer"},
	Changeset:   []string{"Changeset", "Änderungssatz"},
	Date:        []string{"Datum"},
	Items:       []string{"Elemente"},
	Comment:     []string{"Kommentar"},
	CheckedInBy: []string{"Eingecheckt von"},
}

// DefaultLanguages are tried in order by NewExtractor.
var DefaultLanguages = []Language{English, German}

func lookup(values map[string]string, labels []string) (string, bool) {
	for _, label := range labels {
		if v, ok := values[label]; ok {
			return v, true
		}
	}
	return "", false
}

// match returns the fields of values labelled in l. ok is false unless
// user, changeset, date and items are all present.
func (l Language) match(values map[string]string) (raw rawChangeSet, ok bool) {
	if raw.user, ok = lookup(values, l.User); !ok {
		return rawChangeSet{}, false
	}
	if raw.version, ok = lookup(values, l.Changeset); !ok {
		return rawChangeSet{}, false
	}
	if raw.date, ok = lookup(values, l.Date); !ok {
		return rawChangeSet{}, false
	}
	if raw.items, ok = lookup(values, l.Items); !ok {
		return rawChangeSet{}, false
	}
	raw.comment, _ = lookup(values, l.Comment)
	raw.checkedInBy, _ = lookup(values, l.CheckedInBy)
	return raw, true
}
