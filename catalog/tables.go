package catalog

// Layer is the role a table plays in the star schema.
type Layer int

const (
	Staging Layer = iota + 1
	Dimension
	Fact
)

func (l Layer) String() string {
	switch l {
	case Staging:
		return "staging"
	case Dimension:
		return "dimension"
	case Fact:
		return "fact"
	}
	return "unknown"
}

// Table describes one warehouse table and the tables its foreign keys reference.
type Table struct {
	Name       string
	Layer      Layer
	References []string
}

var tables = []Table{
	{Name: "staging_events", Layer: Staging},
	{Name: "staging_songs", Layer: Staging},
	{Name: "users", Layer: Dimension},
	{Name: "artists", Layer: Dimension},
	{Name: "songs", Layer: Dimension, References: []string{"artists"}},
	{Name: "time", Layer: Dimension},
	{Name: "songplays", Layer: Fact, References: []string{"users", "songs", "artists"}},
}

// Tables returns the warehouse tables in an order that satisfies their references.
func Tables() []Table {
	retval := make([]Table, len(tables))
	for i, t := range tables {
		t.References = append([]string(nil), t.References...)
		retval[i] = t
	}
	return retval
}

func tableByName(name string) (Table, bool) {
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// dependents returns the names of tables whose foreign keys reference name.
func dependents(name string) []string {
	var retval []string
	for _, t := range tables {
		for _, r := range t.References {
			if r == name {
				retval = append(retval, t.Name)
			}
		}
	}
	return retval
}
