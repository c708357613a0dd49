package catalog

import (
	c "github.com/relloyd/dwhpipe/constants"
)

// descriptor is the dialect independent part of a Statement.
// Each one has a template file sql/<dialect>/<name>.sql for every dialect.
type descriptor struct {
	name    string
	table   string
	kind    Kind
	params  []string
	cascade bool
}

// registry holds every statement in execution order within its kind.
// The position of a descriptor among those of the same kind is its rank.
var registry = []descriptor{
	{name: "staging_events_table_drop", table: "staging_events", kind: Drop},
	{name: "staging_songs_table_drop", table: "staging_songs", kind: Drop},
	{name: "songplay_table_drop", table: "songplays", kind: Drop, cascade: true},
	{name: "user_table_drop", table: "users", kind: Drop},
	{name: "song_table_drop", table: "songs", kind: Drop, cascade: true},
	{name: "artist_table_drop", table: "artists", kind: Drop},
	{name: "time_table_drop", table: "time", kind: Drop},

	{name: "staging_events_table_create", table: "staging_events", kind: Create},
	{name: "staging_songs_table_create", table: "staging_songs", kind: Create},
	{name: "user_table_create", table: "users", kind: Create},
	{name: "artist_table_create", table: "artists", kind: Create},
	{name: "song_table_create", table: "songs", kind: Create},
	{name: "time_table_create", table: "time", kind: Create},
	{name: "songplay_table_create", table: "songplays", kind: Create},

	{name: "staging_events_copy", table: "staging_events", kind: Copy, params: []string{c.ParamIAMRole, c.ParamLogData}},
	{name: "staging_songs_copy", table: "staging_songs", kind: Copy, params: []string{c.ParamIAMRole, c.ParamSongData}},

	{name: "user_table_insert", table: "users", kind: Insert},
	{name: "artist_table_insert", table: "artists", kind: Insert},
	{name: "song_table_insert", table: "songs", kind: Insert},
	{name: "time_table_insert", table: "time", kind: Insert},
	{name: "songplay_table_insert", table: "songplays", kind: Insert},
}

// Names returns the statement names of kind k in execution order.
// It needs no parameters so ordering can be inspected before configuration is available.
func Names(k Kind) []string {
	var retval []string
	for _, d := range registry {
		if d.kind == k {
			retval = append(retval, d.name)
		}
	}
	return retval
}

// RequiredParams returns the names of all parameters used by any statement, in order of first use.
func RequiredParams() []string {
	seen := make(map[string]struct{})
	var retval []string
	for _, d := range registry {
		for _, p := range d.params {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				retval = append(retval, p)
			}
		}
	}
	return retval
}

// Outline returns every statement in execution order without rendering any SQL.
// Only the descriptor fields are set, so no parameters are needed.
func Outline() []Statement {
	ranks := make(map[Kind]int)
	retval := make([]Statement, 0, len(registry))
	for _, k := range Kinds {
		for _, d := range registry {
			if d.kind != k {
				continue
			}
			ranks[k]++
			retval = append(retval, Statement{
				Name:    d.name,
				Table:   d.table,
				Kind:    d.kind,
				Rank:    ranks[k],
				Cascade: d.cascade,
				Params:  append([]string(nil), d.params...),
			})
		}
	}
	return retval
}
