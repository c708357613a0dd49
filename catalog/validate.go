package catalog

import (
	"fmt"
)

// validateOrder checks the rendered lists against the foreign keys in the table model:
//   - every table is dropped and created exactly once;
//   - create and insert run referenced tables before the tables that reference them;
//   - a drop that leaves a dependent table behind must cascade;
//   - copy only loads staging tables.
func validateOrder(s map[Kind][]Statement) error {
	for _, k := range []Kind{Drop, Create} {
		seen := make(map[string]bool)
		for _, st := range s[k] {
			if seen[st.Table] {
				return OrderError{Kind: k, Statement: st.Name, Reason: fmt.Sprintf("table %q appears more than once", st.Table)}
			}
			seen[st.Table] = true
		}
		for _, t := range tables {
			if !seen[t.Name] {
				return OrderError{Kind: k, Statement: "", Reason: fmt.Sprintf("table %q is missing", t.Name)}
			}
		}
	}
	for _, k := range []Kind{Create, Insert} {
		done := make(map[string]bool)
		for _, st := range s[k] {
			t, ok := tableByName(st.Table)
			if !ok {
				return OrderError{Kind: k, Statement: st.Name, Reason: fmt.Sprintf("unknown table %q", st.Table)}
			}
			for _, ref := range t.References {
				if !done[ref] && hasTable(s[k], ref) {
					return OrderError{Kind: k, Statement: st.Name, Reason: fmt.Sprintf("runs before referenced table %q", ref)}
				}
			}
			done[st.Table] = true
		}
	}
	dropped := make(map[string]bool)
	for _, st := range s[Drop] {
		for _, dep := range dependents(st.Table) {
			if !dropped[dep] && !st.Cascade {
				return OrderError{Kind: Drop, Statement: st.Name, Reason: fmt.Sprintf("dependent table %q still exists and the drop does not cascade", dep)}
			}
		}
		dropped[st.Table] = true
	}
	for _, st := range s[Copy] {
		if t, ok := tableByName(st.Table); !ok || t.Layer != Staging {
			return OrderError{Kind: Copy, Statement: st.Name, Reason: fmt.Sprintf("table %q is not a staging table", st.Table)}
		}
	}
	return nil
}

func hasTable(list []Statement, table string) bool {
	for _, st := range list {
		if st.Table == table {
			return true
		}
	}
	return false
}
