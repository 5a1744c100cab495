package table

// Filters are exact-match and keep the original row order. A value that
// does not occur gives an empty table.

func (t Table) where(keep func(Row) bool) Table {
	rows := []Row{}
	for _, r := range t.Rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return Table{Rows: rows}
}

func (t Table) ByPart(part string) Table {
	return t.where(func(r Row) bool { return r.Part == part })
}

func (t Table) BySubject(subject string) Table {
	return t.where(func(r Row) bool { return r.Subject == subject })
}

// ByTypes keeps rows whose Type is one of types. No types matches nothing.
func (t Table) ByTypes(types ...string) Table {
	set := make(map[string]struct{}, len(types))
	for _, typ := range types {
		set[typ] = struct{}{}
	}
	return t.where(func(r Row) bool {
		_, ok := set[r.Type]
		return ok
	})
}
