package repo

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// columns maps filterable domain fields onto trip_plans columns.
// Only names listed here ever reach the SQL text.
var columns = map[string]string{
	domain.FieldTitle:       "title",
	domain.FieldDestination: "destination",
}

// whereClause translates a TripFilter into a SQL WHERE clause and the named
// arguments it references. An empty filter yields an empty clause.
func whereClause(f domain.TripFilter) (string, pgx.NamedArgs, error) {
	args := pgx.NamedArgs{}
	var parts []string

	for i, c := range f.Conditions {
		switch c := c.(type) {
		case domain.TextMatch:
			name := fmt.Sprintf("term%d", i)
			var ors []string
			for _, field := range c.Fields {
				col, ok := columns[field]
				if !ok {
					return "", nil, fmt.Errorf("repo: unknown filter field %q", field)
				}
				ors = append(ors, fmt.Sprintf(`%s ILIKE @%s ESCAPE '\'`, col, name))
			}
			if len(ors) == 0 {
				continue
			}
			args[name] = "%" + escapeLike(c.Term) + "%"
			parts = append(parts, "("+strings.Join(ors, " OR ")+")")

		case domain.BudgetRange:
			if c.Min != nil {
				name := fmt.Sprintf("min%d", i)
				args[name] = *c.Min
				parts = append(parts, "budget >= @"+name)
			}
			if c.Max != nil {
				name := fmt.Sprintf("max%d", i)
				args[name] = *c.Max
				parts = append(parts, "budget <= @"+name)
			}

		default:
			return "", nil, fmt.Errorf("repo: unsupported filter condition %T", c)
		}
	}

	if len(parts) == 0 {
		return "", args, nil
	}
	return "WHERE " + strings.Join(parts, " AND "), args, nil
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
