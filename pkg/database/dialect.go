package database

import (
	"strconv"
	"strings"

	"ofppt/config"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect struct {
	driver string
}

func NewDialect(driver string) Dialect {
	return Dialect{driver: driver}
}

func (d Dialect) Driver() string {
	return d.driver
}

// Rebind rewrites ? placeholders into $1, $2, ... for PostgreSQL.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d.driver != config.DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UseReturning reports whether inserted ids come from RETURNING instead of LastInsertId.
func (d Dialect) UseReturning() bool {
	return d.driver == config.DriverPostgres
}
