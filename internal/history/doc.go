// Package history records one row per tool invocation so past cleans, splits
// and generations can be audited later.
//
// The store sits on database/sql. SQLite (modernc.org/sqlite) is the default
// and keeps its file in the state directory; PostgreSQL (lib/pq) is used when
// the configuration selects the postgres driver and supplies a DSN.
package history
