// Package credentials is the client's credential store: a small persistent
// key/value map holding the session token and the cached user record.
//
// Two implementations satisfy Repository:
//
//   - SQLiteRepository: a local SQLite file (modernc.org/sqlite) whose schema
//     is managed by embedded goose migrations (see OpenSQLite).
//   - MemoryRepository: a mutex-guarded map, used for ephemeral sessions
//     (db path ":memory:") and in tests.
//
// Get reports a missing key as ("", false, nil). SetMany writes all pairs
// atomically, which is how the session manager keeps the token and the user
// record from ever being stored half-way.
package credentials
