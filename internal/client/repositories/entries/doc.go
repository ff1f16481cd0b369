// Package entries provides access to the contact entries held by the remote
// service.
//
// # Overview
//
// The package defines a Repository interface for reading the full entry set
// and submitting new entries. HTTPRepository implements it on top of the
// request gateway (internal/client/client), so the bearer token and the
// 401/403 handling come for free.
//
// # Boundary validation
//
// The read endpoint returns loosely typed JSON. FetchAll checks the shape of
// the payload before anything else sees it: the body must be an array of
// objects; name and mobile may be strings or numbers; the QR identifier may be
// a string, a number or null and is also accepted under the "qrid" key.
// Elements of any other shape are dropped and logged.
//
// Typical Usage
//
//	repo := entries.NewHTTPRepository(gateway, transport, session, navigator, log)
//	list, err := repo.FetchAll(ctx)
//	err = repo.Insert(ctx, models.NewEntry{Name: "Ann", Mobile: "555"})
package entries
