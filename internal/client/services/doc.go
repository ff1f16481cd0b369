// Package services contains application services for the qrcontacts client.
// The session manager owns the authenticated session: login against the
// remote service, the persisted credential, and expiry of the stored token.
package services
