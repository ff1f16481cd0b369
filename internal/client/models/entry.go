// Package models defines the client-side records: contact entries as fetched
// from and submitted to the remote service, and the session credential.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/qrcontacts/internal/common"
)

// Entry is one registered contact. Entries have no client-side identity;
// their position in the fetched set is all that distinguishes duplicates.
type Entry struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	QR     QR     `json:"qr,omitempty"`
}

// NewEntry is the payload posted to the insert endpoint. QRID is encoded as
// null when absent.
type NewEntry struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	QRID   *int64 `json:"qrid"`
}

// Validate checks the fields the form marks as required.
func (e NewEntry) Validate() error {
	var missing []string
	if strings.TrimSpace(e.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(e.Mobile) == "" {
		missing = append(missing, "mobile")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", common.ErrValidation, strings.Join(missing, " and "))
	}
	return nil
}
