package entries

import (
	"context"

	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
)

// Repository describes the entry operations of the remote service.
type Repository interface {
	// FetchAll returns every registered entry in server order.
	FetchAll(ctx context.Context) ([]models.Entry, error)

	// Insert submits a new entry. It does not require a session.
	Insert(ctx context.Context, e models.NewEntry) error
}
