package repository

import "context"

// Store is the full storage collaborator consumed by the services.
type Store interface {
	Catalog
	Seeder
	Player
	Feed
	BeginTx(ctx context.Context) (Tx, error)
	Close()
}
