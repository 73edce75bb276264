package store

import (
	"database/sql"

	"github.com/nirco-cloud/tripsync/internal/logger"
)

// DB wraps the raw *sql.DB handle together with the store-level logger.
// Repositories embed it and use the standard database/sql API directly.
type DB struct {
	*sql.DB
	logger *logger.Logger
}
