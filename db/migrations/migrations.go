package migrations

import "embed"

// FS holds the key_value_store schema migrations, applied by db.Migrate
// through the golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version db.Migrate migrates to.
const Version = 1
