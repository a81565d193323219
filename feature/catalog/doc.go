// Package catalog is the persistence side of the storefront importers.
//
// It defines the Store interface the importers write through, a GORM
// implementation of it, the schema migration, and the sentinel errors that
// abort a whole import call.
//
// # Store
//
// Each Add* method writes one batch in a single transaction and is a no-op for
// an empty batch. The Find* lookups return (nil, nil) when nothing matches;
// they see only committed data, never the batch currently being imported.
//
// # Usage
//
//	db, _ := database.Connect(cfg.Database)
//	if err := catalog.AutoMigrate(db); err != nil {
//	    return err
//	}
//	store := catalog.NewGormStore(db)
package catalog
