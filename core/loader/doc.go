// Package loader provides the plugin-like feature loading system.
//
// Each importer (games, users, purchases) is a Feature that registers its
// HTTP routes. The Manager keeps the registry and loads the enabled ones.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
//   - Register adds a feature
//   - LoadAll loads enabled features in registration order and stops at the first error
package loader
