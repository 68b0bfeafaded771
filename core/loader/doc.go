// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which exposes its name,
// whether it is enabled, and its route registration logic.
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
// The Manager holds the registry of features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// Features such as 'inventory', 'audit' and 'station' are developed and
// tested in isolation and only meet in cmd/start.
package loader
