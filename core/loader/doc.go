// Package loader provides the plugin-like feature loading system.
//
// It allows the server to register features (modules) and mount their routes.
// Each feature implements the Feature interface.
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
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// Features like 'stacks' and 'albums' are developed and tested in isolation
// and only meet in cmd/start.go.
package loader
