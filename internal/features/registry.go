package features

import (
	"github.com/jakoblorz/flutterforge/internal/feature"
)

// Builtin returns the built-in feature set in canonical registration
// order. The order is also a valid install order: prerequisites appear
// before their dependents.
func Builtin() []feature.Feature {
	return []feature.Feature{
		ProjectSetup{},
		StateManagement{},
		Theme{},
		Router{},
		Auth{},
		Backend{},
	}
}

// RegisterBuiltin registers every built-in feature with the manager
func RegisterBuiltin(m *feature.Manager) error {
	for _, f := range Builtin() {
		if err := m.Register(f); err != nil {
			return err
		}
	}
	return nil
}
