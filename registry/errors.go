package registry

import "errors"

// Registration errors.
var (
	// ErrNilDescriptor is returned when registering a nil descriptor.
	ErrNilDescriptor = errors.New("nil descriptor")

	// ErrDescriptorNameEmpty is returned when a descriptor has no name.
	ErrDescriptorNameEmpty = errors.New("descriptor name cannot be empty")

	// ErrNoCapabilities is returned when a descriptor declares no capabilities.
	ErrNoCapabilities = errors.New("descriptor declares no capabilities")

	// ErrNoConstructor is returned when a non-abstract descriptor has no
	// construction signature.
	ErrNoConstructor = errors.New("non-abstract descriptor has no constructor")
)
