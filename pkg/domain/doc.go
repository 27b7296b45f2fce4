// Package domain defines the shared contract for the library's value objects.
//
// This package contains pure domain logic with ZERO external dependencies
// outside the Go standard library. Types implementing the interface here are:
//
// - Immutable after construction (validation happens in the constructor)
// - Compared by their data, never by identity
// - Safe to share across goroutines without coordination
//
// Concrete value objects (money, email) implement the interface defined here
// and depend on this package. The dependency direction is always:
//
//	Value object packages → Domain (CORRECT)
//	Domain → Value object packages (FORBIDDEN)
package domain
