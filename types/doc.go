// Package types provides core types used across the clarity backend.
// This package has ZERO dependencies on other clarity packages to avoid
// circular imports. All other packages should import types from here.
package types
