// Package types defines the Client entity, the ClientRepository interface,
// repository configuration, and the standard error values shared by every
// repository implementation.
package types
