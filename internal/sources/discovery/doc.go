// Package discovery enumerates source files beneath a root directory.
package discovery
