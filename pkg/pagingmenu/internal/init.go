// Package internal contains the shared infrastructure for pagingmenu:
// logging and the active colour theme.
// Types and functions in this package are not part of the public API.
package internal
