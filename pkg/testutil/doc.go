// Package testutil provides filesystem and environment fixtures for hexmark
// tests.
//
// Tests use real temporary directories. IsolateXDG points the config and
// state directories at fresh temp dirs so no test reads the developer's
// config file or writes to their log.
package testutil
