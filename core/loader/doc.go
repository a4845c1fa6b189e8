// Package loader registers the optional HTTP features of the server.
//
// A feature names itself, decides from its configuration whether it is enabled and
// mounts its routes on the router it is given. LoadAll mounts the enabled features in
// registration order and stops at the first one that fails.
package loader
