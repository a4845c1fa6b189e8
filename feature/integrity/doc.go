// Package integrity checks that every disk carries the directory layout the deployment
// expects.
//
// The required directories come from server.required_dirs. A directory counts as present
// when its marker object or any object below it exists. Missing directories can be
// created on request through the disk's createDir operation.
//
// # HTTP Endpoints
//
//   - GET /integrity : Checks every disk.
//   - GET /integrity/:disk : Checks one disk (supports ?fix=true).
package integrity
