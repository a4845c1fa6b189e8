// Package files exposes the filesystem operations of every configured disk over HTTP.
//
// All routes live under /disks/:disk, where :disk is a name known to the disk manager.
// Object paths are taken from the wildcard part of the route, so nested paths need no
// escaping beyond regular URL encoding.
//
// # Routes
//
//	GET    /disks/:disk/files?dir=&recursive=   list a directory
//	GET    /disks/:disk/files/*                 read an object
//	PUT    /disks/:disk/files/*                 write or overwrite an object from the body
//	DELETE /disks/:disk/files/*                 delete an object
//	POST   /disks/:disk/copy                    copy {"from","to"}
//	POST   /disks/:disk/rename                  rename {"from","to"}
//	GET    /disks/:disk/meta/*                  object metadata
//	GET    /disks/:disk/visibility/*            object visibility
//	PUT    /disks/:disk/visibility/*            set visibility {"visibility"}
//	POST   /disks/:disk/dirs/*                  create a directory
//	DELETE /disks/:disk/dirs/*                  delete a directory recursively
//	GET    /disks/:disk/url/*?expires=          public URL, signed when expires > 0
//	GET    /disks/:disk/temporary-url/*?expires= signed URL
//
// # Errors
//
// Failures are reported as {"error": "..."} with a status derived from the error kind:
// unknown disks are 404, invalid arguments 400, missing capabilities 501 and backend
// failures 500.
package files
