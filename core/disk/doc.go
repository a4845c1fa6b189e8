// Package disk is the registry that binds storage drivers to named disks.
//
// Drivers register a Factory under a driver name (Extend). Disks are declared in
// configuration, each naming its driver. The Manager builds a disk the first time it is
// requested, wraps the driver's adapter in a filesystem.Filesystem, and hands out the same
// instance afterwards.
//
// # Usage
//
//	mgr := disk.NewManager(cfg.Disks(), logger)
//	alioss.Register(mgr)
//	s3disk.Register(mgr)
//
//	fs, err := mgr.Disk("oss")
package disk
