// Package logger builds the zap logger shared by the server, the CLI and every disk.
//
// Level is one of debug, info, warn or error; Format is json (default) or console.
// Requests and disks are correlated through two helpers:
//
//	l := logger.WithDisk(logger.WithRayID(log, c), "backup")
//	l.Error("Read failed", zap.Error(err))
package logger
