// Package server holds the HTTP server configuration.
//
// The start command reads the listen port, the API key protecting every route and the
// request body limit from here. RequiredDirs lists the directories the integrity feature
// expects on every disk.
package server
