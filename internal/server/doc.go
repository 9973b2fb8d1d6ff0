// Package server runs the application's transport servers.
//
// Every enabled transport is started together and all of them are shut
// down gracefully once a stop signal arrives or one of them fails.
package server
