//go:build !unix

package storage

import "os"

// Advisory locking is only wired up on unix; elsewhere it is a no-op.
func lockFile(*os.File) error   { return nil }
func unlockFile(*os.File) error { return nil }
