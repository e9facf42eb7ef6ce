package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"team-docs-backend/internal/testutils"
)

// TestMain runs before all repository tests and ensures the shared Postgres
// container is purged, including on interruption.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("repository tests interrupted, cleaning up test containers")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
