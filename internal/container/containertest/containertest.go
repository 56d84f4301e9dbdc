// Package containertest builds containers over an in-memory store for command
// tests.
package containertest

import (
	"fmt"
	"testing"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/models/modelstest"
	"fjacquet/fintrack/internal/repository"
	"fjacquet/fintrack/internal/store"
)

// New returns a container whose store holds txs. The clock is fixed at
// modelstest.Now and new ids are "new-1", "new-2" and so on.
func New(t testing.TB, txs ...models.Transaction) (*container.Container, *store.MockStore) {
	t.Helper()

	mock := &store.MockStore{Transactions: txs}
	n := 0
	c, err := container.NewContainer(config.Defaults(),
		container.WithLogger(logging.NewMockLogger()),
		container.WithStore(mock),
		container.WithClock(repository.NewFixedClock(modelstest.Now)),
		container.WithIDGenerator(func() (string, error) {
			n++
			return fmt.Sprintf("new-%d", n), nil
		}))
	if err != nil {
		t.Fatalf("failed to build container: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, mock
}
