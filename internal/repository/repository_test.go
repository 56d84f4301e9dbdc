package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/models/modelstest"
	"fjacquet/fintrack/internal/notify"
	"fjacquet/fintrack/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo     *Repository
	store    *store.MockStore
	logger   *logging.MockLogger
	notifier *notify.Recorder
	clock    *FixedClock
}

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("%s%d", prefix, n), nil
	}
}

func newFixture(t *testing.T, seed []models.Transaction, opts ...Option) fixture {
	t.Helper()
	f := fixture{
		store:    &store.MockStore{Transactions: seed},
		logger:   logging.NewMockLogger(),
		notifier: notify.NewRecorder(),
		clock:    NewFixedClock(time.Date(2024, 10, 5, 18, 0, 0, 0, time.UTC)),
	}
	all := append([]Option{
		WithLogger(f.logger),
		WithNotifier(f.notifier),
		WithClock(f.clock),
		WithIDGenerator(sequentialIDs("id-")),
	}, opts...)
	f.repo = New(f.store, all...)
	f.repo.Load()
	return f
}

func draft(typ models.TransactionType, desc, amount, category string) models.Draft {
	return models.Draft{
		Type:        typ,
		Description: desc,
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString(amount)),
		Category:    category,
	}
}

func TestRepository_AddAssignsIDAndDate(t *testing.T) {
	f := newFixture(t, nil)

	tx, err := f.repo.Add(draft(models.TypeExpense, "Lunch", "12.50", "Food & Drinks"))
	require.NoError(t, err)

	assert.Equal(t, models.ID("id-1"), tx.ID)
	assert.Equal(t, "2024-10-05", tx.Date.String(), "date defaults to today")
	assert.Equal(t, []models.Transaction{tx}, f.repo.All())

	require.Equal(t, 1, f.store.SaveCount())
	assert.Equal(t, []models.Transaction{tx}, f.store.SaveCalls[0])

	last, ok := f.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, notify.Notification{Level: notify.Success, Message: "Expense added successfully"}, last)
}

func TestRepository_AddRejectsInvalidDraft(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.repo.Add(models.Draft{Type: models.TypeIncome, Description: " "})

	v, ok := models.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, models.MsgDescriptionRequired, v[models.FieldDescription])
	assert.Equal(t, models.MsgAmountRequired, v[models.FieldAmount])
	assert.Equal(t, models.MsgCategoryRequired, v[models.FieldCategory])
	assert.Zero(t, f.repo.Len())
	assert.Zero(t, f.store.SaveCount(), "nothing is persisted for invalid input")
	assert.Empty(t, f.notifier.All())
}

func TestRepository_IDsAreNeverReused(t *testing.T) {
	f := newFixture(t, nil, WithIDGenerator(func() func() (string, error) {
		ids := []string{"a", "b", "a", "b", "c"}
		i := 0
		return func() (string, error) {
			id := ids[i%len(ids)]
			i++
			return id, nil
		}
	}()))

	first, err := f.repo.Add(draft(models.TypeExpense, "one", "1", "General"))
	require.NoError(t, err)
	require.NoError(t, f.repo.Delete(first.ID))

	second, err := f.repo.Add(draft(models.TypeExpense, "two", "1", "General"))
	require.NoError(t, err)
	third, err := f.repo.Add(draft(models.TypeExpense, "three", "1", "General"))
	require.NoError(t, err)

	assert.Equal(t, models.ID("a"), first.ID)
	assert.Equal(t, models.ID("b"), second.ID)
	assert.Equal(t, models.ID("c"), third.ID, "a deleted id stays reserved")
}

func TestRepository_IDGeneratorExhausted(t *testing.T) {
	f := newFixture(t, []models.Transaction{modelstest.Tx("dup", models.TypeExpense, "1", "2024-10-01", "General")},
		WithIDGenerator(func() (string, error) { return "dup", nil }))

	_, err := f.repo.Add(draft(models.TypeExpense, "x", "1", "General"))
	assert.Error(t, err)
	assert.Equal(t, 1, f.repo.Len())

	g := newFixture(t, nil, WithIDGenerator(func() (string, error) { return "", errors.New("entropy") }))
	_, err = g.repo.Add(draft(models.TypeExpense, "x", "1", "General"))
	assert.ErrorContains(t, err, "entropy")
}

func TestRepository_Edit(t *testing.T) {
	seed := []models.Transaction{
		modelstest.Tx("1", models.TypeExpense, "50", "2024-10-01", "Transport"),
		modelstest.Tx("2", models.TypeIncome, "1000", "2024-10-02", "Salary"),
	}
	f := newFixture(t, seed)

	d := models.DraftFrom(seed[0]).WithType(models.TypeIncome)
	_, err := f.repo.Edit("1", d)
	v, ok := models.AsValidationErrors(err)
	require.True(t, ok, "switching type clears a foreign category")
	assert.True(t, v.Has(models.FieldCategory))
	assert.Equal(t, seed, f.repo.All())

	d.Category = "Freelance"
	d.Date = models.Date{}
	edited, err := f.repo.Edit("1", d)
	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), edited.ID)
	assert.Equal(t, models.TypeIncome, edited.Type)
	assert.Equal(t, "2024-10-05", edited.Date.String(), "a cleared date defaults to today")

	all := f.repo.All()
	assert.Equal(t, edited, all[0], "position in the collection is kept")
	assert.Equal(t, seed[1], all[1])
	assert.Equal(t, 1, f.store.SaveCount())

	_, err = f.repo.Edit("missing", d)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	seed := []models.Transaction{
		modelstest.Tx("1", models.TypeExpense, "50", "2024-10-01", "Transport"),
		modelstest.Tx("2", models.TypeIncome, "1000", "2024-10-02", "Salary"),
		modelstest.Tx("3", models.TypeExpense, "5", "2024-10-03", "Pets"),
	}
	f := newFixture(t, seed)

	require.NoError(t, f.repo.Delete("2"))
	assert.Equal(t, []models.Transaction{seed[0], seed[2]}, f.repo.All())
	assert.Equal(t, f.repo.All(), f.store.Transactions)

	_, err := f.repo.Get("2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.repo.Delete("2"), ErrNotFound)

	last, _ := f.notifier.Last()
	assert.Equal(t, "Income deleted successfully", last.Message)
}

func TestRepository_SaveFailureKeepsMemory(t *testing.T) {
	f := newFixture(t, nil)
	f.store.SetSaveError(errors.New("quota exceeded"))

	tx, err := f.repo.Add(draft(models.TypeIncome, "Bonus", "300", "Bonuses"))
	require.NoError(t, err, "persistence failures are not returned to the caller")

	got, err := f.repo.Get(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx, got)
	assert.Empty(t, f.store.Transactions, "store keeps its previous content")

	warns := f.logger.GetEntriesByLevel("WARN")
	require.Len(t, warns, 1)
	assert.EqualError(t, warns[0].Error, "quota exceeded")

	last, _ := f.notifier.Last()
	assert.Equal(t, notify.Warning, last.Level)

	f.store.SetSaveError(nil)
	_, err = f.repo.Add(draft(models.TypeIncome, "Gift", "20", "Other"))
	require.NoError(t, err)
	assert.Len(t, f.store.Transactions, 2, "next successful save writes the whole collection")
}

func TestRepository_LoadFailureStartsEmpty(t *testing.T) {
	s := &store.MockStore{LoadError: &store.CorruptPayloadError{Source: "mock", Err: errors.New("bad json")}}
	logger := logging.NewMockLogger()
	rec := notify.NewRecorder()

	repo := New(s, WithLogger(logger), WithNotifier(rec))
	repo.Load()

	assert.Zero(t, repo.Len())
	assert.True(t, logger.HasEntry("WARN", "Failed to load transactions, starting empty"))
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.Warning, last.Level)
}

func TestRepository_LoadSkipsInvalidAndDuplicateRecords(t *testing.T) {
	good := modelstest.Tx("1", models.TypeExpense, "50", "2024-10-01", "Transport")
	incomplete := modelstest.Tx("2", models.TypeExpense, "5", "2024-10-01", "Transport")
	incomplete.Description = ""
	duplicate := modelstest.Tx("1", models.TypeIncome, "9", "2024-10-02", "Salary")

	f := newFixture(t, []models.Transaction{good, incomplete, duplicate})

	assert.Equal(t, []models.Transaction{good}, f.repo.All())
	assert.Len(t, f.logger.GetEntriesByLevel("WARN"), 2)
}

func TestRepository_ConcurrentAdds(t *testing.T) {
	f := newFixture(t, nil, WithIDGenerator(UUIDv7))

	const writers, perWriter = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := f.repo.Add(draft(models.TypeExpense, fmt.Sprintf("w%d-%d", w, i), "1", "General"))
				assert.NoError(t, err)
				_ = f.repo.All()
			}
		}(w)
	}
	wg.Wait()

	all := f.repo.All()
	require.Len(t, all, writers*perWriter)
	seen := map[models.ID]bool{}
	for _, tx := range all {
		assert.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true
	}
	assert.Len(t, f.store.Transactions, writers*perWriter, "last snapshot saved is the final collection")
}

func TestRepository_AllReturnsCopy(t *testing.T) {
	f := newFixture(t, []models.Transaction{modelstest.Tx("1", models.TypeExpense, "50", "2024-10-01", "Transport")})

	all := f.repo.All()
	all[0].Description = "mutated"

	got, err := f.repo.Get("1")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", got.Description)
}

func TestUUIDv7_IsTimeOrdered(t *testing.T) {
	prev := ""
	for i := 0; i < 50; i++ {
		id, err := UUIDv7()
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}
