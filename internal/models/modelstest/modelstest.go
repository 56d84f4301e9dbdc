// Package modelstest builds transaction fixtures for tests.
package modelstest

import (
	"fmt"
	"math/rand"
	"time"

	"fjacquet/fintrack/internal/models"

	"github.com/bxcodec/faker/v3"
	"github.com/shopspring/decimal"
)

// Tx is shorthand for a fully populated transaction.
func Tx(id string, typ models.TransactionType, amount string, date string, category string) models.Transaction {
	return models.Transaction{
		ID:          models.ID(id),
		Type:        typ,
		Description: category + " " + id,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        models.MustParseDate(date),
	}
}

// Random returns n transactions with random types, vocabulary categories,
// amounts with up to two fractional digits and dates within spanDays before
// ref. Descriptions come from faker; everything else from rng so a failing
// seed can be replayed.
func Random(rng *rand.Rand, n int, ref models.Date, spanDays int) []models.Transaction {
	if spanDays < 1 {
		spanDays = 1
	}
	out := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		typ := models.TypeExpense
		if rng.Intn(3) == 0 {
			typ = models.TypeIncome
		}
		cats := models.CategoriesFor(typ)
		out = append(out, models.Transaction{
			ID:          models.ID(fmt.Sprintf("tx-%04d", i)),
			Type:        typ,
			Description: faker.Sentence(),
			Amount:      decimal.New(rng.Int63n(500000)+1, -2),
			Category:    cats[rng.Intn(len(cats))].Name,
			Date:        ref.AddDays(-rng.Intn(spanDays)),
		})
	}
	return out
}

// Seed returns a deterministic source for Random.
func Seed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Now is a fixed reference instant used across tests: 2024-10-15 14:30 UTC.
var Now = time.Date(2024, time.October, 15, 14, 30, 0, 0, time.UTC)
