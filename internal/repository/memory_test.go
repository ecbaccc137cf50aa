package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanwater/report-service/internal/domain"
)

func TestMemoryReportConcurrentCreatesAssignUniqueIDs(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	const workers = 50
	ids := make([]int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			report := domain.Report{
				Title:    fmt.Sprintf("report-%d", i),
				Details:  "d", Type: "Quality", Severity: "Low",
				Status: "Pending Review", Location: "loc", Reporter: "r",
				DateReported: "2026-01-15", LastUpdated: "2026-01-15",
			}
			if err := repo.Create(ctx, &report); err != nil {
				t.Error(err)
				return
			}
			ids[i] = report.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, workers)
	for _, id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), count)
}

func TestMemoryReportFilterMatchesExactly(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	fixtures := []domain.Report{
		{Title: "a", Reporter: "Jane Doe", Status: "Resolved", Severity: "High", Type: "Quality"},
		{Title: "b", Reporter: "Jane Doe", Status: "In Progress", Severity: "Critical", Type: "Infrastructure"},
		{Title: "c", Reporter: "Mark Smith", Status: "Resolved", Severity: "High", Type: "Quality"},
	}
	for i := range fixtures {
		require.NoError(t, repo.Create(ctx, &fixtures[i]))
	}

	jane := "Jane Doe"
	resolved := "Resolved"
	got, err := repo.ListWithFilter(ctx, ReportFilter{Reporter: &jane, Status: &resolved})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)

	lower := "jane doe"
	got, err = repo.ListWithFilter(ctx, ReportFilter{Reporter: &lower})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestMemoryReportMutationsOnMissingRecord(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(ctx, &domain.Report{ID: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryReportReadsReturnCopies(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	report := domain.Report{Title: "original", Status: "Pending Review"}
	require.NoError(t, repo.Create(ctx, &report))

	fetched, err := repo.GetByID(ctx, report.ID)
	require.NoError(t, err)
	fetched.Title = "mutated"

	again, err := repo.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}

func TestMemoryUserEmailUniqueness(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first := domain.User{Name: "John", Email: "john@citizen.com", Password: "p", Role: "citizen"}
	require.NoError(t, repo.Create(ctx, &first))

	dup := domain.User{Name: "Imposter", Email: "john@citizen.com", Password: "p", Role: "citizen"}
	err := repo.Create(ctx, &dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryUserUpdateReindexesEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := domain.User{Name: "John", Email: "john@citizen.com", Password: "p", Role: "citizen"}
	require.NoError(t, repo.Create(ctx, &user))

	user.Email = "john.new@citizen.com"
	require.NoError(t, repo.Update(ctx, &user))

	_, err := repo.GetByEmail(ctx, "john@citizen.com")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := repo.GetByEmail(ctx, "john.new@citizen.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// freed email can be registered again
	other := domain.User{Name: "Other", Email: "john@citizen.com", Password: "p", Role: "citizen"}
	require.NoError(t, repo.Create(ctx, &other))
}

func TestMemoryUserUpdateRejectsTakenEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	alice := domain.User{Name: "Alice", Email: "alice@citizen.com", Password: "p", Role: "citizen"}
	require.NoError(t, repo.Create(ctx, &alice))
	bob := domain.User{Name: "Bob", Email: "bob@citizen.com", Password: "p", Role: "citizen"}
	require.NoError(t, repo.Create(ctx, &bob))

	bob.Email = "alice@citizen.com"
	assert.ErrorIs(t, repo.Update(ctx, &bob), ErrDuplicateEmail)

	// the index still resolves the email to its original owner
	found, err := repo.GetByEmail(ctx, "alice@citizen.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	// updating a user to its own email stays allowed
	alice.Name = "Alice Updated"
	require.NoError(t, repo.Update(ctx, &alice))
}

func TestMemoryUserDeleteFreesEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := domain.User{Name: "John", Email: "john@citizen.com", Password: "p", Role: "citizen"}
	require.NoError(t, repo.Create(ctx, &user))
	require.NoError(t, repo.Delete(ctx, user.ID))

	assert.ErrorIs(t, repo.Delete(ctx, user.ID), ErrNotFound)

	again := domain.User{Name: "John II", Email: "john@citizen.com", Password: "p", Role: "citizen"}
	require.NoError(t, repo.Create(ctx, &again))
	assert.NotEqual(t, user.ID, again.ID)
}
