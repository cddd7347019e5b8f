package cleaning_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"floorops/feature/cleaning/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchReturnsMatches(t *testing.T) {
	store := &fakeStore{prodNames: []string{"Red Oak Plank", "Maple Select"}}
	svc := newTestService(store)
	summary, err := svc.CreateSession(context.Background(), "vendor.csv", testCSV)
	require.NoError(t, err)

	resp, err := svc.Search(context.Background(), summary.ID, "oak")
	require.NoError(t, err)
	assert.False(t, resp.Superseded)
	assert.Equal(t, []string{"Red Oak Plank"}, resp.Names)
}

func TestSearchEmptyQuery(t *testing.T) {
	store := &fakeStore{prodNames: []string{"Red Oak Plank"}}
	svc := newTestService(store)
	summary, err := svc.CreateSession(context.Background(), "vendor.csv", testCSV)
	require.NoError(t, err)

	resp, err := svc.Search(context.Background(), summary.ID, "   ")
	require.NoError(t, err)
	assert.Empty(t, resp.Names)
}

func TestSearchSupersession(t *testing.T) {
	store := &fakeStore{
		prodNames:   []string{"Red Oak Plank", "Maple Select"},
		searchDelay: 100 * time.Millisecond,
	}
	svc := newTestService(store)
	summary, err := svc.CreateSession(context.Background(), "vendor.csv", testCSV)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var first *models.SearchResponse
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, _ = svc.Search(context.Background(), summary.ID, "oak")
	}()

	// Let the first query get in flight, then overtake it.
	time.Sleep(20 * time.Millisecond)
	second, err := svc.Search(context.Background(), summary.ID, "maple")
	require.NoError(t, err)
	wg.Wait()

	require.NotNil(t, first)
	assert.True(t, first.Superseded)
	assert.Empty(t, first.Names)

	assert.False(t, second.Superseded)
	assert.Equal(t, []string{"Maple Select"}, second.Names)
}

func TestSearchStoreFailureReturnsEmpty(t *testing.T) {
	store := &fakeStore{failLoads: true, prodNames: []string{"Red Oak Plank"}}
	svc := newTestService(store)
	summary, err := svc.CreateSession(context.Background(), "vendor.csv", testCSV)
	require.NoError(t, err)

	resp, err := svc.Search(context.Background(), summary.ID, "oak")
	require.NoError(t, err)
	assert.Empty(t, resp.Names)
}
