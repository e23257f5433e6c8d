package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"phonedex/internal/catalog"
	"phonedex/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubEnricher records calls and answers from canned data.
type stubEnricher struct {
	mu        sync.Mutex
	byQuery   map[string]*catalog.Phone
	byTopic   map[string][]catalog.Phone
	popular   []catalog.Phone
	queries   []string
	topics    []string
	popularCt int
}

func (e *stubEnricher) FetchByQuery(_ context.Context, q string) *catalog.Phone {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queries = append(e.queries, q)
	return e.byQuery[q]
}

func (e *stubEnricher) FetchByBrandOrTopic(_ context.Context, topic string) []catalog.Phone {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.topics = append(e.topics, topic)
	return e.byTopic[topic]
}

func (e *stubEnricher) FetchMorePopular(_ context.Context, _ []string) []catalog.Phone {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.popularCt++
	return e.popular
}

func (e *stubEnricher) Advice(_ context.Context, _ string) string { return "stub advice" }

func phone(id, name string, price int) catalog.Phone {
	return catalog.Phone{ID: id, Name: name, Price: price, Specs: map[string]catalog.SpecSection{}}
}

func phones(n int, prefix string) []catalog.Phone {
	out := make([]catalog.Phone, n)
	for i := range out {
		out[i] = phone(fmt.Sprintf("%s-%d", prefix, i), fmt.Sprintf("%s %d", strings.ToUpper(prefix), i), 10000)
	}
	return out
}

func newSession(seed []catalog.Phone, e Enricher) *Session {
	return New(seed, e, config.DefaultConfig().Browse, nil)
}

func TestSession_SearchLocalHitPromotesWithoutRemoteCall(t *testing.T) {
	e := &stubEnricher{}
	s := newSession([]catalog.Phone{
		phone("a", "Samsung Galaxy S24 Ultra", 129999),
		phone("b", "OnePlus 12", 64999),
	}, e)
	s.SetCeiling(20000) // hide everything first

	out, err := s.Search(context.Background(), "oneplus")
	require.NoError(t, err)
	assert.Equal(t, SearchFoundLocal, out)
	assert.Empty(t, e.queries, "local hit must not call the remote source")

	// The hit is promoted and the filters relaxed so it is visible.
	assert.Equal(t, "b", s.Store.All()[0].ID)
	assert.Equal(t, "", s.Brand())
	assert.Equal(t, 150000, s.Ceiling())
	require.NotEmpty(t, s.Visible())
	assert.Equal(t, "b", s.Visible()[0].ID)
}

func TestSession_SearchMissFetchesAndMerges(t *testing.T) {
	fetched := phone("nokia-6600", "Nokia 6600", 4999)
	e := &stubEnricher{byQuery: map[string]*catalog.Phone{"Nokia 6600": &fetched}}
	s := newSession(phones(3, "seed"), e)

	out, err := s.Search(context.Background(), "Nokia 6600")
	require.NoError(t, err)
	assert.Equal(t, SearchFetched, out)
	assert.Equal(t, "nokia-6600", s.Store.All()[0].ID, "fetched record is prepended")
}

func TestSession_SearchFallsBackToTopicFetch(t *testing.T) {
	e := &stubEnricher{byTopic: map[string][]catalog.Phone{"galaxy z": phones(2, "fold")}}
	s := newSession(phones(3, "seed"), e)

	out, err := s.Search(context.Background(), "galaxy z")
	require.NoError(t, err)
	assert.Equal(t, SearchFetchedRelated, out)
	assert.Equal(t, 5, s.Store.Len())
}

func TestSession_SearchNotFound(t *testing.T) {
	e := &stubEnricher{}
	s := newSession(phones(3, "seed"), e)

	out, err := s.Search(context.Background(), "flux capacitor")
	require.NoError(t, err)
	assert.Equal(t, SearchNotFound, out)
	assert.Equal(t, 3, s.Store.Len(), "failed search must not change the catalog")
}

func TestSession_SearchEmptyQueryRejectedSynchronously(t *testing.T) {
	e := &stubEnricher{}
	s := newSession(phones(1, "seed"), e)

	_, err := s.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Empty(t, e.queries)
	assert.Empty(t, e.topics)
}

func TestSession_SelectBrandTogglesAndResetsPage(t *testing.T) {
	s := newSession(phones(30, "samsung"), &stubEnricher{})
	s.LoadMore(context.Background())
	require.Equal(t, 2, s.Pages())

	s.SelectBrand(context.Background(), "Samsung")
	assert.Equal(t, "Samsung", s.Brand())
	assert.Equal(t, 1, s.Pages(), "changing the brand resets pagination")

	s.SelectBrand(context.Background(), "Samsung")
	assert.Equal(t, "", s.Brand(), "selecting the active brand clears it")
}

func TestSession_SelectBrandBackfillsSparseBrands(t *testing.T) {
	e := &stubEnricher{byTopic: map[string][]catalog.Phone{"Lava": phones(12, "lava")}}
	s := newSession(phones(20, "samsung"), e)

	n := s.SelectBrand(context.Background(), "Lava")
	assert.Equal(t, 12, n)
	assert.Equal(t, []string{"Lava"}, e.topics)

	// A well-stocked brand stays local.
	e.topics = nil
	s.SelectBrand(context.Background(), "Lava") // toggle off
	n = s.SelectBrand(context.Background(), "Lava")
	assert.Zero(t, n)
	assert.Empty(t, e.topics, "12 local records exceed the backfill threshold")
}

func TestSession_LoadMorePagesBeforeFetching(t *testing.T) {
	e := &stubEnricher{popular: phones(5, "fresh")}
	s := newSession(phones(30, "seed"), e)

	assert.Equal(t, LoadPaged, s.LoadMore(context.Background()))
	assert.Equal(t, LoadPaged, s.LoadMore(context.Background()))
	assert.Len(t, s.Visible(), 30)
	assert.Zero(t, e.popularCt, "paging over local records must not call out")

	// Everything filtered is visible now: fall through to enrichment.
	assert.Equal(t, LoadFetched, s.LoadMore(context.Background()))
	assert.Equal(t, 1, e.popularCt)
	assert.Equal(t, 35, s.Store.Len())
	// Growth appends so the already-visible page order is undisturbed.
	assert.Equal(t, "seed-0", s.Store.All()[0].ID)
}

func TestSession_LoadMoreExhausted(t *testing.T) {
	e := &stubEnricher{} // remote has nothing new
	s := newSession(phones(3, "seed"), e)

	assert.Equal(t, LoadExhausted, s.LoadMore(context.Background()))
	assert.Equal(t, 1, s.Pages())
}

func TestSession_NoEnricherDegrades(t *testing.T) {
	s := newSession(phones(3, "seed"), nil)
	assert.False(t, s.Enabled())

	out, err := s.Search(context.Background(), "unknown phone")
	require.NoError(t, err)
	assert.Equal(t, SearchNotFound, out)
	assert.Equal(t, LoadExhausted, s.LoadMore(context.Background()))
	assert.Zero(t, s.RefreshVisible(context.Background()))
	assert.Zero(t, s.BrowseCategory(context.Background(), CategoryLatest))
	assert.NotEmpty(t, s.Advice(context.Background(), "?"))
}

func TestSession_BrowseCategory(t *testing.T) {
	e := &stubEnricher{byTopic: map[string][]catalog.Phone{
		"Best 5G smartphones under 30000": phones(4, "fiveg"),
	}}
	s := newSession(phones(3, "seed"), e)
	s.SelectBrand(context.Background(), "seed")

	n := s.BrowseCategory(context.Background(), Category5G)
	assert.Equal(t, 4, n)
	assert.Equal(t, "", s.Brand(), "category browse clears the brand filter")
	assert.Equal(t, "fiveg-0", s.Store.All()[0].ID)
}

func TestSession_RefreshVisibleIsIdentifierKeyed(t *testing.T) {
	refreshed := map[string]*catalog.Phone{}
	seed := phones(6, "seed")
	for i := 0; i < 4; i++ {
		p := phone("live-"+seed[i].ID, seed[i].Name+" (live)", 11111)
		refreshed[seed[i].Name] = &p
	}
	e := &stubEnricher{byQuery: refreshed}
	s := newSession(seed, e)

	updated := s.RefreshVisible(context.Background())
	assert.Equal(t, 4, updated, "refresh targets the top visible records only")

	all := s.Store.All()
	for i := 0; i < 4; i++ {
		assert.Equal(t, "live-seed-"+fmt.Sprint(i), all[i].ID, "result lands in the slot it targeted")
	}
	assert.Equal(t, "seed-4", all[4].ID, "records past the fan-out stay untouched")
	assert.Equal(t, 6, s.Store.Len())
}

func TestSession_RefreshVisiblePartialFailure(t *testing.T) {
	seed := phones(4, "seed")
	p := phone("live", seed[2].Name+" live", 1)
	e := &stubEnricher{byQuery: map[string]*catalog.Phone{seed[2].Name: &p}}
	s := newSession(seed, e)

	assert.Equal(t, 1, s.RefreshVisible(context.Background()))
	assert.Equal(t, "live", s.Store.All()[2].ID)
	assert.Equal(t, "seed-0", s.Store.All()[0].ID, "failed fetches leave their slots alone")
}

func TestSession_ToggleSelectCap(t *testing.T) {
	s := newSession(phones(5, "seed"), nil)
	all := s.Store.All()

	for i := 0; i < catalog.BrowseSelectionCap; i++ {
		require.NoError(t, s.ToggleSelect(all[i]))
	}
	err := s.ToggleSelect(all[3])
	assert.ErrorIs(t, err, catalog.ErrSelectionFull)
	assert.Equal(t, catalog.BrowseSelectionCap, s.Selection().Len())
}

func TestSession_CompareNowNeedsTwo(t *testing.T) {
	s := newSession(phones(5, "seed"), nil)
	require.NoError(t, s.ToggleSelect(s.Store.All()[0]))

	err := s.CompareNow()
	assert.ErrorIs(t, err, ErrNeedTwo)
	assert.Equal(t, ViewHome, s.Router.Current(), "disabled action must not navigate")

	require.NoError(t, s.ToggleSelect(s.Store.All()[1]))
	require.NoError(t, s.CompareNow())
	assert.Equal(t, ViewCompare, s.Router.Current())
	assert.Equal(t, 2, s.Compare().Len())
}

func TestSession_CompareFromDetailSeedsRival(t *testing.T) {
	s := newSession(phones(5, "seed"), nil)
	x := s.Store.All()[3]

	s.CompareFrom(x)
	assert.Equal(t, ViewCompare, s.Router.Current())
	got := s.Compare().Phones()
	require.Len(t, got, 2, "seeded comparison has exactly two records")
	assert.Equal(t, x.ID, got[0].ID)
	assert.NotEqual(t, x.ID, got[1].ID, "rival must be a distinct record")
}

func TestSession_CompareFromNonEmptyAdds(t *testing.T) {
	s := newSession(phones(6, "seed"), nil)
	all := s.Store.All()
	s.CompareFrom(all[0])
	s.CompareFrom(all[2])
	assert.Equal(t, 3, s.Compare().Len())
	// Re-adding a member is a no-op.
	s.CompareFrom(all[2])
	assert.Equal(t, 3, s.Compare().Len())
}

func TestSession_AddToCompareLocalFirst(t *testing.T) {
	e := &stubEnricher{}
	s := newSession([]catalog.Phone{
		phone("a", "Galaxy S24", 1),
		phone("b", "Pixel 8", 2),
		phone("c", "OnePlus 12", 3),
	}, e)
	s.CompareFrom(s.Store.All()[0])

	require.NoError(t, s.AddToCompare(context.Background(), "oneplus"))
	assert.Empty(t, e.queries, "local match must not call out")
	assert.True(t, s.Compare().Contains("c"))
}

func TestSession_AddToCompareRemoteFallbackAndMiss(t *testing.T) {
	fetched := phone("iphone-4s", "Apple iPhone 4S", 9999)
	e := &stubEnricher{byQuery: map[string]*catalog.Phone{"iPhone 4S": &fetched}}
	s := newSession(phones(3, "seed"), e)
	s.CompareFrom(s.Store.All()[0])

	require.NoError(t, s.AddToCompare(context.Background(), "iPhone 4S"))
	assert.True(t, s.Compare().Contains("iphone-4s"))
	_, inCatalog := s.Store.Get("iphone-4s")
	assert.True(t, inCatalog, "remotely resolved phone joins the catalog too")

	err := s.AddToCompare(context.Background(), "no such phone")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestSession_RemoveFromCompareFloor(t *testing.T) {
	s := newSession(phones(4, "seed"), nil)
	s.CompareFrom(s.Store.All()[0])
	got := s.Compare().Phones()

	require.NoError(t, s.RemoveFromCompare(got[0].ID))
	err := s.RemoveFromCompare(got[1].ID)
	assert.ErrorIs(t, err, catalog.ErrLastRemaining)
	assert.Equal(t, 1, s.Compare().Len())
}

func TestSession_FilterChangeResetsPagination(t *testing.T) {
	s := newSession(phones(30, "seed"), &stubEnricher{popular: phones(1, "x")})
	s.LoadMore(context.Background())
	require.Equal(t, 2, s.Pages())

	s.SetCeiling(50000)
	assert.Equal(t, 1, s.Pages())

	s.LoadMore(context.Background())
	s.ResetFilters()
	assert.Equal(t, 1, s.Pages())
	assert.Equal(t, 200000, s.Ceiling(), "reset restores the ceiling to its maximum")
}

func TestSession_ErrNotFoundAfterBothPathsIsSilent(t *testing.T) {
	// The "could not find" alert only fires after a completed attempt; the
	// search itself reports an outcome, not an error.
	e := &stubEnricher{}
	s := newSession(nil, e)
	out, err := s.Search(context.Background(), "anything")
	assert.NoError(t, err)
	assert.Equal(t, SearchNotFound, out)
	assert.GreaterOrEqual(t, len(e.queries)+len(e.topics), 2, "both remote paths were attempted")
}
