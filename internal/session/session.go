// Package session holds the single explicit session-state struct: catalog,
// filters, pagination, comparison selection and the view state machine.
// Everything the screens read or write lives here; there are no ambient
// singletons. All mutation is single-threaded; the only concurrency is the
// refresh fan-out, whose results are applied as identifier-keyed writes.
package session

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"phonedex/internal/catalog"
	"phonedex/internal/config"
)

// Enricher is the remote-source surface the session needs. Satisfied by
// *enrich.Client; tests substitute a stub. All operations fail soft.
type Enricher interface {
	FetchByQuery(ctx context.Context, query string) *catalog.Phone
	FetchByBrandOrTopic(ctx context.Context, topic string) []catalog.Phone
	FetchMorePopular(ctx context.Context, excludeNames []string) []catalog.Phone
	Advice(ctx context.Context, question string) string
}

// Category is one of the canned browse categories on the home view.
type Category string

const (
	CategoryLatest   Category = "latest"
	CategoryUpcoming Category = "upcoming"
	Category5G       Category = "5g"
	CategoryCamera   Category = "camera"
)

// categoryQueries maps a category to the phrase sent to the remote source.
var categoryQueries = map[Category]string{
	CategoryLatest:   "Latest flagship smartphones 2024 2025",
	CategoryUpcoming: "Upcoming smartphones launching soon",
	Category5G:       "Best 5G smartphones under 30000",
	CategoryCamera:   "Best camera phones 200MP",
}

// SearchOutcome says how a search resolved.
type SearchOutcome int

const (
	// SearchFoundLocal matched an existing record; it was promoted to the
	// front and no remote call was made.
	SearchFoundLocal SearchOutcome = iota
	// SearchFetched resolved one record remotely and merged it in.
	SearchFetched
	// SearchFetchedRelated fell back to a topic fetch after the exact
	// lookup missed.
	SearchFetchedRelated
	// SearchNotFound exhausted both paths; caller shows a notice.
	SearchNotFound
)

// LoadOutcome says how a load-more resolved.
type LoadOutcome int

const (
	// LoadPaged revealed already-filtered local records.
	LoadPaged LoadOutcome = iota
	// LoadFetched grew the catalog from the remote source.
	LoadFetched
	// LoadExhausted found nothing new; caller shows "no more phones found".
	LoadExhausted
)

// Errors surfaced as inline notices; none of them change state.
var (
	ErrEmptyQuery  = errors.New("query is empty")
	ErrNeedTwo     = errors.New("need at least 2 phones to compare")
	ErrNoMatch     = errors.New("could not find that phone")
	ErrCompareFull = catalog.ErrSelectionFull
)

// Session is the top-of-tree mutable state, passed by reference to
// whichever screen needs read/write access.
type Session struct {
	Store  *catalog.Store
	Router Router

	enricher Enricher
	cfg      config.BrowseConfig
	log      *zap.Logger

	ceiling int
	brand   string
	pages   int

	selection *catalog.Selection // browse-screen picks, cap 3
	compare   *catalog.Selection // compare-screen list, cap 4
}

// New creates a session over the given catalog records.
func New(phones []catalog.Phone, enricher Enricher, cfg config.BrowseConfig, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		Store:     catalog.NewStore(phones),
		enricher:  enricher,
		cfg:       cfg,
		log:       log,
		ceiling:   cfg.DefaultCeiling,
		pages:     1,
		selection: catalog.NewSelection(catalog.BrowseSelectionCap),
		compare:   catalog.NewSelection(catalog.CompareSelectionCap),
	}
}

// Filter state accessors.

// Enabled reports whether a remote enrichment source is wired up.
func (s *Session) Enabled() bool { return s.enricher != nil }

func (s *Session) Ceiling() int  { return s.ceiling }
func (s *Session) Brand() string { return s.brand }
func (s *Session) Pages() int    { return s.pages }

// Selection returns the browse-screen comparison picks.
func (s *Session) Selection() *catalog.Selection { return s.selection }

// Compare returns the compare-screen list.
func (s *Session) Compare() *catalog.Selection { return s.compare }

// Filtered returns all records passing the current filters.
func (s *Session) Filtered() []catalog.Phone {
	return catalog.Filter(s.Store.All(), s.ceiling, s.brand)
}

// Visible returns the filtered, paginated slice currently rendered.
func (s *Session) Visible() []catalog.Phone {
	return catalog.Visible(s.Store.All(), s.ceiling, s.brand, s.pages)
}

// SetCeiling changes the price ceiling and resets pagination.
func (s *Session) SetCeiling(p int) {
	if p < 0 {
		p = 0
	}
	if p > s.cfg.MaxPrice {
		p = s.cfg.MaxPrice
	}
	s.ceiling = p
	s.pages = 1
}

// ResetFilters restores the ceiling to its maximum and clears the brand
// filter; this is the "no results" recovery action.
func (s *Session) ResetFilters() {
	s.ceiling = s.cfg.MaxPrice
	s.brand = ""
	s.pages = 1
}

// Search resolves a free-text query: existing catalog first (loose
// case-insensitive name match), remote detail fetch on miss, topic fetch as
// a last resort. A local hit promotes the record and relaxes the filters so
// it is actually visible.
func (s *Session) Search(ctx context.Context, query string) (SearchOutcome, error) {
	if strings.TrimSpace(query) == "" {
		return SearchNotFound, ErrEmptyQuery
	}
	if p, ok := s.Store.FindByName(query); ok {
		s.Store.PromoteToFront(p.ID)
		s.brand = ""
		s.ceiling = s.cfg.DefaultCeiling
		s.pages = 1
		s.log.Debug("search hit local catalog", zap.String("query", query), zap.String("id", p.ID))
		return SearchFoundLocal, nil
	}
	if s.enricher == nil {
		return SearchNotFound, nil
	}
	if p := s.enricher.FetchByQuery(ctx, query); p != nil {
		s.Store.Merge([]catalog.Phone{*p})
		s.brand = ""
		s.ceiling = s.cfg.DefaultCeiling
		s.pages = 1
		return SearchFetched, nil
	}
	if related := s.enricher.FetchByBrandOrTopic(ctx, query); len(related) > 0 {
		s.Store.Merge(related)
		s.brand = ""
		s.pages = 1
		return SearchFetchedRelated, nil
	}
	return SearchNotFound, nil
}

// SelectBrand toggles the brand filter. Selecting a brand with fewer than
// the threshold of local matches backfills from the remote source.
// Returns how many records were fetched.
func (s *Session) SelectBrand(ctx context.Context, name string) int {
	s.pages = 1
	if s.brand == name {
		s.brand = ""
		return 0
	}
	s.brand = name
	if s.enricher == nil || s.Store.CountMatching(name) >= s.cfg.BrandThreshold {
		return 0
	}
	fetched := s.enricher.FetchByBrandOrTopic(ctx, name)
	n := s.Store.Merge(fetched)
	s.log.Debug("brand backfill", zap.String("brand", name), zap.Int("merged", n))
	return n
}

// BrowseCategory fetches a canned category list and prepends it. Clears the
// brand filter and restores the ceiling so the new records are visible.
func (s *Session) BrowseCategory(ctx context.Context, cat Category) int {
	query, ok := categoryQueries[cat]
	if !ok || s.enricher == nil {
		return 0
	}
	s.brand = ""
	s.ceiling = s.cfg.DefaultCeiling
	s.pages = 1
	return s.Store.Merge(s.enricher.FetchByBrandOrTopic(ctx, query))
}

// LoadMore reveals the next page while hidden filtered records remain;
// once the visible slice holds every filtered record it falls through to
// the remote source for open-ended growth.
func (s *Session) LoadMore(ctx context.Context) LoadOutcome {
	if len(s.Visible()) < len(s.Filtered()) {
		s.pages++
		return LoadPaged
	}
	if s.enricher == nil {
		return LoadExhausted
	}
	fetched := s.enricher.FetchMorePopular(ctx, s.Store.Names())
	if s.Store.Append(fetched) == 0 {
		return LoadExhausted
	}
	s.pages++
	return LoadFetched
}

// RefreshVisible re-fetches details for the top visible records, fanning
// out up to the configured number of concurrent calls. Each result is
// applied keyed to the identifier it targeted, so completion order is
// irrelevant and a record that disappeared meanwhile stays gone. Returns
// how many records were updated.
func (s *Session) RefreshVisible(ctx context.Context) int {
	if s.enricher == nil {
		return 0
	}
	top := s.Visible()
	fanout := s.cfg.RefreshFanout
	if fanout < 1 {
		fanout = 1
	}
	if len(top) > fanout {
		top = top[:fanout]
	}

	results := make([]*catalog.Phone, len(top))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fanout)
	for i, p := range top {
		g.Go(func() error {
			results[i] = s.enricher.FetchByQuery(ctx, p.Name)
			return nil
		})
	}
	_ = g.Wait() // fetches fail soft, nothing to propagate

	updated := 0
	for i, res := range results {
		if res == nil {
			continue
		}
		if s.Store.Replace(top[i].ID, *res) {
			updated++
		}
	}
	s.log.Debug("refreshed visible records", zap.Int("targeted", len(top)), zap.Int("updated", updated))
	return updated
}

// ToggleSelect adds or removes a phone from the browse-screen picks.
// At the cap it returns ErrSelectionFull and changes nothing.
func (s *Session) ToggleSelect(p catalog.Phone) error {
	return s.selection.Toggle(p)
}

// CompareNow promotes the browse picks to the compare screen. With fewer
// than 2 picks the action is disabled: no state change, ErrNeedTwo.
func (s *Session) CompareNow() error {
	if s.selection.Len() < 2 {
		return ErrNeedTwo
	}
	s.compare = catalog.NewCompareList(s.selection.Phones())
	s.Router.GoCompare()
	return nil
}

// CompareFrom starts a comparison from a detail view. An empty comparison
// list is seeded with the clicked phone plus one arbitrary other catalog
// record, so the compare screen never renders a single item.
func (s *Session) CompareFrom(p catalog.Phone) {
	if s.compare.Len() == 0 {
		seed := []catalog.Phone{p}
		if rival, ok := s.Store.AnyOther(p.ID); ok {
			seed = append(seed, rival)
		}
		s.compare = catalog.NewCompareList(seed)
	} else if err := s.compare.Add(p); err != nil {
		s.log.Debug("compare list full, ignoring add", zap.String("id", p.ID))
	}
	s.Router.GoCompare()
}

// AddToCompare resolves a query (existing catalog first, then the remote
// source) and adds the result to the compare list.
func (s *Session) AddToCompare(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	if s.compare.Len() >= s.compare.Cap() {
		return ErrCompareFull
	}
	if p, ok := s.Store.FindByName(query); ok {
		return s.compare.Add(p)
	}
	if s.enricher != nil {
		if p := s.enricher.FetchByQuery(ctx, query); p != nil {
			s.Store.Merge([]catalog.Phone{*p})
			return s.compare.Add(*p)
		}
	}
	return ErrNoMatch
}

// RemoveFromCompare drops a phone from the compare list, keeping at least
// one record.
func (s *Session) RemoveFromCompare(id string) error {
	return s.compare.Remove(id)
}

// Advice forwards a question to the assistant; with no remote configured a
// fixed instructional message comes back.
func (s *Session) Advice(ctx context.Context, question string) string {
	if s.enricher == nil {
		return "Assistant is not configured."
	}
	return s.enricher.Advice(ctx, question)
}
