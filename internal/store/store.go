package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/achrafgam07/realnest/internal/model"
)

// ErrUserNotFound is returned by Login when no seeded user matches the
// given email. Handlers should translate this into an HTTP 401.
var ErrUserNotFound = errors.New("user not found")

// Store is the catalog and booking store. It holds the user, property
// and booking collections in memory and writes each collection back to
// its named record after every mutation. The mutex serializes the
// read-modify-write cycles so concurrent handler calls cannot lose
// updates against each other.
//
// Collections are insertion-ordered and creation prepends, so listings
// and bookings come back newest first.
type Store struct {
	mu      sync.Mutex
	records RecordStore
	latency time.Duration

	users      []model.User
	properties []model.Property
	bookings   []model.Booking
	revenue    []model.RevenueData
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLatency makes every operation pause for d before touching the
// collections. Useful for exercising client loading states; the default
// is no delay.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// Open builds a store over the given record backend. Each collection is
// loaded verbatim from its persisted record when one exists, otherwise
// it is seeded from the reference dataset and written out. The revenue
// series is static and never persisted.
func Open(ctx context.Context, records RecordStore, opts ...Option) (*Store, error) {
	s := &Store{records: records, revenue: seedRevenue()}
	for _, opt := range opts {
		opt(s)
	}
	var err error
	if s.users, err = loadOrSeed(ctx, records, recordUsers, seedUsers); err != nil {
		return nil, err
	}
	if s.properties, err = loadOrSeed(ctx, records, recordProperties, seedProperties); err != nil {
		return nil, err
	}
	if s.bookings, err = loadOrSeed(ctx, records, recordBookings, seedBookings); err != nil {
		return nil, err
	}
	return s, nil
}

// loadOrSeed returns the persisted collection when present, else writes
// and returns the seed. No versioning or migration: whatever shape was
// persisted is what gets loaded.
func loadOrSeed[T any](ctx context.Context, records RecordStore, name string, seed func() []T) ([]T, error) {
	body, ok, err := records.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if ok {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", name, err)
		}
		return items, nil
	}
	items := seed()
	out, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode record %s: %w", name, err)
	}
	if err := records.Set(ctx, name, out); err != nil {
		return nil, err
	}
	return items, nil
}

// delay applies the configured artificial latency, honoring context
// cancellation while waiting.
func (s *Store) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// persistLocked serializes v into the named record. Callers must hold
// s.mu.
func (s *Store) persistLocked(ctx context.Context, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", name, err)
	}
	return s.records.Set(ctx, name, body)
}

// newID returns a prefixed timestamp identifier like "p_1712345678901234567".
// Nanosecond resolution makes collisions implausible in practice without
// claiming provable uniqueness.
func newID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// ----- auth / session -----

// Login matches email case-insensitively against the user collection.
// On success the matched user replaces any prior session record and is
// returned; on miss it fails with ErrUserNotFound.
func (s *Store) Login(ctx context.Context, email string) (model.User, error) {
	if err := s.delay(ctx); err != nil {
		return model.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			body, err := json.Marshal(u)
			if err != nil {
				return model.User{}, fmt.Errorf("encode session: %w", err)
			}
			if err := s.records.Set(ctx, recordSession, body); err != nil {
				return model.User{}, err
			}
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// Logout clears the session record. Logging out with no active session
// is not an error.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	return s.records.Delete(ctx, recordSession)
}

// CurrentUser reads the session record. The second return value reports
// whether a session exists; the stored user is not re-validated against
// the user collection.
func (s *Store) CurrentUser(ctx context.Context) (model.User, bool, error) {
	if err := s.delay(ctx); err != nil {
		return model.User{}, false, err
	}
	body, ok, err := s.records.Get(ctx, recordSession)
	if err != nil || !ok {
		return model.User{}, false, err
	}
	var u model.User
	if err := json.Unmarshal(body, &u); err != nil {
		return model.User{}, false, fmt.Errorf("decode session: %w", err)
	}
	return u, true, nil
}

// ----- properties -----

// PropertyFilter narrows a Properties listing. Query is matched
// case-insensitively as a substring of title, city or address. Type is
// compared exactly against the stored property type; empty or "ALL"
// disables the type filter.
type PropertyFilter struct {
	Query string
	Type  string
}

// Properties returns a copy of the property collection, optionally
// narrowed by filter, in insertion order (newest first).
func (s *Store) Properties(ctx context.Context, filter PropertyFilter) ([]model.Property, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Property, 0, len(s.properties))
	q := strings.ToLower(filter.Query)
	for _, p := range s.properties {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.City), q) &&
			!strings.Contains(strings.ToLower(p.Address), q) {
			continue
		}
		if filter.Type != "" && filter.Type != "ALL" && string(p.PropertyType) != filter.Type {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// PropertyByID looks up a single listing. A missing id is reported via
// the bool, not as an error.
func (s *Store) PropertyByID(ctx context.Context, id string) (model.Property, bool, error) {
	if err := s.delay(ctx); err != nil {
		return model.Property{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.properties {
		if p.ID == id {
			return p, true, nil
		}
	}
	return model.Property{}, false, nil
}

// PropertyInput carries the caller-supplied fields of a new listing.
// ID and status are always assigned by the store.
type PropertyInput struct {
	Title        string
	Description  string
	PriceCents   int64
	Currency     string
	Address      string
	City         string
	Country      string
	PropertyType model.PropertyType
	Bedrooms     int
	Bathrooms    int
	AreaSqm      int
	Images       []model.PropertyImage
	AgentName    string
}

// CreateProperty assigns a fresh id, fixes the status to AVAILABLE,
// prepends the listing and persists the collection.
func (s *Store) CreateProperty(ctx context.Context, in PropertyInput) (model.Property, error) {
	if err := s.delay(ctx); err != nil {
		return model.Property{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := model.Property{
		ID:           newID("p"),
		Title:        in.Title,
		Description:  in.Description,
		PriceCents:   in.PriceCents,
		Currency:     in.Currency,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		PropertyType: in.PropertyType,
		Status:       model.StatusAvailable,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		AreaSqm:      in.AreaSqm,
		Images:       in.Images,
		AgentName:    in.AgentName,
	}
	s.properties = append([]model.Property{p}, s.properties...)
	if err := s.persistLocked(ctx, recordProperties, s.properties); err != nil {
		return model.Property{}, err
	}
	return p, nil
}

// DeleteProperty removes the listing with the given id. Deleting a
// missing id is a silent no-op; the collection is persisted either way,
// which makes the operation idempotent.
func (s *Store) DeleteProperty(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.properties[:0:0]
	for _, p := range s.properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.properties = kept
	return s.persistLocked(ctx, recordProperties, s.properties)
}

// ----- bookings -----

// BookingsByUser returns the booking collection for dashboard views.
// userID and role are accepted for interface stability but not yet
// consulted: bookings carry no owner reference, so every caller,
// tenants included, currently sees the full set.
// TODO: record the requesting user's id on Booking at creation so
// tenant results can be scoped to their own bookings.
func (s *Store) BookingsByUser(ctx context.Context, userID string, role model.Role) ([]model.Booking, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

// BookingInput carries the caller-supplied fields of a new booking.
// The total price is taken as quoted; no per-night arithmetic is done
// on the date range.
type BookingInput struct {
	PropertyID      string
	PropertyName    string
	StartDate       string
	EndDate         string
	TotalPriceCents int64
}

// CreateBooking assigns a fresh id, fixes the status to PENDING,
// prepends the booking and persists the collection.
func (s *Store) CreateBooking(ctx context.Context, in BookingInput) (model.Booking, error) {
	if err := s.delay(ctx); err != nil {
		return model.Booking{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b := model.Booking{
		ID:              newID("b"),
		PropertyID:      in.PropertyID,
		PropertyName:    in.PropertyName,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Status:          model.BookingPending,
		TotalPriceCents: in.TotalPriceCents,
	}
	s.bookings = append([]model.Booking{b}, s.bookings...)
	if err := s.persistLocked(ctx, recordBookings, s.bookings); err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// ----- revenue -----

// RevenueData returns the static revenue reference series.
func (s *Store) RevenueData(ctx context.Context) ([]model.RevenueData, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	out := make([]model.RevenueData, len(s.revenue))
	copy(out, s.revenue)
	return out, nil
}
