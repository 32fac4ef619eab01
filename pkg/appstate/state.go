// Package appstate models the site's client-side state as an explicit value.
// Every action is a pure function returning a new State; inputs are never mutated.
package appstate

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ListingType filters listings by transaction type.
type ListingType string

const (
	ListingAll  ListingType = "all"
	ListingRent ListingType = "rent"
	ListingSale ListingType = "sale"
)

// Category filters listings by property category.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryApartment  Category = "apartment"
	CategoryHouse      Category = "house"
	CategoryCommercial Category = "commercial"
)

// OfferStatus is the lifecycle state of an offer.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// DefaultMaxPrice is the upper price bound of the default filters.
const DefaultMaxPrice = 10000000

// User is the signed-in visitor.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Offer is a buyer's offer on a property.
type Offer struct {
	ID         string      `json:"id"`
	PropertyID string      `json:"propertyId"`
	BuyerID    string      `json:"buyerId"`
	Amount     float64     `json:"amount"`
	Message    string      `json:"message"`
	Status     OfferStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Filters narrows the property listing.
type Filters struct {
	Type      ListingType `json:"type"`
	Category  Category    `json:"category"`
	MinPrice  float64     `json:"minPrice"`
	MaxPrice  float64     `json:"maxPrice"`
	Location  string      `json:"location"`
	Bedrooms  int         `json:"bedrooms"`
	Bathrooms int         `json:"bathrooms"`
	Amenities []string    `json:"amenities"`
}

// State is the whole client state for one browser session.
type State struct {
	SessionID   string   `json:"sessionId"`
	User        *User    `json:"user,omitempty"`
	Favorites   []string `json:"favorites"`
	Offers      []Offer  `json:"offers"`
	DarkMode    bool     `json:"darkMode"`
	SearchQuery string   `json:"searchQuery"`
	Filters     Filters  `json:"filters"`
}

// DefaultFilters returns the filters a fresh session starts with.
func DefaultFilters() Filters {
	return Filters{
		Type:      ListingAll,
		Category:  CategoryAll,
		MinPrice:  0,
		MaxPrice:  DefaultMaxPrice,
		Amenities: []string{},
	}
}

// NewSession returns the initial state with a fresh session id.
func NewSession() State {
	return State{
		SessionID: uuid.NewString(),
		Favorites: []string{},
		Offers:    []Offer{},
		Filters:   DefaultFilters(),
	}
}

// clone copies the slices and pointers a reducer may touch.
func (s State) clone() State {
	out := s
	out.Favorites = slices.Clone(s.Favorites)
	out.Offers = slices.Clone(s.Offers)
	out.Filters.Amenities = slices.Clone(s.Filters.Amenities)
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}

// SetUser signs a user in, or out when user is nil.
func SetUser(s State, user *User) State {
	out := s.clone()
	if user == nil {
		out.User = nil
		return out
	}
	u := *user
	out.User = &u
	return out
}

// ToggleFavorite adds the property to favorites, or removes it if present.
func ToggleFavorite(s State, propertyID string) State {
	out := s.clone()
	if i := slices.Index(out.Favorites, propertyID); i >= 0 {
		out.Favorites = slices.Delete(out.Favorites, i, i+1)
		return out
	}
	out.Favorites = append(out.Favorites, propertyID)
	return out
}

// IsFavorite reports whether the property is a favorite.
func IsFavorite(s State, propertyID string) bool {
	return slices.Contains(s.Favorites, propertyID)
}

// AddOffer appends an offer. Missing ids, statuses and timestamps are filled in.
func AddOffer(s State, offer Offer, now time.Time) State {
	out := s.clone()
	if offer.ID == "" {
		offer.ID = uuid.NewString()
	}
	if offer.Status == "" {
		offer.Status = OfferPending
	}
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = now
	}
	out.Offers = append(out.Offers, offer)
	return out
}

// UpdateOfferStatus sets the status of the offer with the given id. Unknown ids
// leave the state unchanged.
func UpdateOfferStatus(s State, id string, status OfferStatus) State {
	out := s.clone()
	for i := range out.Offers {
		if out.Offers[i].ID == id {
			out.Offers[i].Status = status
		}
	}
	return out
}

// ToggleDarkMode flips the dark-mode preference.
func ToggleDarkMode(s State) State {
	out := s.clone()
	out.DarkMode = !out.DarkMode
	return out
}

// SetSearchQuery replaces the search query.
func SetSearchQuery(s State, query string) State {
	out := s.clone()
	out.SearchQuery = strings.TrimSpace(query)
	return out
}

// FilterPatch holds a partial filter update; nil fields are left unchanged.
type FilterPatch struct {
	Type      *ListingType
	Category  *Category
	MinPrice  *float64
	MaxPrice  *float64
	Location  *string
	Bedrooms  *int
	Bathrooms *int
	Amenities []string
}

// SetFilters merges the patch into the current filters.
func SetFilters(s State, patch FilterPatch) State {
	out := s.clone()
	f := &out.Filters
	if patch.Type != nil {
		f.Type = *patch.Type
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.MinPrice != nil {
		f.MinPrice = *patch.MinPrice
	}
	if patch.MaxPrice != nil {
		f.MaxPrice = *patch.MaxPrice
	}
	if patch.Location != nil {
		f.Location = *patch.Location
	}
	if patch.Bedrooms != nil {
		f.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		f.Bathrooms = *patch.Bathrooms
	}
	if patch.Amenities != nil {
		f.Amenities = slices.Clone(patch.Amenities)
	}
	return out
}

// ResetFilters restores the default filters.
func ResetFilters(s State) State {
	out := s.clone()
	out.Filters = DefaultFilters()
	return out
}
