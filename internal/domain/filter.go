package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Hour bounds of a time-of-day filter. A range of [MinHour, MaxHour] does not restrict anything.
const (
	MinHour = 0
	MaxHour = 24
)

// Fallback price bounds used when there are no offers to derive them from.
const (
	FallbackMinPrice = 0
	FallbackMaxPrice = 10000
)

// SortKey selects the ordering applied to filtered offers.
type SortKey string

// Available sort keys.
const (
	SortPriceAsc      SortKey = "price-asc"
	SortPriceDesc     SortKey = "price-desc"
	SortDurationAsc   SortKey = "duration-asc"
	SortDurationDesc  SortKey = "duration-desc"
	SortStopsAsc      SortKey = "stops-asc"
	SortDepartureAsc  SortKey = "departure-asc"
	SortDepartureDesc SortKey = "departure-desc"
)

// DefaultSortKey is used when the caller does not choose one.
const DefaultSortKey = SortPriceAsc

// SortKeys lists every recognised sort key in display order.
var SortKeys = []SortKey{
	SortPriceAsc,
	SortPriceDesc,
	SortDurationAsc,
	SortDurationDesc,
	SortStopsAsc,
	SortDepartureAsc,
	SortDepartureDesc,
}

// IsValid checks if the sort key is one of the recognised values.
func (k SortKey) IsValid() bool {
	return slices.Contains(SortKeys, k)
}

// ParseSortKey normalises s into a SortKey.
// Empty input yields DefaultSortKey. Unrecognised keys are returned as-is;
// sorting by them leaves offers in input order.
func ParseSortKey(s string) SortKey {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSortKey
	}
	return SortKey(s)
}

// PriceRange is a closed price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewPriceRange creates a PriceRange, rejecting negative or inverted bounds.
func NewPriceRange(min, max float64) (PriceRange, error) {
	r := PriceRange{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return PriceRange{}, err
	}
	return r, nil
}

// Validate checks that 0 <= Min <= Max.
func (r PriceRange) Validate() error {
	if r.Min < 0 || r.Max < 0 {
		return NewValidationError("priceRange", "bounds must not be negative")
	}
	if r.Min > r.Max {
		return NewValidationError("priceRange", fmt.Sprintf("min %.2f is greater than max %.2f", r.Min, r.Max))
	}
	return nil
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// HourRange is a closed interval of hours of the day within [0, 24].
type HourRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FullHourRange returns the unrestricted range [0, 24].
func FullHourRange() HourRange {
	return HourRange{Start: MinHour, End: MaxHour}
}

// NewHourRange creates an HourRange, rejecting values outside [0, 24] or inverted bounds.
func NewHourRange(start, end int) (HourRange, error) {
	r := HourRange{Start: start, End: end}
	if err := r.validate("timeRange"); err != nil {
		return HourRange{}, err
	}
	return r, nil
}

func (r HourRange) validate(field string) error {
	if r.Start < MinHour || r.End > MaxHour {
		return NewValidationError(field, fmt.Sprintf("hours must be between %d and %d", MinHour, MaxHour))
	}
	if r.Start > r.End {
		return NewValidationError(field, fmt.Sprintf("start %d is after end %d", r.Start, r.End))
	}
	return nil
}

// IsFull reports whether the range places no restriction on the hour.
func (r HourRange) IsFull() bool {
	return r.Start <= MinHour && r.End >= MaxHour
}

// Contains reports whether hour lies within the range, bounds included.
func (r HourRange) Contains(hour int) bool {
	return hour >= r.Start && hour <= r.End
}

// FilterConfiguration holds the caller's current filter choices.
//
// It is a value type: every update returns a new configuration and never
// shares slice storage with the receiver. An empty set (Stops, Airlines,
// CabinClasses) means "accept everything", not "accept nothing".
type FilterConfiguration struct {
	PriceRange         PriceRange `json:"priceRange"`
	Stops              []int      `json:"stops"`
	Airlines           []string   `json:"airlines"`
	CabinClasses       []string   `json:"cabinClasses"`
	DepartureTimeRange HourRange  `json:"departureTimeRange"`
	ArrivalTimeRange   HourRange  `json:"arrivalTimeRange"`
}

// NewFilterConfiguration returns a configuration with the given price range,
// empty sets and full time ranges.
func NewFilterConfiguration(priceRange PriceRange) FilterConfiguration {
	return FilterConfiguration{
		PriceRange:         priceRange,
		Stops:              []int{},
		Airlines:           []string{},
		CabinClasses:       []string{},
		DepartureTimeRange: FullHourRange(),
		ArrivalTimeRange:   FullHourRange(),
	}
}

// Validate checks every interval in the configuration.
func (c FilterConfiguration) Validate() error {
	if err := c.PriceRange.Validate(); err != nil {
		return err
	}
	for _, s := range c.Stops {
		if s < 0 {
			return NewValidationError("stops", "stop counts must not be negative")
		}
	}
	if err := c.DepartureTimeRange.validate("departureTimeRange"); err != nil {
		return err
	}
	return c.ArrivalTimeRange.validate("arrivalTimeRange")
}

// Clone returns a deep copy of the configuration.
func (c FilterConfiguration) Clone() FilterConfiguration {
	c.Stops = cloneOrEmpty(c.Stops)
	c.Airlines = cloneOrEmpty(c.Airlines)
	c.CabinClasses = cloneOrEmpty(c.CabinClasses)
	return c
}

// WithPriceRange returns a copy with a new price range.
func (c FilterConfiguration) WithPriceRange(min, max float64) (FilterConfiguration, error) {
	r, err := NewPriceRange(min, max)
	if err != nil {
		return c, err
	}
	out := c.Clone()
	out.PriceRange = r
	return out, nil
}

// WithDepartureTimeRange returns a copy with a new departure hour range.
func (c FilterConfiguration) WithDepartureTimeRange(start, end int) (FilterConfiguration, error) {
	r := HourRange{Start: start, End: end}
	if err := r.validate("departureTimeRange"); err != nil {
		return c, err
	}
	out := c.Clone()
	out.DepartureTimeRange = r
	return out, nil
}

// WithArrivalTimeRange returns a copy with a new arrival hour range.
func (c FilterConfiguration) WithArrivalTimeRange(start, end int) (FilterConfiguration, error) {
	r := HourRange{Start: start, End: end}
	if err := r.validate("arrivalTimeRange"); err != nil {
		return c, err
	}
	out := c.Clone()
	out.ArrivalTimeRange = r
	return out, nil
}

// ToggleStop adds stops to the accepted set, or removes it if already present.
func (c FilterConfiguration) ToggleStop(stops int) FilterConfiguration {
	out := c.Clone()
	out.Stops = toggle(out.Stops, stops)
	return out
}

// ToggleAirline adds the carrier code to the accepted set, or removes it if already present.
func (c FilterConfiguration) ToggleAirline(code string) FilterConfiguration {
	out := c.Clone()
	out.Airlines = toggle(out.Airlines, strings.ToUpper(code))
	return out
}

// ToggleCabinClass adds the cabin class to the accepted set, or removes it if already present.
func (c FilterConfiguration) ToggleCabinClass(cabin string) FilterConfiguration {
	out := c.Clone()
	out.CabinClasses = toggle(out.CabinClasses, strings.ToUpper(cabin))
	return out
}

func toggle[T comparable](set []T, v T) []T {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(set, i, i+1)
	}
	return append(set, v)
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}

// FilterBuilder assembles a FilterConfiguration and validates it on Build.
type FilterBuilder struct {
	cfg FilterConfiguration
}

// NewFilterBuilder starts from a copy of base.
func NewFilterBuilder(base FilterConfiguration) *FilterBuilder {
	return &FilterBuilder{cfg: base.Clone()}
}

// PriceRange sets the price interval.
func (b *FilterBuilder) PriceRange(min, max float64) *FilterBuilder {
	b.cfg.PriceRange = PriceRange{Min: min, Max: max}
	return b
}

// Stops replaces the accepted stop counts.
func (b *FilterBuilder) Stops(stops ...int) *FilterBuilder {
	b.cfg.Stops = cloneOrEmpty(stops)
	return b
}

// Airlines replaces the accepted carrier codes.
func (b *FilterBuilder) Airlines(codes ...string) *FilterBuilder {
	b.cfg.Airlines = upperAll(codes)
	return b
}

// CabinClasses replaces the accepted cabin classes.
func (b *FilterBuilder) CabinClasses(cabins ...string) *FilterBuilder {
	b.cfg.CabinClasses = upperAll(cabins)
	return b
}

// DepartureTimeRange sets the departure hour interval.
func (b *FilterBuilder) DepartureTimeRange(start, end int) *FilterBuilder {
	b.cfg.DepartureTimeRange = HourRange{Start: start, End: end}
	return b
}

// ArrivalTimeRange sets the arrival hour interval.
func (b *FilterBuilder) ArrivalTimeRange(start, end int) *FilterBuilder {
	b.cfg.ArrivalTimeRange = HourRange{Start: start, End: end}
	return b
}

// Build validates and returns the configuration.
func (b *FilterBuilder) Build() (FilterConfiguration, error) {
	if err := b.cfg.Validate(); err != nil {
		return FilterConfiguration{}, err
	}
	return b.cfg.Clone(), nil
}

func upperAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToUpper(strings.TrimSpace(v)))
	}
	return out
}

// FilterBounds describes the filter choices available for a set of offers.
type FilterBounds struct {
	// Stops are the distinct outbound stop counts, ascending
	Stops []int `json:"stops"`

	// Airlines are the distinct outbound carriers in order of first occurrence
	Airlines []string `json:"airlines"`

	// CabinClasses are the distinct cabin classes in order of first occurrence
	CabinClasses []string `json:"cabinClasses"`

	// MinPrice is the floor of the lowest observed price
	MinPrice float64 `json:"minPrice"`

	// MaxPrice is the ceiling of the highest observed price
	MaxPrice float64 `json:"maxPrice"`
}
