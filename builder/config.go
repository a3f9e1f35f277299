package builder

import "github.com/mtrade/tradeloop/metric"

// PriorityScheme selects how a want list's rank (its position, adjusted by
// semicolons) is converted into an edge cost.
type PriorityScheme int

const (
	// NoPriorities gives every want the same cost, regardless of rank.
	NoPriorities PriorityScheme = iota
	// Linear costs a want proportional to its rank.
	Linear
	// Triangle costs a want proportional to rank*(rank+1)/2.
	Triangle
	// Square costs a want proportional to rank squared.
	Square
	// Scaled behaves like Linear, then rescales every non-dummy item's
	// non-self-loop edge costs by scaledPriorityRange/n (n being the
	// number of such edges) after the item's full want list has been read.
	Scaled
	// Explicit takes the cost directly from "item=cost" tokens, and the
	// explicit cost becomes the current rank; a token without "=cost"
	// costs the current rank, as under Linear.
	Explicit
)

// Option configures a Build call. Options are applied in order, so a later
// option overrides an earlier one that touches the same field.
type Option func(*Options)

// Options holds every tunable Build accepts. The zero value is not ready
// to use; construct one via newOptions(opts...) so defaults are filled in.
type Options struct {
	CaseSensitive  bool
	AllowDummies   bool
	SortByItem     bool
	ShowRepeats    bool
	Metric         metric.Scheme
	PriorityScheme PriorityScheme
	SmallStep      uint64
	BigStep        uint64
	NonTradeCost   uint64
}

func newOptions(opts ...Option) Options {
	o := Options{
		ShowRepeats:  true,
		Metric:       metric.ChainSizesSOS,
		SmallStep:    DefaultSmallStep,
		BigStep:      DefaultBigStep,
		NonTradeCost: DefaultNonTradeCost,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCaseSensitive controls whether item names are matched against
// OfficialNames case-sensitively. Off by default, matching the reference
// parser. Node names and owners are not case-normalized: want-list lookups
// and same-owner checks always compare names exactly.
func WithCaseSensitive(v bool) Option {
	return func(o *Options) { o.CaseSensitive = v }
}

// WithAllowDummies permits "%name" items, which exist only to let a user
// mark an item as conditionally offered. Off by default; a dummy item
// encountered while this is false is recorded as an error and skipped.
func WithAllowDummies(v bool) Option {
	return func(o *Options) { o.AllowDummies = v }
}

// WithSortByItem changes how CycleNode names would be displayed by a
// formatter built on top of this package: by item name first when true,
// by owner first when false. Build uses it only to compute
// ParseData.MaxNameWidth, which has the same value either way.
func WithSortByItem(v bool) Option {
	return func(o *Options) { o.SortByItem = v }
}

// WithShowRepeats controls whether a duplicate want (the same item named
// twice in one want list) is recorded as an error. On by default.
func WithShowRepeats(v bool) Option {
	return func(o *Options) { o.ShowRepeats = v }
}

// WithMetric selects which scoring scheme a scheduler built on top of this
// graph should use to rank iterations. Nothing in this module reads it:
// Build does not evaluate it, and scheduler.Run takes its scheme from its
// own scheduler.WithMetric option.
func WithMetric(m metric.Scheme) Option {
	return func(o *Options) { o.Metric = m }
}

// WithPriorityScheme selects how want-list rank becomes edge cost.
func WithPriorityScheme(p PriorityScheme) Option {
	return func(o *Options) { o.PriorityScheme = p }
}

// WithSteps sets the rank increments: small is applied after every item in
// a want list, big is applied on top of that when a semicolon separates
// priority tiers.
func WithSteps(small, big uint64) Option {
	return func(o *Options) {
		o.SmallStep = small
		o.BigStep = big
	}
}

// WithNonTradeCost sets the cost used for every item's self-loop and for
// every edge leaving a dummy item.
func WithNonTradeCost(cost uint64) Option {
	return func(o *Options) { o.NonTradeCost = cost }
}
