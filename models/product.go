package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryCourse       Category = "course"
	CategorySubscription Category = "subscription"
	CategorySoftware     Category = "software"
	CategoryEbook        Category = "ebook"
)

var Categories = []Category{CategoryCourse, CategorySubscription, CategorySoftware, CategoryEbook}

// CategoryDisplay holds the storefront labels for a category badge.
type CategoryDisplay struct {
	Singular string
	Plural   string
}

var CategoryDisplayNames = map[Category]CategoryDisplay{
	CategoryCourse:       {Singular: "Premium Course", Plural: "Premium Courses"},
	CategorySubscription: {Singular: "Premium Service", Plural: "Premium Services"},
	CategorySoftware:     {Singular: "Bundle Package", Plural: "Bundle Packages"},
	CategoryEbook:        {Singular: "Digital Guide", Plural: "Digital Guides"},
}

func ValidCategory(c Category) bool {
	_, ok := CategoryDisplayNames[c]
	return ok
}

// Duration is an alternate priced offering of a product (e.g. 6-month vs
// 1-year license), each with its own label and price.
type Duration struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	Category        Category        `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Image           string          `json:"image,omitempty"`
	IsFeatured      bool            `json:"is_featured"`
	Durations       []Duration      `json:"durations,omitempty"`
}

func (p *Product) HasDurations() bool {
	return len(p.Durations) > 0
}

// DisplayPrice is the price shown on listing cards: subscriptions with
// duration variants advertise their cheapest duration.
func (p *Product) DisplayPrice() decimal.Decimal {
	if p.Category == CategorySubscription && p.HasDurations() {
		min := p.Durations[0].Price
		for _, d := range p.Durations[1:] {
			if d.Price.LessThan(min) {
				min = d.Price
			}
		}
		return min
	}
	return p.Price
}

// DefaultSelection is the price and duration label used when a product is
// added to the cart without picking a variant. Subscriptions default to
// their first duration.
func (p *Product) DefaultSelection() (decimal.Decimal, *string) {
	if p.Category == CategorySubscription && p.HasDurations() {
		label := p.Durations[0].Label
		return p.Durations[0].Price, &label
	}
	return p.Price, nil
}

// FindDuration looks up a duration variant by its label.
func (p *Product) FindDuration(label string) (Duration, bool) {
	for _, d := range p.Durations {
		if d.Label == label {
			return d, true
		}
	}
	return Duration{}, false
}
