package domain

import "fmt"

// Label is the content category of a corpus record.
type Label string

// The closed label set of the Hickory corpus.
const (
	LabelAbout    Label = "about"
	LabelCake     Label = "cake"
	LabelContact  Label = "contact"
	LabelDrinks   Label = "drinks"
	LabelEvents   Label = "events"
	LabelFood     Label = "food"
	LabelHome     Label = "home"
	LabelReviews  Label = "reviews"
	LabelServices Label = "services"
	LabelWines    Label = "wines"
)

// labels holds the set in canonical order (sorted, which fixes class indices).
var labels = []Label{
	LabelAbout, LabelCake, LabelContact, LabelDrinks, LabelEvents,
	LabelFood, LabelHome, LabelReviews, LabelServices, LabelWines,
}

var labelDescriptions = map[Label]string{
	LabelFood:     "Food Menu - This text describes a food or meal item",
	LabelDrinks:   "Drinks Menu - This text describes a beverage or cocktail",
	LabelWines:    "Wine List - This text describes a wine selection",
	LabelCake:     "Cake Menu - This text describes a cake or bakery item",
	LabelReviews:  "Customer Review - This text sounds like a customer review",
	LabelServices: "Services - This text describes a restaurant service",
	LabelAbout:    "About / Description - This text describes the restaurant",
	LabelHome:     "General Info - General restaurant information",
	LabelContact:  "Contact / Location - Location or contact information",
	LabelEvents:   "Events - Event-related information",
}

// Labels returns the full label set in canonical order. The returned slice is
// a copy; class indices used by the classifiers are positions in this order.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}

// ParseLabel validates a raw category string against the closed label set.
// Unknown categories are rejected, not passed through.
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if !l.IsValid() {
		return "", fmt.Errorf("category %q: %w", s, ErrUnknownLabel)
	}
	return l, nil
}

// IsValid checks membership in the closed label set.
func (l Label) IsValid() bool {
	_, ok := labelDescriptions[l]
	return ok
}

// Index returns the position of the label in canonical order, or -1.
func (l Label) Index() int {
	for i, v := range labels {
		if v == l {
			return i
		}
	}
	return -1
}

// Description returns the human-readable summary shown by the serving UI.
func (l Label) Description() string {
	return labelDescriptions[l]
}

func (l Label) String() string { return string(l) }
