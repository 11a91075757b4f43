package domain

import "time"

type DishCategory string

const (
	DishAppetizer DishCategory = "appetizer"
	DishSide      DishCategory = "side"
	DishMain      DishCategory = "main"
	DishDessert   DishCategory = "dessert"
	DishDrink     DishCategory = "drink"
	DishOther     DishCategory = "other"
)

// DishCategories in display order.
var DishCategories = []DishCategory{DishAppetizer, DishSide, DishMain, DishDessert, DishDrink, DishOther}

func (c DishCategory) Valid() bool {
	for _, k := range DishCategories {
		if c == k {
			return true
		}
	}
	return false
}

// CategoryLimits maps a category to its maximum number of signups. A
// category missing from the map is unlimited.
type CategoryLimits map[DishCategory]int

// Full reports whether another signup in c would exceed the limit given the
// current count.
func (l CategoryLimits) Full(c DishCategory, current int) bool {
	limit, ok := l[c]
	return ok && current >= limit
}

type PotluckEvent struct {
	ID          string
	CommunityID string
	Title       string
	Theme       string
	Description string
	EventDate   string // YYYY-MM-DD
	EventTime   string // HH:MM, optional
	Location    string
	Limits      CategoryLimits
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PotluckSummary struct {
	PotluckEvent
	SignupCount int
}

type PotluckSignup struct {
	ID        string
	EventID   string
	UserID    string
	DishName  string
	Category  DishCategory
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	User Person
}
