package guardian

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown wherever a value is absent
const Placeholder = "None"

// Identity is a caller or mentioned user as the chat platform reports it
type Identity struct {
	ID        string
	Name      string
	AvatarURL string
	Mention   string
}

// Category is one of the two inventory kinds
type Category string

const (
	CategoryHero  Category = "hero"
	CategoryEquip Category = "equip"
)

var categorySynonyms = map[string]Category{
	"heroes":     CategoryHero,
	"hero":       CategoryHero,
	"h":          CategoryHero,
	"equipments": CategoryEquip,
	"equipment":  CategoryEquip,
	"equips":     CategoryEquip,
	"equip":      CategoryEquip,
	"e":          CategoryEquip,
}

var folder = cases.Fold()

// ParseCategory resolves a user supplied category name, ignoring case
func ParseCategory(s string) (Category, bool) {
	category, ok := categorySynonyms[folder.String(strings.TrimSpace(s))]
	return category, ok
}

// Header returns the inventory heading for count items. Exactly one item is
// singular, anything else plural.
func (c Category) Header(count int) string {
	var singular, plural string
	switch c {
	case CategoryHero:
		singular, plural = "Unique Hero", "Unique Heroes"
	case CategoryEquip:
		singular, plural = "Epic Exclusive Equipment", "Epic Exclusive Equipments"
	default:
		return ""
	}
	if count == 1 {
		return singular
	}
	return plural
}

// Profile is the read view of one guardian
type Profile struct {
	GuardianID  string
	DisplayName string
	AvatarURL   string
	Username    string
	Gems        int64
	GemsDisplay string
	HeroCount   int
	EquipCount  int
	GuildName   string
	GuildID     string
	Position    string
}

// Inventory is one category of items owned by a guardian
type Inventory struct {
	GuardianID  string
	DisplayName string
	AvatarURL   string
	Category    Category
	Header      string
	Items       []string
}

// Body renders the items one per line, or the placeholder when empty
func (i *Inventory) Body() string {
	if len(i.Items) == 0 {
		return Placeholder
	}
	return strings.Join(i.Items, "\n")
}

// Notice is an informational reply to a successful command
type Notice struct {
	Message string
	// Created is set when the command created something new
	Created bool
}

var gemsPrinter = message.NewPrinter(language.English)

// FormatGems groups digits by thousands, 1500 -> 1,500
func FormatGems(gems int64) string {
	return gemsPrinter.Sprintf("%d", gems)
}

func valueOr(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}
