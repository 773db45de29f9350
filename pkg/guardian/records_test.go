package guardian_test

import (
	"testing"

	"github.com/latoulicious/ailie/pkg/guardian"
	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  guardian.Category
		ok    bool
	}{
		{"heroes", guardian.CategoryHero, true},
		{"Hero", guardian.CategoryHero, true},
		{"H", guardian.CategoryHero, true},
		{"EQUIPMENTS", guardian.CategoryEquip, true},
		{"equipment", guardian.CategoryEquip, true},
		{"Equips", guardian.CategoryEquip, true},
		{"equip", guardian.CategoryEquip, true},
		{"e", guardian.CategoryEquip, true},
		{"pets", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := guardian.ParseCategory(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestCategoryHeader(t *testing.T) {
	assert.Equal(t, "Unique Heroes", guardian.CategoryHero.Header(0))
	assert.Equal(t, "Unique Hero", guardian.CategoryHero.Header(1))
	assert.Equal(t, "Unique Heroes", guardian.CategoryHero.Header(2))
	assert.Equal(t, "Epic Exclusive Equipment", guardian.CategoryEquip.Header(1))
	assert.Equal(t, "Epic Exclusive Equipments", guardian.CategoryEquip.Header(3))
}

func TestFormatGems(t *testing.T) {
	assert.Equal(t, "0", guardian.FormatGems(0))
	assert.Equal(t, "999", guardian.FormatGems(999))
	assert.Equal(t, "1,500", guardian.FormatGems(1500))
	assert.Equal(t, "12,345,678", guardian.FormatGems(12345678))
}

func TestInventoryBody(t *testing.T) {
	empty := &guardian.Inventory{}
	assert.Equal(t, "None", empty.Body())

	full := &guardian.Inventory{Items: []string{"Eva", "Lahn"}}
	assert.Equal(t, "Eva\nLahn", full.Body())
}
