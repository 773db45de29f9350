package embed_test

import (
	"strings"
	"testing"

	"github.com/latoulicious/ailie/internal/version"
	"github.com/latoulicious/ailie/pkg/embed"
	"github.com/latoulicious/ailie/pkg/guardian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileEmbed(t *testing.T) {
	builder := embed.CreateGuardianEmbeds()

	got := builder.Profile(&guardian.Profile{
		DisplayName: "eva",
		AvatarURL:   "https://cdn.example/eva.png",
		Username:    "Eva",
		GemsDisplay: "1,500",
		HeroCount:   2,
		EquipCount:  1,
		GuildName:   guardian.Placeholder,
		GuildID:     guardian.Placeholder,
		Position:    guardian.Placeholder,
	})

	require.NotNil(t, got.Author)
	assert.Equal(t, "eva's Profile", got.Author.Name)
	assert.Equal(t, "https://cdn.example/eva.png", got.Author.IconURL)
	assert.Equal(t, embed.ColorGuardian, got.Color)

	require.Len(t, got.Fields, 4)
	assert.Equal(t, "Eva", got.Fields[0].Value)
	assert.Equal(t, "1,500", got.Fields[1].Value)
	assert.Equal(t, "Unique Heroes: 2\nEpic Exclusive Equipments: 1", got.Fields[2].Value)
	assert.Equal(t, "Guild Name: None\nGuild ID: None\nPosition: None", got.Fields[3].Value)
	assert.False(t, got.Fields[3].Inline)
}

func TestInventoryEmbed(t *testing.T) {
	builder := embed.CreateGuardianEmbeds()

	got := builder.Inventory(&guardian.Inventory{
		DisplayName: "eva",
		Category:    guardian.CategoryEquip,
		Header:      guardian.CategoryEquip.Header(0),
	})

	assert.Equal(t, "eva's Inventory", got.Author.Name)
	require.Len(t, got.Fields, 1)
	assert.Equal(t, "Epic Exclusive Equipments", got.Fields[0].Name)
	assert.Equal(t, "None", got.Fields[0].Value)
}

func TestInventoryEmbed_TruncatesLongLists(t *testing.T) {
	items := make([]string, 200)
	for i := range items {
		items[i] = "Future Princess"
	}

	got := embed.CreateGuardianEmbeds().Inventory(&guardian.Inventory{Header: "Unique Heroes", Items: items})

	value := got.Fields[0].Value
	assert.LessOrEqual(t, len(value), 1024)
	assert.True(t, strings.HasSuffix(value, "..."))
}

func TestNoticeAndGuidanceEmbeds(t *testing.T) {
	builder := embed.CreateGuardianEmbeds()

	created := builder.Notice(&guardian.Notice{Message: "done", Created: true})
	assert.Equal(t, embed.ColorSuccess, created.Color)
	assert.Equal(t, "done", created.Description)

	existing := builder.Notice(&guardian.Notice{Message: "already"})
	assert.Equal(t, embed.ColorInfo, existing.Color)

	guidance := builder.Guidance(&guardian.Guidance{Message: "initialize first"})
	assert.Equal(t, embed.ColorWarning, guidance.Color)
	assert.Equal(t, "initialize first", guidance.Description)
}

func TestHelpEmbed(t *testing.T) {
	got := embed.CreateGuardianEmbeds().Help("ailie;", []embed.HelpEntry{
		{Name: "inventory", Aliases: []string{"inv", "bag"}, Usage: "inventory <hero|equip> [@user]", Description: "View inventory."},
	})

	require.Len(t, got.Fields, 1)
	assert.Contains(t, got.Fields[0].Value, "Usage: `ailie;inventory <hero|equip> [@user]`")
	assert.Contains(t, got.Fields[0].Value, "Aliases: `inv`, `bag`")
}

func TestVersionEmbed(t *testing.T) {
	got := embed.CreateGuardianEmbeds().Version(version.Info{Version: "1.2.3", Dirty: true})

	require.Len(t, got.Fields, 4)
	assert.Equal(t, "`1.2.3`", got.Fields[0].Value)
	assert.Equal(t, "`n/a`", got.Fields[1].Value)
	require.NotNil(t, got.Footer)
}

func TestErrorEmbeds(t *testing.T) {
	errors := embed.CreateErrorEmbeds()

	failure := errors.CommandFailure("profile")
	assert.Equal(t, embed.ColorError, failure.Color)
	assert.Contains(t, failure.Title, "profile")

	usage := errors.Usage("a;", "username <name>")
	assert.Equal(t, "Usage: `a;username <name>`", usage.Description)
}
