package embed

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/internal/version"
	"github.com/latoulicious/ailie/pkg/guardian"
)

// GuardianEmbeds implements GuardianEmbedBuilder interface
type GuardianEmbeds struct {
	baseColor int
}

// NewGuardianEmbedBuilder creates a new GuardianEmbeds instance
func NewGuardianEmbedBuilder() GuardianEmbedBuilder {
	return &GuardianEmbeds{
		baseColor: ColorGuardian,
	}
}

// Success creates a success embed
func (g *GuardianEmbeds) Success(title, description string) *discordgo.MessageEmbed {
	return basic(title, description, ColorSuccess)
}

// Error creates an error embed
func (g *GuardianEmbeds) Error(title, description string) *discordgo.MessageEmbed {
	return basic(title, description, ColorError)
}

// Info creates an info embed
func (g *GuardianEmbeds) Info(title, description string) *discordgo.MessageEmbed {
	return basic(title, description, ColorInfo)
}

// Warning creates a warning embed
func (g *GuardianEmbeds) Warning(title, description string) *discordgo.MessageEmbed {
	return basic(title, description, ColorWarning)
}

// Profile renders a guardian profile
func (g *GuardianEmbeds) Profile(profile *guardian.Profile) *discordgo.MessageEmbed {
	unitCounts := fmt.Sprintf("Unique Heroes: %d\nEpic Exclusive Equipments: %d",
		profile.HeroCount, profile.EquipCount)
	guildDetails := fmt.Sprintf("Guild Name: %s\nGuild ID: %s\nPosition: %s",
		profile.GuildName, profile.GuildID, profile.Position)

	return &discordgo.MessageEmbed{
		Color: g.baseColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    profile.DisplayName + "'s Profile",
			IconURL: profile.AvatarURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Username 📝", Value: profile.Username, Inline: true},
			{Name: "Gems 💎", Value: profile.GemsDisplay, Inline: true},
			{Name: "Unit Counts 🗡️", Value: unitCounts, Inline: false},
			{Name: "Guild Details 🏠", Value: guildDetails, Inline: false},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Inventory renders one inventory category
func (g *GuardianEmbeds) Inventory(inventory *guardian.Inventory) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: g.baseColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    inventory.DisplayName + "'s Inventory",
			IconURL: inventory.AvatarURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: inventory.Header, Value: truncate(inventory.Body(), maxFieldValue), Inline: false},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Notice renders an informational reply. Newly created things are green.
func (g *GuardianEmbeds) Notice(notice *guardian.Notice) *discordgo.MessageEmbed {
	color := ColorInfo
	if notice.Created {
		color = ColorSuccess
	}
	return basic("", notice.Message, color)
}

// Guidance renders a precondition failure
func (g *GuardianEmbeds) Guidance(guidance *guardian.Guidance) *discordgo.MessageEmbed {
	return basic("", guidance.Message, ColorWarning)
}

// Help lists the available commands
func (g *GuardianEmbeds) Help(prefix string, entries []HelpEntry) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(entries))
	for _, entry := range entries {
		value := entry.Description
		if entry.Usage != "" {
			value += fmt.Sprintf("\nUsage: `%s%s`", prefix, entry.Usage)
		}
		if len(entry.Aliases) > 0 {
			value += fmt.Sprintf("\nAliases: `%s`", strings.Join(entry.Aliases, "`, `"))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   entry.Name,
			Value:  value,
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Ailie's Commands",
		Description: fmt.Sprintf("Prefix every command with `%s`.", prefix),
		Color:       g.baseColor,
		Fields:      fields,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// Version renders build metadata
func (g *GuardianEmbeds) Version(info version.Info) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Ailie Version",
		Description: code(info.String()),
		Color:       ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Version", Value: code(info.Version), Inline: true},
			{Name: "Commit", Value: code(info.ShortCommit), Inline: true},
			{Name: "Build Time", Value: code(info.BuildTime), Inline: true},
			{Name: "Go", Value: code(info.GoVersion), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if info.Dirty {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "⚠️ dirty workspace at build time"}
	}
	return embed
}

// maxFieldValue is the Discord limit for an embed field value
const maxFieldValue = 1024

func basic(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit-3]
	if idx := strings.LastIndex(cut, "\n"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.ToValidUTF8(cut, "") + "..."
}

func code(s string) string {
	if s == "" {
		return "`n/a`"
	}
	return "`" + s + "`"
}
