package embed

import (
	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/internal/version"
	"github.com/latoulicious/ailie/pkg/guardian"
)

const (
	ColorSuccess  = 0x00ff00 // Green
	ColorError    = 0xff0000 // Red
	ColorInfo     = 0x7289da // Discord blurple
	ColorWarning  = 0xffaa00 // Orange
	ColorGuardian = 0x9b59b6 // Purple
)

// EmbedBuilder provides basic embed creation functionality
type EmbedBuilder interface {
	Success(title, description string) *discordgo.MessageEmbed
	Error(title, description string) *discordgo.MessageEmbed
	Info(title, description string) *discordgo.MessageEmbed
	Warning(title, description string) *discordgo.MessageEmbed
}

// GuardianEmbedBuilder renders guardian records
type GuardianEmbedBuilder interface {
	EmbedBuilder
	Profile(profile *guardian.Profile) *discordgo.MessageEmbed
	Inventory(inventory *guardian.Inventory) *discordgo.MessageEmbed
	Notice(notice *guardian.Notice) *discordgo.MessageEmbed
	Guidance(guidance *guardian.Guidance) *discordgo.MessageEmbed
	Help(prefix string, entries []HelpEntry) *discordgo.MessageEmbed
	Version(info version.Info) *discordgo.MessageEmbed
}

// EmbedFactory creates embed builders
type EmbedFactory interface {
	CreateGuardianEmbedBuilder() GuardianEmbedBuilder
	CreateBasicEmbedBuilder() EmbedBuilder
}

// HelpEntry describes one command in the help listing
type HelpEntry struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
}
