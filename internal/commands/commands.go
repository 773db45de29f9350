package commands

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/pkg/embed"
	"github.com/latoulicious/ailie/pkg/guardian"
	"github.com/latoulicious/ailie/pkg/logging"
)

// Sender is the part of a Discord session commands reply through
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	HeartbeatLatency() time.Duration
}

// CommandFunc handles one prefixed command
type CommandFunc func(s Sender, m *discordgo.MessageCreate, args []string)

// Definition describes a routable command
type Definition struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Run         CommandFunc
}

// Package-level collaborators set by InitializeGuardianCommands
var (
	guardianService *guardian.Service
	commandPrefix   = "ailie;"
	ownerID         string
	guardianEmbeds  = embed.CreateGuardianEmbeds()
	errorEmbeds     = embed.CreateErrorEmbeds()
)

// InitializeGuardianCommands wires the guardian service into the commands
func InitializeGuardianCommands(service *guardian.Service, prefix string) {
	guardianService = service
	if prefix != "" {
		commandPrefix = prefix
	}
}

// SetOwner records the Discord user shown as the bot owner in about
func SetOwner(id string) {
	ownerID = id
}

// Definitions lists every command in help order
func Definitions() []Definition {
	return []Definition{
		{
			Name:        "initialize",
			Aliases:     []string{"init"},
			Usage:       "initialize",
			Description: "Register yourself. Needed before most other commands.",
			Run:         InitializeCommand,
		},
		{
			Name:        "profile",
			Aliases:     []string{"prof"},
			Usage:       "profile [@user]",
			Description: "View the profile of yourself or someone else.",
			Run:         ProfileCommand,
		},
		{
			Name:        "inventory",
			Aliases:     []string{"inv", "bag"},
			Usage:       "inventory <hero|equip> [@user]",
			Description: "Check the heroes or equipment collected so far.",
			Run:         InventoryCommand,
		},
		{
			Name:        "username",
			Aliases:     []string{"name", "ign"},
			Usage:       "username <name>",
			Description: "Set the username shown on your profile.",
			Run:         UsernameCommand,
		},
		{
			Name:        "guild",
			Usage:       "guild <create <id> <name>|join <id>>",
			Description: "Create a guild as its Guild Master, or join one as a Member.",
			Run:         GuildCommand,
		},
		{
			Name:        "about",
			Usage:       "about",
			Description: "Show bot information.",
			Run:         AboutCommand,
		},
		{
			Name:        "version",
			Usage:       "version",
			Description: "Show build information.",
			Run:         VersionCommand,
		},
		{
			Name:        "help",
			Usage:       "help",
			Description: "Show this list.",
			Run:         HelpCommand,
		},
	}
}

// identityOf converts a Discord user into a guardian identity
func identityOf(u *discordgo.User) guardian.Identity {
	return guardian.Identity{
		ID:        u.ID,
		Name:      u.Username,
		AvatarURL: u.AvatarURL(""),
		Mention:   u.Mention(),
	}
}

// mentionedTarget returns the first mentioned user, if any
func mentionedTarget(m *discordgo.MessageCreate) *guardian.Identity {
	if len(m.Mentions) == 0 {
		return nil
	}
	target := identityOf(m.Mentions[0])
	return &target
}

// withoutMentions drops arguments that are user mentions
func withoutMentions(args []string) []string {
	kept := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) > 3 && arg[0] == '<' && arg[1] == '@' && arg[len(arg)-1] == '>' {
			continue
		}
		kept = append(kept, arg)
	}
	return kept
}

// commandLogger returns a command logger carrying the interaction ids
func commandLogger(name string, m *discordgo.MessageCreate) logging.Logger {
	return logging.GetGlobalLoggerFactory().
		CreateCommandLogger(name).
		WithInteraction(m.GuildID, m.Author.ID, m.ChannelID)
}

// sendEmbed replies with an embed. Only user mentions may ping.
func sendEmbed(s Sender, m *discordgo.MessageCreate, logger logging.Logger, e *discordgo.MessageEmbed) {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{e},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
		},
	})
	if err != nil {
		logger.Error("Failed to send reply", err, nil)
	}
}

// respondError turns a service error into guidance or a generic failure
func respondError(s Sender, m *discordgo.MessageCreate, logger logging.Logger, command string, err error) {
	if guidance, ok := guardian.AsGuidance(err); ok {
		sendEmbed(s, m, logger, guardianEmbeds.Guidance(guidance))
		return
	}
	logger.Error("Command failed", err, nil)
	sendEmbed(s, m, logger, errorEmbeds.CommandFailure(command))
}

// serviceReady reports a failure when the commands were never initialized
func serviceReady(s Sender, m *discordgo.MessageCreate, logger logging.Logger, command string) bool {
	if guardianService != nil {
		return true
	}
	logger.Error("Guardian service not initialized", nil, nil)
	sendEmbed(s, m, logger, errorEmbeds.CommandFailure(command))
	return false
}
