package commands

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const guildUsage = "guild <create <id> <name>|join <id>>"

// GuildCommand handles guild-related subcommands
func GuildCommand(s Sender, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("guild", m)
	if !serviceReady(s, m, logger, "guild") {
		return
	}

	if len(args) == 0 {
		logger.Warn("Guild command called without subcommand", nil)
		sendEmbed(s, m, logger, errorEmbeds.Usage(commandPrefix, guildUsage))
		return
	}

	subcommand := strings.ToLower(args[0])
	logger.Info("Guild subcommand called", map[string]interface{}{
		"subcommand": subcommand,
	})

	actor := identityOf(m.Author)
	switch subcommand {
	case "create":
		if len(args) < 3 {
			sendEmbed(s, m, logger, errorEmbeds.Usage(commandPrefix, "guild create <id> <name>"))
			return
		}
		notice, err := guardianService.CreateGuild(context.Background(), actor, args[1], strings.Join(args[2:], " "))
		if err != nil {
			respondError(s, m, logger, "guild", err)
			return
		}
		sendEmbed(s, m, logger, guardianEmbeds.Notice(notice))
	case "join":
		if len(args) < 2 {
			sendEmbed(s, m, logger, errorEmbeds.Usage(commandPrefix, "guild join <id>"))
			return
		}
		notice, err := guardianService.JoinGuild(context.Background(), actor, args[1])
		if err != nil {
			respondError(s, m, logger, "guild", err)
			return
		}
		sendEmbed(s, m, logger, guardianEmbeds.Notice(notice))
	default:
		logger.Warn("Unknown guild subcommand", map[string]interface{}{
			"subcommand": subcommand,
		})
		sendEmbed(s, m, logger, errorEmbeds.Usage(commandPrefix, guildUsage))
	}
}
