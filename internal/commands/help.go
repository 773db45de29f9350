package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/pkg/embed"
)

// HelpCommand lists every command with its usage and aliases
func HelpCommand(s Sender, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("help", m)
	logger.Info("Help command executed", nil)

	definitions := Definitions()
	entries := make([]embed.HelpEntry, 0, len(definitions))
	for _, definition := range definitions {
		entries = append(entries, embed.HelpEntry{
			Name:        definition.Name,
			Aliases:     definition.Aliases,
			Usage:       definition.Usage,
			Description: definition.Description,
		})
	}

	sendEmbed(s, m, logger, guardianEmbeds.Help(commandPrefix, entries))
}
