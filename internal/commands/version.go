package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/internal/version"
)

// VersionCommand shows build metadata
func VersionCommand(s Sender, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("version", m)
	logger.Info("Version command executed", map[string]interface{}{
		"username": m.Author.Username,
	})

	sendEmbed(s, m, logger, guardianEmbeds.Version(version.Get()))
}
