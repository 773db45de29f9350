package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// ProfileCommand shows the profile of the author or of the first mention
func ProfileCommand(s Sender, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("profile", m)
	if !serviceReady(s, m, logger, "profile") {
		return
	}

	target := mentionedTarget(m)
	logger.Info("Profile command executed", map[string]interface{}{
		"username":   m.Author.Username,
		"has_target": target != nil,
	})

	profile, err := guardianService.Profile(context.Background(), identityOf(m.Author), target)
	if err != nil {
		respondError(s, m, logger, "profile", err)
		return
	}

	sendEmbed(s, m, logger, guardianEmbeds.Profile(profile))
}
