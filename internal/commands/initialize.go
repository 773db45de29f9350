package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// InitializeCommand registers the author as a guardian
func InitializeCommand(s Sender, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("initialize", m)
	if !serviceReady(s, m, logger, "initialize") {
		return
	}

	notice, err := guardianService.Initialize(context.Background(), identityOf(m.Author))
	if err != nil {
		respondError(s, m, logger, "initialize", err)
		return
	}

	logger.Info("Initialize command executed", map[string]interface{}{
		"created": notice.Created,
	})
	sendEmbed(s, m, logger, guardianEmbeds.Notice(notice))
}
