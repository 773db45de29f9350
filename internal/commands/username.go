package commands

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// UsernameCommand sets the username shown on the author's profile
func UsernameCommand(s Sender, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("username", m)
	if !serviceReady(s, m, logger, "username") {
		return
	}

	if len(args) == 0 {
		logger.Warn("Username command called without a name", nil)
		sendEmbed(s, m, logger, errorEmbeds.Usage(commandPrefix, "username <name>"))
		return
	}

	notice, err := guardianService.SetUsername(context.Background(), identityOf(m.Author), strings.Join(args, " "))
	if err != nil {
		respondError(s, m, logger, "username", err)
		return
	}

	sendEmbed(s, m, logger, guardianEmbeds.Notice(notice))
}
