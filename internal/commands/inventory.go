package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// InventoryCommand lists heroes or equipment of the author or of the first mention
func InventoryCommand(s Sender, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("inventory", m)
	if !serviceReady(s, m, logger, "inventory") {
		return
	}

	rest := withoutMentions(args)
	if len(rest) == 0 {
		logger.Warn("Inventory command called without category", nil)
		sendEmbed(s, m, logger, errorEmbeds.Usage(commandPrefix, "inventory <hero|equip> [@user]"))
		return
	}

	target := mentionedTarget(m)
	logger.Info("Inventory command executed", map[string]interface{}{
		"category":   rest[0],
		"has_target": target != nil,
	})

	inventory, err := guardianService.Inventory(context.Background(), identityOf(m.Author), rest[0], target)
	if err != nil {
		respondError(s, m, logger, "inventory", err)
		return
	}

	sendEmbed(s, m, logger, guardianEmbeds.Inventory(inventory))
}
