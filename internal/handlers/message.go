package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/internal/commands"
	"github.com/latoulicious/ailie/pkg/logging"
)

// MessageHandler routes prefixed messages to commands
type MessageHandler struct {
	prefixes []string
	commands map[string]commands.Definition
	logger   logging.Logger
}

// NewMessageHandler creates a handler for the given prefixes and commands.
// Aliases resolve to the same definition as the command name.
func NewMessageHandler(prefixes []string, definitions []commands.Definition, logger logging.Logger) *MessageHandler {
	routes := make(map[string]commands.Definition)
	for _, definition := range definitions {
		routes[strings.ToLower(definition.Name)] = definition
		for _, alias := range definition.Aliases {
			routes[strings.ToLower(alias)] = definition
		}
	}

	return &MessageHandler{
		prefixes: prefixes,
		commands: routes,
		logger:   logger,
	}
}

// Handle is registered with discordgo.Session.AddHandler
func (h *MessageHandler) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.Dispatch(s, m)
}

// Dispatch runs the command a message asks for and reports whether one ran
func (h *MessageHandler) Dispatch(s commands.Sender, m *discordgo.MessageCreate) bool {
	if m.Author == nil || m.Author.Bot {
		return false
	}

	name, args, ok := h.Parse(m.Content)
	if !ok {
		return false
	}

	definition, exists := h.commands[name]
	if !exists {
		h.logger.Debug("Unknown command", map[string]interface{}{
			"command": name,
			"user_id": m.Author.ID,
		})
		return false
	}

	definition.Run(s, m, args)
	return true
}

// Parse strips a known prefix, ignoring case, and splits the rest into a
// lowercased command name and its arguments
func (h *MessageHandler) Parse(content string) (string, []string, bool) {
	content = strings.TrimSpace(content)

	for _, prefix := range h.prefixes {
		if prefix == "" || len(content) < len(prefix) || !strings.EqualFold(content[:len(prefix)], prefix) {
			continue
		}

		fields := strings.Fields(content[len(prefix):])
		if len(fields) == 0 {
			return "", nil, false
		}
		return strings.ToLower(fields[0]), fields[1:], true
	}
	return "", nil, false
}
