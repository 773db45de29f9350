package handlers_test

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/internal/commands"
	"github.com/latoulicious/ailie/internal/handlers"
	"github.com/latoulicious/ailie/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopSender struct{}

func (nopSender) ChannelMessageSendComplex(string, *discordgo.MessageSend, ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{}, nil
}

func (nopSender) HeartbeatLatency() time.Duration {
	return 0
}

type call struct {
	command string
	args    []string
}

func newHandler(calls *[]call) *handlers.MessageHandler {
	record := func(name string) commands.CommandFunc {
		return func(s commands.Sender, m *discordgo.MessageCreate, args []string) {
			*calls = append(*calls, call{command: name, args: args})
		}
	}

	definitions := []commands.Definition{
		{Name: "profile", Aliases: []string{"prof"}, Run: record("profile")},
		{Name: "inventory", Aliases: []string{"inv", "bag"}, Run: record("inventory")},
		{Name: "username", Aliases: []string{"name", "ign"}, Run: record("username")},
		{Name: "initialize", Aliases: []string{"init"}, Run: record("initialize")},
	}
	return handlers.NewMessageHandler([]string{"ailie;", "a;"}, definitions, logging.NewZapLoggerFrom(zap.NewNop(), "handlers"))
}

func message(content string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		Content: content,
		Author:  &discordgo.User{ID: "1", Bot: bot},
	}}
}

func TestParse(t *testing.T) {
	handler := newHandler(&[]call{})

	tests := []struct {
		content string
		name    string
		args    []string
		ok      bool
	}{
		{"ailie;profile", "profile", []string{}, true},
		{"AILIE;Profile <@2>", "profile", []string{"<@2>"}, true},
		{"  a;inv  hero   <@2> ", "inv", []string{"hero", "<@2>"}, true},
		{"a;", "", nil, false},
		{"hello ailie;profile", "", nil, false},
		{"!profile", "", nil, false},
	}

	for _, tt := range tests {
		name, args, ok := handler.Parse(tt.content)
		assert.Equal(t, tt.ok, ok, tt.content)
		assert.Equal(t, tt.name, name, tt.content)
		if tt.ok {
			assert.Equal(t, tt.args, args, tt.content)
		}
	}
}

func TestDispatch_ResolvesAliases(t *testing.T) {
	var calls []call
	handler := newHandler(&calls)

	aliases := map[string]string{
		"a;prof":     "profile",
		"a;bag hero": "inventory",
		"a;INV e":    "inventory",
		"a;ign Foo":  "username",
		"a;name Foo": "username",
		"a;init":     "initialize",
	}
	for content, want := range aliases {
		calls = nil
		require.True(t, handler.Dispatch(nopSender{}, message(content, false)), content)
		require.Len(t, calls, 1, content)
		assert.Equal(t, want, calls[0].command, content)
	}
}

func TestDispatch_IgnoresBotsAndUnknownCommands(t *testing.T) {
	var calls []call
	handler := newHandler(&calls)

	assert.False(t, handler.Dispatch(nopSender{}, message("a;profile", true)))
	assert.False(t, handler.Dispatch(nopSender{}, message("a;dance", false)))
	assert.False(t, handler.Dispatch(nopSender{}, message("just chatting", false)))
	assert.Empty(t, calls)
}

func TestDefinitions_HaveUniqueRoutes(t *testing.T) {
	seen := map[string]string{}
	for _, definition := range commands.Definitions() {
		for _, route := range append([]string{definition.Name}, definition.Aliases...) {
			owner, exists := seen[route]
			assert.False(t, exists, "%s is routed to both %s and %s", route, owner, definition.Name)
			seen[route] = definition.Name
		}
		assert.NotNil(t, definition.Run, definition.Name)
	}
}
