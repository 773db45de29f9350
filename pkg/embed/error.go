package embed

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ErrorEmbeds builds error-specific embeds
type ErrorEmbeds struct{}

// NewErrorEmbedBuilder creates a new ErrorEmbeds instance
func NewErrorEmbedBuilder() *ErrorEmbeds {
	return &ErrorEmbeds{}
}

// Success creates a success embed (not typically used in error context)
func (e *ErrorEmbeds) Success(title, description string) *discordgo.MessageEmbed {
	return basic(title, description, ColorSuccess)
}

// Error creates a standard error embed
func (e *ErrorEmbeds) Error(title, description string) *discordgo.MessageEmbed {
	return basic(title, description, ColorError)
}

// Info creates an info embed
func (e *ErrorEmbeds) Info(title, description string) *discordgo.MessageEmbed {
	return basic(title, description, ColorInfo)
}

// Warning creates a warning embed
func (e *ErrorEmbeds) Warning(title, description string) *discordgo.MessageEmbed {
	return basic(title, description, ColorWarning)
}

// CommandFailure creates the generic embed shown when the store fails.
// Error details stay in the logs.
func (e *ErrorEmbeds) CommandFailure(command string) *discordgo.MessageEmbed {
	return basic(
		fmt.Sprintf("❌ Command Error: %s", command),
		"Something went wrong while talking to the guardian records. Please try again later.",
		ColorError,
	)
}

// Usage creates an embed for missing or malformed arguments
func (e *ErrorEmbeds) Usage(prefix, usage string) *discordgo.MessageEmbed {
	return basic(
		"⚠️ Missing Arguments",
		fmt.Sprintf("Usage: `%s%s`", prefix, usage),
		ColorWarning,
	)
}
