/* bot.go
 * Contains the Bot struct and message dispatch. Requires a discord bot token
 * and an API pointer, both of which are passed in from main.go
 */

package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"survivor-pool/api/api"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}

// newMessageHandler routes messages to the appropriate handler.
// botUserID is the bot's user ID to prevent self-responses.
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	if message.Author.ID == botUserID {
		return
	}

	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$info"):
		b.infoHandler(session, message)

	case startsWith(message.Content, "$join"):
		b.joinHandler(session, message)

	case startsWith(message.Content, "$picks"):
		b.setPicksHandler(session, message)

	case startsWith(message.Content, "$survivor"):
		b.survivorHandler(session, message)

	case startsWith(message.Content, "$standings"):
		b.standingsHandler(session, message)

	case startsWith(message.Content, "$week"):
		b.weekHandler(session, message)

	case startsWith(message.Content, "$upcoming"):
		b.upcomingHandler(session, message)
	}
}

// startsWith reports whether the message begins with the given command word.
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
