/* bot_test.go
 * Contains unit tests for bot.go functions
 */

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region NewBot tests

func TestNewBot_Success(t *testing.T) {
	bot, err := NewBot("a_token", nil)

	require.NoError(t, err)
	assert.Equal(t, "a_token", bot.BotToken)
}

func TestNewBot_MissingToken(t *testing.T) {
	_, err := NewBot("", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "botToken is required")
}

// endregion

// region newMessageHandler tests

func TestNewMessageHandler_IgnoresOwnMessages(t *testing.T) {
	bot, _ := createTestBot()
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$help", "bot_id", "poolbot", "channel123")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Empty(t, mockSession.SentMessages)
}

func TestNewMessageHandler_IgnoresUnknownCommands(t *testing.T) {
	bot, _ := createTestBot()
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$flip a coin", "user123", "alice", "channel123")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Empty(t, mockSession.SentMessages)
}

func TestNewMessageHandler_DispatchesHelp(t *testing.T) {
	bot, _ := createTestBot()
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$help", "user123", "alice", "channel123")

	bot.newMessageHandler(mockSession, message, "bot_id")

	require.Len(t, mockSession.SentMessages, 1)
	assert.Contains(t, mockSession.GetLastMessage().Content, "Survivor Pool Bot")
}

func TestNewMessageHandler_DispatchesSurvivorSet(t *testing.T) {
	bot, mockStore := createTestBot()
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$survivor 1 Packers", "user123", "alice", "channel123")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Len(t, mockStore.SurvivorPicks, 1)
}

// endregion

// region startsWith tests

func TestStartsWith_ExactMatch(t *testing.T) {
	assert.True(t, startsWith("$standings", "$standings"))
}

func TestStartsWith_StartsWithSubstring(t *testing.T) {
	assert.True(t, startsWith("$picks 1 Packers", "$picks"))
}

func TestStartsWith_DoesNotStartWith(t *testing.T) {
	assert.False(t, startsWith("show $standings", "$standings"))
}

func TestStartsWith_EmptyInput(t *testing.T) {
	assert.False(t, startsWith("", "$help"))
}

func TestStartsWith_CaseSensitive(t *testing.T) {
	assert.False(t, startsWith("$Help", "$help"))
}

// endregion
