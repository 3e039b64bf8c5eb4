package integration

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	messages []*discordgo.MessageCreate
	slashes  []*discordgo.InteractionCreate
	buttons  []*discordgo.InteractionCreate
}

func (h *recordingHandler) HandleCommand(_ *discordgo.Session, m *discordgo.MessageCreate) {
	h.messages = append(h.messages, m)
}

func (h *recordingHandler) HandleSlash(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	h.slashes = append(h.slashes, i)
}

func (h *recordingHandler) HandleButton(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	h.buttons = append(h.buttons, i)
}

func slashEvent(commandType discordgo.ApplicationCommandType) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "ping", CommandType: commandType},
	}}
}

func componentEvent(componentType discordgo.ComponentType) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "confirm", ComponentType: componentType},
	}}
}

func TestBridgeRegistersOneListenerPerKind(t *testing.T) {
	platform := &fakePlatform{}
	h := &recordingHandler{}

	Bridge(platform, h, h, h)

	require.Len(t, platform.handlers, 3)
	assert.IsType(t, func(*discordgo.Session, *discordgo.MessageCreate) {}, platform.handlers[0])
	assert.IsType(t, func(*discordgo.Session, *discordgo.InteractionCreate) {}, platform.handlers[1])
	assert.IsType(t, func(*discordgo.Session, *discordgo.InteractionCreate) {}, platform.handlers[2])
}

func TestBridgeSkipsNilHandlers(t *testing.T) {
	platform := &fakePlatform{}
	h := &recordingHandler{}

	Bridge(platform, nil, h, nil)

	assert.Len(t, platform.handlers, 1)
}

func TestCommandListenerForwardsEveryMessage(t *testing.T) {
	platform := &fakePlatform{}
	h := &recordingHandler{}
	RegisterCommandHandler(platform, h)
	listener := platform.handlers[0].(func(*discordgo.Session, *discordgo.MessageCreate))

	user := &discordgo.MessageCreate{Message: &discordgo.Message{Content: "!ping", Author: &discordgo.User{ID: "1"}}}
	bot := &discordgo.MessageCreate{Message: &discordgo.Message{Content: "!ping", Author: &discordgo.User{ID: "2", Bot: true}}}
	listener(nil, user)
	listener(nil, bot)
	listener(nil, &discordgo.MessageCreate{})

	require.Len(t, h.messages, 2)
	assert.Same(t, user, h.messages[0])
	assert.Same(t, bot, h.messages[1])
}

func TestSlashListenerForwardsChatCommands(t *testing.T) {
	platform := &fakePlatform{}
	h := &recordingHandler{}
	RegisterSlashCommandHandler(platform, h)
	listener := platform.handlers[0].(func(*discordgo.Session, *discordgo.InteractionCreate))

	chat := slashEvent(discordgo.ChatApplicationCommand)
	listener(nil, chat)
	listener(nil, slashEvent(discordgo.MessageApplicationCommand))
	listener(nil, componentEvent(discordgo.ButtonComponent))
	listener(nil, &discordgo.InteractionCreate{})

	require.Len(t, h.slashes, 1)
	assert.Same(t, chat, h.slashes[0])
	assert.Empty(t, h.buttons)
}

func TestButtonListenerForwardsButtons(t *testing.T) {
	platform := &fakePlatform{}
	h := &recordingHandler{}
	RegisterButtonClickHandler(platform, h)
	listener := platform.handlers[0].(func(*discordgo.Session, *discordgo.InteractionCreate))

	button := componentEvent(discordgo.ButtonComponent)
	listener(nil, button)
	listener(nil, componentEvent(discordgo.SelectMenuComponent))
	listener(nil, slashEvent(discordgo.ChatApplicationCommand))

	require.Len(t, h.buttons, 1)
	assert.Same(t, button, h.buttons[0])
	assert.Empty(t, h.slashes)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "MessageCreate", EventMessage.String())
	assert.Equal(t, "InteractionCreate/ApplicationCommand", EventSlash.String())
	assert.Equal(t, "InteractionCreate/Button", EventButton.String())
}
