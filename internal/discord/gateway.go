package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Message is an incoming chat message
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	AuthorID  uint64
	Content   string
}

// Gateway receives chat messages over the Discord websocket and replies to them
type Gateway struct {
	session *discordgo.Session
	logger  *zap.Logger
	remove  func()
}

func NewGateway(session *discordgo.Session, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{session: session, logger: logger}
}

// Open connects to the gateway and calls onMessage for every message created,
// in the order Discord delivers them.
func (g *Gateway) Open(onMessage func(Message)) error {
	g.remove = g.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil {
			return
		}
		onMessage(toMessage(m.Message))
	})
	g.session.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		g.logger.Info("Gateway ready",
			zap.String("user", r.User.Username),
			zap.String("user_id", r.User.ID))
	})

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}
	return nil
}

// Reply answers msg in its channel, mentioning the author
func (g *Gateway) Reply(msg Message, content string) error {
	_, err := g.session.ChannelMessageSendReply(msg.ChannelID, content, &discordgo.MessageReference{
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
		GuildID:   msg.GuildID,
	})
	if err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}

// Close disconnects from the gateway
func (g *Gateway) Close() error {
	if g.remove != nil {
		g.remove()
	}
	return g.session.Close()
}

func toMessage(m *discordgo.Message) Message {
	return Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		AuthorID:  parseID(m.Author.ID),
		Content:   m.Content,
	}
}
