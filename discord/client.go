// Package discord implements the chat bot shell on top of the Discord gateway
// client github.com/bwmarrin/discordgo.
package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fgrosse/shell"
)

// Intents are the gateway intents the Client requests.
const Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

// Client is the shell.Runtime of the chat bot shell. It connects a
// shell.ChatHandler to the Discord gateway.
type Client struct {
	logger     *zap.Logger
	session    *discordgo.Session
	handler    shell.ChatHandler
	dispatcher *shell.Dispatcher
	ctx        context.Context // set by Run, passed to the handler
}

// NewClient creates a new Client for the bot token. No connection is opened
// until Client.Run is called.
func NewClient(token string, handler shell.ChatHandler, dispatcher *shell.Dispatcher, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dispatcher == nil {
		dispatcher = shell.NewDispatcher(logger, 0)
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create discord session")
	}

	session.Identify.Intents = Intents

	c := &Client{
		logger:     logger,
		session:    session,
		handler:    handler,
		dispatcher: dispatcher,
		ctx:        context.Background(),
	}

	session.AddHandler(c.onReady)
	session.AddHandler(c.onMessageCreate)

	return c, nil
}

// Session returns the underlying discordgo session.
func (c *Client) Session() *discordgo.Session {
	return c.session
}

// Registrations implements the shell.Runtime interface.
func (*Client) Registrations() []shell.Registration {
	return []shell.Registration{
		{Trigger: shell.EventReady, Handler: "Ready"},
		{Trigger: shell.EventMessage, Handler: "Message"},
	}
}

// Run opens the gateway connection and blocks until ctx is done.
func (c *Client) Run(ctx context.Context) error {
	c.ctx = ctx

	c.logger.Info("Connecting to discord gateway", zap.Int("intents", int(Intents)))
	err := c.session.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open discord gateway connection")
	}

	<-ctx.Done()

	c.logger.Info("Closing discord gateway connection")
	return errors.Wrap(c.session.Close(), "failed to close discord session")
}

func (c *Client) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	evt := shell.ReadyEvent{
		SessionID: r.SessionID,
		Guilds:    len(r.Guilds),
	}

	if r.User != nil {
		evt.UserID = r.User.ID
		evt.Username = r.User.Username
	}

	_ = c.dispatcher.Dispatch(c.ctx, shell.EventReady, func(ctx context.Context) error {
		c.handler.Ready(ctx, evt)
		return nil
	})
}

func (c *Client) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil {
		return
	}

	evt := shell.MessageEvent{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Content:   m.Content,
		Data:      m,
	}

	if m.Author != nil {
		evt.AuthorID = m.Author.ID
	}

	_ = c.dispatcher.Dispatch(c.ctx, shell.EventMessage, func(ctx context.Context) error {
		return c.handler.Message(ctx, evt)
	})
}
