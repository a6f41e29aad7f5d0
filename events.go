package shell

// Names of the chat events a ChatHandler reacts to. They are also used as
// Registration triggers.
const (
	EventReady   = "ready"
	EventMessage = "message"
)

// The ReadyEvent is emitted by a chat runtime once its gateway connection is
// established and it starts delivering events.
type ReadyEvent struct {
	SessionID string
	UserID    string // ID of the bot user
	Username  string
	Guilds    int // number of guilds the bot is a member of
}

// The MessageEvent is emitted by a chat runtime when it sees a new message.
type MessageEvent struct {
	ID        string
	ChannelID string
	GuildID   string
	AuthorID  string
	Content   string // requires the message content intent

	// Data optionally contains the raw event of the runtime (e.g. the
	// *discordgo.MessageCreate for the discord package).
	Data interface{}
}
