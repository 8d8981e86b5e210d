package discord

type File struct {
	Name        string
	ContentType string
	Body        []byte
}

type FileMessage struct {
	ChannelID string
	Content   string
	Files     []File
}

type Client interface {
	SendChannelMessageWithFiles(msg FileMessage) error
}
