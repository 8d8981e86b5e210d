package discord

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	discordpkg "github.com/foxseedlab/speech2srt/internal/discord"
)

// Client posts job results over the Discord REST API. No gateway
// connection is opened.
type Client struct {
	session *discordgo.Session
}

func NewClient(token string) (discordpkg.Client, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &Client{session: s}, nil
}

func (c *Client) SendChannelMessageWithFiles(msg discordpkg.FileMessage) error {
	files := make([]*discordgo.File, 0, len(msg.Files))
	for _, f := range msg.Files {
		files = append(files, &discordgo.File{
			Name:        f.Name,
			ContentType: f.ContentType,
			Reader:      bytes.NewReader(f.Body),
		})
	}
	sent, err := c.session.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
		Content: msg.Content,
		Files:   files,
	})
	if err != nil {
		return err
	}
	slog.Info("discord message posted", "channel_id", msg.ChannelID, "message_id", sent.ID, "files", len(files))
	return nil
}

type noopClient struct{}

func (noopClient) SendChannelMessageWithFiles(discordpkg.FileMessage) error { return nil }
