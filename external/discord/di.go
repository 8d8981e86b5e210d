package discord

import (
	"github.com/foxseedlab/speech2srt/internal/config"
	discordpkg "github.com/foxseedlab/speech2srt/internal/discord"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (discordpkg.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.DiscordToken == "" {
			return noopClient{}, nil
		}
		return NewClient(cfg.DiscordToken)
	})
}
