package job

import (
	"github.com/foxseedlab/speech2srt/internal/config"
	"github.com/foxseedlab/speech2srt/internal/discord"
	"github.com/foxseedlab/speech2srt/internal/repository"
	"github.com/foxseedlab/speech2srt/internal/storage"
	"github.com/foxseedlab/speech2srt/internal/transcriber"
	"github.com/foxseedlab/speech2srt/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Runner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[repository.Repository](i)
		stt := do.MustInvoke[transcriber.Transcriber](i)
		store := do.MustInvoke[storage.BlobStore](i)
		wh := do.MustInvoke[webhook.Sender](i)
		dc := do.MustInvoke[discord.Client](i)
		return NewRunner(cfg, repo, stt, store, wh, dc), nil
	})
}
