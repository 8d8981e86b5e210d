package main

import (
	"github.com/foxseedlab/speech2srt/external/discord"
	repositoryimpl "github.com/foxseedlab/speech2srt/external/repository"
	storageimpl "github.com/foxseedlab/speech2srt/external/storage"
	webhookimpl "github.com/foxseedlab/speech2srt/external/webhook"
	"github.com/foxseedlab/speech2srt/internal/config"
	"github.com/foxseedlab/speech2srt/internal/job"
	"github.com/samber/do/v2"
)

// setupDI wires everything except the transcriber, which the caller picks.
func setupDI(cfg *config.Config, registerTranscriber func(do.Injector)) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	repositoryimpl.RegisterDI(injector)
	storageimpl.RegisterDI(injector)
	registerTranscriber(injector)
	discord.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	job.RegisterDI(injector)

	return injector
}
