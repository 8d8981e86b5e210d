package repository

var postgresMigrationStatements = []string{
	`DO $$ BEGIN CREATE TYPE job_status AS ENUM ('running', 'completed', 'failed', 'skipped'); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		storage_uri TEXT NOT NULL,
		language_code TEXT NOT NULL,
		output_srt TEXT NOT NULL,
		output_txt TEXT NOT NULL,
		status job_status NOT NULL DEFAULT 'running',
		cue_count INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMPTZ NOT NULL,
		ended_at TIMESTAMPTZ,
		error TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_started_at ON jobs (started_at DESC)`,
}

var sqliteMigrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		storage_uri TEXT NOT NULL,
		language_code TEXT NOT NULL,
		output_srt TEXT NOT NULL,
		output_txt TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'running' CHECK (status IN ('running', 'completed', 'failed', 'skipped')),
		cue_count INTEGER NOT NULL DEFAULT 0,
		started_at TEXT NOT NULL,
		ended_at TEXT,
		error TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_started_at ON jobs (started_at DESC)`,
}
