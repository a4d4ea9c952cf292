package blog

import "embed"

// Assets contains the static files served under /assets/.
//
//go:embed assets/*
var Assets embed.FS
