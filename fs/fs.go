package appfs

import "embed"

// FS embeds non-Go assets needed at runtime; mainly DB migrations.
//go:embed migrations
var FS embed.FS
