package game

// Config holds game configuration options.
type Config struct {
	// LevelPath is a level file on disk. When empty, LevelName is loaded
	// from the embedded level set instead.
	LevelPath string

	// LevelName is the name of an embedded level file.
	LevelName string

	// ScorePath is the SQLite database for the run ledger. Empty disables
	// score recording.
	ScorePath string
}
