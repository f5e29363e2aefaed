package game

// Config holds session configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible layout sequences.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Preset fixes the generation preset for every dungeon.
	// Empty means a weighted random preset per dungeon.
	Preset string
}
