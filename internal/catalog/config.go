package catalog

type Config struct {
	// Seed fills empty collections with demo records at startup.
	Seed bool
}
