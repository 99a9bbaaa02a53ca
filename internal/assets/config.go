package assets

const (
	DefaultMaxSize    = 1 << 20
	DefaultPublicPath = "/api/v1/images/"
)

type Config struct {
	// MaxSize is the largest accepted payload in bytes.
	MaxSize int64
	// PublicPath prefixes asset ids in returned references.
	PublicPath string
}

func (c Config) withDefaults() Config {
	if c.MaxSize <= 0 {
		c.MaxSize = DefaultMaxSize
	}
	if c.PublicPath == "" {
		c.PublicPath = DefaultPublicPath
	}
	return c
}
