package storage

type Driver string

const (
	DriverRedis  Driver = "redis"
	DriverBadger Driver = "badger"
)

type Config struct {
	Driver Driver
}
