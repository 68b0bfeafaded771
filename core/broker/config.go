package broker

// Config holds configuration for the Redis broker that fans catalog changes
// out to every service instance.
type Config struct {
	// Enabled turns the broker on. Without it changes are only seen by the
	// instance that made them.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Host is the Redis host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the Redis port.
	Port int `mapstructure:"port" default:"6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// Channel is the pub/sub channel carrying catalog change notices.
	Channel string `mapstructure:"channel" default:"warehouse:catalog"`
	// TimeoutSeconds bounds dialing and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
