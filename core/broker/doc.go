// Package broker connects to the Redis instance used to fan catalog changes
// out between service instances.
//
// Every write made through the inventory store is announced on a pub/sub
// channel; each instance reloads its catalog snapshot when it hears one. The
// broker is optional: a single instance works without it.
//
// # Usage
//
//	client, err := broker.Connect(cfg.Broker)
//	if err != nil {
//	    log.Warn("Redis unavailable, running standalone", zap.Error(err))
//	}
package broker
