package memcache_fx

import (
	"go.uber.org/fx"

	mem "tripweaver/pkg/memcache"
)

var Module = fx.Provide(provideActivityNameStore)

func provideActivityNameStore() mem.ActivityNameStore {
	return mem.NewActivityNames()
}
