package config

import (
	"log"
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts Apollo client and overrides config values if present.
// Returns a closer to stop the Apollo client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		log.Println("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:              cfg.Apollo.AppID,
		Cluster:            cfg.Apollo.Cluster,
		NamespaceName:      ns,
		IP:                 cfg.Apollo.Addrs,
		Secret:             cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	// Initial override
	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	// Listen changes: update store with changed keys
	client.AddChangeListener(&changeListener{ns: ns, client: client, store: store})

	closer := func() {
		// agollo v4 exposes no Stop; nothing to tear down
	}
	return closer, nil
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	cache := client.GetConfigCache(namespace)
	if cache == nil {
		return
	}
	getStr := func(key string, dst *string) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				*dst = s
			}
		}
	}
	getInt := func(key string, dst *int) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				if n, err := strconv.Atoi(s); err == nil {
					*dst = n
				}
			}
		}
	}
	getStr("app.env", &cfg.AppEnv)
	getStr("server.addr", &cfg.Server.Addr)
	getStr("log.level", &cfg.Log.Level)
	getStr("log.format", &cfg.Log.Format)
	getStr("pg.url", &cfg.PG.URL)
	getInt("pg.max_open", &cfg.PG.MaxOpenConns)
	getInt("pg.max_idle", &cfg.PG.MaxIdleConns)
	getStr("redis.addr", &cfg.Redis.Addr)
	getStr("redis.password", &cfg.Redis.Password)
	getInt("redis.db", &cfg.Redis.DB)
	getStr("mq.url", &cfg.MQ.URL)
	getStr("es.addrs", &cfg.ES.Addrs)
	getStr("es.username", &cfg.ES.Username)
	getStr("es.password", &cfg.ES.Password)
	getStr("s3.endpoint", &cfg.S3.Endpoint)
	getStr("s3.bucket", &cfg.S3.Bucket)
	getStr("telegram.bot_token", &cfg.Telegram.BotToken)
	getInt("telegram.auth_ttl_sec", &cfg.Telegram.AuthTTLSec)
	getInt("rl.window_sec", &cfg.RateLimit.WindowSec)
	getInt("rl.max", &cfg.RateLimit.Max)
	getInt("jwt.access_min", &cfg.JWT.AccessMin)
	getInt("jwt.refresh_days", &cfg.JWT.RefreshDays)
}

type changeListener struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (c *changeListener) OnChange(e *storage.ChangeEvent) {
	log.Printf("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	// Build new config based on current and apply overrides
	cur := c.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(c.client, c.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = c.store.UpdateValidated(next, changed)
}

func (c *changeListener) OnNewestChange(e *storage.FullChangeEvent) {
	log.Printf("apollo newest change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
}
