package services

import (
	"time"

	"storefront/apiclient"
	"storefront/cache"
	"storefront/config"
	"storefront/database"
	"storefront/utils"
)

// API is the shared upstream client used by controllers.
var API *apiclient.Client

// Mailer delivers contact form messages.
var Mailer utils.Mailer

// Init wires the cache store, the API client and the mailer from cfg.
// The gorm store is used when database.ConnectDb opened a connection.
func Init(cfg *config.Config) cache.Store {
	var store cache.Store
	if database.Database.Db != nil {
		store = cache.NewGormStore(database.Database.Db)
	} else {
		store = cache.NewMemoryStore()
	}

	qc := cache.NewQueryCache(store, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	API = apiclient.New(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second, qc)
	Mailer = utils.NewMailer(cfg)
	return store
}
