package controllers

import (
	"time"

	"github.com/TuanAnh19122003/motoparts-storefront/catalog"
	"github.com/TuanAnh19122003/motoparts-storefront/config"
)

// Shared dependencies for all controllers, set once at startup.
var (
	shopAPI  *catalog.Client
	listings *catalog.Registry
)

// listingTTL is how long an idle listing filter state survives before it is
// discarded, mirroring the listing page being closed.
const listingTTL = 30 * time.Minute

// Init wires the controllers to the remote shop API
func Init(cfg *config.Config) {
	shopAPI = catalog.NewClient(cfg.APIBaseURL)
	listings = catalog.NewRegistry(shopAPI, listingTTL)
}
