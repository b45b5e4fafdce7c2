package utils

// Application constants
const (
	// Application name
	AppName = "MotoParts Storefront"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// LoginRoute is where unauthenticated customers are sent
	LoginRoute = "/v1/login"

	// Price range bounds for the listing filter (VND)
	PriceFilterMin = 0
	PriceFilterMax = 10_000_000

	// CarouselThreshold is the item count at which a section switches from
	// a wrapping grid to a paged carousel
	CarouselThreshold = 6

	// CarouselSlidesWide is how many cards a carousel page shows on wide
	// viewports
	CarouselSlidesWide = 5

	// Cart quantity bounds
	MinCartQuantity = 1
	MaxCartQuantity = 100
)
