package generate

import "ledgerlab/internal/core"

// Merchant label pools per category. Only the generator reads these; the
// aggregation engine treats descriptions as opaque text.
var merchants = map[core.Category][]string{
	core.Coffee: {
		"Blue Bottle Coffee", "Starbucks", "Corner Espresso Bar",
		"Ritual Roasters", "Cafe Luna",
	},
	core.Groceries: {
		"Whole Foods Market", "Trader Joe's", "Safeway",
		"Local Farmers Market", "Costco Wholesale",
	},
	core.Dining: {
		"Thai Palace", "La Trattoria", "Burger Joint",
		"Sushi Express", "The Taco Stand", "Golden Dragon",
	},
	core.Transport: {
		"Uber", "Lyft", "Metro Transit", "Shell Gas Station", "City Parking",
	},
	core.Shopping: {
		"Amazon", "Target", "Uniqlo", "Best Buy", "IKEA", "Nordstrom",
	},
	core.Utilities: {
		"City Power & Light", "Municipal Water", "Waste Management",
	},
	core.Entertainment: {
		"AMC Theatres", "Ticketmaster", "Steam", "Bowling Alley",
		"City Museum",
	},
	core.Healthcare: {
		"CVS Pharmacy", "City Medical Group", "Dental Associates",
	},
	core.Education: {
		"Udemy", "Coursera", "City Library Fines", "Language School",
	},
	core.Transfer: {
		"Transfer to Savings", "Venmo Transfer", "Zelle Transfer",
	},
}

// Subscription vendors are drawn cyclically so every persona carries a
// varied mix without duplicate pressure inside a month.
var subscriptionVendors = []string{
	"Netflix", "Spotify", "iCloud Storage", "YouTube Premium",
	"Notion", "Audible", "Disney+", "NYTimes", "Fitness App", "VPN Service",
}

// merchantFor picks a label for the category, falling back to the category
// name itself for anything outside the known pools.
func merchantFor(c core.Category, rng Rand) string {
	pool := merchants[c]
	if len(pool) == 0 {
		return string(c)
	}
	return pool[rng.Intn(len(pool))]
}
