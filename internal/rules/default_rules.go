package rules

import "github.com/cinnamonledger/cinnamon/internal/model"

// DefaultRules returns the built-in merchant rule set. Priorities group rules
// into bands: 100 for unambiguous billers and subscriptions, 80 for national
// chains, 60 for generic merchant substrings, 40 for broad keyword regexes.
func DefaultRules() []model.CategoryRule {
	return []model.CategoryRule{
		// Subscriptions and streaming - most stable descriptors.
		{ID: "netflix", Pattern: "NETFLIX.COM", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.98},
		{ID: "netflix-alt", Pattern: "NETFLIX", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.95},
		{ID: "spotify", Pattern: "SPOTIFY", Kind: model.KindSubstring, Category: "Music", Priority: 100, Confidence: 0.98},
		{ID: "hulu", Pattern: "HULU", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.97},
		{ID: "disney-plus", Pattern: "DISNEY PLUS", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.97},
		{ID: "hbo-max", Pattern: "HBO MAX", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.97},
		{ID: "youtube-premium", Pattern: "YOUTUBE PREMIUM", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.96},
		{ID: "youtube-tv", Pattern: "YOUTUBETV", Kind: model.KindSubstring, Category: "Cable & Satellite", Priority: 100, Confidence: 0.95},
		{ID: "apple-music", Pattern: "APPLE MUSIC", Kind: model.KindSubstring, Category: "Music", Priority: 100, Confidence: 0.96},
		{ID: "apple-bill", Pattern: "APPLE.COM/BILL", Kind: model.KindSubstring, Category: "Subscriptions", Priority: 95, Confidence: 0.85},
		{ID: "amazon-prime-video", Pattern: "AMAZON PRIME VIDEO", Kind: model.KindSubstring, Category: "Entertainment", Priority: 80, Confidence: 0.95},
		{ID: "amazon-prime", Pattern: "AMAZON PRIME", Kind: model.KindSubstring, Category: "Subscriptions", Priority: 80, Confidence: 0.92},
		{ID: "audible", Pattern: "AUDIBLE", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.95},
		{ID: "kindle", Pattern: "KINDLE", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.9},
		{ID: "paramount", Pattern: "PARAMOUNT+", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.96},
		{ID: "peacock", Pattern: "PEACOCK", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.94},
		{ID: "steam", Pattern: "STEAMGAMES", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.95},
		{ID: "playstation", Pattern: "PLAYSTATION", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.93},
		{ID: "nintendo", Pattern: "NINTENDO", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.93},
		{ID: "xbox", Pattern: "XBOX", Kind: model.KindSubstring, Category: "Entertainment", Priority: 100, Confidence: 0.92},
		{ID: "nytimes", Pattern: "NYTIMES", Kind: model.KindSubstring, Category: "Subscriptions", Priority: 100, Confidence: 0.95},
		{ID: "substack", Pattern: "SUBSTACK", Kind: model.KindSubstring, Category: "Subscriptions", Priority: 100, Confidence: 0.94},
		{ID: "patreon", Pattern: "PATREON", Kind: model.KindSubstring, Category: "Subscriptions", Priority: 100, Confidence: 0.94},
		{ID: "dropbox", Pattern: "DROPBOX", Kind: model.KindSubstring, Category: "Business Services", Priority: 100, Confidence: 0.93},
		{ID: "github", Pattern: "GITHUB", Kind: model.KindSubstring, Category: "Business Services", Priority: 100, Confidence: 0.93},
		{ID: "google-storage", Pattern: "GOOGLE STORAGE", Kind: model.KindSubstring, Category: "Business Services", Priority: 100, Confidence: 0.92},
		{ID: "icloud", Pattern: "ICLOUD", Kind: model.KindSubstring, Category: "Subscriptions", Priority: 100, Confidence: 0.93},

		// Groceries.
		{ID: "whole-foods", Pattern: "WHOLE FOODS", Kind: model.KindSubstring, Category: "Groceries", Priority: 85, Confidence: 0.96},
		{ID: "trader-joes", Pattern: "TRADER JOE", Kind: model.KindSubstring, Category: "Groceries", Priority: 85, Confidence: 0.96},
		{ID: "safeway", Pattern: "SAFEWAY", Kind: model.KindSubstring, Category: "Groceries", Priority: 85, Confidence: 0.95},
		{ID: "kroger", Pattern: "KROGER", Kind: model.KindSubstring, Category: "Groceries", Priority: 85, Confidence: 0.95},
		{ID: "albertsons", Pattern: "ALBERTSONS", Kind: model.KindSubstring, Category: "Groceries", Priority: 85, Confidence: 0.95},
		{ID: "publix", Pattern: "PUBLIX", Kind: model.KindSubstring, Category: "Groceries", Priority: 85, Confidence: 0.95},
		{ID: "aldi", Pattern: "ALDI", Kind: model.KindExact, Category: "Groceries", Priority: 85, Confidence: 0.95},
		{ID: "heb", Pattern: "H-E-B", Kind: model.KindSubstring, Category: "Groceries", Priority: 85, Confidence: 0.95},
		{ID: "wegmans", Pattern: "WEGMANS", Kind: model.KindSubstring, Category: "Groceries", Priority: 85, Confidence: 0.95},
		{ID: "instacart", Pattern: "INSTACART", Kind: model.KindSubstring, Category: "Food Delivery", Priority: 85, Confidence: 0.94},

		// Restaurants and coffee.
		{ID: "starbucks", Pattern: "STARBUCKS", Kind: model.KindSubstring, Category: "Food & Drink", Priority: 85, Confidence: 0.96},
		{ID: "dunkin", Pattern: "DUNKIN", Kind: model.KindSubstring, Category: "Food & Drink", Priority: 85, Confidence: 0.95},
		{ID: "peets", Pattern: "PEETS COFFEE", Kind: model.KindSubstring, Category: "Food & Drink", Priority: 85, Confidence: 0.95},
		{ID: "mcdonalds", Pattern: "MCDONALD", Kind: model.KindSubstring, Category: "Fast Food", Priority: 85, Confidence: 0.96},
		{ID: "burger-king", Pattern: "BURGER KING", Kind: model.KindSubstring, Category: "Fast Food", Priority: 85, Confidence: 0.95},
		{ID: "wendys", Pattern: "WENDYS", Kind: model.KindSubstring, Category: "Fast Food", Priority: 85, Confidence: 0.95},
		{ID: "chipotle", Pattern: "CHIPOTLE", Kind: model.KindSubstring, Category: "Fast Food", Priority: 85, Confidence: 0.95},
		{ID: "taco-bell", Pattern: "TACO BELL", Kind: model.KindSubstring, Category: "Fast Food", Priority: 85, Confidence: 0.95},
		{ID: "subway-food", Pattern: "SUBWAY", Kind: model.KindExact, Category: "Fast Food", Priority: 85, Confidence: 0.9},
		{ID: "kfc", Pattern: "KFC", Kind: model.KindExact, Category: "Fast Food", Priority: 85, Confidence: 0.94},
		{ID: "chick-fil-a", Pattern: "CHICK-FIL-A", Kind: model.KindSubstring, Category: "Fast Food", Priority: 85, Confidence: 0.95},
		{ID: "dominos", Pattern: "DOMINO", Kind: model.KindSubstring, Category: "Fast Food", Priority: 85, Confidence: 0.94},
		{ID: "pizza-hut", Pattern: "PIZZA HUT", Kind: model.KindSubstring, Category: "Fast Food", Priority: 85, Confidence: 0.95},
		{ID: "doordash", Pattern: "DOORDASH", Kind: model.KindSubstring, Category: "Food Delivery", Priority: 85, Confidence: 0.95},
		{ID: "ubereats", Pattern: "UBER EATS", Kind: model.KindSubstring, Category: "Food Delivery", Priority: 90, Confidence: 0.95},
		{ID: "grubhub", Pattern: "GRUBHUB", Kind: model.KindSubstring, Category: "Food Delivery", Priority: 85, Confidence: 0.95},
		{ID: "postmates", Pattern: "POSTMATES", Kind: model.KindSubstring, Category: "Food Delivery", Priority: 85, Confidence: 0.94},

		// Shopping.
		{ID: "amazon", Pattern: "AMAZON", Kind: model.KindSubstring, Category: "Shopping", Priority: 60, Confidence: 0.85},
		{ID: "amzn", Pattern: "AMZN", Kind: model.KindSubstring, Category: "Shopping", Priority: 60, Confidence: 0.85},
		{ID: "walmart", Pattern: "WALMART", Kind: model.KindSubstring, Category: "Shopping", Priority: 80, Confidence: 0.9},
		{ID: "target", Pattern: "TARGET", Kind: model.KindSubstring, Category: "Shopping", Priority: 80, Confidence: 0.9},
		{ID: "costco", Pattern: "COSTCO", Kind: model.KindSubstring, Category: "Groceries", Priority: 80, Confidence: 0.88},
		{ID: "ebay", Pattern: "EBAY", Kind: model.KindSubstring, Category: "Shopping", Priority: 80, Confidence: 0.9},
		{ID: "etsy", Pattern: "ETSY", Kind: model.KindSubstring, Category: "Shopping", Priority: 80, Confidence: 0.9},
		{ID: "best-buy", Pattern: "BEST BUY", Kind: model.KindSubstring, Category: "Electronics", Priority: 80, Confidence: 0.93},
		{ID: "apple-store", Pattern: "APPLE STORE", Kind: model.KindSubstring, Category: "Electronics", Priority: 80, Confidence: 0.9},
		{ID: "home-depot", Pattern: "HOME DEPOT", Kind: model.KindSubstring, Category: "Home Improvement", Priority: 80, Confidence: 0.94},
		{ID: "lowes", Pattern: "LOWES", Kind: model.KindSubstring, Category: "Home Improvement", Priority: 80, Confidence: 0.93},
		{ID: "ikea", Pattern: "IKEA", Kind: model.KindSubstring, Category: "Furniture", Priority: 80, Confidence: 0.94},
		{ID: "nike", Pattern: "NIKE", Kind: model.KindSubstring, Category: "Clothing", Priority: 80, Confidence: 0.92},
		{ID: "old-navy", Pattern: "OLD NAVY", Kind: model.KindSubstring, Category: "Clothing", Priority: 80, Confidence: 0.93},
		{ID: "gap", Pattern: "GAP", Kind: model.KindExact, Category: "Clothing", Priority: 80, Confidence: 0.9},
		{ID: "hm", Pattern: "H&M", Kind: model.KindSubstring, Category: "Clothing", Priority: 80, Confidence: 0.92},
		{ID: "uniqlo", Pattern: "UNIQLO", Kind: model.KindSubstring, Category: "Clothing", Priority: 80, Confidence: 0.93},

		// Transportation.
		{ID: "uber", Pattern: "UBER", Kind: model.KindSubstring, Category: "Transportation", Priority: 70, Confidence: 0.88},
		{ID: "lyft", Pattern: "LYFT", Kind: model.KindSubstring, Category: "Transportation", Priority: 80, Confidence: 0.94},
		{ID: "shell", Pattern: "SHELL OIL", Kind: model.KindSubstring, Category: "Gas & Fuel", Priority: 80, Confidence: 0.94},
		{ID: "chevron", Pattern: "CHEVRON", Kind: model.KindSubstring, Category: "Gas & Fuel", Priority: 80, Confidence: 0.94},
		{ID: "exxon", Pattern: "EXXON", Kind: model.KindSubstring, Category: "Gas & Fuel", Priority: 80, Confidence: 0.94},
		{ID: "mobil", Pattern: "MOBIL", Kind: model.KindSubstring, Category: "Gas & Fuel", Priority: 80, Confidence: 0.9},
		{ID: "bp", Pattern: "BP", Kind: model.KindExact, Category: "Gas & Fuel", Priority: 80, Confidence: 0.9},
		{ID: "76", Pattern: "76 - ", Kind: model.KindPrefix, Category: "Gas & Fuel", Priority: 80, Confidence: 0.88},
		{ID: "tesla-supercharger", Pattern: "TESLA SUPERCHARGER", Kind: model.KindSubstring, Category: "Gas & Fuel", Priority: 85, Confidence: 0.95},
		{ID: "parking-generic", Pattern: `\bPARKING\b|\bPARKMOBILE\b|\bSPOTHERO\b`, Kind: model.KindRegex, Category: "Parking", Priority: 40, Confidence: 0.82},
		{ID: "toll-generic", Pattern: `\bTOLL(S|WAY)?\b|\bFASTRAK\b|\bEZPASS\b|\bE-ZPASS\b`, Kind: model.KindRegex, Category: "Parking", Priority: 40, Confidence: 0.82},

		// Travel.
		{ID: "united", Pattern: "UNITED AIRLINES", Kind: model.KindSubstring, Category: "Air Travel", Priority: 80, Confidence: 0.95},
		{ID: "delta-air", Pattern: "DELTA AIR", Kind: model.KindSubstring, Category: "Air Travel", Priority: 80, Confidence: 0.95},
		{ID: "american-air", Pattern: "AMERICAN AIR", Kind: model.KindSubstring, Category: "Air Travel", Priority: 80, Confidence: 0.95},
		{ID: "southwest", Pattern: "SOUTHWES", Kind: model.KindSubstring, Category: "Air Travel", Priority: 80, Confidence: 0.92},
		{ID: "alaska-air", Pattern: "ALASKA AIR", Kind: model.KindSubstring, Category: "Air Travel", Priority: 80, Confidence: 0.95},
		{ID: "airbnb", Pattern: "AIRBNB", Kind: model.KindSubstring, Category: "Hotels", Priority: 80, Confidence: 0.95},
		{ID: "marriott", Pattern: "MARRIOTT", Kind: model.KindSubstring, Category: "Hotels", Priority: 80, Confidence: 0.94},
		{ID: "hilton", Pattern: "HILTON", Kind: model.KindSubstring, Category: "Hotels", Priority: 80, Confidence: 0.94},
		{ID: "expedia", Pattern: "EXPEDIA", Kind: model.KindSubstring, Category: "Travel", Priority: 80, Confidence: 0.93},
		{ID: "booking", Pattern: "BOOKING.COM", Kind: model.KindSubstring, Category: "Travel", Priority: 80, Confidence: 0.94},

		// Utilities and telecom.
		{ID: "comcast", Pattern: "COMCAST", Kind: model.KindSubstring, Category: "Internet", Priority: 90, Confidence: 0.94},
		{ID: "xfinity", Pattern: "XFINITY", Kind: model.KindSubstring, Category: "Internet", Priority: 90, Confidence: 0.94},
		{ID: "att", Pattern: "AT&T", Kind: model.KindSubstring, Category: "Mobile Phone", Priority: 90, Confidence: 0.9},
		{ID: "verizon", Pattern: "VERIZON", Kind: model.KindSubstring, Category: "Mobile Phone", Priority: 90, Confidence: 0.93},
		{ID: "tmobile", Pattern: "T-MOBILE", Kind: model.KindSubstring, Category: "Mobile Phone", Priority: 90, Confidence: 0.93},
		{ID: "pge", Pattern: "PG&E", Kind: model.KindSubstring, Category: "Utilities", Priority: 90, Confidence: 0.95},
		{ID: "coned", Pattern: "CON EDISON", Kind: model.KindSubstring, Category: "Utilities", Priority: 90, Confidence: 0.95},
		{ID: "utility-generic", Pattern: `\b(ELECTRIC|WATER|SEWER|GAS CO|POWER & LIGHT|ENERGY)\b`, Kind: model.KindRegex, Category: "Utilities", Priority: 40, Confidence: 0.75},

		// Health and fitness.
		{ID: "cvs", Pattern: "CVS", Kind: model.KindPrefix, Category: "Pharmacy", Priority: 80, Confidence: 0.93},
		{ID: "walgreens", Pattern: "WALGREENS", Kind: model.KindSubstring, Category: "Pharmacy", Priority: 80, Confidence: 0.94},
		{ID: "rite-aid", Pattern: "RITE AID", Kind: model.KindSubstring, Category: "Pharmacy", Priority: 80, Confidence: 0.94},
		{ID: "planet-fitness", Pattern: "PLANET FITNESS", Kind: model.KindSubstring, Category: "Fitness", Priority: 85, Confidence: 0.95},
		{ID: "24hr-fitness", Pattern: "24 HOUR FITNESS", Kind: model.KindSubstring, Category: "Fitness", Priority: 85, Confidence: 0.95},
		{ID: "equinox", Pattern: "EQUINOX", Kind: model.KindSubstring, Category: "Fitness", Priority: 85, Confidence: 0.93},
		{ID: "peloton", Pattern: "PELOTON", Kind: model.KindSubstring, Category: "Fitness", Priority: 85, Confidence: 0.94},
		{ID: "medical-generic", Pattern: `\b(CLINIC|HOSPITAL|MEDICAL|DENTAL|ORTHO)\b`, Kind: model.KindRegex, Category: "Medical", Priority: 40, Confidence: 0.7},

		// Financial.
		{ID: "venmo", Pattern: "VENMO", Kind: model.KindSubstring, Category: "Transfer", Priority: 70, Confidence: 0.85},
		{ID: "zelle", Pattern: "ZELLE", Kind: model.KindSubstring, Category: "Transfer", Priority: 70, Confidence: 0.85},
		{ID: "paypal", Pattern: "PAYPAL", Kind: model.KindSubstring, Category: "Shopping", Priority: 50, Confidence: 0.6},
		{ID: "atm-withdrawal", Pattern: `\bATM\b`, Kind: model.KindRegex, Category: "Cash & ATM", Priority: 45, Confidence: 0.85},
		{ID: "interest-paid", Pattern: `\bINTEREST (PAID|PAYMENT|EARNED)\b`, Kind: model.KindRegex, Category: "Interest", Priority: 45, Confidence: 0.9},
		{ID: "payroll", Pattern: `\b(PAYROLL|DIRECT DEP|DIRECTDEP|SALARY)\b`, Kind: model.KindRegex, Category: "Income", Priority: 45, Confidence: 0.9},
		{ID: "irs", Pattern: "IRS TREAS", Kind: model.KindSubstring, Category: "Taxes", Priority: 90, Confidence: 0.95},
		{ID: "overdraft-fee", Pattern: `\b(OVERDRAFT|NSF|LATE) FEE\b`, Kind: model.KindRegex, Category: "Fees & Charges", Priority: 45, Confidence: 0.92},
		{ID: "student-loan", Pattern: `\b(NAVIENT|NELNET|MOHELA|GREAT LAKES)\b`, Kind: model.KindRegex, Category: "Student Loan", Priority: 85, Confidence: 0.94},
		{ID: "mortgage-generic", Pattern: `\bMORTGAGE\b`, Kind: model.KindRegex, Category: "Mortgage", Priority: 45, Confidence: 0.88},
		{ID: "rent-generic", Pattern: `\bRENT PAYMENT\b`, Kind: model.KindRegex, Category: "Rent", Priority: 45, Confidence: 0.85},

		// Pets, kids, misc.
		{ID: "chewy", Pattern: "CHEWY", Kind: model.KindSubstring, Category: "Pets", Priority: 80, Confidence: 0.94},
		{ID: "petco", Pattern: "PETCO", Kind: model.KindSubstring, Category: "Pets", Priority: 80, Confidence: 0.94},
		{ID: "petsmart", Pattern: "PETSMART", Kind: model.KindSubstring, Category: "Pets", Priority: 80, Confidence: 0.94},
		{ID: "usps", Pattern: "USPS", Kind: model.KindSubstring, Category: "Postage & Shipping", Priority: 80, Confidence: 0.93},
		{ID: "ups", Pattern: "THE UPS STORE", Kind: model.KindSubstring, Category: "Postage & Shipping", Priority: 80, Confidence: 0.93},
		{ID: "fedex", Pattern: "FEDEX", Kind: model.KindSubstring, Category: "Postage & Shipping", Priority: 80, Confidence: 0.93},
		{ID: "dmv", Pattern: "DMV", Kind: model.KindPrefix, Category: "Government", Priority: 80, Confidence: 0.9},
		{ID: "coffee-generic", Pattern: `\b(COFFEE|CAFE|ESPRESSO|ROASTER)\b`, Kind: model.KindRegex, Category: "Food & Drink", Priority: 40, Confidence: 0.72},
		{ID: "restaurant-generic", Pattern: `\b(RESTAURANT|GRILL|BISTRO|TAVERN|KITCHEN|PIZZERIA|SUSHI|TAQUERIA)\b`, Kind: model.KindRegex, Category: "Food & Drink", Priority: 40, Confidence: 0.7},
		{ID: "grocery-generic", Pattern: `\b(GROCERY|MARKET|SUPERMARKET|FOODS)\b`, Kind: model.KindRegex, Category: "Groceries", Priority: 40, Confidence: 0.68},
		{ID: "fuel-generic", Pattern: `\b(FUEL|GAS STATION|PETROL)\b`, Kind: model.KindRegex, Category: "Gas & Fuel", Priority: 40, Confidence: 0.72},
	}
}
