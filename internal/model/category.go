package model

// Category is a spending category transactions are classified into.
type Category struct {
	Name        string
	Description string
}

// DefaultCategories returns the built-in category taxonomy. The fallback
// classifier is constrained to this list; rules may reference any entry.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Groceries", Description: "Supermarkets and grocery stores"},
		{Name: "Food & Drink", Description: "Restaurants, cafes, bars, and coffee shops"},
		{Name: "Fast Food", Description: "Quick service restaurants and takeout"},
		{Name: "Food Delivery", Description: "Meal and grocery delivery services"},
		{Name: "Entertainment", Description: "Streaming, movies, games, and events"},
		{Name: "Music", Description: "Music streaming and purchases"},
		{Name: "Subscriptions", Description: "Recurring digital subscriptions not covered elsewhere"},
		{Name: "Shopping", Description: "General retail and online shopping"},
		{Name: "Clothing", Description: "Apparel, shoes, and accessories"},
		{Name: "Electronics", Description: "Computers, phones, and gadgets"},
		{Name: "Home Improvement", Description: "Hardware stores and home repair"},
		{Name: "Furniture", Description: "Furniture and home furnishings"},
		{Name: "Transportation", Description: "Rideshare, taxis, and public transit"},
		{Name: "Gas & Fuel", Description: "Gas stations and EV charging"},
		{Name: "Parking", Description: "Parking garages, meters, and tolls"},
		{Name: "Auto Services", Description: "Car repair, maintenance, and washes"},
		{Name: "Auto Insurance", Description: "Vehicle insurance premiums"},
		{Name: "Air Travel", Description: "Airlines and airport fees"},
		{Name: "Hotels", Description: "Hotels and short-term lodging"},
		{Name: "Travel", Description: "Travel bookings and agencies"},
		{Name: "Rent", Description: "Residential rent payments"},
		{Name: "Mortgage", Description: "Mortgage payments"},
		{Name: "Utilities", Description: "Electric, gas, water, and sewer"},
		{Name: "Internet", Description: "Home internet service"},
		{Name: "Mobile Phone", Description: "Cell phone service"},
		{Name: "Cable & Satellite", Description: "Television service"},
		{Name: "Insurance", Description: "Insurance premiums not covered elsewhere"},
		{Name: "Health Insurance", Description: "Medical insurance premiums"},
		{Name: "Medical", Description: "Doctors, hospitals, and clinics"},
		{Name: "Pharmacy", Description: "Prescriptions and drugstores"},
		{Name: "Dental", Description: "Dental care"},
		{Name: "Vision", Description: "Eye care and eyewear"},
		{Name: "Fitness", Description: "Gyms, studios, and fitness apps"},
		{Name: "Personal Care", Description: "Salons, barbers, and spas"},
		{Name: "Education", Description: "Tuition, courses, and books"},
		{Name: "Childcare", Description: "Daycare and babysitting"},
		{Name: "Kids", Description: "Children's goods and activities"},
		{Name: "Pets", Description: "Pet food, supplies, and veterinary care"},
		{Name: "Gifts", Description: "Gifts and flowers"},
		{Name: "Charity", Description: "Charitable donations"},
		{Name: "Taxes", Description: "Tax payments and preparation"},
		{Name: "Fees & Charges", Description: "Bank fees, service charges, and penalties"},
		{Name: "Financial Services", Description: "Brokerage, advisory, and financial products"},
		{Name: "Investments", Description: "Transfers to investment accounts"},
		{Name: "Savings", Description: "Transfers to savings"},
		{Name: "Loan Payment", Description: "Loan and credit payments"},
		{Name: "Student Loan", Description: "Student loan payments"},
		{Name: "Income", Description: "Salary, wages, and other earnings"},
		{Name: "Interest", Description: "Interest and dividend income"},
		{Name: "Refunds", Description: "Refunds and reimbursements"},
		{Name: "Transfer", Description: "Transfers between own accounts"},
		{Name: "Cash & ATM", Description: "Cash withdrawals"},
		{Name: "Business Services", Description: "Office, software, and professional services"},
		{Name: "Postage & Shipping", Description: "Mail and package services"},
		{Name: "Government", Description: "Government fees and services"},
		{Name: Uncategorized, Description: "Transactions that could not be classified"},
	}
}
