package samples

// Product is a row of the sample product catalogue.
type Product struct {
	ProductID    int     `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unit_price"`
	UnitsInStock int     `json:"units_in_stock"`
}

var products = []Product{
	{1, "Chai", "Beverages", 18.00, 39},
	{2, "Chang", "Beverages", 19.00, 17},
	{3, "Aniseed Syrup", "Condiments", 10.00, 13},
	{4, "Chef Anton's Cajun Seasoning", "Condiments", 22.00, 53},
	{5, "Chef Anton's Gumbo Mix", "Condiments", 21.35, 0},
	{6, "Grandma's Boysenberry Spread", "Condiments", 25.00, 120},
	{7, "Uncle Bob's Organic Dried Pears", "Produce", 30.00, 15},
	{8, "Northwoods Cranberry Sauce", "Condiments", 40.00, 6},
	{9, "Mishi Kobe Niku", "Meat/Poultry", 97.00, 29},
	{10, "Ikura", "Seafood", 31.00, 31},
	{11, "Queso Cabrales", "Dairy Products", 21.00, 22},
	{12, "Queso Manchego La Pastora", "Dairy Products", 38.00, 86},
	{13, "Konbu", "Seafood", 6.00, 24},
	{14, "Tofu", "Produce", 23.25, 35},
	{15, "Genen Shouyu", "Condiments", 15.50, 39},
	{16, "Pavlova", "Confections", 17.45, 29},
	{17, "Alice Mutton", "Meat/Poultry", 39.00, 0},
	{18, "Carnarvon Tigers", "Seafood", 62.50, 42},
	{19, "Teatime Chocolate Biscuits", "Confections", 9.20, 25},
	{20, "Sir Rodney's Marmalade", "Confections", 81.00, 40},
}

var words = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

var numbers = []int{5, 4, 1, 3, 9, 8, 6, 7, 2, 0}

// Products returns a copy of the sample product catalogue.
func Products() []Product { return append([]Product(nil), products...) }

// Words returns the English names of the digits zero to nine.
func Words() []string { return append([]string(nil), words...) }

// Numbers returns the digits 0–9 in a fixed, unsorted order.
func Numbers() []int { return append([]int(nil), numbers...) }
