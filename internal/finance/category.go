package finance

// Category is a fixed classification tag for transactions.
type Category struct {
	Key   string `json:"key" example:"food"`         // Identifier stored on transactions
	Name  string `json:"name" example:"Alimentação"` // Display name
	Icon  string `json:"icon" example:"coffee"`      // Feather icon name used by the app
	Color string `json:"color" example:"#FF872C"`    // Display color for charts
}

// Categories is the static category table. The order is the display order
// of the category breakdown.
var Categories = []Category{
	{Key: "purchases", Name: "Compras", Icon: "shopping-bag", Color: "#5636D3"},
	{Key: "food", Name: "Alimentação", Icon: "coffee", Color: "#FF872C"},
	{Key: "salary", Name: "Salário", Icon: "dollar-sign", Color: "#12A454"},
	{Key: "car", Name: "Carro", Icon: "crosshair", Color: "#E83F5B"},
	{Key: "leisure", Name: "Lazer", Icon: "heart", Color: "#26195C"},
	{Key: "studies", Name: "Estudos", Icon: "book", Color: "#9C001A"},
}

// LookupCategory returns the category for the key from the static table.
// The boolean is false if the key is unknown.
func LookupCategory(key string) (Category, bool) {
	return lookupCategory(Categories, key)
}

func lookupCategory(table []Category, key string) (Category, bool) {
	for _, c := range table {
		if c.Key == key {
			return c, true
		}
	}

	return Category{}, false
}
