package models

// Category groups products on the menu.
type Category struct {
	ID        int    `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	SortOrder int    `bson:"sort_order" json:"sort_order"`
}

// Product is one orderable menu item. Price is pounds.
type Product struct {
	ID          int     `bson:"id" json:"id"`
	CategoryID  int     `bson:"category_id" json:"category_id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Available   bool    `bson:"available" json:"available"`
}

// OptionChoice is one selectable choice within an option group.
type OptionChoice struct {
	ID              int     `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	AdditionalPrice float64 `bson:"additional_price" json:"additional_price"`
	SortOrder       int     `bson:"sort_order" json:"sort_order"`
}

// ProductOption is an option group attached to a product. Required groups are
// single-select; optional groups allow multiple choices.
type ProductOption struct {
	ID        int            `bson:"id" json:"id"`
	ProductID int            `bson:"product_id" json:"product_id"`
	Name      string         `bson:"name" json:"name"`
	Required  bool           `bson:"required" json:"required"`
	Choices   []OptionChoice `bson:"choices" json:"choices"`
}

// Menu is the assembled document served to the storefront.
type Menu struct {
	Categories []Category      `json:"categories"`
	Products   []Product       `json:"products"`
	Options    []ProductOption `json:"options"`
}

// ProductByID returns the product with the given id, or nil.
func (m *Menu) ProductByID(id int) *Product {
	for i := range m.Products {
		if m.Products[i].ID == id {
			return &m.Products[i]
		}
	}
	return nil
}

// OptionsForProduct returns the option groups attached to a product.
func (m *Menu) OptionsForProduct(productID int) []ProductOption {
	var opts []ProductOption
	for _, o := range m.Options {
		if o.ProductID == productID {
			opts = append(opts, o)
		}
	}
	return opts
}
