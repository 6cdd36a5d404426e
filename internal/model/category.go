package model

// Category is the business label assigned to a bank transaction.
type Category string

const (
	CategoryRevenue       Category = "revenue"
	CategoryLabor         Category = "labor"
	CategoryMaterials     Category = "materials"
	CategoryEquipment     Category = "equipment"
	CategoryTravel        Category = "travel"
	CategoryUtilities     Category = "utilities"
	CategoryRent          Category = "rent"
	CategoryUncategorized Category = "uncategorized"
)

// Categories lists every valid label.
var Categories = []Category{
	CategoryRevenue,
	CategoryLabor,
	CategoryMaterials,
	CategoryEquipment,
	CategoryTravel,
	CategoryUtilities,
	CategoryRent,
	CategoryUncategorized,
}

// Valid reports whether c is one of the known labels.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
