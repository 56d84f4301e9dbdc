package models

// Category is one entry of a type's category vocabulary.
type Category struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// ExpenseCategories is the vocabulary offered for expenses.
var ExpenseCategories = []Category{
	{Name: "Food & Drinks", Color: "#FF5733"},
	{Name: "Transport", Color: "#4285F4"},
	{Name: "Entertainment", Color: "#FFC300"},
	{Name: "Health", Color: "#FF8C00"},
	{Name: "Shopping", Color: "#E91E63"},
	{Name: "Utilities", Color: "#4CAF50"},
	{Name: "Subscriptions", Color: "#9C27B0"},
	{Name: "Household Supplies", Color: "#FF9800"},
	{Name: "Education", Color: "#673AB7"},
	{Name: "Fitness", Color: "#009688"},
	{Name: "Insurance", Color: "#795548"},
	{Name: "Investments", Color: "#3F51B5"},
	{Name: "Donations", Color: "#F44336"},
	{Name: "Pets", Color: "#00BCD4"},
	{Name: "General", Color: "#9E9E9E"},
}

// IncomeCategories is the vocabulary offered for income.
var IncomeCategories = []Category{
	{Name: "Salary", Color: "#4CAF50"},
	{Name: "Freelance", Color: "#FF5722"},
	{Name: "Investments", Color: "#3F51B5"},
	{Name: "Other", Color: "#9E9E9E"},
	{Name: "Pension", Color: "#673AB7"},
	{Name: "Tax Refund", Color: "#8BC34A"},
	{Name: "Business", Color: "#2196F3"},
	{Name: "Bonuses", Color: "#FFC107"},
}

// CategoriesFor returns a copy of the vocabulary of t, or nil for an invalid type.
func CategoriesFor(t TransactionType) []Category {
	var src []Category
	switch t {
	case TypeExpense:
		src = ExpenseCategories
	case TypeIncome:
		src = IncomeCategories
	default:
		return nil
	}
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

// IsValidCategory reports whether name belongs to the vocabulary of t.
// Matching is exact.
func IsValidCategory(t TransactionType, name string) bool {
	for _, c := range CategoriesFor(t) {
		if c.Name == name {
			return true
		}
	}
	return false
}

// CategoryColor returns the vocabulary color of name, searching expenses first.
func CategoryColor(name string) (string, bool) {
	for _, set := range [][]Category{ExpenseCategories, IncomeCategories} {
		for _, c := range set {
			if c.Name == name {
				return c.Color, true
			}
		}
	}
	return "", false
}

// AllCategoryNames returns every category name once, expenses first.
func AllCategoryNames() []string {
	seen := make(map[string]struct{}, len(ExpenseCategories)+len(IncomeCategories))
	var names []string
	for _, set := range [][]Category{ExpenseCategories, IncomeCategories} {
		for _, c := range set {
			if _, ok := seen[c.Name]; ok {
				continue
			}
			seen[c.Name] = struct{}{}
			names = append(names, c.Name)
		}
	}
	return names
}
