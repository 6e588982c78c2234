package category

import "github.com/jstello/SMS-finance-sub000/internal/model"

// Defaults returns the built-in category list a fresh install starts with.
func Defaults() []model.Category {
	return []model.Category{
		{ID: "food-dining", Name: "Food & Dining", Color: model.RGB{R: 0x4C, G: 0xAF, B: 0x50}},
		{ID: "transportation", Name: "Transportation", Color: model.RGB{R: 0x21, G: 0x96, B: 0xF3}},
		{ID: "shopping", Name: "Shopping", Color: model.RGB{R: 0xF4, G: 0x43, B: 0x36}},
		{ID: "entertainment", Name: "Entertainment", Color: model.RGB{R: 0x9C, G: 0x27, B: 0xB0}},
		{ID: "housing", Name: "Housing", Color: model.RGB{R: 0x79, G: 0x55, B: 0x48}},
		{ID: "utilities", Name: "Utilities", Color: model.RGB{R: 0x60, G: 0x7D, B: 0x8B}},
		{ID: "health", Name: "Health", Color: model.RGB{R: 0xE9, G: 0x1E, B: 0x63}},
		{ID: "personal", Name: "Personal", Color: model.RGB{R: 0xFF, G: 0x98, B: 0x00}},
		{ID: "education", Name: "Education", Color: model.RGB{R: 0x3F, G: 0x51, B: 0xB5}},
		{ID: "investments", Name: "Investments", Color: model.RGB{R: 0x00, G: 0x96, B: 0x88}},
		{ID: "payroll", Name: "Payroll", Color: model.RGB{R: 0x4C, G: 0xAF, B: 0x50}},
		{ID: "travel", Name: "Travel", Color: model.RGB{R: 0x03, G: 0xA9, B: 0xF4}},
		{ID: "other", Name: "Other", Color: model.RGB{R: 0x9E, G: 0x9E, B: 0x9E}},
	}
}
