package catalog

import "allergysafe-be/internal/money"

type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       money.Amount `json:"price"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Description string       `json:"description"`
	Materials   []string     `json:"materials"`
	Features    []string     `json:"features"`
	AllergyTags []string     `json:"allergy_tags"`
	InStock     bool         `json:"in_stock"`
}

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "Tout"

// Categories lists the storefront facets in display order.
var Categories = []string{CategoryAll, "Literie", "Vêtements", "Cosmétiques", "Maison"}

// AllergyFilters lists the allergy tags exposed as filters.
var AllergyFilters = []string{"Sans Latex", "Sans Laine", "Sans Parfum", "Sans Nickel", "Hypoallergénique"}

type ListOptions struct {
	Category string
	Allergy  string
	Page     int
}

type ListResult struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalItems int       `json:"total_items"`
	TotalPages int       `json:"total_pages"`
}

type NewProduct struct {
	Name        string       `json:"name"`
	Price       money.Amount `json:"price"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Description string       `json:"description"`
	Materials   []string     `json:"materials"`
	Features    []string     `json:"features"`
	AllergyTags []string     `json:"allergy_tags"`
	InStock     bool         `json:"in_stock"`
}

type UpdateProduct struct {
	ID          string        `json:"id"`
	Name        *string       `json:"name,omitempty"`
	Price       *money.Amount `json:"price,omitempty"`
	Category    *string       `json:"category,omitempty"`
	Image       *string       `json:"image,omitempty"`
	Description *string       `json:"description,omitempty"`
	Materials   []string      `json:"materials,omitempty"`
	Features    []string      `json:"features,omitempty"`
	AllergyTags []string      `json:"allergy_tags,omitempty"`
	InStock     *bool         `json:"in_stock,omitempty"`
}
