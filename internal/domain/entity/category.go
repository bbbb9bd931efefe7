package entity

import "fmt"

// Category categoría de producto. Conjunto cerrado definido por el negocio.
type Category string

// Categorías del catálogo, en orden de presentación.
const (
	CategoryGrocery   Category = "Épicerie"
	CategoryDairy     Category = "Produits laitiers"
	CategoryMeatFish  Category = "Viandes & Poissons"
	CategoryFruitVeg  Category = "Fruits & Légumes"
	CategoryHygiene   Category = "Hygiène"
	CategoryEquipment Category = "Matériel"
)

var categories = []Category{
	CategoryGrocery,
	CategoryDairy,
	CategoryMeatFish,
	CategoryFruitVeg,
	CategoryHygiene,
	CategoryEquipment,
}

// Categories devuelve una copia de las categorías válidas.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid indica si c pertenece al conjunto cerrado.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory valida el texto recibido.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("categoría desconocida: %q", s)
	}
	return c, nil
}
