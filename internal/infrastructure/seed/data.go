package seed

import "github.com/jhoicas/stock-manager/internal/domain/entity"

// demoProduct fila del catálogo de demostración (cantine scolaire).
type demoProduct struct {
	name      string
	category  entity.Category
	quantity  string
	unit      string
	threshold string
	price     string
}

// demoMovement movimiento histórico; daysAgo relativo a la fecha de carga.
type demoMovement struct {
	product string
	typ     entity.MovementType
	qty     string
	daysAgo int
	comment string
}

var demoProducts = []demoProduct{
	{"Farine de blé T55", entity.CategoryGrocery, "120", "kg", "50", "0.85"},
	{"Sucre en poudre", entity.CategoryGrocery, "80", "kg", "30", "0.95"},
	{"Sel fin", entity.CategoryGrocery, "40", "kg", "20", "0.40"},
	{"Huile d'olive vierge", entity.CategoryGrocery, "18", "L", "20", "4.50"},
	{"Pâtes fusilli", entity.CategoryGrocery, "200", "kg", "60", "1.20"},
	{"Riz long grain", entity.CategoryGrocery, "150", "kg", "50", "1.10"},
	{"Tomates pelées en boîte", entity.CategoryGrocery, "48", "boîtes", "30", "1.30"},
	{"Lentilles vertes", entity.CategoryGrocery, "60", "kg", "25", "1.60"},
	{"Haricots blancs", entity.CategoryGrocery, "45", "kg", "20", "1.50"},
	{"Semoule fine", entity.CategoryGrocery, "12", "kg", "30", "0.90"},
	{"Lait demi-écrémé", entity.CategoryDairy, "90", "L", "40", "1.05"},
	{"Beurre doux", entity.CategoryDairy, "15", "kg", "10", "7.20"},
	{"Crème fraîche", entity.CategoryDairy, "8", "L", "10", "3.50"},
	{"Fromage râpé", entity.CategoryDairy, "22", "kg", "15", "8.90"},
	{"Yaourts nature", entity.CategoryDairy, "60", "pots", "24", "0.45"},
	{"Poulet (escalopes)", entity.CategoryMeatFish, "30", "kg", "20", "9.50"},
	{"Bœuf haché 5%MG", entity.CategoryMeatFish, "25", "kg", "15", "12.00"},
	{"Saumon (pavés)", entity.CategoryMeatFish, "10", "kg", "8", "18.00"},
	{"Thon en boîte", entity.CategoryMeatFish, "36", "boîtes", "24", "2.40"},
	{"Carottes", entity.CategoryFruitVeg, "50", "kg", "20", "0.80"},
	{"Pommes de terre", entity.CategoryFruitVeg, "100", "kg", "40", "0.70"},
	{"Courgettes", entity.CategoryFruitVeg, "6", "kg", "15", "1.20"},
	{"Pommes Gala", entity.CategoryFruitVeg, "40", "kg", "20", "1.80"},
	{"Savon liquide mains", entity.CategoryHygiene, "20", "L", "10", "3.20"},
	{"Papier absorbant", entity.CategoryHygiene, "5", "rouleaux", "12", "4.50"},
	{"Gel hydroalcoolique", entity.CategoryHygiene, "8", "L", "5", "6.00"},
	{"Gants jetables (boîte)", entity.CategoryEquipment, "10", "boîtes", "5", "8.00"},
	{"Film alimentaire", entity.CategoryEquipment, "3", "rouleaux", "4", "5.50"},
	{"Sacs poubelle 100L", entity.CategoryEquipment, "60", "sacs", "20", "0.25"},
	{"Barquettes alu", entity.CategoryEquipment, "200", "unités", "50", "0.15"},
}

var demoMovements = []demoMovement{
	{"Farine de blé T55", entity.MovementTypeReceipt, "50", 13, "Livraison fournisseur Moulin du Nord"},
	{"Pâtes fusilli", entity.MovementTypeIssue, "20", 13, "Repas lundi - 180 couverts"},
	{"Lait demi-écrémé", entity.MovementTypeReceipt, "40", 12, "Livraison hebdomadaire"},
	{"Poulet (escalopes)", entity.MovementTypeReceipt, "15", 12, "Commande urgente"},
	{"Riz long grain", entity.MovementTypeIssue, "25", 11, "Préparation riz cantonais"},
	{"Pommes de terre", entity.MovementTypeIssue, "30", 11, "Purée - repas mercredi"},
	{"Sucre en poudre", entity.MovementTypeIssue, "10", 10, "Desserts semaine 48"},
	{"Tomates pelées en boîte", entity.MovementTypeIssue, "12", 10, "Sauce tomate bolognaise"},
	{"Bœuf haché 5%MG", entity.MovementTypeReceipt, "20", 9, "Livraison boucherie Dupont"},
	{"Huile d'olive vierge", entity.MovementTypeIssue, "4", 9, "Cuisson semaine"},
	{"Carottes", entity.MovementTypeReceipt, "30", 8, "Marché local"},
	{"Pommes Gala", entity.MovementTypeReceipt, "25", 8, "Fruits de saison"},
	{"Yaourts nature", entity.MovementTypeIssue, "30", 7, "Desserts lundi mardi"},
	{"Savon liquide mains", entity.MovementTypeReceipt, "10", 7, "Stock hygiène mensuel"},
	{"Lentilles vertes", entity.MovementTypeIssue, "15", 6, "Plat végétarien jeudi"},
	{"Pâtes fusilli", entity.MovementTypeIssue, "25", 6, "Pâtes bolognaise vendredi"},
	{"Fromage râpé", entity.MovementTypeIssue, "5", 5, "Gratins semaine"},
	{"Sacs poubelle 100L", entity.MovementTypeReceipt, "40", 5, "Réappro matériel"},
	{"Sel fin", entity.MovementTypeIssue, "5", 4, "Usage cuisine quotidien"},
	{"Thon en boîte", entity.MovementTypeIssue, "12", 4, "Salades composées"},
	{"Farine de blé T55", entity.MovementTypeIssue, "15", 3, "Pâtisserie mercredi"},
	{"Beurre doux", entity.MovementTypeIssue, "3", 3, "Pâtisserie et sauces"},
	{"Courgettes", entity.MovementTypeReceipt, "8", 2, "Légumes frais livraison"},
	{"Poulet (escalopes)", entity.MovementTypeIssue, "12", 2, "Poulet rôti mardi"},
	{"Riz long grain", entity.MovementTypeIssue, "20", 1, "Accompagnement quotidien"},
	{"Lait demi-écrémé", entity.MovementTypeIssue, "15", 1, "Desserts lacés"},
	{"Gants jetables (boîte)", entity.MovementTypeIssue, "2", 1, "Cuisine du jour"},
	{"Pommes de terre", entity.MovementTypeReceipt, "50", 0, "Livraison hebdomadaire"},
	{"Saumon (pavés)", entity.MovementTypeIssue, "4", 0, "Poisson vendredi"},
	{"Crème fraîche", entity.MovementTypeIssue, "3", 0, "Sauce crème du jour"},
}
