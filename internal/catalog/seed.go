package catalog

import "allergysafe-be/internal/money"

// seedProducts is the static mock catalog. Prices are in millimes (TND).
var seedProducts = []Product{
	{
		ID:          "p-001",
		Name:        "Oreiller Anti-Acariens",
		Price:       money.FromMillimes(89000),
		Category:    "Literie",
		Image:       "/images/oreiller-anti-acariens.jpg",
		Description: "Oreiller en microfibre certifié sans acariens, housse déhoussable lavable à 60°C.",
		Materials:   []string{"Microfibre", "Coton bio"},
		Features:    []string{"Lavable 60°C", "Certifié Oeko-Tex"},
		AllergyTags: []string{"Hypoallergénique", "Sans Laine"},
		InStock:     true,
	},
	{
		ID:          "p-002",
		Name:        "Couette Fibres Naturelles",
		Price:       money.FromMillimes(159500),
		Category:    "Literie",
		Image:       "/images/couette-fibres.jpg",
		Description: "Couette tempérée en fibres de bambou, sans traitement chimique.",
		Materials:   []string{"Bambou", "Coton"},
		Features:    []string{"Thermorégulante", "Sans traitement chimique"},
		AllergyTags: []string{"Sans Laine", "Hypoallergénique"},
		InStock:     true,
	},
	{
		ID:          "p-003",
		Name:        "Drap Housse Coton Bio",
		Price:       money.FromMillimes(45000),
		Category:    "Literie",
		Image:       "/images/drap-housse.jpg",
		Description: "Drap housse 100% coton biologique non teint.",
		Materials:   []string{"Coton bio"},
		Features:    []string{"Non teint", "Tissage serré anti-acariens"},
		AllergyTags: []string{"Hypoallergénique"},
		InStock:     true,
	},
	{
		ID:          "p-004",
		Name:        "T-Shirt Coton Peigné",
		Price:       money.FromMillimes(29900),
		Category:    "Vêtements",
		Image:       "/images/tshirt-coton.jpg",
		Description: "T-shirt doux en coton peigné, coutures plates anti-irritation.",
		Materials:   []string{"Coton peigné"},
		Features:    []string{"Coutures plates", "Étiquette imprimée"},
		AllergyTags: []string{"Sans Laine", "Sans Nickel"},
		InStock:     true,
	},
	{
		ID:          "p-005",
		Name:        "Pull Sans Laine",
		Price:       money.FromMillimes(79000),
		Category:    "Vêtements",
		Image:       "/images/pull-sans-laine.jpg",
		Description: "Pull chaud en fibres acryliques douces, zéro laine animale.",
		Materials:   []string{"Acrylique doux", "Modal"},
		Features:    []string{"Chaleur sans démangeaison"},
		AllergyTags: []string{"Sans Laine"},
		InStock:     true,
	},
	{
		ID:          "p-006",
		Name:        "Gants Sans Latex",
		Price:       money.FromMillimes(12500),
		Category:    "Maison",
		Image:       "/images/gants-sans-latex.jpg",
		Description: "Gants de ménage en nitrile, aucune protéine de latex.",
		Materials:   []string{"Nitrile"},
		Features:    []string{"Résistants", "Intérieur floqué coton"},
		AllergyTags: []string{"Sans Latex"},
		InStock:     true,
	},
	{
		ID:          "p-007",
		Name:        "Crème Hydratante Neutre",
		Price:       money.FromMillimes(34750),
		Category:    "Cosmétiques",
		Image:       "/images/creme-neutre.jpg",
		Description: "Crème visage sans parfum ni conservateur allergisant.",
		Materials:   []string{"Beurre de karité", "Glycérine végétale"},
		Features:    []string{"Testée dermatologiquement", "pH neutre"},
		AllergyTags: []string{"Sans Parfum", "Hypoallergénique"},
		InStock:     true,
	},
	{
		ID:          "p-008",
		Name:        "Savon Surgras Sans Parfum",
		Price:       money.FromMillimes(8900),
		Category:    "Cosmétiques",
		Image:       "/images/savon-surgras.jpg",
		Description: "Savon saponifié à froid, sans parfum ni huile essentielle.",
		Materials:   []string{"Huile d'olive", "Huile de coco"},
		Features:    []string{"Saponification à froid"},
		AllergyTags: []string{"Sans Parfum"},
		InStock:     true,
	},
	{
		ID:          "p-009",
		Name:        "Boucles d'Oreilles Titane",
		Price:       money.FromMillimes(55000),
		Category:    "Vêtements",
		Image:       "/images/boucles-titane.jpg",
		Description: "Boucles d'oreilles en titane pur, zéro nickel.",
		Materials:   []string{"Titane grade 1"},
		Features:    []string{"Garanties sans nickel"},
		AllergyTags: []string{"Sans Nickel", "Hypoallergénique"},
		InStock:     false,
	},
	{
		ID:          "p-010",
		Name:        "Lessive Hypoallergénique",
		Price:       money.FromMillimes(21000),
		Category:    "Maison",
		Image:       "/images/lessive-hypo.jpg",
		Description: "Lessive liquide sans parfum, sans azurant optique.",
		Materials:   []string{"Tensioactifs végétaux"},
		Features:    []string{"Sans azurant", "Biodégradable"},
		AllergyTags: []string{"Sans Parfum", "Hypoallergénique"},
		InStock:     true,
	},
	{
		ID:          "p-011",
		Name:        "Matelas Mousse Certifiée",
		Price:       money.FromMillimes(899000),
		Category:    "Literie",
		Image:       "/images/matelas-mousse.jpg",
		Description: "Matelas en mousse haute résilience certifiée CertiPUR, sans latex.",
		Materials:   []string{"Mousse HR", "Housse Tencel"},
		Features:    []string{"Certifié CertiPUR", "Housse amovible"},
		AllergyTags: []string{"Sans Latex", "Hypoallergénique"},
		InStock:     true,
	},
	{
		ID:          "p-012",
		Name:        "Tapis Fibres Végétales",
		Price:       money.FromMillimes(129000),
		Category:    "Maison",
		Image:       "/images/tapis-vegetal.jpg",
		Description: "Tapis tissé en jute et coton, sans colle ni dossier latex.",
		Materials:   []string{"Jute", "Coton"},
		Features:    []string{"Sans colle", "Réversible"},
		AllergyTags: []string{"Sans Latex", "Sans Laine"},
		InStock:     true,
	},
}
