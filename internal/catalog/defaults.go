package catalog

// builtin is the document table shipped with the binary.
var builtin = []Category{
	{
		ID:     "articulos",
		Label:  "Artículos",
		Folder: "Articulos",
		Documents: []Document{
			{
				Title:       "Libro Rojo de la Flora Nativa: Región de Coquimbo",
				Description: "Descripción del estado de conservación.",
				Filename:    "LIBRO ROJO DE LA FLORA NATIVA_COQUIMBO.pdf",
			},
			{
				Title:       "Libro Rojo de la Flora Nativa: Región de Atacama",
				Description: "Descripción detallada de la región.",
				Filename:    "LIBRO ROJO DE LA FLORA NATIVA_ATACAMA.pdf",
			},
			{
				Title:       "Efecto del riego y la poda en la captura de niebla",
				Description: "Estudio sobre formaciones xerofíticas.",
				Filename:    "Vista de Efecto del riego y la poda en la habilidad de captura de niebla de formaciones xerofíticas chilenas.pdf",
			},
		},
	},
	{
		ID:     "eia",
		Label:  "Estudios de Impacto Ambiental",
		Folder: "EIA",
		Documents: []Document{
			{
				Title:       "Resumen ejecutivo",
				Description: "Estudio de impacto ambiental “Proyecto Volta”.",
				Filename:    "Resumen_Ejecutivo_EIA_Volta.pdf",
			},
		},
	},
	{
		ID:     "informes",
		Label:  "Informes",
		Folder: "Informes",
		Documents: []Document{
			{
				Title:       "Sexto Informe nacional de biodiversidad",
				Description: "Reporte oficial.",
				Filename:    "8-sexto-informe-nacional-de-biodiversidad.pdf",
			},
			{
				Title:       "Catastro de formaciones xerofíticas",
				Description: "Áreas prioritarias.",
				Filename:    "CATASTRO DE FORMACIONES XEROFÍTICAS EN ÁREAS PRIORITARIAS_200.pdf",
			},
		},
	},
	{
		ID:     "normativos",
		Label:  "Normativos",
		Folder: "Normativos",
		Documents: []Document{
			{
				Title:       "Ley 20283 - Bosque Nativo",
				Description: "Ley sobre recuperación y fomento forestal.",
				Filename:    "Ley 20283_LEY SOBRE RECUPERACIÓN DEL BOSQUE NATIVO Y FOMENTO FORESTAL.pdf",
			},
		},
	},
}

// DefaultCategory is the category shown on first load.
const DefaultCategory = "articulos"

var defaultCatalog = mustNew(DefaultBase, builtin)

// Default returns the built-in catalog. It is shared and never mutated.
func Default() *Catalog {
	return defaultCatalog
}

func mustNew(base string, categories []Category) *Catalog {
	c, err := New(base, categories)
	if err != nil {
		panic(err)
	}
	return c
}
