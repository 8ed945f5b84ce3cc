// Package categorization assigns taxonomy categories to news items using
// ordered keyword rules. Two strategies are provided: PriorityClassifier
// for the real-estate vertical and HintClassifier for the tech vertical.
// Both are deterministic; rule order is the disambiguation mechanism.
package categorization

import (
	"errors"
	"sort"
	"strings"

	"newsstudio/internal/core"
)

// Classifier assigns a category from a title and optional summary.
type Classifier interface {
	Classify(title, summary string) string
}

// ErrEmptyRules is returned when a classifier is built without any rules.
var ErrEmptyRules = errors.New("categorization: empty rule table")

// PriorityClassifier matches keyword phrases against title and summary in
// three passes: multi-word phrases of the specific rules, then single-word
// keywords of the specific rules, then the general fallback rule. Phrases
// naming a concrete situation ("precio de vivienda") therefore beat generic
// single words ("vivienda") regardless of table position.
type PriorityClassifier struct {
	specific []core.ClassificationRule
	general  core.ClassificationRule
	fallback string
}

// NewPriorityClassifier builds a classifier from specific rules, one general
// rule and a fallback category. Specific rules are ordered: a rule whose
// category equals pinFirst goes first, the rest by ascending phrase count so
// narrower rules get the first shot.
func NewPriorityClassifier(specific []core.ClassificationRule, general core.ClassificationRule, pinFirst, fallback string) (*PriorityClassifier, error) {
	if len(specific) == 0 && len(general.Phrases) == 0 {
		return nil, ErrEmptyRules
	}
	ordered := make([]core.ClassificationRule, len(specific))
	copy(ordered, specific)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := ordered[i].Category == pinFirst, ordered[j].Category == pinFirst
		if pi != pj {
			return pi
		}
		return len(ordered[i].Phrases) < len(ordered[j].Phrases)
	})
	return &PriorityClassifier{specific: ordered, general: general, fallback: fallback}, nil
}

// Classify returns the category for the given title and summary. The
// fallback category is returned when nothing matches, so the result is
// always a member of the taxonomy.
func (p *PriorityClassifier) Classify(title, summary string) string {
	text := strings.ToLower(title)
	if summary != "" {
		text += " " + strings.ToLower(summary)
	}

	for _, rule := range p.specific {
		for _, phrase := range rule.Phrases {
			if strings.Contains(phrase, " ") && strings.Contains(text, phrase) {
				return rule.Category
			}
		}
	}
	for _, rule := range p.specific {
		for _, phrase := range rule.Phrases {
			if !strings.Contains(phrase, " ") && strings.Contains(text, phrase) {
				return rule.Category
			}
		}
	}
	for _, phrase := range p.general.Phrases {
		if strings.Contains(text, phrase) {
			return p.general.Category
		}
	}
	return p.fallback
}

// NewRealEstateClassifier returns the shipped real-estate classifier:
// the full sector rule table with FONDOS_INVERSION_INMOBILIARIA evaluated
// first and NOTICIAS_INMOBILIARIAS as the general rule and fallback.
func NewRealEstateClassifier() *PriorityClassifier {
	c, err := NewPriorityClassifier(realEstateRules(), realEstateGeneralRule(), FondosInversionInmobiliaria, NoticiasInmobiliarias)
	if err != nil {
		// The compiled-in table is never empty.
		panic(err)
	}
	return c
}

func realEstateGeneralRule() core.ClassificationRule {
	return core.ClassificationRule{
		Category: NoticiasInmobiliarias,
		Phrases: []string{
			"inmobiliario", "inmobiliaria", "inmobiliarias", "vivienda", "viviendas",
			"propiedad", "propiedades", "inmueble", "inmuebles", "mercado inmobiliario",
		},
	}
}

func realEstateRules() []core.ClassificationRule {
	return []core.ClassificationRule{
		{Category: FondosInversionInmobiliaria, Phrases: []string{
			"experto en vivienda", "experto inmobiliario", "ceo de", "director general de",
			"fondo de inversión", "fondos de inversión", "fondo inmobiliario", "fondos inmobiliarios",
			"gestión de activos inmobiliarios", "vehículo de inversión",
			"gestión patrimonial", "patrimonio inmobiliario", "grupo inmobiliario",
			"estrategia inversión", "estrategia inmobiliaria", "ciclo inmobiliario",
			"gestiona millones", "millones en patrimonio", "patrimonio de millones",
			"mazabi", "merlin", "colonial", "metrovacesa", "neinor", "azora", "hines",
			"silicius",
			"socimi", "socimis", "reit", "reits", "fondo cerrado", "fondo abierto",
			"experto", "expertos", "ceo", "director general", "directivo", "directivos",
			"patrimonio de",
		}},
		{Category: GrandesInversionesInmobiliarias, Phrases: []string{
			"gran inversión", "grandes inversiones", "inversión millonaria", "millones de inversión",
			"mega proyecto", "macro proyecto", "inversión masiva", "operación inmobiliaria",
			"transacción millonaria", "adquisición millonaria",
			"proyectos en españa", "proyectos en londres", "proyectos en parís",
		}},
		{Category: MovimientosGrandesTenedores, Phrases: []string{
			"gran tenedor", "grandes tenedores", "inversor institucional", "inversores institucionales",
			"fondo buitre", "fondos buitre", "hedge fund", "private equity",
			"operador inmobiliario", "operadores inmobiliarios",
			"rotación de activos", "desinversión", "desinvirtiendo", "reinversión",
		}},
		{Category: TokenizationActivos, Phrases: []string{
			"tokenización", "tokenizacion", "token", "blockchain inmobiliario",
			"criptoactivo inmobiliario", "nft inmobiliario", "activo tokenizado",
		}},
		{Category: NoticiasHipotecas, Phrases: []string{
			"hipoteca", "hipotecas", "hipotecario", "hipotecaria", "crédito hipotecario",
			"euribor", "tipo de interés", "tasa hipotecaria", "préstamo hipotecario",
			"subrogación", "novación", "cancelación hipoteca",
		}},
		{Category: NoticiasLeyesOkupas, Phrases: []string{
			"okupa", "okupas", "okupación", "okupaciones", "ocupación ilegal",
			"ley okupas", "ley antiokupas", "desalojo", "desalojos", "usurpación",
		}},
		{Category: NoticiasBOESubastas, Phrases: []string{
			"subasta", "subastas", "subasta judicial", "subasta inmobiliaria",
			"boe subasta", "subasta pública", "puja", "remate",
		}},
		{Category: NoticiasDesahucios, Phrases: []string{
			"desahucio", "desahucios", "lanzamiento", "lanzamientos", "ejecución hipotecaria",
			"embargo", "embargos", "expulsión", "desalojo forzoso",
		}},
		{Category: FaltaVivienda, Phrases: []string{
			"falta de vivienda", "escasez de vivienda", "déficit habitacional",
			"crisis de vivienda", "problema de vivienda", "acceso a vivienda",
			"vivienda asequible", "vivienda social", "vpo", "vivienda protegida",
		}},
		{Category: PreciosVivienda, Phrases: []string{
			"precio de vivienda", "precios de vivienda", "precio vivienda", "precios vivienda",
			"precio por m²", "precio por metro", "evolución precios", "precio medio",
			"precio medio vivienda", "coste vivienda", "valor vivienda", "revalorización",
		}},
		{Category: PreciosMateriales, Phrases: []string{
			"precio materiales", "precios materiales", "coste materiales", "costes materiales",
			"precio construcción", "coste construcción", "materiales construcción",
			"cemento", "acero", "ladrillo", "precio obra",
		}},
		{Category: PreciosSuelo, Phrases: []string{
			"precio suelo", "precios suelo", "precio del suelo", "precios del suelo",
			"valor suelo", "coste suelo", "terreno", "solar", "suelo urbanizable",
		}},
		{Category: NoticiasConstruccion, Phrases: []string{
			"construcción", "construcciones", "obra", "obras", "edificación",
			"promoción inmobiliaria", "promociones inmobiliarias", "desarrollo inmobiliario",
			"obra nueva", "vivienda nueva", "nueva construcción",
		}},
		{Category: NoticiasUrbanizacion, Phrases: []string{
			"urbanización", "urbanizaciones", "urbanismo", "planeamiento",
			"plan general", "pgou", "licencia urbanística", "ordenación territorial",
		}},
		{Category: NovedadesConstruccion, Phrases: []string{
			"nueva construcción", "nuevas construcciones", "innovación construcción",
			"tecnología construcción", "tendencias construcción", "novedad construcción",
		}},
		{Category: ConstruccionModular, Phrases: []string{
			"construcción modular", "vivienda modular", "prefabricada", "prefabricadas",
			"modular", "industrializada", "construcción industrializada",
		}},
		{Category: AlquilerVacacional, Phrases: []string{
			"alquiler vacacional", "alquileres vacacionales", "airbnb", "booking",
			"turismo residencial", "vivienda turística", "apartamento turístico",
		}},
		{Category: NormativasViviendas, Phrases: []string{
			"normativa", "normativas", "ley vivienda", "ley de vivienda",
			"regulación vivienda", "decreto vivienda", "real decreto",
			"legislación inmobiliaria", "marco legal", "ley urbanística",
		}},
		{Category: FuturoSectorInmobiliario, Phrases: []string{
			"futuro sector", "tendencias inmobiliarias", "perspectivas sector",
			"evolución sector", "previsión sector", "proyección sector",
			"sector inmobiliario futuro", "tendencias mercado",
		}},
		{Category: BurbujaInmobiliaria, Phrases: []string{
			"burbuja inmobiliaria", "burbuja", "sobrevaloración", "sobreprecio",
			"corrección mercado", "ajuste precios", "caída precios",
		}},
	}
}
