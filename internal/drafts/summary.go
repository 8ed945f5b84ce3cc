package drafts

import (
	"strings"
	"unicode/utf8"

	"newsstudio/internal/compact"
)

// closers rotate as the third line of the studio summary.
var closers = Pool{
	"Lo relevante no es el titular, sino quién ajusta posición antes de que el consenso llegue.",
	"La oportunidad aparece en el desfase entre el dato y la reacción del mercado visible.",
	"Donde el mercado ve ruido, Althara sólo registra el punto exacto del desplazamiento.",
	"Aquí importa menos el precio comunicado y más quién tiene acceso al siguiente movimiento.",
}

const factLineMax = 220

// BuildStudioSummary composes the three-line editorial summary: a cold fact
// line, a strategic reading for the category and a rotating closer.
func BuildStudioSummary(title, rawSummary, category string, seed int) string {
	return strings.Join([]string{
		buildFactLine(title, rawSummary),
		StrategicLine(category),
		closers.Select(seed),
	}, "\n")
}

// buildFactLine states the fact without editorializing. Headlines that do
// not open with a neutral article get a framing prefix.
func buildFactLine(title, rawSummary string) string {
	fact := strings.TrimSpace(title)
	if rawSummary != "" {
		combined := fact + ". " + strings.TrimSpace(rawSummary)
		combined = strings.Join(strings.Fields(combined), " ")
		if utf8.RuneCountInString(combined) > factLineMax {
			combined = compact.TruncateAtSentence(combined, factLineMax-1) + "…"
		}
		fact = combined
	}

	lower := strings.ToLower(fact)
	for _, prefix := range []string{"el ", "la ", "los ", "las ", "en "} {
		if strings.HasPrefix(lower, prefix) {
			return fact
		}
	}
	return "Los últimos datos apuntan a lo siguiente: " + fact
}

// StrategicLine returns the second summary line: the editorial reading
// associated with a category group.
func StrategicLine(category string) string {
	switch strings.ToUpper(category) {
	case "PRECIOS_VIVIENDA":
		return "Detrás de la cifra, el patrón es un ajuste entre oferta limitada y demanda que aún no ha reprecificado del todo el riesgo del ciclo."
	case "FONDOS_INVERSION_INMOBILIARIA", "MOVIMIENTOS_GRANDES_TENEDORES", "GRANDES_INVERSIONES_INMOBILIARIAS":
		return "El movimiento no es aislado: refleja una rotación silenciosa de capital hacia activos donde la asimetría de información sigue siendo aprovechable."
	case "NOTICIAS_HIPOTECAS":
		return "El repliegue y la reconfiguración del crédito redefinen quién puede seguir operando con ventaja en el próximo tramo del ciclo."
	case "NOTICIAS_BOE_SUBASTAS", "NOTICIAS_DESAHUCIOS":
		return "Estas entradas formalizan stock, pero sobre todo dibujan el mapa de activos donde el mercado aún no ha fijado un precio de consenso."
	case "NOTICIAS_LEYES_OKUPAS", "NORMATIVAS_VIVIENDAS", "FALTA_VIVIENDA":
		return "La regulación no solo corrige desequilibrios aparentes, sino que reordena qué actores conservan acceso operativo real al mercado."
	case "NOTICIAS_CONSTRUCCION", "PRECIOS_MATERIALES", "PRECIOS_SUELO", "NOVEDADES_CONSTRUCCION":
		return "Los costes y las reglas del juego de la obra redefinen la frontera entre proyectos viables y meros ejercicios teóricos de rentabilidad."
	case "CONSTRUCCION_MODULAR", "NOTICIAS_URBANIZACION":
		return "La industrialización y el planeamiento no solo cambian formas, comprimen plazos y riesgos allí donde el capital esté dispuesto a anticiparse."
	case "FUTURO_SECTOR_INMOBILIARIO", "BURBUJA_INMOBILIARIA":
		return "Más que un dato aislado, es una línea más en el gráfico de tensiones acumuladas que el consenso aún no ha terminado de asumir."
	case "NOTICIAS_INMOBILIARIAS":
		return "No es una noticia suelta: es otra pieza en la secuencia que reordena precios, actores y acceso efectivo a oportunidades reales."
	default:
		return "El dato no va solo: se suma a una secuencia de señales que reordenan quién tiene visibilidad real y quién llega tarde a cada movimiento."
	}
}

// BuildDisclaimer returns the informational-content disclaimer carried by
// every draft, always naming the source.
func BuildDisclaimer(source, url string) string {
	d := "Contenido informativo elaborado a partir de " + source + ". No constituye asesoramiento de inversión."
	if url != "" {
		d += " Información completa en la fuente original."
	}
	return d
}
