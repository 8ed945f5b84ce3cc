package relevance

import "newsstudio/internal/core"

// RealEstateProfile returns the guardrail configuration for the Spanish
// real-estate vertical. Deny keywords knock out off-sector noise from
// generalist feeds (sports, sucesos, motor, culture); the allow list is
// the sector vocabulary and strict mode requires at least one hit.
func RealEstateProfile() core.GuardrailConfig {
	return core.GuardrailConfig{
		DenyKeywords: []string{
			"países más visitados", "países visitados", "turismo", "viajeros", "destinos turísticos",
			"visitantes", "turistas", "atracciones turísticas",
			"arquitecto", "arquitectos", "arquitectura", "arquitectónico",
			"obras más destacadas", "recorrido por", "estudio de arquitectura",
			"doctor arquitecto", "máster en arquitectura",
			"logístico", "logística", "macrocentro logístico", "centro logístico",
			"almacén", "almacenes", "distribución logística",
			"premio", "premios", "galardón", "galardones", "award", "awards",
			"gana premio", "ganan premio", "premio de", "premios de",
			"architecture awards", "premios cerámica", "premios internacionales",
			"excelencia", "galardones en arquitectura",
			"feria", "ferias", "exposición", "exposiciones", "congreso",
			"big 5 global", "participa en", "participa exitosamente",
			"convocan", "se convocan", "convocatoria",
			"calzado", "zapatos", "panter", "marca made in spain",
			"teja cerámica", "cubiertas microventiladas", "materiales nobles",
			"fachada viva", "impresión 3d", "impresa en 3d",
			"diseñar con sombra", "arquitectura bioclimática", "arquitectura sostenible",
			"transformación digital", "building smart", "tecniberia",
			"formación avanzada", "gestión comercial", "distribución profesional",
			"herido", "heridos", "accidente", "accidentes", "volcar", "volcó",
			"atropello", "atropellado", "choque", "colisión",
			"muerto", "muertos", "fallecido", "fallecidos",
			"detenido", "detenidos", "arresto", "arrestos",
			"robo", "robos", "hurto", "hurtos",
			"película", "películas", "cine", "actor", "actriz",
			"música", "concierto", "conciertos", "festival",
			"libro", "libros", "escritor", "escritora",
			"museo", "museos",
			"fútbol", "futbol", "partido", "partidos", "gol", "goles",
			"equipo", "equipos", "jugador", "jugadores",
			"elecciones", "votación", "votaciones", "partido político",
			"incendio", "incendios", "inundación", "inundaciones",
			"temporal", "temporales", "lluvia", "lluvias",
			"hospital", "hospitales", "médico", "médicos", "enfermedad",
			"colegio", "colegios", "universidad", "universidades", "estudiante",
			"tráfico", "trafico", "carretera", "carreteras", "autopista",
			"camión", "camiones", "coche", "coches", "vehículo", "vehículos",
			"mercedes", "bmw", "audi", "ford", "renault", "seat", "volvo",
			"cabrio", "todoterreno", "automóvil", "automóviles", "auto",
			"pintadas", "grafiti", "vandalismo",
			"homenaje", "homenajes", "actos culturales",
			"smartphone", "tablet", "iphone", "android", "aplicación",
			"baloncesto", "tenis", "deporte", "deportes",
		},
		AllowKeywords: []string{
			"vivienda", "viviendas", "inmobiliario", "inmobiliaria", "inmobiliarias",
			"hipoteca", "hipotecas", "hipotecario", "hipotecaria",
			"alquiler", "alquileres", "renta", "rentas",
			"precio", "precios", "valor", "valores", "coste", "costes",
			"compra", "venta", "comprar", "vender", "compraventa",
			"mercado inmobiliario", "sector inmobiliario",
			"propiedad", "propiedades", "inmueble", "inmuebles",
			"construcción", "construcciones", "obra", "obras",
			"promoción", "promociones", "desarrollo inmobiliario",
			"inversión inmobiliaria", "inversiones inmobiliarias",
			"subasta", "subastas", "desahucio", "desahucios",
			"okupa", "okupas", "okupación", "okupaciones",
			"normativa", "normativas", "ley vivienda", "regulación vivienda",
			"urbanismo", "urbanización", "urbanizaciones",
			"suelo", "terreno", "solar", "urbanizable",
			"materiales construcción", "coste construcción",
			"fondo inversión", "fondos inversión", "socimi", "reit",
			"burbuja inmobiliaria", "crisis vivienda",
			"alquiler vacacional", "airbnb", "vivienda turística",
			"vpo", "vivienda protegida", "vivienda social",
			"licencia", "licencias", "permiso construcción",
			"reforma", "reformas", "rehabilitación",
			// "arquitecta" stays allowed; only the masculine and
			// abstract forms are denied above.
			"arquitecta",
			"property", "properties", "real estate", "housing",
			"mortgage", "mortgages", "rent", "rental",
			"construction", "building", "development",
			"investment", "investor", "investors",
		},
		StrictRequireAllow: true,
	}
}

// TechProfile returns the guardrail configuration for the tech vertical:
// AI, dev tooling, releases, infra and security. Consumer noise (TV deals,
// phone reviews) is denied outright.
func TechProfile() core.GuardrailConfig {
	return core.GuardrailConfig{
		DenyKeywords: []string{
			"tdt", "rtve", "televisión", "television", "canal", "series", "streaming",
			"netflix", "hbo", "prime video", "disney", "fútbol", "futbol",
			"chollo", "oferta", "rebaja", "precio", "review", "análisis de", "analisis de",
			"mejor móvil", "mejor movil", "mejor tv", "smart tv",
		},
		AllowKeywords: []string{
			"ia", "ai", "llm", "agent", "agentes", "rag", "embedding", "vector",
			"inference", "fine-tuning", "multimodal", "openai", "anthropic", "mistral",
			"deepmind", "nvidia", "cuda",
			"vercel", "next.js", "nextjs", "react", "node", "bun", "deno", "typescript",
			"python", "fastapi", "docker", "kubernetes", "sdk", "api", "github", "npm", "pypi",
			"changelog", "release", "v1.", "v2.", "v3.",
			"cve", "vulnerability", "vulnerabilidad", "patch", "exploit", "zero-day", "zeroday",
		},
		StrictRequireAllow: true,
	}
}
