package categorization

// Real-estate taxonomy. Closed set: ingested items always carry one of these.
const (
	FondosInversionInmobiliaria     = "FONDOS_INVERSION_INMOBILIARIA"
	GrandesInversionesInmobiliarias = "GRANDES_INVERSIONES_INMOBILIARIAS"
	MovimientosGrandesTenedores     = "MOVIMIENTOS_GRANDES_TENEDORES"
	TokenizationActivos             = "TOKENIZATION_ACTIVOS"
	NoticiasInmobiliarias           = "NOTICIAS_INMOBILIARIAS"
	NoticiasHipotecas               = "NOTICIAS_HIPOTECAS"
	NoticiasLeyesOkupas             = "NOTICIAS_LEYES_OKUPAS"
	NoticiasBOESubastas             = "NOTICIAS_BOE_SUBASTAS"
	NoticiasDesahucios              = "NOTICIAS_DESAHUCIOS"
	NoticiasConstruccion            = "NOTICIAS_CONSTRUCCION"
	PreciosVivienda                 = "PRECIOS_VIVIENDA"
	PreciosMateriales               = "PRECIOS_MATERIALES"
	PreciosSuelo                    = "PRECIOS_SUELO"
	FuturoSectorInmobiliario        = "FUTURO_SECTOR_INMOBILIARIO"
	BurbujaInmobiliaria             = "BURBUJA_INMOBILIARIA"
	AlquilerVacacional              = "ALQUILER_VACACIONAL"
	NormativasViviendas             = "NORMATIVAS_VIVIENDAS"
	FaltaVivienda                   = "FALTA_VIVIENDA"
	NoticiasUrbanizacion            = "NOTICIAS_URBANIZACION"
	NovedadesConstruccion           = "NOVEDADES_CONSTRUCCION"
	ConstruccionModular             = "CONSTRUCCION_MODULAR"
)

// Tech taxonomy.
const (
	TechReleaseUpdate = "RELEASE_UPDATE"
	TechToolDiscovery = "TOOL_DISCOVERY"
	TechResearch      = "RESEARCH"
	TechAIML          = "AI_ML"
	TechStartups      = "STARTUPS"
	TechBigTech       = "BIG_TECH"
	TechSecurity      = "SECURITY"
	TechPolicyEthics  = "POLICY_ETHICS"
	TechOtherTech     = "OTHER_TECH"
)

// CategoryLabels maps real-estate category codes to human-readable names.
var CategoryLabels = map[string]string{
	FondosInversionInmobiliaria:     "Fondos de inversión inmobiliaria",
	GrandesInversionesInmobiliarias: "Noticias grandes inversiones inmobiliarias",
	MovimientosGrandesTenedores:     "Movimientos de grandes tenedores",
	TokenizationActivos:             "Tokenization activos",
	NoticiasInmobiliarias:           "Noticias inmobiliarias",
	NoticiasHipotecas:               "Noticias hipotecas",
	NoticiasLeyesOkupas:             "Noticias leyes okupas",
	NoticiasBOESubastas:             "Noticias BOE subastas inmobiliarias",
	NoticiasDesahucios:              "Noticias desahucios",
	NoticiasConstruccion:            "Noticias sobre construcción",
	PreciosVivienda:                 "Precios de vivienda",
	PreciosMateriales:               "Precios materiales",
	PreciosSuelo:                    "Precios del suelo",
	FuturoSectorInmobiliario:        "Futuro sector inmobiliario",
	BurbujaInmobiliaria:             "Burbuja inmobiliaria",
	AlquilerVacacional:              "Alquiler vacacional",
	NormativasViviendas:             "Normativas de viviendas",
	FaltaVivienda:                   "Falta de vivienda",
	NoticiasUrbanizacion:            "Noticias sobre urbanización",
	NovedadesConstruccion:           "Novedades de construcción",
	ConstruccionModular:             "Construcción modular",
}

// TechCategoryLabels maps tech category codes to human-readable names.
var TechCategoryLabels = map[string]string{
	TechReleaseUpdate: "Release/Update",
	TechToolDiscovery: "Tool/Discovery",
	TechResearch:      "Research",
	TechAIML:          "AI/ML",
	TechStartups:      "Startups",
	TechBigTech:       "Big Tech",
	TechSecurity:      "Security",
	TechPolicyEthics:  "Policy/Ethics",
	TechOtherTech:     "Other Tech",
}
