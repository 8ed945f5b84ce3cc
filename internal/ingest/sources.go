package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newsstudio/internal/categorization"
	"newsstudio/internal/core"
)

// DefaultRealEstateSources returns the compiled-in Spanish real-estate feed
// list. Idealista has no news API, so everything comes in over RSS.
func DefaultRealEstateSources() []core.SourceConfig {
	return []core.SourceConfig{
		{
			Name:            "Expansion Inmobiliario",
			URL:             "https://e00-expansion.uecdn.es/rss/inmobiliario.xml",
			SourceLabel:     "Expansion",
			DefaultCategory: categorization.NoticiasInmobiliarias,
			Domain:          core.DomainRealEstate,
		},
		{
			Name:            "Cinco Días - Economía Inmobiliaria",
			URL:             "https://cincodias.elpais.com/rss/act/economia_inmobiliaria/",
			SourceLabel:     "Cinco Días",
			DefaultCategory: categorization.NoticiasInmobiliarias,
			Domain:          core.DomainRealEstate,
		},
		{
			Name:            "El Economista - Vivienda",
			URL:             "https://www.eleconomista.es/rss/rss-vivienda.php",
			SourceLabel:     "El Economista",
			DefaultCategory: categorization.PreciosVivienda,
			Domain:          core.DomainRealEstate,
		},
		{
			Name:            "Idealista News",
			URL:             "https://www.idealista.com/news/rss/v2/latest-news.xml",
			SourceLabel:     "Idealista",
			DefaultCategory: categorization.NoticiasInmobiliarias,
			Domain:          core.DomainRealEstate,
		},
		{
			Name:            "BOE Subastas",
			URL:             "https://subastas.boe.es/rss.php",
			SourceLabel:     "BOE",
			DefaultCategory: categorization.NoticiasBOESubastas,
			Domain:          core.DomainRealEstate,
		},
		{
			Name:            "BOE General",
			URL:             "https://www.boe.es/diario_boe/xml.php?id=BOE-S",
			SourceLabel:     "BOE",
			DefaultCategory: categorization.NormativasViviendas,
			Domain:          core.DomainRealEstate,
		},
		{
			Name:            "Observatorio Inmobiliario",
			URL:             "https://www.observatorioinmobiliario.es/rss/",
			SourceLabel:     "Observatorio Inmobiliario",
			DefaultCategory: categorization.NoticiasInmobiliarias,
			Domain:          core.DomainRealEstate,
		},
		{
			Name:            "Interempresas Construcción",
			URL:             "https://www.interempresas.net/construccion/RSS/",
			SourceLabel:     "Interempresas",
			DefaultCategory: categorization.NoticiasConstruccion,
			Domain:          core.DomainRealEstate,
		},
		{
			Name:            "Última Hora",
			URL:             "https://www.ultimahora.es/feed.rss",
			SourceLabel:     "Última Hora",
			DefaultCategory: categorization.NoticiasInmobiliarias,
			Domain:          core.DomainRealEstate,
		},
	}
}

// DefaultTechSources returns the compiled-in tech feed list.
func DefaultTechSources() []core.SourceConfig {
	return []core.SourceConfig{
		{
			Name:            "WIRED ES - Top",
			URL:             "https://es.wired.com/feed/rss",
			SourceLabel:     "WIRED ES",
			DefaultCategory: categorization.TechBigTech,
			Domain:          core.DomainTech,
		},
		{
			Name:            "WIRED ES - Seguridad",
			URL:             "https://es.wired.com/feed/seguridad/rss",
			SourceLabel:     "WIRED ES",
			DefaultCategory: categorization.TechSecurity,
			Domain:          core.DomainTech,
		},
		{
			Name:            "Microsiervos",
			URL:             "https://www.microsiervos.com/index.xml",
			SourceLabel:     "Microsiervos",
			DefaultCategory: categorization.TechResearch,
			Domain:          core.DomainTech,
		},
		{
			Name:            "Genbeta",
			URL:             "https://www.genbeta.com/index.xml",
			SourceLabel:     "Genbeta",
			DefaultCategory: categorization.TechToolDiscovery,
			Domain:          core.DomainTech,
		},
		{
			Name:            "mouredev.log()",
			URL:             "https://rss.beehiiv.com/feeds/a7YmYsM8hJ.xml",
			SourceLabel:     "mouredev.log()",
			DefaultCategory: categorization.TechToolDiscovery,
			Domain:          core.DomainTech,
		},
	}
}

// sourcesFile is the YAML shape of a source-list override file.
type sourcesFile struct {
	Sources []core.SourceConfig `yaml:"sources"`
}

// LoadSources reads a YAML source list. An empty path returns the
// compiled-in defaults for both domains.
func LoadSources(path string) ([]core.SourceConfig, error) {
	if path == "" {
		return append(DefaultRealEstateSources(), DefaultTechSources()...), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}
	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s defines no sources", path)
	}
	return f.Sources, nil
}

// FilterByDomain keeps only the sources for one domain. An empty domain
// keeps everything.
func FilterByDomain(sources []core.SourceConfig, domain string) []core.SourceConfig {
	if domain == "" {
		return sources
	}
	var out []core.SourceConfig
	for _, s := range sources {
		if s.Domain == domain {
			out = append(out, s)
		}
	}
	return out
}
