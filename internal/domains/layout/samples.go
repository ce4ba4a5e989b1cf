package layout

import (
	"time"

	"github.com/google/uuid"
)

// sampleSeed keeps sample ids stable across calls so repeated renders
// during an outage do not flicker.
var sampleSeed = [...]string{
	"00000000-0000-4000-8000-000000000001",
	"00000000-0000-4000-8000-000000000002",
	"00000000-0000-4000-8000-000000000003",
	"00000000-0000-4000-8000-000000000004",
	"00000000-0000-4000-8000-000000000005",
	"00000000-0000-4000-8000-000000000006",
}

var sampleData = [...]struct {
	title    string
	slug     string
	summary  string
	category string
}{
	{"Bem-vindo ao Meme PMW", "bem-vindo-ao-meme-pmw", "Conteúdo de demonstração enquanto os artigos reais não chegam.", "Geral"},
	{"Como funciona a página inicial", "como-funciona-a-pagina-inicial", "A página inicial é montada a partir de blocos configuráveis.", "Geral"},
	{"Notícias em destaque", "noticias-em-destaque", "Os destaques aparecem no topo da página.", "Notícias"},
	{"Memes da semana", "memes-da-semana", "Uma seleção dos memes mais comentados.", "Memes"},
	{"Esportes em alta", "esportes-em-alta", "Resultados e análises do fim de semana.", "Esportes"},
	{"Cultura pop", "cultura-pop", "Lançamentos, estreias e novidades.", "Cultura"},
}

// SampleArticles returns the built-in article set used when the
// provider is unavailable, so the page never renders empty.
func SampleArticles() []Article {
	now := time.Now()
	articles := make([]Article, 0, len(sampleData))

	for i, s := range sampleData {
		published := now.Add(-time.Duration(i+1) * time.Hour)
		articles = append(articles, Article{
			ID:          uuid.MustParse(sampleSeed[i]),
			Title:       s.title,
			Slug:        s.slug,
			Summary:     s.summary,
			Category:    s.category,
			Author:      "Redação",
			PublishedAt: &published,
		})
	}

	return articles
}
