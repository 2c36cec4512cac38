package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	storefront "github.com/thegardencompany/storefront"
	"github.com/thegardencompany/storefront/internal/di"
	"github.com/thegardencompany/storefront/resources"
	"github.com/thegardencompany/storefront/seo"
)

var moduleBuilder = buildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content/resources", "Path to the MDX content root")
		driver     = flag.String("catalog-driver", "memory", "Catalog driver: memory, sqlite, or postgres")
		dsn        = flag.String("catalog-dsn", "", "Catalog DSN for database drivers")
		siteURL    = flag.String("site-url", "https://thegardencompany.in", "Canonical site URL for links and schema payloads")
		command    = flag.String("cmd", "pillars", "Command to run: pillars, articles, article, products, categories")
		pillar     = flag.String("pillar", "", "Pillar slug (article command)")
		subtopic   = flag.String("subtopic", "", "Subtopic slug (article command)")
		article    = flag.String("article", "", "Article slug (article command)")
	)

	flag.Parse()

	cfg := storefront.DefaultConfig()
	cfg.SiteURL = *siteURL
	cfg.Content.BasePath = *contentDir
	cfg.Catalog.Driver = *driver
	cfg.Catalog.DSN = *dsn

	module, err := moduleBuilder(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	switch *command {
	case "pillars":
		err = runPillars(ctx, module)
	case "articles":
		err = runArticles(ctx, module)
	case "article":
		err = runArticle(ctx, module, *pillar, *subtopic, *article)
	case "products":
		err = runProducts(ctx, module)
	case "categories":
		err = runCategories(ctx, module)
	default:
		err = fmt.Errorf("unknown command %q", *command)
	}
	if err != nil {
		log.Fatalf("%s: %v", *command, err)
	}
}

func buildModule(cfg storefront.Config) (*storefront.Module, error) {
	db, err := di.OpenDatabase(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	opts := []di.Option{}
	if db != nil {
		opts = append(opts, di.WithBunDB(db))
	}
	return storefront.New(cfg, opts...)
}

func runPillars(ctx context.Context, module *storefront.Module) error {
	pillars, err := module.Resources().ListPillars(ctx)
	if err != nil {
		return err
	}
	for _, p := range pillars {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%d subtopics\n", p.Slug, p.Title, p.ArticleCount)
	}
	return nil
}

func runArticles(ctx context.Context, module *storefront.Module) error {
	articles, err := module.Resources().ListArticles(ctx)
	if err != nil {
		return err
	}
	for _, a := range articles {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%s\n", a.PublishedAt.Format("2006-01-02"), a.Href, a.Title, a.ReadTime)
	}
	return nil
}

func runArticle(ctx context.Context, module *storefront.Module, pillar, subtopic, article string) error {
	if pillar == "" || subtopic == "" || article == "" {
		return fmt.Errorf("-pillar, -subtopic, and -article are required")
	}

	content, err := module.Resources().GetArticleContent(ctx, pillar, subtopic, article)
	if err != nil {
		if resources.IsNotFound(err) {
			return fmt.Errorf("no such article: %s/%s/%s", pillar, subtopic, article)
		}
		return err
	}

	fmt.Fprintf(os.Stdout, "Title: %s\nAuthor: %s\nPublished: %s\nRead time: %s\n\n",
		content.Article.Title,
		content.Article.Author,
		content.Article.PublishedAt.Format("2006-01-02"),
		content.Article.ReadTime,
	)

	schema := module.Schema().Article(articleSchemaInput(content))
	if payload, err := json.MarshalIndent(schema, "", "  "); err == nil {
		fmt.Fprintf(os.Stdout, "Schema:\n%s\n\n", payload)
	}

	if len(content.BodyHTML) > 0 {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", content.BodyHTML)
	} else {
		fmt.Fprintf(os.Stdout, "Body:\n%s\n", content.Body)
	}
	return nil
}

func articleSchemaInput(content *resources.ArticleContent) seo.ArticleInput {
	return seo.ArticleInput{
		Title:       content.Article.Title,
		Description: content.Article.Description,
		URL:         content.Article.Href,
		Image:       content.Article.Image,
		PublishedAt: content.Article.PublishedAt,
		UpdatedAt:   content.Article.UpdatedAt,
		Author:      content.Article.Author,
	}
}

func runProducts(ctx context.Context, module *storefront.Module) error {
	products, err := module.Catalog().ListProducts(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%.2f\t%s\n", p.URLHandle, p.Name, p.Price, p.Category)
	}
	return nil
}

func runCategories(ctx context.Context, module *storefront.Module) error {
	categories, err := module.Catalog().Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%d products\n", c.Slug, c.Name, c.ProductCount)
	}
	return nil
}
