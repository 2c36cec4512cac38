package resources

import "time"

// FAQ is a question/answer pair surfaced on content pages.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Pillar is a top-level content category, projected from the filesystem tree.
type Pillar struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Topics      []string `json:"topics"`
	// ArticleCount counts the pillar's immediate child directories. That is
	// the number of subtopics, not leaf articles; display copy elsewhere says
	// "N articles", which is pending product-owner confirmation.
	ArticleCount int    `json:"articleCount"`
	Href         string `json:"href"`
	FAQs         []FAQ  `json:"faqs,omitempty"`
}

// Subtopic is a second-level grouping within a pillar. Its slug is unique
// only within the parent pillar's namespace.
type Subtopic struct {
	Slug        string `json:"slug"`
	PillarSlug  string `json:"pillarSlug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
	FAQs        []FAQ  `json:"faqs,omitempty"`
}

// Article is a leaf content entry.
type Article struct {
	Slug         string    `json:"slug"`
	PillarSlug   string    `json:"pillarSlug"`
	SubtopicSlug string    `json:"subtopicSlug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	PublishedAt  time.Time `json:"publishedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Author       string    `json:"author"`
	Difficulty   string    `json:"difficulty"`
	ReadTime     string    `json:"readTime"`
	Href         string    `json:"href"`
	FAQs         []FAQ     `json:"faqs,omitempty"`
}

// PillarContent pairs pillar metadata with the raw and rendered index body.
type PillarContent struct {
	Pillar   Pillar
	Body     []byte
	BodyHTML []byte
}

// SubtopicContent pairs subtopic metadata with the raw and rendered index body.
type SubtopicContent struct {
	Subtopic Subtopic
	Body     []byte
	BodyHTML []byte
}

// ArticleContent pairs article metadata with the raw and rendered body.
type ArticleContent struct {
	Article  Article
	Body     []byte
	BodyHTML []byte
}
