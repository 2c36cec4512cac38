package mdx

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FAQ is a single question/answer pair declared in content frontmatter.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// PillarMeta is the frontmatter block recognized on a pillar index file.
type PillarMeta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Topics      []string `yaml:"topics"`
	FAQs        []FAQ    `yaml:"faqs"`
	PublishedAt string   `yaml:"publishedAt"`
}

// SubtopicMeta is the frontmatter block recognized on a subtopic index file.
type SubtopicMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	FAQs        []FAQ  `yaml:"faqs"`
}

// ArticleMeta is the frontmatter block recognized on an article leaf file.
type ArticleMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	PublishedAt string `yaml:"publishedAt"`
	UpdatedAt   string `yaml:"updatedAt"`
	Author      string `yaml:"author"`
	Difficulty  string `yaml:"difficulty"`
	ReadTime    string `yaml:"readTime"`
	FAQs        []FAQ  `yaml:"faqs"`
}

// ParsePillar extracts pillar metadata and the remaining body from source bytes.
func ParsePillar(source []byte) (PillarMeta, []byte, error) {
	var meta PillarMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return PillarMeta{}, nil, fmt.Errorf("parse pillar frontmatter: %w", err)
	}
	return meta, body, nil
}

// ParseSubtopic extracts subtopic metadata and the remaining body from source bytes.
func ParseSubtopic(source []byte) (SubtopicMeta, []byte, error) {
	var meta SubtopicMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return SubtopicMeta{}, nil, fmt.Errorf("parse subtopic frontmatter: %w", err)
	}
	return meta, body, nil
}

// ParseArticle extracts article metadata and the remaining body from source bytes.
func ParseArticle(source []byte) (ArticleMeta, []byte, error) {
	var meta ArticleMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return ArticleMeta{}, nil, fmt.Errorf("parse article frontmatter: %w", err)
	}
	return meta, body, nil
}
