package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Post", "post"},
		{"BlogPost", "blog_post"},
		{"HTTPRequest", "http_request"},
		{"UserID", "user_id"},
		{"Item2Price", "item2_price"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSnakeCase(tt.input))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"post", "Post"},
		{"Post", "Post"},
		{"blog_post", "BlogPost"},
		{"blog-post", "BlogPost"},
		{"blog post", "BlogPost"},
		{"blogPost", "BlogPost"},
		{"  tag  ", "Tag"},
		{"__", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToPascalCase(tt.input))
		})
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		singular string
		plural   string
	}{
		{"post", "posts"},
		{"Post", "Posts"},
		{"comment", "comments"},
		{"person", "people"},
		{"Person", "People"},
		{"child", "children"},
		{"mouse", "mice"},
		{"category", "categories"},
		{"Category", "Categories"},
		{"box", "boxes"},
		{"buzz", "buzzes"},
		{"status", "statuses"},
		{"match", "matches"},
		{"leaf", "leaves"},
		{"knife", "knives"},
		{"day", "days"},
		{"key", "keys"},
		{"blog_post", "blog_posts"},
		{"staff", "staffs"},
		{"cliff", "cliffs"},
		{"roof", "roofs"},
		{"chef", "chefs"},
		{"news", "news"},
		{"News", "News"},
		{"series", "series"},
		{"species", "species"},
		{"blog_news", "blog_news"},
		{"blog_person", "blog_people"},
		{"BlogPerson", "BlogPeople"},
		{"UserID", "UserIDs"},
		{"HTTPRequest", "HTTPRequests"},
		{"ALLCAPS", "ALLCAPSES"},
		{"BOX", "BOXES"},
		{"PERSON", "PEOPLE"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.singular, func(t *testing.T) {
			assert.Equal(t, tt.plural, Pluralize(tt.singular))
		})
	}
}
