package models

import "time"

// BlogPost is an editorial post. Slug is the external lookup key and is
// expected unique, though uniqueness is not enforced on insert.
type BlogPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	AuthorAvatar string    `json:"authorAvatar"`
	PublishedAt  time.Time `json:"publishedAt"`
	ReadTime     int       `json:"readTime"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	ImageURL     string    `json:"imageUrl"`
	Featured     bool      `json:"featured"`
	Views        int       `json:"views"`
	Likes        int       `json:"likes"`
}

// Clone returns a deep copy.
func (p BlogPost) Clone() BlogPost {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

// BlogPostUpdate is a partial post update; nil fields are left untouched.
// The view/like counters change only through the increment operations.
type BlogPostUpdate struct {
	Title        *string
	Slug         *string
	Excerpt      *string
	Content      *string
	Author       *string
	AuthorAvatar *string
	ReadTime     *int
	Category     *string
	Tags         *[]string
	ImageURL     *string
	Featured     *bool
}

// Apply merges the update into p.
func (u BlogPostUpdate) Apply(p *BlogPost) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Slug != nil {
		p.Slug = *u.Slug
	}
	if u.Excerpt != nil {
		p.Excerpt = *u.Excerpt
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.Author != nil {
		p.Author = *u.Author
	}
	if u.AuthorAvatar != nil {
		p.AuthorAvatar = *u.AuthorAvatar
	}
	if u.ReadTime != nil {
		p.ReadTime = *u.ReadTime
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Tags != nil {
		p.Tags = append([]string(nil), *u.Tags...)
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
}
