package service

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/teka-app/teka/internal/logger"
	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/seed"
	"github.com/teka-app/teka/internal/storage"
)

const blogSlotKey = "blogPosts"

var ErrPostNotFound = errors.New("blog post not found")

// featuredCap bounds the featured-posts listing.
const featuredCap = 3

// BlogService owns the editorial posts and their view/like counters.
type BlogService struct {
	mu    sync.RWMutex
	log   zerolog.Logger
	slot  storage.Slot[[]models.BlogPost]
	posts []models.BlogPost
}

// NewBlogService loads the posts slot, seeding the editorial dataset on
// first run.
func NewBlogService(store storage.Store) (*BlogService, error) {
	s := &BlogService{
		log:  logger.For("blog"),
		slot: storage.NewSlot[[]models.BlogPost](store, blogSlotKey),
	}

	posts, err := loadOrSeed(s.slot, seed.BlogPosts, s.log)
	if err != nil {
		return nil, err
	}
	s.posts = posts
	return s, nil
}

// Posts returns every post in storage order.
func (s *BlogService) Posts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.posts)
}

// Categories lists the fixed blog categories, including the "All"
// pseudo-category.
func (s *BlogService) Categories() []string {
	return []string{
		"All",
		"Culture & History",
		"Street Food",
		"Ingredients & Tips",
		"Cooking Techniques",
		"Regional Cuisine",
		"Modern Vietnamese",
	}
}

// AddPost prepends a new post, newest first. ID, publication time, and
// counters are synthesized here.
func (s *BlogService) AddPost(post models.BlogPost) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = newID()
	post.PublishedAt = time.Now().UTC()
	post.Views = 0
	post.Likes = 0
	if post.Tags == nil {
		post.Tags = []string{}
	}

	next := append([]models.BlogPost{post}, cloneAll(s.posts)...)
	if err := s.slot.Save(next); err != nil {
		return models.BlogPost{}, err
	}
	s.posts = next
	s.log.Info().Str("post", post.ID).Str("slug", post.Slug).Msg("post added")
	return post.Clone(), nil
}

// UpdatePost merges a partial update into the post with the given id.
func (s *BlogService) UpdatePost(id string, update models.BlogPostUpdate) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.posts)
	idx := indexOfPost(next, id)
	if idx < 0 {
		return models.BlogPost{}, ErrPostNotFound
	}
	update.Apply(&next[idx])

	if err := s.slot.Save(next); err != nil {
		return models.BlogPost{}, err
	}
	s.posts = next
	return next[idx].Clone(), nil
}

// DeletePost removes a post.
func (s *BlogService) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		if p.ID != id {
			next = append(next, p.Clone())
		}
	}
	if len(next) == len(s.posts) {
		return ErrPostNotFound
	}

	if err := s.slot.Save(next); err != nil {
		return err
	}
	s.posts = next
	return nil
}

// PostBySlug returns the first post with the given slug. Slugs are
// expected unique but uniqueness is not enforced on insert.
func (s *BlogService) PostBySlug(slug string) (models.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.Slug == slug {
			return p.Clone(), true
		}
	}
	return models.BlogPost{}, false
}

// PostsByCategory filters posts by category; "All" returns everything.
func (s *BlogService) PostsByCategory(category string) []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == "All" {
		return cloneAll(s.posts)
	}
	var out []models.BlogPost
	for _, p := range s.posts {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// FeaturedPosts returns posts flagged featured, capped at three, in
// storage order.
func (s *BlogService) FeaturedPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BlogPost
	for _, p := range s.posts {
		if !p.Featured {
			continue
		}
		out = append(out, p.Clone())
		if len(out) == featuredCap {
			break
		}
	}
	return out
}

// LikePost increments the like counter by one. There is no dedup guard;
// the same reader may like repeatedly.
func (s *BlogService) LikePost(id string) (models.BlogPost, error) {
	return s.bump(id, func(p *models.BlogPost) { p.Likes++ })
}

// IncrementViews increments the view counter by one.
func (s *BlogService) IncrementViews(id string) (models.BlogPost, error) {
	return s.bump(id, func(p *models.BlogPost) { p.Views++ })
}

func (s *BlogService) bump(id string, apply func(*models.BlogPost)) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneAll(s.posts)
	idx := indexOfPost(next, id)
	if idx < 0 {
		return models.BlogPost{}, ErrPostNotFound
	}
	apply(&next[idx])

	if err := s.slot.Save(next); err != nil {
		return models.BlogPost{}, err
	}
	s.posts = next
	return next[idx].Clone(), nil
}

func indexOfPost(posts []models.BlogPost, id string) int {
	for i, p := range posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
