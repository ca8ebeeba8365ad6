package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teka-app/teka/internal/models"
)

func blogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Read editorial stories",
	}
	cmd.AddCommand(blogListCmd(), blogReadCmd(), blogLikeCmd())
	return cmd
}

func blogListCmd() *cobra.Command {
	var category string
	var featured bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stories",
		Args:  cobra.NoArgs,
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			var posts []models.BlogPost
			if featured {
				posts = a.blog.FeaturedPosts()
			} else {
				posts = a.blog.PostsByCategory(category)
			}
			for _, p := range posts {
				fmt.Printf("%-45s %s\n", p.Slug, p.Title)
				fmt.Printf("%45s %s · %d min read · %d views · %d likes\n", "", p.Category, p.ReadTime, p.Views, p.Likes)
			}
			fmt.Printf("%d post(s). Categories: %s\n", len(posts), strings.Join(a.blog.Categories(), ", "))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&category, "category", "c", "All", "filter by category")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured stories")
	return cmd
}

func blogReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <slug>",
		Short: "Read a story (counts as a view)",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			post, ok := a.blog.PostBySlug(args[0])
			if !ok {
				return fmt.Errorf("no story with slug %q", args[0])
			}
			if _, err := a.blog.IncrementViews(post.ID); err != nil {
				return err
			}
			fmt.Printf("%s\nby %s · %s · %d min read\n\n", post.Title, post.Author, post.PublishedAt.Format("January 2, 2006"), post.ReadTime)
			fmt.Println(post.Content)
			return nil
		}),
	}
}

func blogLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <slug>",
		Short: "Like a story",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			post, ok := a.blog.PostBySlug(args[0])
			if !ok {
				return fmt.Errorf("no story with slug %q", args[0])
			}
			liked, err := a.blog.LikePost(post.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%q now has %d likes\n", liked.Title, liked.Likes)
			return nil
		}),
	}
}
