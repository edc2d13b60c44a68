package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/booklocker-backend/pkg/client"
)

func (c *cli) favoritesCmd() *cobra.Command {
	favorites := &cobra.Command{Use: "favorites", Short: "Manage favorite books"}

	favorites.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			list, err := c.api.Favorites(ctxOf(cmd), u.ID)
			if err != nil {
				return err
			}

			// The server is authoritative; refresh the cached set.
			c.session.Start(*u, list)
			if err := c.saveSession(); err != nil {
				return err
			}

			books := make([]client.Book, len(list))
			for i, f := range list {
				books[i] = f.Book
			}
			return c.printBooks(books)
		},
	}, &cobra.Command{
		Use:   "add <livro-id>",
		Short: "Favorite a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.toggleFavorite(cmd, args[0], true)
		},
	}, &cobra.Command{
		Use:   "remove <livro-id>",
		Short: "Unfavorite a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.toggleFavorite(cmd, args[0], false)
		},
	})
	return favorites
}

func (c *cli) toggleFavorite(cmd *cobra.Command, arg string, add bool) error {
	u, err := c.user()
	if err != nil {
		return err
	}
	bookID, err := parseID(arg, "ID do livro")
	if err != nil {
		return err
	}

	if add {
		if err := c.api.AddFavorite(ctxOf(cmd), u.ID, bookID); err != nil {
			return err
		}
		c.session.MarkFavorite(bookID)
		fmt.Fprintln(c.out, "Livro adicionado aos favoritos.")
	} else {
		if err := c.api.RemoveFavorite(ctxOf(cmd), u.ID, bookID); err != nil {
			return err
		}
		c.session.UnmarkFavorite(bookID)
		fmt.Fprintln(c.out, "Livro removido dos favoritos.")
	}
	return c.saveSession()
}
