package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/booklocker-backend/pkg/client"
)

var statusLabels = map[string]string{
	"disponivel":   "disponível",
	"reservado":    "reservado",
	"indisponivel": "indisponível",
}

func (c *cli) booksCmd() *cobra.Command {
	books := &cobra.Command{Use: "books", Short: "Browse the catalog"}

	books.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.api.ListBooks(ctxOf(cmd))
			if err != nil {
				return err
			}
			return c.printBooks(list)
		},
	}, &cobra.Command{
		Use:   "search <titulo>",
		Short: "Search books by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.api.SearchBooks(ctxOf(cmd), args[0])
			if err != nil {
				return err
			}
			return c.printBooks(list)
		},
	}, &cobra.Command{
		Use:   "show <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ID do livro")
			if err != nil {
				return err
			}
			b, err := c.api.GetBook(ctxOf(cmd), id)
			if err != nil {
				return err
			}
			c.printBook(b)
			return nil
		},
	}, &cobra.Command{
		Use:   "category <pessoal|profissional>",
		Short: "List books of one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.api.BooksByCategory(ctxOf(cmd), args[0])
			if err != nil {
				return err
			}
			return c.printBooks(list)
		},
	}, &cobra.Command{
		Use:   "machine <id>",
		Short: "List available books at a machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ID da máquina")
			if err != nil {
				return err
			}
			list, err := c.api.BooksByMachine(ctxOf(cmd), id)
			if err != nil {
				return err
			}
			return c.printBooks(list)
		},
	})
	return books
}

func (c *cli) machinesCmd() *cobra.Command {
	machines := &cobra.Command{Use: "machines", Short: "Browse vending machines"}

	machines.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.api.ListMachines(ctxOf(cmd))
			if err != nil {
				return err
			}
			return c.printMachines(list)
		},
	}, &cobra.Command{
		Use:   "books <id>",
		Short: "List books available in a machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ID da máquina")
			if err != nil {
				return err
			}
			list, err := c.api.MachineBooks(ctxOf(cmd), id)
			if err != nil {
				return err
			}
			return c.printBooks(list)
		},
	}, &cobra.Command{
		Use:   "holding <livro-id>",
		Short: "List machines that hold a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ID do livro")
			if err != nil {
				return err
			}
			list, err := c.api.MachinesHoldingBook(ctxOf(cmd), id)
			if err != nil {
				return err
			}
			return c.printMachines(list)
		},
	})
	return machines
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func (c *cli) printBooks(books []client.Book) error {
	if len(books) == 0 {
		fmt.Fprintln(c.out, "Nenhum livro encontrado.")
		return nil
	}
	tw := newTable(c.out)
	fmt.Fprintln(tw, "ID\tTÍTULO\tAUTOR\tSTATUS\tMÁQUINA\t")
	for _, b := range books {
		mark := ""
		if c.session != nil && c.session.IsFavorite(b.ID) {
			mark = " ★"
		}
		fmt.Fprintf(tw, "%d\t%s%s\t%s\t%s\t%s\t\n", b.ID, b.Title, mark, b.Author, statusLabel(b.Status), deref(b.MachineName))
	}
	return tw.Flush()
}

func (c *cli) printBook(b *client.Book) {
	fmt.Fprintf(c.out, "%s\n", b.Title)
	fmt.Fprintf(c.out, "  Autor:     %s\n", b.Author)
	if b.Year != nil {
		fmt.Fprintf(c.out, "  Ano:       %d\n", *b.Year)
	}
	fmt.Fprintf(c.out, "  Tipo:      %s\n", b.Category)
	fmt.Fprintf(c.out, "  Status:    %s\n", statusLabel(b.Status))
	fmt.Fprintf(c.out, "  Máquina:   %s\n", deref(b.MachineName))
	if c.session != nil && c.session.IsFavorite(b.ID) {
		fmt.Fprintln(c.out, "  ★ favorito")
	}
	if b.Description != "" {
		fmt.Fprintf(c.out, "\n%s\n", b.Description)
	}
}

func (c *cli) printMachines(machines []client.Machine) error {
	if len(machines) == 0 {
		fmt.Fprintln(c.out, "Nenhuma máquina encontrada.")
		return nil
	}
	tw := newTable(c.out)
	fmt.Fprintln(tw, "ID\tNOME\tLOCALIZAÇÃO\t")
	for _, m := range machines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", m.ID, m.Name, m.Location)
	}
	return tw.Flush()
}

func statusLabel(s string) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
