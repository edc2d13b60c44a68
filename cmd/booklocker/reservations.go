package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/booklocker-backend/pkg/client"
)

const dateLayout = "02/01/2006 15:04"

func (c *cli) reserveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reserve <livro-id>",
		Short: "Reserve a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			bookID, err := parseID(args[0], "ID do livro")
			if err != nil {
				return err
			}
			res, err := c.api.Reserve(ctxOf(cmd), u.ID, bookID)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Reserva realizada com sucesso! (reserva %d)\n", res.ID)
			return nil
		},
	}
}

func (c *cli) reservationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reservations",
		Short: "List active reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			list, err := c.api.ActiveReservations(ctxOf(cmd), u.ID)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(c.out, "Nenhuma reserva ativa.")
				return nil
			}
			tw := newTable(c.out)
			fmt.Fprintln(tw, "RESERVA\tLIVRO\tTÍTULO\tMÁQUINA\tDATA\t")
			for _, r := range list {
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t\n", r.ID, r.BookID, r.Title, deref(r.MachineName), formatTime(r.CreatedAt))
			}
			return tw.Flush()
		},
	}
}

func (c *cli) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <reserva-id>",
		Short: "Cancel an active reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "ID da reserva")
			if err != nil {
				return err
			}
			if err := c.api.CancelReservation(ctxOf(cmd), id, u.ID); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Reserva cancelada com sucesso!")
			return nil
		},
	}
}

func (c *cli) pickupCmd() *cobra.Command {
	var byBook bool
	cmd := &cobra.Command{
		Use:   "pickup <reserva-id>",
		Short: "Pick up a reserved book",
		Long:  "Pick up a reserved book. With --book the argument is a book ID instead of a reservation ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			what := "ID da reserva"
			if byBook {
				what = "ID do livro"
			}
			id, err := parseID(args[0], what)
			if err != nil {
				return err
			}

			pickup := c.api.PickUp
			if byBook {
				pickup = func(ctx context.Context, bookID, userID int64) (*client.Pickup, error) {
					return c.api.RegisterPickup(ctx, userID, bookID)
				}
			}
			p, err := pickup(ctxOf(cmd), id, u.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Retirada registrada com sucesso! (livro %d em %s)\n", p.BookID, formatTime(p.PickedUpAt))
			return nil
		},
	}
	cmd.Flags().BoolVar(&byBook, "book", false, "treat the argument as a book ID")
	return cmd
}

func (c *cli) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past pickups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			list, err := c.api.History(ctxOf(cmd), u.ID)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(c.out, "Nenhuma retirada registrada.")
				return nil
			}
			tw := newTable(c.out)
			fmt.Fprintln(tw, "TÍTULO\tAUTOR\tMÁQUINA\tRETIRADO EM\t")
			for _, h := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", h.Title, h.Author, deref(h.Machine), formatTime(h.PickedUpAt))
			}
			return tw.Flush()
		},
	}
}

func formatTime(t time.Time) string {
	return t.Local().Format(dateLayout)
}
