package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := c.prompt("Nome: ")
			if err != nil {
				return err
			}
			email, err := c.prompt("E-mail: ")
			if err != nil {
				return err
			}
			pw, err := c.password("Senha: ")
			if err != nil {
				return err
			}
			confirm, err := c.password("Confirme a senha: ")
			if err != nil {
				return err
			}
			if pw != confirm {
				return errors.New("as senhas não coincidem")
			}

			u, err := c.api.Register(ctxOf(cmd), name, email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Usuário cadastrado com sucesso! (id %d)\n", u.ID)
			return nil
		},
	}
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, err := c.prompt("E-mail: ")
			if err != nil {
				return err
			}
			pw, err := c.password("Senha: ")
			if err != nil {
				return err
			}

			ctx := ctxOf(cmd)
			u, err := c.api.Login(ctx, email, pw)
			if err != nil {
				return err
			}
			favorites, err := c.api.Favorites(ctx, u.ID)
			if err != nil {
				return err
			}

			c.session.Start(*u, favorites)
			if err := c.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Bem-vindo, %s!\n", u.Name)
			return nil
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.session.Clear()
			if err := c.saveSession(); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Sessão encerrada.")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			fresh, err := c.api.GetUser(ctxOf(cmd), u.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s <%s> (id %d), %d favoritos\n", fresh.Name, fresh.Email, fresh.ID, len(c.session.Favorites))
			return nil
		},
	}
}

func (c *cli) profileCmd() *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Edit the logged-in account"}

	profile.AddCommand(&cobra.Command{
		Use:   "rename <nome>",
		Short: "Change the display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			updated, err := c.api.Rename(ctxOf(cmd), u.ID, args[0])
			if err != nil {
				return err
			}
			c.session.User = updated
			if err := c.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Nome atualizado para %s.\n", updated.Name)
			return nil
		},
	}, &cobra.Command{
		Use:   "password",
		Short: "Change the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			current, err := c.password("Senha atual: ")
			if err != nil {
				return err
			}
			next, err := c.password("Nova senha: ")
			if err != nil {
				return err
			}
			if err := c.api.ChangePassword(ctxOf(cmd), u.ID, current, next); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Senha atualizada com sucesso!")
			return nil
		},
	}, &cobra.Command{
		Use:   "update",
		Short: "Replace name, e-mail and password at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			name, err := c.prompt("Nome: ")
			if err != nil {
				return err
			}
			email, err := c.prompt("E-mail: ")
			if err != nil {
				return err
			}
			pw, err := c.password("Nova senha: ")
			if err != nil {
				return err
			}
			updated, err := c.api.UpdateAccount(ctxOf(cmd), u.ID, name, email, pw)
			if err != nil {
				return err
			}
			c.session.User = updated
			if err := c.saveSession(); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Usuário atualizado com sucesso!")
			return nil
		},
	})
	return profile
}
