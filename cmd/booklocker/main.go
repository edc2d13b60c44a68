// Command booklocker is a terminal client for the book locker API.
//
// State (the logged-in user and their favorites) lives in a session file,
// by default under the user config directory.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/heartmarshall/booklocker-backend/pkg/client"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", errorText(err))
		os.Exit(1)
	}
}

// errorText prefers the server's own message for API failures.
func errorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
