package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	transporthttp "github.com/alexanderramin/lentoflow/internal/transport/http"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var userID string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := transporthttp.Services{
				Today:      app.Today,
				Completion: app.Completion,
				Tasks:      app.Tasks,
				Stats:      app.Stats,
				Users:      app.Users,
			}
			auth := transporthttp.StaticAuthenticator{UserID: userID}
			handler := transporthttp.NewRouter(svc, auth, func() time.Time { return app.now() })

			fmt.Printf("listening on %s\n", addr)
			return http.ListenAndServe(addr, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().StringVar(&userID, "user", app.UserID, "user ID every bearer token resolves to")

	return cmd
}
