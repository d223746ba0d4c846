package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bitebasket/bitebasket/app/controllers"
	"github.com/bitebasket/bitebasket/app/routes"
	"github.com/bitebasket/bitebasket/internal/server"
	"github.com/bitebasket/bitebasket/pkg/router"
)

// bitebasket serve: start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// bitebasket route:list: print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()

		// Handlers are never invoked for listing, so zero-value
		// controllers are fine here.
		routes.RegisterAPI(r, routes.Deps{
			Auth:   controllers.NewAuthController(),
			Users:  controllers.NewUserController(nil),
			Foods:  controllers.NewFoodController(nil),
			Orders: controllers.NewOrderController(nil, nil),
		})

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
