package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/anisan-cli/anitaku/api"
	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/log"
	"github.com/anisan-cli/anitaku/scraper"
	"github.com/anisan-cli/anitaku/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(key.ServerHost, serveCmd.Flags().Lookup("host")))

	serveCmd.Flags().IntP("port", "P", 0, "Port to listen on")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().String("mode", "", "Gin mode (debug, release, test)")
	lo.Must0(viper.BindPFlag(key.ServerMode, serveCmd.Flags().Lookup("mode")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scrapes as a JSON HTTP API",
	Long: `Serve scrapes as a JSON HTTP API.

Endpoints:
  GET /api/v1/home?page=N
  GET /api/v1/search?search=KEYWORD&page=N
  GET /api/v1/details?path=PATH
  GET /api/v1/episode?path=PATH
  GET /api/v1/pagination?kind=listing|search&page=N&total=M
  GET /api/v1/health`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := interruptible()
		defer cancel()

		router := api.NewRouter(scraper.FromConfig(), api.Options{
			Mode:   viper.GetString(key.ServerMode),
			Window: viper.GetInt(key.PaginationWindow),
		})

		addr := net.JoinHostPort(viper.GetString(key.ServerHost), strconv.Itoa(viper.GetInt(key.ServerPort)))
		server := &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdown); err != nil {
				log.Warnf("shutdown: %v", err)
			}
		}()

		log.Infof("listening on %s", addr)
		cmd.Printf("%s Listening on %s\n", icon.Get(icon.Success), style.Bold("http://"+addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			handleErr(fmt.Errorf("serve: %w", err))
		}
	},
}
