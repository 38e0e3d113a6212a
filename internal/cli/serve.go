package cli

import (
	"github.com/spf13/cobra"

	"github.com/azmapper/azmap/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configFile string
		addr       string
		redisAddr  string
		mongoURI   string
		iconDir    string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagram HTTP API",
		Long: `Serve exposes the diagram pipeline over HTTP. Snapshots are posted to
/api/diagrams and completed builds can be listed and fetched under /api/builds.

Without --redis the server caches to ~/.cache/azmap; without --mongo builds
are archived in memory only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}

			cfg := server.Config{
				Addr:          addr,
				RedisAddr:     redisAddr,
				RedisPassword: fileCfg.Server.RedisPassword,
				RedisDB:       fileCfg.Server.RedisDB,
				MongoURI:      mongoURI,
				IconDir:       iconDir,
			}
			if cfg.Addr == "" {
				cfg.Addr = fileCfg.Server.Addr
			}
			if cfg.RedisAddr == "" {
				cfg.RedisAddr = fileCfg.Server.RedisAddr
			}
			if cfg.MongoURI == "" {
				cfg.MongoURI = fileCfg.Server.MongoURI
			}
			if cfg.IconDir == "" {
				cfg.IconDir = fileCfg.IconDir
			}
			if !noCache && cfg.RedisAddr == "" {
				if dir, err := cacheDir(); err == nil {
					cfg.CacheDir = dir
				}
			}

			srv, err := server.New(cmd.Context(), cfg, c.Logger)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ~/.config/azmap/config.toml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for caching (default file cache)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "mongodb URI for the build archive (default in-memory)")
	cmd.Flags().StringVar(&iconDir, "icons", "", "directory of service icons")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}
