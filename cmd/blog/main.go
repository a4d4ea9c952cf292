package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dylants/blog"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultPort     = 3000
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "blog",
		Short:        "Serve the Randomness in Code blog",
		Long:         "blog loads the markdown posts in the posts directory and serves them over HTTP.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./blog.toml)")
	flags.Int("port", defaultPort, "port to listen on")
	flags.String("posts", "", "directory holding the post documents")
	flags.String("url", "", "canonical URL of the site")
	_ = v.BindPFlag("port", flags.Lookup("port"))
	_ = v.BindPFlag("posts_dir", flags.Lookup("posts"))
	_ = v.BindPFlag("url", flags.Lookup("url"))

	return cmd
}

// loadConfig merges defaults, the config file, BLOG_ environment variables
// and flags, in increasing order of precedence.
func loadConfig(v *viper.Viper, cfgFile string) (blog.SiteConfig, error) {
	def := blog.DefaultConfig()
	v.SetDefault("port", defaultPort)
	v.SetDefault("name", def.Name)
	v.SetDefault("url", def.URL)
	v.SetDefault("description", def.Description)
	v.SetDefault("author", def.Author)
	v.SetDefault("source_url", def.SourceURL)
	v.SetDefault("posts_dir", def.PostsDir)
	v.SetDefault("max_posts_to_display_images", def.MaxPostsToDisplayImages)
	v.SetDefault("sample_length", def.SampleLength)
	v.SetDefault("sample_slim_length", def.SampleSlimLength)
	v.SetDefault("marker_policy", def.MarkerPolicy)
	v.SetDefault("read_timeout", def.ReadTimeout)
	v.SetDefault("write_timeout", def.WriteTimeout)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("blog")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", "BLOG_PORT", "PORT")
	_ = v.BindEnv("addr", "BLOG_ADDR")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return blog.SiteConfig{}, fmt.Errorf("read config: %w", err)
		}
		log.Print("No config file found, using defaults and environment")
	} else {
		log.Printf("Using config file %s", v.ConfigFileUsed())
	}

	var cfg blog.SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return blog.SiteConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = fmt.Sprintf(":%d", v.GetInt("port"))
	}
	return cfg, nil
}

// serve runs the blog until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, cfg blog.SiteConfig) error {
	app := blog.New(cfg)
	if err := app.Init(); err != nil {
		log.Printf("Cannot start: %v", err)
		return err
	}
	log.Printf("Loaded %d posts from %q", len(app.Posts), cfg.PostsDir)

	errc := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", cfg.Addr)
		errc <- app.Start()
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Printf("HTTP server: %v", err)
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server Shutdown: %v", err)
		return err
	}
	log.Print("Goodbye.")
	return nil
}
