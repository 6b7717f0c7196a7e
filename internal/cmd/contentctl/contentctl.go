// Package contentctl implements the content administration CLI. It speaks
// the content API of a running portfolio server and addresses fields by
// language plus dotted path.
package contentctl

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sukrucan/portfolio/internal/content"
	"github.com/sukrucan/portfolio/internal/platform/config"
)

const (
	defaultServerURL   = "http://localhost:8080"
	defaultAdminSecret = "admin123"
)

// Config holds the contentctl command configuration.
type Config struct {
	ServerURL   string `env:"PORTFOLIO_SERVER_URL"`
	AdminSecret string `env:"PORTFOLIO_ADMIN_SECRET"`
}

// ParseConfig parses environment variables and flags into a Config plus the
// remaining subcommand arguments.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, []string, error) {
	cfg := Config{
		ServerURL:   defaultServerURL,
		AdminSecret: defaultAdminSecret,
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, nil, err
	}

	fs.StringVar(&cfg.ServerURL, "server-url", cfg.ServerURL, "portfolio server base URL")
	fs.StringVar(&cfg.AdminSecret, "admin-secret", cfg.AdminSecret, "shared admin secret")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Run dispatches a subcommand against the remote content store.
func Run(ctx context.Context, cfg Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: contentctl [flags] get|set|add|remove ...")
	}
	client := content.NewHTTPClient(cfg.ServerURL, cfg.AdminSecret)
	switch args[0] {
	case "get":
		return runGet(ctx, client, args[1:], out)
	case "set":
		return runSet(ctx, client, args[1:], out)
	case "add":
		return runAdd(ctx, client, args[1:], out)
	case "remove":
		return runRemove(ctx, client, args[1:], out)
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func runGet(ctx context.Context, client content.Client, args []string, out io.Writer) error {
	if len(args) != 2 {
		return errors.New("usage: contentctl get <lang> <path>")
	}
	lang, path := args[0], args[1]
	doc, err := client.Fetch(ctx)
	if err != nil {
		return err
	}
	tree, ok := doc[lang]
	if !ok {
		return fmt.Errorf("no content for language %q", lang)
	}
	value, found := content.Resolve(tree, path)
	if !found {
		return fmt.Errorf("path %q does not resolve", path)
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	fmt.Fprintln(out, string(payload))
	return nil
}

func runSet(ctx context.Context, client content.Client, args []string, out io.Writer) error {
	if len(args) != 3 {
		return errors.New("usage: contentctl set <lang> <path> <value>")
	}
	lang, path := args[0], args[1]
	value := parseValue(args[2])
	return mutate(ctx, client, out, func(store *content.Store) <-chan error {
		return store.Update(lang, path, value)
	})
}

func runAdd(ctx context.Context, client content.Client, args []string, out io.Writer) error {
	if len(args) != 3 {
		return errors.New("usage: contentctl add <lang> <list-path> <item>")
	}
	lang, path := args[0], args[1]
	item := parseValue(args[2])
	return mutate(ctx, client, out, func(store *content.Store) <-chan error {
		return store.Add(lang, path, item)
	})
}

func runRemove(ctx context.Context, client content.Client, args []string, out io.Writer) error {
	if len(args) != 3 {
		return errors.New("usage: contentctl remove <lang> <list-path> <index>")
	}
	lang, path := args[0], args[1]
	index, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("index must be an integer: %w", err)
	}
	return mutate(ctx, client, out, func(store *content.Store) <-chan error {
		return store.Remove(lang, path, index)
	})
}

// mutate loads the current document, applies one mutation through the
// engine, and waits for the persist to settle before reporting. Unlike the
// server-rendered page, the CLI has nothing useful to do while a persist is
// in flight, so the fire-and-forget future is always awaited here.
func mutate(ctx context.Context, client content.Client, out io.Writer, op func(*content.Store) <-chan error) error {
	store := content.NewStore(client, content.Fallback())
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	select {
	case err := <-op(store):
		if err != nil {
			return fmt.Errorf("persist content: %w", err)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	fmt.Fprintln(out, "ok")
	return nil
}

// parseValue interprets a CLI argument as JSON when possible, falling back
// to a plain string scalar. Quoting whole JSON documents on the shell is
// expected; bare words are a convenience.
func parseValue(raw string) content.Value {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return content.Scalar{Val: raw}
	}
	return content.FromAny(decoded)
}
