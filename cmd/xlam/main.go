// Package main is xlam, a small command line tool for the XL Automaten
// vending machine API. It covers the read side of the API plus login,
// printing results as indented JSON for piping into jq.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	xlautomaten "github.com/zebreus/xl-automaten-api"
	"github.com/zebreus/xl-automaten-api/internal/logging"
	"github.com/zebreus/xl-automaten-api/internal/telemetry"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("xlam", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	flags.Usage = usage(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return fmt.Errorf("missing command")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				fmt.Fprintf(os.Stderr, "telemetry shutdown: %v\n", err)
			}
		}()
	}

	opts := []xlautomaten.Option{xlautomaten.WithLogger(logger)}
	if cfg.API.BaseURL != "" {
		opts = append(opts, xlautomaten.WithBaseURL(cfg.API.BaseURL))
	}
	client := xlautomaten.NewClient(opts...)

	command := flags.Arg(0)
	if command == "login" {
		return login(ctx, client, cfg)
	}

	token := cfg.API.Token
	if token == "" {
		resp, err := client.Login(ctx, cfg.API.Email, cfg.API.Password)
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}
		token = resp.Token
	}
	client = client.WithToken(token)

	return dispatch(ctx, client, command, flags.Args()[1:])
}

// login exchanges credentials for a token and prints it, so follow-up
// invocations can reuse it via XLAM_API_TOKEN.
func login(ctx context.Context, client *xlautomaten.Client, cfg *Config) error {
	if cfg.API.Email == "" || cfg.API.Password == "" {
		return fmt.Errorf("login requires api.email and api.password")
	}
	resp, err := client.Login(ctx, cfg.API.Email, cfg.API.Password)
	if err != nil {
		return err
	}
	fmt.Println(resp.Token)
	return nil
}

func dispatch(ctx context.Context, client *xlautomaten.Client, command string, args []string) error {
	switch command {
	case "articles":
		return printJSON(client.GetArticles(ctx))
	case "article":
		id, err := idArg(command, args)
		if err != nil {
			return err
		}
		return printJSON(client.GetArticle(ctx, id))
	case "categories":
		return printJSON(client.GetCategories(ctx))
	case "suppliers":
		return printJSON(client.GetSuppliers(ctx))
	case "machines":
		return printJSON(client.GetMachines(ctx))
	case "machine":
		id, err := idArg(command, args)
		if err != nil {
			return err
		}
		return printJSON(client.GetMachine(ctx, id))
	case "trays":
		return printJSON(client.GetTrays(ctx))
	case "positions":
		return printJSON(client.GetPositions(ctx))
	case "mappings":
		return printJSON(client.GetMappings(ctx))
	case "pickups":
		return printJSON(client.GetPickups(ctx))
	case "pickup":
		if len(args) != 1 {
			return fmt.Errorf("usage: xlam pickup <code>")
		}
		return printJSON(client.GetPickup(ctx, args[0]))
	case "vouchers":
		return printJSON(client.GetVouchers(ctx))
	case "voucher":
		id, err := idArg(command, args)
		if err != nil {
			return err
		}
		return printJSON(client.GetVoucher(ctx, id))
	case "mastermodules":
		return printJSON(client.GetMastermodules(ctx))
	case "stock":
		id, err := idArg(command, args)
		if err != nil {
			return err
		}
		return printJSON(client.GetMastermoduleStock(ctx, id))
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// idArg parses the single numeric id argument of a get command.
func idArg(command string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: xlam %s <id>", command)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// printJSON writes the result of a client call as indented JSON to
// stdout.
func printJSON[T any](result T, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func usage(flags *flag.FlagSet) func() {
	return func() {
		fmt.Fprint(os.Stderr, `usage: xlam [-config file] <command> [args]

commands:
  login                 obtain and print a bearer token
  articles              list all articles
  article <id>          show one article
  categories            list all categories
  suppliers             list all suppliers
  machines              list all machines
  machine <id>          show one machine
  trays                 list all trays
  positions             list all positions
  mappings              list all mappings
  pickups               list all pickup codes
  pickup <code>         show one pickup code
  vouchers              list all vouchers
  voucher <id>          show one voucher
  mastermodules         list all mastermodules
  stock <id>            show the stock of a mastermodule

flags:
`)
		flags.PrintDefaults()
	}
}
