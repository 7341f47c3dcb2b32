// Command trafficctl drives the traffic API from the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/auth"
	"github.com/aevon-lab/traffic-dashboard/internal/client"
	corecfg "github.com/aevon-lab/traffic-dashboard/internal/core/config"
	"github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
	"github.com/aevon-lab/traffic-dashboard/internal/dashboard"
)

const usage = `usage: trafficctl [global flags] <command> [flags]

commands:
  list    [-from D] [-to D] [-sort date|visits] [-order asc|desc]
  stats   [-from D] [-to D]
  series  [-view daily|weekly|monthly] [-from D] [-to D]
  add     -date D -visits N
  update  -id ID [-date D] [-visits N]
  delete  -id ID
  reset
  token   [-subject S] [-ttl 1h]

global flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// globals are the flags shared by every command.
type globals struct {
	url        string
	token      string
	configPath string
	envFile    string
	verbose    bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var g globals
	flags := flag.NewFlagSet("trafficctl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	flags.StringVar(&g.url, "url", "", "API base URL (default $TRAFFIC_API_URL or http://localhost:8080)")
	flags.StringVar(&g.token, "token", "", "Bearer token (default $TRAFFIC_TOKEN)")
	flags.StringVar(&g.configPath, "config", "traffic.yaml", "Server configuration file, read by the token command")
	flags.StringVar(&g.envFile, "env-file", ".env", "Path to a .env file")
	flags.BoolVar(&g.verbose, "v", false, "Log requests")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errors.New("no command given")
	}

	if err := corecfg.LoadDotEnv(g.envFile); err != nil {
		return err
	}
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cmd, cmdArgs := flags.Arg(0), flags.Args()[1:]
	if cmd == "token" {
		return runToken(g, cmdArgs, stdout)
	}

	c := newClient(g)
	ctrl := dashboard.NewController(c, slog.Default())

	switch cmd {
	case "list":
		return runList(ctx, ctrl, cmdArgs, stdout)
	case "stats":
		return runStats(ctx, ctrl, cmdArgs, stdout)
	case "series":
		return runSeries(ctx, ctrl, cmdArgs, stdout)
	case "add":
		return runAdd(ctx, ctrl, cmdArgs, stdout)
	case "update":
		return runUpdate(ctx, ctrl, cmdArgs, stdout)
	case "delete":
		return runDelete(ctx, ctrl, cmdArgs, stdout)
	case "reset":
		return runReset(ctx, c, stdout)
	}
	flags.Usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func newClient(g globals) *client.Client {
	url := firstNonEmpty(g.url, os.Getenv("TRAFFIC_API_URL"), "http://localhost:8080")
	token := firstNonEmpty(g.token, os.Getenv("TRAFFIC_TOKEN"))
	return client.New(url, token, client.WithTimeout(15*time.Second))
}

func runList(ctx context.Context, ctrl *dashboard.Controller, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)
	from := flags.String("from", "", "Range start (YYYY-MM-DD)")
	to := flags.String("to", "", "Range end (YYYY-MM-DD)")
	sortBy := flags.String("sort", string(traffic.SortByDate), "Sort column: date or visits")
	order := flags.String("order", string(traffic.Descending), "Sort order: asc or desc")
	if err := flags.Parse(args); err != nil {
		return err
	}

	snap, err := load(ctx, ctrl, *from, *to)
	if err != nil {
		return err
	}

	records := traffic.SortRecords(snap.Filtered, traffic.SortField(*sortBy), traffic.SortOrder(*order))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tVISITS\tUPDATED")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.ID, r.Date, r.Visits, r.UpdatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(tw, "\t%d entries\t\t\n", len(records))
	return tw.Flush()
}

func runStats(ctx context.Context, ctrl *dashboard.Controller, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("stats", flag.ContinueOnError)
	from := flags.String("from", "", "Range start (YYYY-MM-DD)")
	to := flags.String("to", "", "Range end (YYYY-MM-DD)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	snap, err := load(ctx, ctrl, *from, *to)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tALL\tRANGE")
	row := func(name string, all, filtered interface{}) {
		fmt.Fprintf(tw, "%s\t%v\t%v\n", name, all, filtered)
	}
	row("total", snap.Stats.Total, snap.FilteredStats.Total)
	row("average", strconv.FormatFloat(snap.Stats.Average, 'f', 1, 64), strconv.FormatFloat(snap.FilteredStats.Average, 'f', 1, 64))
	row("highest", snap.Stats.Highest, snap.FilteredStats.Highest)
	row("lowest", snap.Stats.Lowest, snap.FilteredStats.Lowest)
	row("count", snap.Stats.Count, snap.FilteredStats.Count)
	row("period", periodString(snap.Stats.Period), periodString(snap.FilteredStats.Period))
	return tw.Flush()
}

func runSeries(ctx context.Context, ctrl *dashboard.Controller, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("series", flag.ContinueOnError)
	view := flags.String("view", string(traffic.ViewDaily), "Bucket size: daily, weekly or monthly")
	from := flags.String("from", "", "Range start (YYYY-MM-DD)")
	to := flags.String("to", "", "Range end (YYYY-MM-DD)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := ctrl.SetView(*view); err != nil {
		return err
	}

	snap, err := load(ctx, ctrl, *from, *to)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BUCKET\tLABEL\tVISITS")
	for _, p := range snap.Series {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", p.BucketKey, p.Label, p.Visits)
	}
	return tw.Flush()
}

func runAdd(ctx context.Context, ctrl *dashboard.Controller, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("add", flag.ContinueOnError)
	date := flags.String("date", "", "Date (YYYY-MM-DD)")
	visits := flags.String("visits", "", "Visit count")
	if err := flags.Parse(args); err != nil {
		return err
	}

	in := v1.TrafficInput{Date: date}
	if *visits != "" {
		in.Visits = parseVisits(*visits)
	}
	rec, err := ctrl.Add(ctx, in)
	if err != nil {
		return describe(ctrl, err)
	}
	fmt.Fprintf(out, "created %s (%s, %d visits)\n", rec.ID, rec.Date, rec.Visits)
	return nil
}

func runUpdate(ctx context.Context, ctrl *dashboard.Controller, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("update", flag.ContinueOnError)
	id := flags.String("id", "", "Entry ID")
	date := flags.String("date", "", "New date (YYYY-MM-DD)")
	visits := flags.String("visits", "", "New visit count")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var in v1.TrafficInput
	if *date != "" {
		in.Date = date
	}
	if *visits != "" {
		in.Visits = parseVisits(*visits)
	}
	rec, err := ctrl.Update(ctx, *id, in)
	if err != nil {
		return describe(ctrl, err)
	}
	fmt.Fprintf(out, "updated %s (%s, %d visits)\n", rec.ID, rec.Date, rec.Visits)
	return nil
}

func runDelete(ctx context.Context, ctrl *dashboard.Controller, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := flags.String("id", "", "Entry ID")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := ctrl.Delete(ctx, *id); err != nil {
		return describe(ctrl, err)
	}
	fmt.Fprintf(out, "deleted %s\n", *id)
	return nil
}

func runReset(ctx context.Context, c *client.Client, out io.Writer) error {
	summary, err := c.Reset(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "reset: deleted %d, imported %d, total visits %d, average %d\n",
		summary.Deleted, summary.Imported, summary.TotalVisits, summary.AvgVisits)
	return nil
}

// runToken mints a development token with the server's shared secret.
func runToken(g globals, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := flags.String("subject", "dev", "Token subject")
	ttl := flags.Duration("ttl", 0, "Token lifetime (default auth.token_ttl)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	configPath := g.configPath
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		configPath = ""
	}
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return err
	}
	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = cfg.Auth.TokenTTLDuration()
	}

	token, err := auth.MintToken(cfg.Auth.JWTSecret, cfg.Auth.Issuer, *subject, lifetime)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

// load fetches the record set and applies the range.
func load(ctx context.Context, ctrl *dashboard.Controller, from, to string) (dashboard.Snapshot, error) {
	if err := ctrl.SetRange(from, to); err != nil {
		return dashboard.Snapshot{}, err
	}
	if err := ctrl.Fetch(ctx); err != nil {
		return dashboard.Snapshot{}, err
	}
	return ctrl.Snapshot(), nil
}

// describe expands the controller's last failure into one error.
func describe(ctrl *dashboard.Controller, err error) error {
	f := ctrl.Snapshot().Err
	if f == nil {
		return err
	}
	if len(f.Details) == 0 {
		return fmt.Errorf("%s: %s", f.Kind, f.Message)
	}
	msgs := make([]string, 0, len(f.Details))
	for _, d := range f.Details {
		msgs = append(msgs, d.Message)
	}
	return fmt.Errorf("%s: %s", f.Kind, strings.Join(msgs, "; "))
}

// parseVisits keeps non-numeric input so validation reports it.
func parseVisits(s string) *v1.VisitCount {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &v1.VisitCount{}
	}
	return &v1.VisitCount{Value: f, IsNumber: true}
}

func periodString(p v1.Period) string {
	if p.Start == "" {
		return "-"
	}
	return p.Start + " .. " + p.End
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
