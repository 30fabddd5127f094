package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/template"

	"fflogs_events/config"
	"fflogs_events/fflogs"
	"fflogs_events/ffxiv"
	"fflogs_events/share"

	"github.com/getsentry/sentry-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const tmplSummaryText = `{{ .ID }} {{ .Title }}
started {{ clock .Start }} ({{ ago .Start }})

{{ range .Fights -}}
#{{ .ID }} {{ .Name }}{{ if .Kill }} (kill){{ end }}  {{ clock .Time.Start }}  {{ fn .Time.DurationSeconds }}s
{{ end }}
{{ range .Players -}}
{{ .ID }}	{{ .Name }}	{{ .Job }}	{{ role .Job }}{{ if .Pets }}	pets: {{ join .Pets "," }}{{ end }}
{{ end -}}
`

var (
	tmplSummary = template.Must(
		template.New("summary").
			Funcs(share.TemplateFuncMap).
			Funcs(template.FuncMap{
				"role": func(job string) string { return ffxiv.JobRole(job).String() },
			}).
			Parse(tmplSummaryText),
	)
)

type summary struct {
	*fflogs.Report
	Players []fflogs.Player
}

func main() {
	var (
		fightID = flag.Int("fight", 0, "fight id for -events/-table")
		events  = flag.String("events", "", "dump the events of view, e.g. damage-done")
		table   = flag.String("table", "", "dump the table of view, e.g. damage-done")
		source  = flag.Int("source", 0, "restrict events/table to sourceid")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-fight N -events VIEW|-table VIEW] REPORT_ID\n", os.Args[0])
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := share.InitSentry(cfg.SentryDSN); err != nil {
		log.Fatalf("sentry: %v", err)
	}
	defer share.FlushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, cfg, flag.Arg(0), *fightID, *events, *table, *source, os.Stdout)
	if err != nil {
		if !share.IsContextClosedError(err) && !share.IsCaptured(err) {
			sentry.CaptureException(err)
		}
		fmt.Printf("%+v\n", errors.WithStack(err))
		share.FlushSentry()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, reportID string, fightID int, events, table string, source int, w io.Writer) error {
	httpClient, err := share.NewHTTPClient(cfg.Proxy)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	orphans, err := fflogs.ParseOrphanPetPolicy(cfg.OrphanPets)
	if err != nil {
		return err
	}
	delay := cfg.PageDelay
	if delay == 0 {
		delay = -1
	}

	api := fflogs.NewClient(cfg.APIKey, cfg.BaseURL, httpClient)

	report, err := fflogs.CreateReport(
		ctx,
		api,
		reportID,
		fflogs.ReportOptions{
			Location:   loc,
			OrphanPets: orphans,
			PageDelay:  delay,
		},
	)
	if err != nil {
		return err
	}

	if events == "" && table == "" {
		return printSummary(w, report)
	}

	fight, ok := report.Fight(fightID)
	if !ok {
		return errors.Errorf("report %s has no fight %d", reportID, fightID)
	}

	params := fflogs.Params{}
	if source != 0 {
		params["sourceid"] = source
	}

	var v interface{}
	if events != "" {
		v, err = fight.GetEvents(ctx, events, params)
	} else {
		v, err = fight.Tables(ctx, table, params)
	}
	if err != nil {
		return err
	}

	je := jsoniter.NewEncoder(w)
	je.SetIndent("", "    ")
	return errors.WithStack(je.Encode(v))
}

func printSummary(w io.Writer, report *fflogs.Report) error {
	return errors.WithStack(tmplSummary.Execute(
		w,
		summary{
			Report:  report,
			Players: report.Roster.SortedByJob(),
		},
	))
}
