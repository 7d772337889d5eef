package main

import (
	"context"
	"fmt"
	"time"

	// Autoloads .env file to supply environment variables
	_ "github.com/joho/godotenv/autoload"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lildude/stravastats/internal/config"
	"github.com/lildude/stravastats/internal/logger"
	"github.com/lildude/stravastats/internal/pipeline"
	"github.com/lildude/stravastats/internal/report"
)

func main() {
	log := logger.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	result, err := pipeline.Run(context.Background(), cfg, log)
	if err != nil {
		log.Fatal(err)
	}

	printSummary(result)
}

func printSummary(r *pipeline.Result) {
	p := message.NewPrinter(language.English)
	p.Printf("Fetched %d activities across %d days", r.Activities, r.Days)
	if r.Excluded > 0 {
		p.Printf(" (%d records excluded)", r.Excluded)
	}
	p.Println()

	for _, typ := range report.SortedTypes(r.TypeCounts) {
		p.Printf("%-24s %d\n", report.PrettyLabel(typ)+":", r.TypeCounts[typ])
	}

	for _, s := range r.Splits {
		label := fmt.Sprintf("%v km", s.TargetKm)
		if !s.OK {
			fmt.Printf("No activities long enough for %s\n", label)
			continue
		}
		fmt.Printf("Estimated fastest %s: %s\n", label, s.Estimate.Round(time.Second))
	}

	fmt.Printf("Report written to %s\n", r.ReportPath)
}
