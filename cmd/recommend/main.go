package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"hikematch/internal/recommender"
	"hikematch/internal/repositories"
	"hikematch/internal/services"
	"hikematch/pkg/logger"
)

func main() {
	var trailsPath, answersPath, logMode string
	var n int
	var skipMalformed bool
	flag.StringVar(&trailsPath, "trails", "data/trails_df.csv", "trails CSV export")
	flag.StringVar(&answersPath, "answers", "", "JSON file of survey answers keyed by question (- for stdin, empty for defaults)")
	flag.IntVar(&n, "n", recommender.DefaultLimit, "number of trails to recommend")
	flag.BoolVar(&skipMalformed, "skip-malformed", false, "skip trails whose length, rating or review count cannot be parsed")
	flag.StringVar(&logMode, "log", "production", "log mode (production or development)")
	flag.Parse()

	log, err := logger.New(logMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	answers, err := readAnswers(answersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read answers: %v\n", err)
		os.Exit(1)
	}

	catalog, err := services.LoadCatalog(context.Background(), repositories.NewCSVTrailSource(trailsPath), skipMalformed, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}

	results := recommender.New(catalog).Recommend(answers, n)
	if len(results) == 0 {
		fmt.Println("No trails to recommend.")
		return
	}
	fmt.Print(recommender.FormatText(results))
}

func readAnswers(path string) (recommender.UserResponse, error) {
	if path == "" {
		return recommender.UserResponse{}, nil
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var answers recommender.UserResponse
	if err := json.NewDecoder(r).Decode(&answers); err != nil {
		return nil, err
	}
	if answers == nil {
		answers = recommender.UserResponse{}
	}
	return answers, nil
}
