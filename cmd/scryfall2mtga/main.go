package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/mtgban/scryfall2mtga/mtga"
	"github.com/mtgban/scryfall2mtga/scryfall"
)

const defaultArenaIDs = "68369,67542"

var VerboseOpt *bool
var ArenaIDsOpt *string
var NameOpt *string
var SetOpt *string
var FormatOpt *string

func writeCards(cards []*mtga.Card, w io.Writer, format string) error {
	switch format {
	case "text":
		for _, card := range cards {
			_, err := fmt.Fprintln(w, card)
			if err != nil {
				return err
			}
		}
		return nil
	case "json":
		return mtga.WriteCardsToJSON(cards, w)
	case "ndjson":
		return mtga.WriteCardsToNDJSON(cards, w)
	case "csv":
		return mtga.WriteCardsToCSV(cards, w)
	}
	return errors.New("invalid format")
}

func parseArenaIDs(list string) ([]int, error) {
	var ids []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid arena id %q", field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func run(sf *scryfall.Client) int {
	if *SetOpt != "" {
		set, err := sf.GetSetInfo(*SetOpt)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, key := range []string{"code", "name", "set_type", "released_at", "card_count"} {
			value, found := set[key]
			if found {
				fmt.Printf("%s: %v\n", key, value)
			}
		}
		return 0
	}

	var cards []*mtga.Card
	if *NameOpt != "" {
		card, err := sf.GetNamedMTGACard(*NameOpt)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		cards = append(cards, card)
	} else {
		ids, err := parseArenaIDs(*ArenaIDsOpt)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, id := range ids {
			card, err := sf.GetMTGACard(id)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			cards = append(cards, card)
		}
	}

	err := writeCards(cards, os.Stdout, *FormatOpt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	VerboseOpt = flag.Bool("verbose", false, "Log every request performed")
	ArenaIDsOpt = flag.String("id", defaultArenaIDs, "Comma-separated list of MTGA ids to convert")
	NameOpt = flag.String("name", "", "Convert the card with this exact name instead")
	SetOpt = flag.String("set", "", "Print information about this set code instead")
	FormatOpt = flag.String("format", "text", "Output format (text, json, ndjson, csv)")
	cardsAPIOpt := flag.String("cards-api", scryfall.CardsAPI, "Base URL of the cards endpoint")
	setsAPIOpt := flag.String("sets-api", scryfall.SetsAPI, "Base URL of the sets endpoint")
	flag.Parse()

	cardsEnv := os.Getenv("SCRYFALL_CARDS_API")
	if cardsEnv != "" {
		cardsAPIOpt = &cardsEnv
	}
	setsEnv := os.Getenv("SCRYFALL_SETS_API")
	if setsEnv != "" {
		setsAPIOpt = &setsEnv
	}

	sf := scryfall.NewClient()
	sf.LogCallback = log.Printf
	sf.Verbose = *VerboseOpt
	sf.CardsURL = strings.TrimSuffix(*cardsAPIOpt, "/")
	sf.SetsURL = strings.TrimSuffix(*setsAPIOpt, "/")

	os.Exit(run(sf))
}
