package mtga

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/scizorman/go-ndjson"
)

// The canonical header present in all card csv files
var CardHeader = []string{
	"MTGA Id", "Name", "Pretty Name", "Cost", "Color Identity", "Card Type",
	"Sub Types", "Set", "Number", "Rarity", "Collectible",
}

func WriteCardsToJSON(cards []*Card, w io.Writer) error {
	return json.NewEncoder(w).Encode(cards)
}

func ReadCardsFromJSON(r io.Reader) ([]*Card, error) {
	var cards []*Card
	err := json.NewDecoder(r).Decode(&cards)
	if err != nil {
		return nil, err
	}
	for _, card := range cards {
		if card.Abilities == nil {
			card.Abilities = map[string]string{}
		}
	}
	return cards, nil
}

func WriteCardsToNDJSON(cards []*Card, w io.Writer) error {
	output, err := ndjson.Marshal(cards)
	if err != nil {
		return err
	}

	_, err = w.Write(output)
	return err
}

func WriteCardsToCSV(cards []*Card, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	err := csvWriter.Write(CardHeader)
	if err != nil {
		return err
	}

	for _, card := range cards {
		err = csvWriter.Write(card.CSVRecord())
		if err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
