package scryfall

import (
	"encoding/json"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mtgban/scryfall2mtga/mtga"
)

const typeLineSeparator = " — "

var requiredFields = []string{
	"name",
	"mana_cost",
	"color_identity",
	"type_line",
	"set",
	"rarity",
	"collector_number",
	"arena_id",
}

var costReplacer = strings.NewReplacer("}", "", "{", "")

// ScryfallToMTGA converts a Scryfall card object into a MTGA card.
// Every field in requiredFields needs to be present.
func ScryfallToMTGA(card CardJSON) (*mtga.Card, error) {
	for _, field := range requiredFields {
		_, found := card[field]
		if !found {
			return nil, &MissingFieldError{Field: field}
		}
	}

	prettyName, err := stringField(card, "name")
	if err != nil {
		return nil, err
	}
	manaCost, err := stringField(card, "mana_cost")
	if err != nil {
		return nil, err
	}
	colorIdentity, err := stringSliceField(card, "color_identity")
	if err != nil {
		return nil, err
	}
	typeLine, err := stringField(card, "type_line")
	if err != nil {
		return nil, err
	}
	setCode, err := stringField(card, "set")
	if err != nil {
		return nil, err
	}
	rarity, err := stringField(card, "rarity")
	if err != nil {
		return nil, err
	}
	setNumber, err := stringField(card, "collector_number")
	if err != nil {
		return nil, err
	}
	mtgaID, err := intField(card, "arena_id")
	if err != nil {
		return nil, err
	}

	cardType, subTypes := SplitTypeLine(typeLine)

	// Casers are stateful, do not share them
	name := strings.Replace(cases.Lower(language.Und).String(prettyName), " ", "_", -1)
	setID := NormalizeSet(cases.Upper(language.Und).String(setCode))

	return mtga.NewCard(
		name, prettyName, SplitCost(manaCost), colorIdentity,
		cardType, subTypes, map[string]string{}, setID, rarity,
		setNumber != "", setNumber, mtgaID,
	), nil
}

// SplitCost strips braces from a mana cost and returns every remaining
// character as a separate element, so that "{2}{W}{W}" becomes 2, W, W.
// Symbols longer than one character are split as well.
func SplitCost(manaCost string) []string {
	stripped := costReplacer.Replace(manaCost)
	cost := make([]string, 0, len(stripped))
	for _, r := range stripped {
		cost = append(cost, string(r))
	}
	return cost
}

// SplitTypeLine returns the card type and the subtypes from a type line.
// Only the first two segments are considered, the subtypes are empty when
// no separator is present.
func SplitTypeLine(typeLine string) (string, string) {
	types := strings.Split(typeLine, typeLineSeparator)
	if len(types) < 2 {
		return types[0], ""
	}
	return types[0], types[1]
}

func stringField(card CardJSON, field string) (string, error) {
	value, ok := card[field].(string)
	if !ok {
		return "", &FieldTypeError{Field: field, Value: card[field]}
	}
	return value, nil
}

func stringSliceField(card CardJSON, field string) ([]string, error) {
	switch values := card[field].(type) {
	case []string:
		return values, nil
	case []interface{}:
		out := make([]string, 0, len(values))
		for _, value := range values {
			str, ok := value.(string)
			if !ok {
				return nil, &FieldTypeError{Field: field, Value: value}
			}
			out = append(out, str)
		}
		return out, nil
	}
	return nil, &FieldTypeError{Field: field, Value: card[field]}
}

func intField(card CardJSON, field string) (int, error) {
	switch value := card[field].(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case int32:
		return int(value), nil
	case float64:
		if value == math.Trunc(value) {
			return int(value), nil
		}
	case json.Number:
		num, err := value.Int64()
		if err == nil {
			return int(num), nil
		}
	}
	return 0, &FieldTypeError{Field: field, Value: card[field]}
}
