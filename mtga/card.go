package mtga

import (
	"fmt"
	"strings"
)

// Card is the normalized card record used by the MTGA card-data library.
type Card struct {
	Name          string            `json:"name"`
	PrettyName    string            `json:"pretty_name"`
	Cost          []string          `json:"cost"`
	ColorIdentity []string          `json:"color_identity"`
	CardType      string            `json:"card_type"`
	SubTypes      string            `json:"sub_types"`
	Abilities     map[string]string `json:"abilities"`
	SetID         string            `json:"set_id"`
	Rarity        string            `json:"rarity"`
	Collectible   bool              `json:"collectible"`
	SetNumber     string            `json:"set_number"`
	MtgaID        int               `json:"mtga_id"`
}

// NewCard builds a Card from its fields, in the same order as the struct.
// A nil abilities map is replaced with an empty one.
func NewCard(name, prettyName string, cost, colorIdentity []string,
	cardType, subTypes string, abilities map[string]string,
	setID, rarity string, collectible bool, setNumber string, mtgaID int) *Card {
	if abilities == nil {
		abilities = map[string]string{}
	}
	return &Card{
		Name:          name,
		PrettyName:    prettyName,
		Cost:          cost,
		ColorIdentity: colorIdentity,
		CardType:      cardType,
		SubTypes:      subTypes,
		Abilities:     abilities,
		SetID:         setID,
		Rarity:        rarity,
		Collectible:   collectible,
		SetNumber:     setNumber,
		MtgaID:        mtgaID,
	}
}

// FullType returns the type line as printed on the card.
func (c *Card) FullType() string {
	if c.SubTypes == "" {
		return c.CardType
	}
	return c.CardType + " — " + c.SubTypes
}

func (c *Card) String() string {
	return fmt.Sprintf("%s (%s) %s [%s #%s] %s %s", c.PrettyName, c.Name,
		strings.Join(c.Cost, ""), c.SetID, c.SetNumber, c.FullType(), c.Rarity)
}

// CSVRecord flattens the card into a row matching CardHeader.
func (c *Card) CSVRecord() []string {
	return []string{
		fmt.Sprint(c.MtgaID),
		c.Name,
		c.PrettyName,
		strings.Join(c.Cost, ""),
		strings.Join(c.ColorIdentity, ""),
		c.CardType,
		c.SubTypes,
		c.SetID,
		c.SetNumber,
		c.Rarity,
		fmt.Sprint(c.Collectible),
	}
}
