package scryfall

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mtgban/scryfall2mtga/mtga"
)

const (
	CardsAPI = "https://api.scryfall.com/cards"
	SetsAPI  = "https://api.scryfall.com/sets"
)

type LogCallbackFunc func(format string, a ...interface{})

// Client fetches cards and sets from Scryfall. Fields are meant to be set
// right after creation and left untouched afterwards.
type Client struct {
	LogCallback LogCallbackFunc
	CardsURL    string
	SetsURL     string

	// Verbose also logs every request performed
	Verbose bool

	getter Getter
}

func NewClient() *Client {
	sf := NewClientWithGetter(nil)
	sf.getter = NewHTTPGetter(sf.debugf)
	return sf
}

// NewClientWithGetter returns a Client performing requests through getter.
func NewClientWithGetter(getter Getter) *Client {
	sf := Client{}
	sf.CardsURL = CardsAPI
	sf.SetsURL = SetsAPI
	sf.getter = getter
	return &sf
}

func (sf *Client) printf(format string, a ...interface{}) {
	if sf.LogCallback != nil {
		sf.LogCallback("[SF] "+format, a...)
	}
}

func (sf *Client) debugf(format string, a ...interface{}) {
	if sf.Verbose {
		sf.printf(format, a...)
	}
}

// GetArenaCardJSON retrieves the card with the given MTGA id.
func (sf *Client) GetArenaCardJSON(arenaID int) (CardJSON, error) {
	query := strconv.Itoa(arenaID)
	status, body, err := sf.getter.Get(sf.CardsURL + "/arena/" + query)
	if err != nil {
		return nil, fmt.Errorf("card id %s: %w", query, err)
	}
	if status != http.StatusOK {
		return nil, newScryfallError("Unknown card id", query, status, body)
	}
	return body, nil
}

// GetNamedCardJSON retrieves the card matching exactly the given name.
func (sf *Client) GetNamedCardJSON(name string) (CardJSON, error) {
	status, body, err := sf.getter.Get(sf.CardsURL + "/named?exact=" + url.QueryEscape(name))
	if err != nil {
		return nil, fmt.Errorf("card name %s: %w", name, err)
	}
	if status != http.StatusOK {
		return nil, newScryfallError("Unknown card id", name, status, body)
	}
	return body, nil
}

// GetSetInfo retrieves the set with the given code. An unknown set is
// not an error, and results in an empty object.
func (sf *Client) GetSetInfo(setCode string) (CardJSON, error) {
	status, body, err := sf.getter.Get(sf.SetsURL + "/" + url.PathEscape(setCode))
	if err != nil {
		return nil, fmt.Errorf("set %s: %w", setCode, err)
	}
	switch status {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		sf.printf("Unknown set: %s. Reason: %d %s", setCode, status, http.StatusText(status))
		return CardJSON{}, nil
	}
	return nil, newScryfallError("Unknown set:", setCode, status, body)
}

// GetMTGACard retrieves the card with the given MTGA id and converts it.
func (sf *Client) GetMTGACard(arenaID int) (*mtga.Card, error) {
	card, err := sf.GetArenaCardJSON(arenaID)
	if err != nil {
		return nil, err
	}
	return ScryfallToMTGA(card)
}

// GetNamedMTGACard retrieves the card with the given name and converts it.
func (sf *Client) GetNamedMTGACard(name string) (*mtga.Card, error) {
	card, err := sf.GetNamedCardJSON(name)
	if err != nil {
		return nil, err
	}
	return ScryfallToMTGA(card)
}
