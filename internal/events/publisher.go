package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	dom "github.com/cuihairu/playshelf/internal/ports"
)

// Message is the wire form of a favorite change.
type Message struct {
	UserID     string `json:"userId"`
	GameID     int64  `json:"gameId"`
	IsFavorite bool   `json:"isFavorite"`
	Timestamp  string `json:"timestamp"`
}

const messageSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["userId", "gameId", "isFavorite", "timestamp"],
  "additionalProperties": false,
  "properties": {
    "userId": {"type": "string", "minLength": 1},
    "gameId": {"type": "integer"},
    "isFavorite": {"type": "boolean"},
    "timestamp": {"type": "string", "format": "date-time"}
  }
}`

var schema = mustSchema(messageSchema)

func mustSchema(s string) *gojsonschema.Schema {
	sc, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("events: bad message schema: %v", err))
	}
	return sc
}

// Encode renders evt and checks the result against the message schema.
func Encode(evt dom.FavoriteChangeEvent) ([]byte, error) {
	b, err := json.Marshal(Message{
		UserID:     evt.UserID,
		GameID:     evt.GameID,
		IsFavorite: evt.IsFavorite,
		Timestamp:  evt.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	if err := Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate reports the first schema violations of a raw message.
func Validate(doc []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return err
	}
	if !res.Valid() {
		var msgs []string
		for i, e := range res.Errors() {
			if i >= 5 {
				break
			}
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid favorite event: %s", strings.Join(msgs, "; "))
	}
	return nil
}
