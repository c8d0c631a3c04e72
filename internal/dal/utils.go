package dal

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

func genID(prefix string) string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b))
}

func marshalSequence(seq []models.Position) string {
	data, _ := json.Marshal(seq)
	return string(data)
}

func unmarshalSequence(data string) []models.Position {
	var seq []models.Position
	if err := json.Unmarshal([]byte(data), &seq); err != nil {
		return nil
	}
	return seq
}
