// Package gameid generates the identifiers used for rounds and seats.
//
// IDs are UUIDv7 values encoded as 26-character Crockford base32 strings
// (the TypeID suffix encoding), so they sort by creation time.
package gameid

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the length of every generated id
const Length = 26

// Generator creates ids, optionally drawing the random bits from a fixed reader
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator. A nil reader uses crypto randomness.
func NewGenerator(rand io.Reader) *Generator {
	return &Generator{rand: rand}
}

// Generate creates a new id
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate uuid: " + err.Error())
	}
	return encodeBase32(id)
}

// encodeBase32 encodes 128 bits as 26 base32 characters. The value is
// treated as 130 bits with two leading zero bits, so the first character
// is always in 0-7.
func encodeBase32(data [16]byte) string {
	bit := func(n int) byte {
		n -= 2
		if n < 0 {
			return 0
		}
		return (data[n/8] >> (7 - n%8)) & 1
	}

	result := make([]byte, Length)
	for i := range Length {
		var v byte
		for k := range 5 {
			v = v<<1 | bit(i*5+k)
		}
		result[i] = alphabet[v]
	}
	return string(result)
}

// Validate checks if an id is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("id must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("id first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		valid := false
		for j := 0; j < len(alphabet); j++ {
			if id[i] == alphabet[j] {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
