package functional

import (
	"crypto/rand"
	"strings"

	"github.com/go-faker/faker/v4"
)

func generateBytes(n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return nil
	}
	return b
}

// generateLines returns roughly n bytes of newline terminated text records.
func generateLines(n int) []byte {
	var sb strings.Builder
	for sb.Len() < n {
		record := struct {
			Name     string `faker:"name"`
			Email    string `faker:"email"`
			Sentence string `faker:"sentence"`
		}{}
		if err := faker.FakeData(&record); err != nil {
			return nil
		}
		sb.WriteString(record.Name)
		sb.WriteByte('\t')
		sb.WriteString(record.Email)
		sb.WriteByte('\t')
		sb.WriteString(record.Sentence)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
