package termdoc

import (
	"bufio"
	"io"
	"strings"
)

// TextLoader handles plain text term lists. Each blank-line separated
// paragraph is one term: its first line is the name and the remaining lines
// are the explanation.
type TextLoader struct{}

func (l *TextLoader) Load(r io.Reader, filename string) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &Document{
		Term:  titleFromFilename(filename, ".txt", ".text"),
		Terms: []Term{},
	}

	var lines []string
	flush := func() {
		if len(lines) == 0 {
			return
		}
		doc.Terms = append(doc.Terms, Term{
			Term:        strings.TrimSpace(lines[0]),
			Explanation: strings.Join(lines[1:], "\n"),
		})
		lines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return doc, nil
}
