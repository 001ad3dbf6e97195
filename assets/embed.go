// Package assets embeds the static files shipped inside the binary:
// the default answer list and the single-page web client.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed answers.txt index.html
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file, lowercased.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded default answers.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// IndexHTML returns the web client page.
func IndexHTML() ([]byte, error) {
	return FS.ReadFile("index.html")
}
