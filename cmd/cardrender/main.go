package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/alovak/helpcard/cardview"
	"github.com/alovak/helpcard/helpcard"
	"github.com/alovak/helpcard/helpcard/models"
	"github.com/alovak/helpcard/internal/cardclient"
)

var (
	flagIn       = flag.String("in", "-", "card JSON file, - for stdin")
	flagOut      = flag.String("out", "-", "HTML output file, - for stdout")
	flagConfig   = flag.String("config", "", "JSON config file for branding and expiry timezone")
	flagFragment = flag.Bool("fragment", false, "write only the card fragment instead of a full page")
	flagRemote   = flag.String("remote", "", "render through a running helpcard server at this base URL")
)

func main() {
	flag.Parse()

	config := must1(helpcard.LoadConfig(*flagConfig))
	loc := must1(config.Location())
	card := must1(readCardFile(*flagIn))

	var html []byte
	if *flagRemote != "" {
		cli := cardclient.New(*flagRemote, &http.Client{Timeout: 10 * time.Second})
		html = must1(cli.Render(context.Background(), card, *flagFragment))
	} else {
		renderer := cardview.New(config.Branding, cardview.WithLocation(loc))
		html = must1(renderLocal(renderer, card, *flagFragment))
	}

	if *flagOut == "-" {
		_, err := os.Stdout.Write(html)
		must(err)
		return
	}
	must(os.WriteFile(*flagOut, html, 0o644))
}

// readCardFile decodes a card from path, or stdin for "-". The file is closed
// before returning.
func readCardFile(path string) (models.Card, error) {
	if path == "-" {
		return readCard(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return models.Card{}, err
	}
	defer f.Close()
	return readCard(f)
}

// readCard accepts the same payload as POST /cards/render.
func readCard(r io.Reader) (models.Card, error) {
	return models.DecodeCard(r)
}

func renderLocal(r *cardview.Renderer, card models.Card, fragment bool) ([]byte, error) {
	var buf bytes.Buffer
	render := r.RenderPage
	if fragment {
		render = r.Render
	}
	if err := render(&buf, card); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}
func must1[T any](v T, err error) T {
	if err != nil {
		fail("%v", err)
	}
	return v
}
func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
