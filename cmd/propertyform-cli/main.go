package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-propertyform/pkg/formitem"
	pkgloader "github.com/goliatone/go-propertyform/pkg/loader"
	"github.com/goliatone/go-propertyform/pkg/model"
	"github.com/goliatone/go-propertyform/pkg/orchestrator"
	"github.com/goliatone/go-propertyform/pkg/render"
	"github.com/goliatone/go-propertyform/pkg/renderers/tui"
	"github.com/goliatone/go-propertyform/pkg/renderers/vanilla"
)

func main() {
	source := flag.String("model", "", "view-model document path (.json, .yaml)")
	value := flag.String("value", "", "initial value as JSON (plain text is taken verbatim)")
	renderer := flag.String("renderer", "vanilla", "renderer to use (vanilla, tui)")
	name := flag.String("name", "", "form item name (defaults to the view-model name)")
	output := flag.String("output", "", "output file (stdout if empty)")
	format := flag.String("format", "json", "tui output format (json, form, pretty)")
	idPrefix := flag.String("id-prefix", "", "prefix for generated element ids")
	readOnly := flag.Bool("readonly", false, "render the controls read only")
	outlined := flag.Bool("outlined", false, "use the outlined theme flag")
	compatibility := flag.Bool("compatibility", false, "enable compatibility mode")
	flag.Parse()

	if strings.TrimSpace(*source) == "" {
		log.Fatalf("missing -model")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	htmlRenderer, err := vanilla.New()
	if err != nil {
		log.Fatalf("Failed to create vanilla renderer: %v", err)
	}
	promptRenderer, err := tui.New(tui.WithOutputFormat(tui.OutputFormat(*format)))
	if err != nil {
		log.Fatalf("Failed to create tui renderer: %v", err)
	}
	registry, err := render.NewRegistry(htmlRenderer, promptRenderer)
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}

	gen := orchestrator.New(orchestrator.WithRegistry(registry))

	req := orchestrator.Request{
		Source:   pkgloader.SourceFromFile(*source),
		Renderer: *renderer,
		Props: formitem.Props{
			Name:          *name,
			ReadOnly:      *readOnly,
			Outlined:      *outlined,
			Compatibility: *compatibility,
		},
		RenderOptions: render.RenderOptions{IDPrefix: *idPrefix},
	}
	if *value != "" {
		parsed := model.ParseValue(*value)
		req.Value = &parsed
	}

	out, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to render property: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Property written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}
