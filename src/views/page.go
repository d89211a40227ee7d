package views

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"Backend-Booking-Designer/src/models"
)

//go:embed designer.html
var designerHTML string

var page = template.Must(template.New("designer").Parse(designerHTML))

// RenderDesigner writes the full designer page for a view-model.
func RenderDesigner(w io.Writer, vm models.ViewModel) error {
	var buf bytes.Buffer
	if err := page.Execute(&buf, vm); err != nil {
		return fmt.Errorf("render designer page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
