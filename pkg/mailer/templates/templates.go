package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	htmpl "html/template"
	"reflect"
	"strings"
	texttpl "text/template"
	"time"

	"github.com/pkg/errors"
)

// OrderPlaced is sent to the buyer after an order is stored.
const OrderPlaced = "order_placed"

//go:embed *.tmpl
var files embed.FS

// EmailData defines standard fields for email templates.
type EmailData struct {
	Email          string `json:"Email"`
	RecipientEmail string `json:"RecipientEmail"`
	Type           string `json:"Type"`
	AppName        string `json:"AppName"`

	OrderID   string `json:"OrderID"`
	ProductID string `json:"ProductID"`
	Status    string `json:"Status"`

	Time   string    `json:"Time"`
	TimeAt time.Time `json:"TimeAt"`
}

// ToMap flattens EmailData into the map carried by mailer.EmailJob.Data.
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	m := map[string]any{}
	_ = json.Unmarshal(b, &m)
	return m
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback, value any) any {
	if s, ok := value.(string); ok {
		if strings.TrimSpace(s) == "" {
			return fallback
		}
		return s
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.IsZero() {
		return fallback
	}
	return value
}

func funcs() map[string]any {
	return map[string]any{
		"upper":   strings.ToUpper,
		"default": defaultFn,
	}
}

// Templates are embedded, so a parse failure is a build defect.
var (
	textSet = texttpl.Must(texttpl.New("text").Funcs(funcs()).ParseFS(files, "*.subject.tmpl", "*.text.tmpl"))
	htmlSet = htmpl.Must(htmpl.New("html").Funcs(funcs()).ParseFS(files, "*.html.tmpl"))
)

func execute(file string, data any, html bool) (string, error) {
	var buf bytes.Buffer
	var err error
	if html {
		t := htmlSet.Lookup(file)
		if t == nil {
			return "", errors.Errorf("template %s not found", file)
		}
		err = t.Execute(&buf, data)
	} else {
		t := textSet.Lookup(file)
		if t == nil {
			return "", errors.Errorf("template %s not found", file)
		}
		err = t.Execute(&buf, data)
	}
	if err != nil {
		return "", errors.Wrapf(err, "render %s", file)
	}
	return buf.String(), nil
}

// Render produces subject, text and html bodies from <name>.subject.tmpl,
// <name>.text.tmpl and <name>.html.tmpl.
func Render(name string, data any) (subject, text, html string, err error) {
	if subject, err = execute(name+".subject.tmpl", data, false); err != nil {
		return "", "", "", err
	}
	if text, err = execute(name+".text.tmpl", data, false); err != nil {
		return "", "", "", err
	}
	if html, err = execute(name+".html.tmpl", data, true); err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
