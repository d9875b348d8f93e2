package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out := Render("Hello [client_name], due [amount]", map[string]string{
		"client_name": "Acme",
		"amount":      "100.00 €",
	})
	assert.Equal(t, "Hello Acme, due 100.00 €", out)
}

func TestRenderUnresolvedTokenLeftVerbatim(t *testing.T) {
	out := Render("Hello [client_name], ref [unknown]", map[string]string{
		"client_name": "Acme",
	})
	assert.Equal(t, "Hello Acme, ref [unknown]", out)
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	out := Render("[x] and [x] and [x]", map[string]string{"x": "y"})
	assert.Equal(t, "y and y and y", out)
}

func TestRenderEmptyTemplate(t *testing.T) {
	assert.Equal(t, "", Render("", map[string]string{"x": "y"}))
}

func TestRenderMultiRecipient(t *testing.T) {
	out := Render("[client_email], relance@agence.com", map[string]string{
		"client_email": "jane@acme.com",
	})
	assert.Equal(t, "jane@acme.com, relance@agence.com", out)
}
