package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"seodeck/internal/api"
)

// manualForm collects the fields for a manual re-queue request.
type manualForm struct {
	inputs []textinput.Model
	focus  int
}

const (
	formFieldItemID = iota
	formFieldType
	formFieldTitle
	formFieldReason
	formFieldCount
)

func newManualForm() *manualForm {
	f := &manualForm{inputs: make([]textinput.Model, formFieldCount)}

	labels := [formFieldCount]string{
		formFieldItemID: "Shopify item id",
		formFieldType:   "product or collection",
		formFieldTitle:  "Title",
		formFieldReason: "Reason (e.g. refresh, missing_seo)",
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 120
		in.Width = 48
		f.inputs[i] = in
	}
	f.inputs[formFieldType].SetValue("product")
	f.inputs[formFieldReason].SetValue("manual")
	f.inputs[formFieldItemID].Focus()
	return f
}

// update routes key events through the form. done is true once the form is
// finished; req is non-nil only on submit.
func (f *manualForm) update(msg tea.KeyMsg) (done bool, req *api.ManualQueueRequest, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, nil, nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % formFieldCount)
		return false, nil, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + formFieldCount - 1) % formFieldCount)
		return false, nil, nil
	case "enter":
		if f.focus < formFieldCount-1 {
			f.setFocus(f.focus + 1)
			return false, nil, nil
		}
		built, ok := f.build()
		if !ok {
			// item id is required; send focus back to it
			f.setFocus(formFieldItemID)
			return false, nil, nil
		}
		return true, &built, nil
	}

	var c tea.Cmd
	f.inputs[f.focus], c = f.inputs[f.focus].Update(msg)
	return false, nil, c
}

func (f *manualForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// build validates the fields into a request. The item id is mandatory; the
// type collapses to product unless it reads as a collection.
func (f *manualForm) build() (api.ManualQueueRequest, bool) {
	itemID := strings.TrimSpace(f.inputs[formFieldItemID].Value())
	if itemID == "" {
		return api.ManualQueueRequest{}, false
	}

	itemType := "product"
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.inputs[formFieldType].Value())), "c") {
		itemType = "collection"
	}

	reason := strings.TrimSpace(f.inputs[formFieldReason].Value())
	if reason == "" {
		reason = "manual"
	}

	return api.ManualQueueRequest{
		ItemID:   itemID,
		ItemType: itemType,
		Title:    strings.TrimSpace(f.inputs[formFieldTitle].Value()),
		Reason:   reason,
	}, true
}

func (f *manualForm) view(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Queue item for re-processing"))
	b.WriteString("\n\n")
	for i := range f.inputs {
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("enter: next/submit · esc: cancel"))
	return b.String()
}
